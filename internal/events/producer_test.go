package events

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/flooeats/tracking/internal/domain/model"
)

type capturingWriter struct {
	messages []kafka.Message
	err      error
}

func (w *capturingWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.messages = append(w.messages, msgs...)
	return nil
}

func (w *capturingWriter) Close() error { return nil }

func testProducer(w messageWriter) *Producer {
	return &Producer{writer: w, logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
}

func TestPublishStageChange(t *testing.T) {
	writer := &capturingWriter{}
	p := testProducer(writer)

	observedAt := time.Date(2025, 5, 10, 12, 5, 0, 0, time.UTC)
	err := p.PublishStageChange(context.Background(), model.Transition{
		OrderNumber: 42,
		Stage:       model.StageAccepted,
		Status:      model.OrderStatusAccepted,
		ObservedAt:  observedAt,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(writer.messages) != 1 {
		t.Fatalf("messages = %d, want 1", len(writer.messages))
	}
	msg := writer.messages[0]
	if string(msg.Key) != "42" {
		t.Errorf("key = %q, want 42", msg.Key)
	}

	var event StageChangeEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		t.Fatalf("bad event payload: %v", err)
	}
	if event.OrderNumber != 42 || event.Stage != model.StageAccepted || event.Status != model.OrderStatusAccepted {
		t.Errorf("unexpected event: %+v", event)
	}
	if !event.ObservedAt.Equal(observedAt) {
		t.Errorf("observed at = %v, want %v", event.ObservedAt, observedAt)
	}
}

func TestPublishStageChangeWriteError(t *testing.T) {
	p := testProducer(&capturingWriter{err: errors.New("broker down")})

	err := p.PublishStageChange(context.Background(), model.Transition{OrderNumber: 42})
	if err == nil {
		t.Fatal("expected error")
	}
}
