package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/flooeats/tracking/internal/domain/model"
)

// StageChangeEvent is the wire form of an observed stage change.
type StageChangeEvent struct {
	OrderNumber int64             `json:"orderNumber"`
	Stage       model.Stage       `json:"stage"`
	Status      model.OrderStatus `json:"status"`
	ObservedAt  time.Time         `json:"observedAt"`
}

// messageWriter is the part of kafka.Writer the producer uses.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Producer publishes stage change events to Kafka, keyed by order number so
// one order's events stay in partition order.
type Producer struct {
	writer messageWriter
	logger *slog.Logger
}

// NewProducer constructs a producer for the given brokers and topic.
func NewProducer(brokers []string, topic string, logger *slog.Logger) *Producer {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
	}
	return &Producer{writer: writer, logger: logger}
}

// PublishStageChange emits one event.
func (p *Producer) PublishStageChange(ctx context.Context, transition model.Transition) error {
	event := StageChangeEvent{
		OrderNumber: transition.OrderNumber,
		Stage:       transition.Stage,
		Status:      transition.Status,
		ObservedAt:  transition.ObservedAt,
	}
	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal stage change: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(strconv.FormatInt(transition.OrderNumber, 10)),
		Value: value,
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("write stage change: %w", err)
	}

	p.logger.Debug("stage change published",
		"order_number", transition.OrderNumber, "stage", transition.Stage)
	return nil
}

// Close flushes and closes the underlying writer.
func (p *Producer) Close() error {
	return p.writer.Close()
}
