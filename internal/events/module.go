package events

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/flooeats/tracking/internal/config"
	"github.com/flooeats/tracking/internal/tracker"
)

// Module wires the Kafka stage change producer. Without configured brokers no
// publisher is provided and observed changes stay local.
var Module = fx.Provide(newStagePublisher)

func newStagePublisher(lc fx.Lifecycle, cfg *config.Config, logger *slog.Logger) tracker.StagePublisher {
	if len(cfg.KafkaBrokers) == 0 {
		logger.Info("stage change events disabled, no kafka brokers configured")
		return nil
	}

	p := NewProducer(cfg.KafkaBrokers, cfg.KafkaTopic, logger)
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return p.Close()
		},
	})
	logger.Info("stage change events enabled",
		"brokers", cfg.KafkaBrokers, "topic", cfg.KafkaTopic)
	return p
}
