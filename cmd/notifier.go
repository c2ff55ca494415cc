package cmd

import (
	"context"
	"log/slog"

	"atelier/internal/adapters/out/kafka"
	"atelier/internal/core/ports"
)

// noopNotifier drops events. Used when no Kafka brokers are configured,
// which keeps local development working without a broker.
type noopNotifier struct{}

func (noopNotifier) PublishStatusChanged(context.Context, ports.OrderStatusChanged) error {
	return nil
}

// NewNotifier builds the notification sink for the configuration.
// Returns the notifier and a close function for shutdown.
func NewNotifier(config Config, logger *slog.Logger) (ports.Notifier, func() error, error) {
	if len(config.KafkaBrokers) == 0 {
		logger.Warn("No Kafka brokers configured, status change events will be dropped")
		return noopNotifier{}, func() error { return nil }, nil
	}

	notifier, err := kafka.NewSaramaNotifier(config.KafkaBrokers, config.KafkaOrderChangedTopic)
	if err != nil {
		return nil, nil, err
	}

	return notifier, notifier.Close, nil
}
