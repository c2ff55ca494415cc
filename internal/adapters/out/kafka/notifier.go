// Package kafka publishes order status-changed events to a Kafka topic.
// The notifier is a fire-and-forget sink: command handlers log publish
// failures and never roll back the transition that triggered them.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"atelier/internal/core/ports"

	"github.com/IBM/sarama"
)

// SaramaNotifier implements ports.Notifier on top of a synchronous
// Kafka producer. Events are keyed by order id so per-order ordering is
// preserved within a partition.
type SaramaNotifier struct {
	producer sarama.SyncProducer
	topic    string
}

// NewSaramaNotifier connects a synchronous producer to the given brokers.
func NewSaramaNotifier(brokers []string, topic string) (*SaramaNotifier, error) {
	if len(brokers) == 0 {
		return nil, fmt.Errorf("at least one broker is required")
	}
	if topic == "" {
		return nil, fmt.Errorf("topic is required")
	}

	config := sarama.NewConfig()
	config.Producer.Return.Successes = true
	config.Producer.Timeout = 5 * time.Second

	producer, err := sarama.NewSyncProducer(brokers, config)
	if err != nil {
		return nil, fmt.Errorf("create sync producer: %w", err)
	}

	return &SaramaNotifier{
		producer: producer,
		topic:    topic,
	}, nil
}

// PublishStatusChanged sends the event to the configured topic.
func (n *SaramaNotifier) PublishStatusChanged(_ context.Context, event ports.OrderStatusChanged) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal status-changed event: %w", err)
	}

	msg := &sarama.ProducerMessage{
		Topic: n.topic,
		Key:   sarama.StringEncoder(event.OrderID),
		Value: sarama.ByteEncoder(payload),
	}

	if _, _, err = n.producer.SendMessage(msg); err != nil {
		return fmt.Errorf("send status-changed event: %w", err)
	}

	return nil
}

// Close shuts down the underlying producer.
func (n *SaramaNotifier) Close() error {
	return n.producer.Close()
}
