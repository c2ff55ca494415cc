package cmd

import "time"

// Config carries every setting the composition root needs. Values come
// from the environment, with .env support for local development.
type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	KafkaBrokers           []string
	KafkaOrderChangedTopic string

	PriceListPath     string
	StalePendingAfter time.Duration
}
