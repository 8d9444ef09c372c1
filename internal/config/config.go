package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application level configuration loaded from environment and flags.
type Config struct {
	RunAddress             string
	DatabaseURI            string
	OrderServiceAddress    string
	DeliveryServiceAddress string
	RedisAddress           string
	KafkaBrokers           []string
	KafkaTopic             string
	RestaurantPollInterval time.Duration
	TrackingPollInterval   time.Duration
	DriverPollInterval     time.Duration
	ShutdownTimeout        time.Duration
}

const (
	defaultRunAddress             = ":8090"
	defaultOrderServiceAddress    = "http://localhost:8082/api/v1/order"
	defaultDeliveryServiceAddress = "http://localhost:8080/api/v1/delivery"
	defaultKafkaTopic             = "order-stage-changes"
	defaultRestaurantPollInterval = 10 * time.Second
	defaultTrackingPollInterval   = 10 * time.Second
	defaultDriverPollInterval     = 10 * time.Second
	defaultShutdownTimeout        = 10 * time.Second
)

// Load parses configuration from a .env file if present, environment
// variables and flags, in ascending precedence.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return load(os.Args[1:], os.LookupEnv)
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		RunAddress:             getString(lookup, "RUN_ADDRESS", defaultRunAddress),
		DatabaseURI:            getString(lookup, "DATABASE_URI", ""),
		OrderServiceAddress:    getString(lookup, "ORDER_SERVICE_ADDRESS", defaultOrderServiceAddress),
		DeliveryServiceAddress: getString(lookup, "DELIVERY_SERVICE_ADDRESS", defaultDeliveryServiceAddress),
		RedisAddress:           getString(lookup, "REDIS_ADDRESS", ""),
		KafkaTopic:             getString(lookup, "KAFKA_TOPIC", defaultKafkaTopic),
		RestaurantPollInterval: getDuration(lookup, "RESTAURANT_POLL_INTERVAL", defaultRestaurantPollInterval),
		TrackingPollInterval:   getDuration(lookup, "TRACKING_POLL_INTERVAL", defaultTrackingPollInterval),
		DriverPollInterval:     getDuration(lookup, "DRIVER_POLL_INTERVAL", defaultDriverPollInterval),
		ShutdownTimeout:        getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
	}

	brokers := getString(lookup, "KAFKA_BROKERS", "")

	fs := flag.NewFlagSet("tracking", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		restaurantIntervalStr = cfg.RestaurantPollInterval.String()
		trackingIntervalStr   = cfg.TrackingPollInterval.String()
		driverIntervalStr     = cfg.DriverPollInterval.String()
		shutdownTimeoutStr    = cfg.ShutdownTimeout.String()
	)

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN")
	fs.StringVar(&cfg.OrderServiceAddress, "order-service", cfg.OrderServiceAddress, "Order service base URL")
	fs.StringVar(&cfg.DeliveryServiceAddress, "delivery-service", cfg.DeliveryServiceAddress, "Delivery service base URL")
	fs.StringVar(&cfg.RedisAddress, "redis", cfg.RedisAddress, "Redis address for snapshot caching, empty disables")
	fs.StringVar(&brokers, "kafka-brokers", brokers, "Comma separated Kafka brokers, empty disables events")
	fs.StringVar(&cfg.KafkaTopic, "kafka-topic", cfg.KafkaTopic, "Kafka topic for stage change events")
	fs.StringVar(&restaurantIntervalStr, "restaurant-poll-interval", restaurantIntervalStr, "Interval between restaurant board refreshes")
	fs.StringVar(&trackingIntervalStr, "tracking-poll-interval", trackingIntervalStr, "Interval between order tracking refreshes")
	fs.StringVar(&driverIntervalStr, "driver-poll-interval", driverIntervalStr, "Interval between ready order polls for drivers")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.RestaurantPollInterval, err = time.ParseDuration(restaurantIntervalStr); err != nil {
		return nil, fmt.Errorf("invalid restaurant poll interval: %w", err)
	}

	if cfg.TrackingPollInterval, err = time.ParseDuration(trackingIntervalStr); err != nil {
		return nil, fmt.Errorf("invalid tracking poll interval: %w", err)
	}

	if cfg.DriverPollInterval, err = time.ParseDuration(driverIntervalStr); err != nil {
		return nil, fmt.Errorf("invalid driver poll interval: %w", err)
	}

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	cfg.KafkaBrokers = splitBrokers(brokers)

	if cfg.RestaurantPollInterval <= 0 {
		cfg.RestaurantPollInterval = defaultRestaurantPollInterval
	}

	if cfg.TrackingPollInterval <= 0 {
		cfg.TrackingPollInterval = defaultTrackingPollInterval
	}

	if cfg.DriverPollInterval <= 0 {
		cfg.DriverPollInterval = defaultDriverPollInterval
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.DatabaseURI == "" {
		return nil, fmt.Errorf("database URI must be provided")
	}

	return cfg, nil
}

func splitBrokers(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	brokers := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			brokers = append(brokers, trimmed)
		}
	}
	return brokers
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func getDuration(lookup envLookup, key string, def time.Duration) time.Duration {
	if v, ok := lookup(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
