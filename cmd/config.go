package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// Notifier transports.
const (
	NotifierLog   = "log"
	NotifierKafka = "kafka"
	NotifierStan  = "stan"
)

type Config struct {
	HTTPPort string `env:"HTTP_PORT" envDefault:"8080"`

	DBHost     string `env:"DB_HOST" envDefault:"localhost"`
	DBPort     string `env:"DB_PORT" envDefault:"5432"`
	DBUser     string `env:"DB_USER" envDefault:"postgres"`
	DBPassword string `env:"DB_PASSWORD"`
	DBName     string `env:"DB_NAME" envDefault:"retail"`
	DBSslMode  string `env:"DB_SSLMODE" envDefault:"disable"`

	LogLevel       string `env:"LOG_LEVEL" envDefault:"info"`
	LogDevelopment bool   `env:"LOG_DEVELOPMENT" envDefault:"false"`

	AdminUsername string `env:"ADMIN_USERNAME" envDefault:"admin"`
	AdminPassword string `env:"ADMIN_PASSWORD"`

	Notifier               string `env:"NOTIFIER" envDefault:"log"`
	KafkaHost              string `env:"KAFKA_HOST"`
	KafkaOrderChangedTopic string `env:"KAFKA_ORDER_CHANGED_TOPIC" envDefault:"order.status.changed"`
	StanClusterID          string `env:"STAN_CLUSTER_ID"`
	StanClientID           string `env:"STAN_CLIENT_ID" envDefault:"retail-service"`
	StanURL                string `env:"STAN_URL" envDefault:"nats://localhost:4222"`
	StanSubject            string `env:"STAN_SUBJECT" envDefault:"order.status.changed"`

	NotificationTimeout time.Duration `env:"NOTIFICATION_TIMEOUT" envDefault:"5s"`

	// Zero disables the stale pending order sweep.
	PendingOrderTTL           time.Duration `env:"PENDING_ORDER_TTL" envDefault:"24h"`
	PendingOrderSweepSchedule string        `env:"PENDING_ORDER_SWEEP_SCHEDULE" envDefault:"0 * * * * *"`
}

// LoadConfig reads envFile into the process environment when it exists and
// parses the environment into a Config.
func LoadConfig(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var errList []error

	switch c.Notifier {
	case NotifierLog:
	case NotifierKafka:
		if c.KafkaHost == "" {
			errList = append(errList, errors.New("KAFKA_HOST is required when NOTIFIER=kafka"))
		}
	case NotifierStan:
		if c.StanClusterID == "" {
			errList = append(errList, errors.New("STAN_CLUSTER_ID is required when NOTIFIER=stan"))
		}
	default:
		errList = append(errList, fmt.Errorf("NOTIFIER must be one of log, kafka, stan, got %q", c.Notifier))
	}

	if c.NotificationTimeout <= 0 {
		errList = append(errList, errors.New("NOTIFICATION_TIMEOUT must be positive"))
	}
	if c.PendingOrderTTL < 0 {
		errList = append(errList, errors.New("PENDING_ORDER_TTL must not be negative"))
	}

	return errors.Join(errList...)
}

// DSN returns the PostgreSQL connection string.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}
