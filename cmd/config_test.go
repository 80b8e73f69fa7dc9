package cmd

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))

	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, NotifierLog, cfg.Notifier)
	assert.Equal(t, 5*time.Second, cfg.NotificationTimeout)
	assert.Equal(t, 24*time.Hour, cfg.PendingOrderTTL)
	assert.Equal(t, "0 * * * * *", cfg.PendingOrderSweepSchedule)
}

func TestLoadConfig_ReadsEnvFileAndEnvironment(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("DB_HOST=db.internal\nPENDING_ORDER_TTL=0\n"), 0o600))
	t.Cleanup(func() {
		_ = os.Unsetenv("DB_HOST")
		_ = os.Unsetenv("PENDING_ORDER_TTL")
	})
	t.Setenv("NOTIFIER", "kafka")
	t.Setenv("KAFKA_HOST", "kafka:9092")

	cfg, err := LoadConfig(envFile)

	require.NoError(t, err)
	assert.Equal(t, "db.internal", cfg.DBHost)
	assert.Zero(t, cfg.PendingOrderTTL)
	assert.Equal(t, NotifierKafka, cfg.Notifier)
	assert.Equal(t, "kafka:9092", cfg.KafkaHost)
}

func TestConfig_Validate(t *testing.T) {
	valid := Config{Notifier: NotifierLog, NotificationTimeout: time.Second}

	testCases := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid", func(*Config) {}, ""},
		{"unknown notifier", func(c *Config) { c.Notifier = "smtp" }, "NOTIFIER must be one of"},
		{"kafka without host", func(c *Config) { c.Notifier = NotifierKafka }, "KAFKA_HOST is required"},
		{"stan without cluster", func(c *Config) { c.Notifier = NotifierStan }, "STAN_CLUSTER_ID is required"},
		{"zero timeout", func(c *Config) { c.NotificationTimeout = 0 }, "NOTIFICATION_TIMEOUT"},
		{"negative ttl", func(c *Config) { c.PendingOrderTTL = -time.Minute }, "PENDING_ORDER_TTL"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := valid
			tc.mutate(&cfg)

			err := cfg.Validate()
			if tc.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.ErrorContains(t, err, tc.wantErr)
		})
	}
}

func TestConfig_DSN(t *testing.T) {
	cfg := Config{DBHost: "db", DBPort: "5432", DBUser: "u", DBPassword: "p", DBName: "retail", DBSslMode: "disable"}

	assert.Equal(t, "host=db port=5432 user=u password=p dbname=retail sslmode=disable", cfg.DSN())
}
