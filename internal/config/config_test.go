package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewDefaults(t *testing.T) {
	for _, key := range []string{"HTTP_ADDR", "PORT", "ADMIN_TOKEN", "MYSQL_DSN", "RABBITMQ_URL", "NOTIFY_WORKERS", "SUBMIT_RATE_PER_SECOND"} {
		t.Setenv(key, "")
	}

	cfg := New()
	require.Equal(t, ":8080", cfg.HTTPAddr)
	require.Equal(t, "secret-admin-token", cfg.AdminToken)
	require.Empty(t, cfg.MySQLDSN)
	require.Empty(t, cfg.RabbitMQURL)
	require.Equal(t, 2, cfg.NotifyWorkers)
	require.Equal(t, 5*time.Second, cfg.NotifyTimeout)
	require.Zero(t, cfg.SubmitRatePerSecond)
}

func TestNewFromEnv(t *testing.T) {
	t.Setenv("HTTP_ADDR", "")
	t.Setenv("PORT", "9090")
	t.Setenv("ADMIN_TOKEN", "rotated")
	t.Setenv("NOTIFY_WORKERS", "4")
	t.Setenv("NOTIFY_QUEUE_SIZE", "not-a-number")
	t.Setenv("NOTIFY_TIMEOUT_SECONDS", "2")
	t.Setenv("SUBMIT_RATE_PER_SECOND", "0.5")
	t.Setenv("SUBMIT_RATE_BURST", "3")
	t.Setenv("RABBITMQ_PUBLISH_PREFIX", "fb")

	cfg := New()
	require.Equal(t, ":9090", cfg.HTTPAddr)
	require.Equal(t, "rotated", cfg.AdminToken)
	require.Equal(t, 4, cfg.NotifyWorkers)
	require.Equal(t, 256, cfg.NotifyQueueSize)
	require.Equal(t, 2*time.Second, cfg.NotifyTimeout)
	require.Equal(t, 0.5, cfg.SubmitRatePerSecond)
	require.Equal(t, 3, cfg.SubmitRateBurst)
	require.Equal(t, "fb", cfg.RabbitPublishPrefix)
}
