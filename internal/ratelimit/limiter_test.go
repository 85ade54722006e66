package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"feedback_dashboard/internal/config"
)

func TestDisabledLimiterAllowsEverything(t *testing.T) {
	l := New(&config.Config{})
	require.Nil(t, l)
	for i := 0; i < 100; i++ {
		require.True(t, l.Allow("1.2.3.4"))
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	l.Run(ctx)
}

func TestBurstThenReject(t *testing.T) {
	l := New(&config.Config{SubmitRatePerSecond: 1, SubmitRateBurst: 2})
	now := time.Unix(1_700_000_000, 0)
	l.now = func() time.Time { return now }

	require.True(t, l.Allow("a"))
	require.True(t, l.Allow("a"))
	require.False(t, l.Allow("a"))
	require.True(t, l.Allow("b"), "keys have separate buckets")

	now = now.Add(time.Second)
	require.True(t, l.Allow("a"))
}

func TestCleanupEvictsIdleKeys(t *testing.T) {
	l := New(&config.Config{SubmitRatePerSecond: 1, SubmitRateBurst: 1})
	now := time.Unix(1_700_000_000, 0)
	l.now = func() time.Time { return now }

	require.True(t, l.Allow("a"))
	now = now.Add(time.Minute)
	require.True(t, l.Allow("b"))

	now = now.Add(l.idleTTL - 30*time.Second)
	l.cleanup()

	l.mu.Lock()
	defer l.mu.Unlock()
	require.NotContains(t, l.entries, "a")
	require.Contains(t, l.entries, "b")
}
