package ratelimit

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// startRedis runs a throwaway redis, skipping when Docker is unavailable
func startRedis(t *testing.T) *redis.Client {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping redis integration test in short mode")
	}

	ctx := context.Background()
	var container testcontainers.Container
	func() {
		defer func() {
			if r := recover(); r != nil {
				t.Skipf("docker unavailable: %v", r)
			}
		}()
		var err error
		container, err = testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
			ContainerRequest: testcontainers.ContainerRequest{
				Image:        "redis:7-alpine",
				ExposedPorts: []string{"6379/tcp"},
				WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(30 * time.Second),
			},
			Started: true,
		})
		if err != nil {
			t.Skipf("failed to start redis container: %v", err)
		}
	}()
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate redis: %v", err)
		}
	})

	endpoint, err := container.Endpoint(ctx, "")
	require.NoError(t, err)

	rdb, err := NewRedisClient(ctx, fmt.Sprintf("redis://%s/0", endpoint))
	require.NoError(t, err)
	t.Cleanup(func() { _ = rdb.Close() })
	return rdb
}

func TestRedisLimiter_SlidingWindow(t *testing.T) {
	rdb := startRedis(t)
	clock := &fakeClock{t: time.Date(2024, 6, 3, 12, 0, 0, 0, time.UTC)}
	l := NewRedisLimiter(rdb, Config{Limit: 3, Window: time.Minute}).WithClock(clock.Now)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		d, err := l.Allow(ctx, "telegram:1")
		require.NoError(t, err)
		assert.True(t, d.Allowed)
		assert.Equal(t, 2-i, d.Remaining)
		clock.Advance(10 * time.Second)
	}

	d, err := l.Allow(ctx, "telegram:1")
	require.NoError(t, err)
	assert.False(t, d.Allowed)
	assert.Equal(t, 30*time.Second, d.RetryAfter)

	clock.Advance(30 * time.Second)
	d, err = l.Allow(ctx, "telegram:1")
	require.NoError(t, err)
	assert.True(t, d.Allowed)

	ttl, err := rdb.PTTL(ctx, KeyPrefix+"telegram:1").Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))
}

func TestRedisLimiter_SharedAcrossInstances(t *testing.T) {
	rdb := startRedis(t)
	cfg := Config{Limit: 2, Window: time.Minute}
	a := NewRedisLimiter(rdb, cfg)
	b := NewRedisLimiter(rdb, cfg)
	ctx := context.Background()

	d, err := a.Allow(ctx, "discord:7")
	require.NoError(t, err)
	assert.True(t, d.Allowed)
	d, err = b.Allow(ctx, "discord:7")
	require.NoError(t, err)
	assert.True(t, d.Allowed)
	d, err = a.Allow(ctx, "discord:7")
	require.NoError(t, err)
	assert.False(t, d.Allowed)
}
