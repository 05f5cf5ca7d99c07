// FilePath: internal/cache/cache_test.go
package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/twinops/pulsehub/internal/models"
)

func TestMemoryCacheMissWhenEmpty(t *testing.T) {
	c := NewMemoryCache(2 * time.Minute)

	_, ok := c.Get(context.Background())
	assert.False(t, ok)
}

func TestMemoryCacheHitWhileFresh(t *testing.T) {
	c := NewMemoryCache(2 * time.Minute)
	ctx := context.Background()

	snapshot := models.DashboardSnapshot{SystemHealth: 87.5, TotalDevices: 20}
	c.Put(ctx, snapshot)

	got, ok := c.Get(ctx)
	require.True(t, ok)
	assert.Equal(t, snapshot, got)
}

func TestMemoryCacheStaleAfterTTL(t *testing.T) {
	c := NewMemoryCache(2 * time.Minute)
	ctx := context.Background()

	base := time.Now()
	c.now = func() time.Time { return base }
	c.Put(ctx, models.DashboardSnapshot{TotalDevices: 20})

	c.now = func() time.Time { return base.Add(2*time.Minute - time.Second) }
	_, ok := c.Get(ctx)
	assert.True(t, ok, "entry went stale before the TTL elapsed")

	c.now = func() time.Time { return base.Add(2 * time.Minute) }
	_, ok = c.Get(ctx)
	assert.False(t, ok, "entry still fresh at exactly the TTL")
}

func TestMemoryCachePutReplacesEntry(t *testing.T) {
	c := NewMemoryCache(2 * time.Minute)
	ctx := context.Background()

	c.Put(ctx, models.DashboardSnapshot{TotalDevices: 20})
	c.Put(ctx, models.DashboardSnapshot{TotalDevices: 30})

	got, ok := c.Get(ctx)
	require.True(t, ok)
	assert.Equal(t, 30, got.TotalDevices)
}
