// FilePath: internal/cache/cache.go
package cache

import (
	"context"
	"sync"
	"time"

	"github.com/twinops/pulsehub/internal/models"
)

// SnapshotCache holds the most recent dashboard snapshot. Get reports a
// hit only while the entry is younger than the configured TTL; Put
// replaces the entry wholesale.
type SnapshotCache interface {
	Get(ctx context.Context) (models.DashboardSnapshot, bool)
	Put(ctx context.Context, snapshot models.DashboardSnapshot)
}

// MemoryCache is the in-process snapshot cache. The entry lives for the
// lifetime of the process and transitions fresh to stale purely by
// elapsed time; there is no explicit invalidation.
type MemoryCache struct {
	mu         sync.Mutex
	ttl        time.Duration
	entry      *models.DashboardSnapshot
	computedAt time.Time
	now        func() time.Time
}

// NewMemoryCache creates an in-process snapshot cache with the given TTL.
func NewMemoryCache(ttl time.Duration) *MemoryCache {
	return &MemoryCache{
		ttl: ttl,
		now: time.Now,
	}
}

func (c *MemoryCache) Get(ctx context.Context) (models.DashboardSnapshot, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.entry == nil {
		return models.DashboardSnapshot{}, false
	}
	if c.now().Sub(c.computedAt) >= c.ttl {
		return models.DashboardSnapshot{}, false
	}
	return *c.entry, true
}

func (c *MemoryCache) Put(ctx context.Context, snapshot models.DashboardSnapshot) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entry = &snapshot
	c.computedAt = c.now()
}
