package sources

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// SnapshotLoader is the loading contract consumed by the audit service.
// Loader and CachedLoader both satisfy it.
type SnapshotLoader interface {
	Load(ctx context.Context) (*Snapshots, error)
}

// CachedLoader wraps a SnapshotLoader with a TTL cache. Snapshot exports
// change on the cadence of the export tooling, not per request, so repeated
// audits can reuse a recent download. Singleflight prevents concurrent audits
// from stampeding the bucket when the cache is cold or expired.
type CachedLoader struct {
	loader SnapshotLoader
	ttl    time.Duration

	mu   sync.RWMutex
	snap *Snapshots
	sf   singleflight.Group
}

// NewCachedLoader wraps loader with the given TTL. A zero TTL disables
// caching entirely; every Load hits storage.
func NewCachedLoader(loader SnapshotLoader, ttl time.Duration) *CachedLoader {
	return &CachedLoader{loader: loader, ttl: ttl}
}

// Load returns cached snapshots when fresh, otherwise downloads new ones.
func (c *CachedLoader) Load(ctx context.Context) (*Snapshots, error) {
	if c.ttl == 0 {
		return c.loader.Load(ctx)
	}

	// Fast path: fresh cache.
	c.mu.RLock()
	snap := c.snap
	c.mu.RUnlock()

	if snap != nil && !c.expired(snap) {
		return snap, nil
	}

	// Slow path: rebuild under singleflight.
	result, err, _ := c.sf.Do("snapshots", func() (interface{}, error) {
		// Double-check after acquiring the flight.
		c.mu.RLock()
		snap := c.snap
		c.mu.RUnlock()

		if snap != nil && !c.expired(snap) {
			return snap, nil
		}

		fresh, err := c.loader.Load(ctx)
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		c.snap = fresh
		c.mu.Unlock()

		return fresh, nil
	})
	if err != nil {
		return nil, err
	}

	return result.(*Snapshots), nil
}

// Invalidate drops the cached snapshots, forcing the next Load to download.
func (c *CachedLoader) Invalidate() {
	c.mu.Lock()
	c.snap = nil
	c.mu.Unlock()
}

func (c *CachedLoader) expired(snap *Snapshots) bool {
	return time.Since(snap.FetchedAt) > c.ttl
}
