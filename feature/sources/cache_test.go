package sources

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingLoader is a SnapshotLoader that counts loads.
type countingLoader struct {
	loads int
	err   error
}

func (c *countingLoader) Load(ctx context.Context) (*Snapshots, error) {
	c.loads++
	if c.err != nil {
		return nil, c.err
	}
	return &Snapshots{FetchedAt: time.Now()}, nil
}

// TestCachedLoader_Hit verifies the second load within the TTL is served from
// cache.
func TestCachedLoader_Hit(t *testing.T) {
	inner := &countingLoader{}
	cached := NewCachedLoader(inner, 5*time.Minute)

	first, err := cached.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, inner.loads)

	second, err := cached.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, inner.loads)
	assert.Same(t, first, second)
}

// TestCachedLoader_Expiration verifies an expired cache reloads.
func TestCachedLoader_Expiration(t *testing.T) {
	inner := &countingLoader{}
	cached := NewCachedLoader(inner, 10*time.Millisecond)

	_, err := cached.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, inner.loads)

	time.Sleep(20 * time.Millisecond)

	_, err = cached.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, inner.loads)
}

// TestCachedLoader_ZeroTTL verifies caching is disabled entirely.
func TestCachedLoader_ZeroTTL(t *testing.T) {
	inner := &countingLoader{}
	cached := NewCachedLoader(inner, 0)

	for i := 0; i < 3; i++ {
		_, err := cached.Load(context.Background())
		require.NoError(t, err)
	}
	assert.Equal(t, 3, inner.loads)
}

// TestCachedLoader_Invalidate verifies invalidation forces a reload.
func TestCachedLoader_Invalidate(t *testing.T) {
	inner := &countingLoader{}
	cached := NewCachedLoader(inner, 5*time.Minute)

	_, err := cached.Load(context.Background())
	require.NoError(t, err)

	cached.Invalidate()

	_, err = cached.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, inner.loads)
}

// TestCachedLoader_ErrorNotCached verifies a failed load is not cached.
func TestCachedLoader_ErrorNotCached(t *testing.T) {
	inner := &countingLoader{err: fmt.Errorf("bucket unreachable")}
	cached := NewCachedLoader(inner, 5*time.Minute)

	_, err := cached.Load(context.Background())
	assert.Error(t, err)

	inner.err = nil

	_, err = cached.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, inner.loads)
}
