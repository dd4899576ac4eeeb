package cache

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/sitelens/website-profiler/pkg/interfaces"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetAndGet(t *testing.T) {
	c := New(time.Minute, 100)
	defer c.Close()

	ctx := context.Background()

	err := c.Set(ctx, "https://example.com", []byte(`{"title":"Example"}`), 0)
	require.NoError(t, err)

	value, err := c.Get(ctx, "https://example.com")
	require.NoError(t, err)
	assert.Equal(t, `{"title":"Example"}`, string(value))
}

func TestGetMissing(t *testing.T) {
	c := New(time.Minute, 100)
	defer c.Close()

	value, err := c.Get(context.Background(), "https://nowhere.example")

	assert.ErrorIs(t, err, ErrNotFound)
	assert.Nil(t, value)
}

func TestExpiry(t *testing.T) {
	c := New(time.Minute, 100)
	defer c.Close()

	ctx := context.Background()

	err := c.Set(ctx, "short-lived", []byte("value"), 1)
	require.NoError(t, err)

	// Still present before the TTL elapses
	_, err = c.Get(ctx, "short-lived")
	require.NoError(t, err)

	time.Sleep(1100 * time.Millisecond)

	_, err = c.Get(ctx, "short-lived")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDelete(t *testing.T) {
	c := New(time.Minute, 100)
	defer c.Close()

	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "key", []byte("value"), 0))
	require.NoError(t, c.Delete(ctx, "key"))

	_, err := c.Get(ctx, "key")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteMissingKey(t *testing.T) {
	c := New(time.Minute, 100)
	defer c.Close()

	// Deleting a key that was never set is not an error
	assert.NoError(t, c.Delete(context.Background(), "never-set"))
}

func TestMaxEntriesEviction(t *testing.T) {
	c := New(time.Minute, 3)
	defer c.Close()

	ctx := context.Background()

	for i := 0; i < 5; i++ {
		key := fmt.Sprintf("key-%d", i)
		require.NoError(t, c.Set(ctx, key, []byte("value"), 0))
		// Distinct storage times so eviction order is stable
		time.Sleep(5 * time.Millisecond)
	}

	assert.Equal(t, 3, c.Len())

	// The oldest entries are gone, the newest remain
	_, err := c.Get(ctx, "key-0")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = c.Get(ctx, "key-1")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = c.Get(ctx, "key-4")
	assert.NoError(t, err)
}

func TestOverwrite(t *testing.T) {
	c := New(time.Minute, 100)
	defer c.Close()

	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "key", []byte("first"), 0))
	require.NoError(t, c.Set(ctx, "key", []byte("second"), 0))

	value, err := c.Get(ctx, "key")
	require.NoError(t, err)
	assert.Equal(t, "second", string(value))
	assert.Equal(t, 1, c.Len())
}

func TestCleanupRemovesExpired(t *testing.T) {
	c := New(time.Minute, 100)
	defer c.Close()

	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "expired", []byte("value"), 1))
	require.NoError(t, c.Set(ctx, "fresh", []byte("value"), 0))

	time.Sleep(1100 * time.Millisecond)
	c.cleanup()

	assert.Equal(t, 1, c.Len())
	_, err := c.Get(ctx, "fresh")
	assert.NoError(t, err)
}

func TestConcurrentAccess(t *testing.T) {
	c := New(time.Minute, 1000)
	defer c.Close()

	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				key := fmt.Sprintf("key-%d-%d", id, j)
				_ = c.Set(ctx, key, []byte("value"), 0)
				_, _ = c.Get(ctx, key)
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 1000, c.Len())
}

func TestCloseIsIdempotent(t *testing.T) {
	c := New(time.Minute, 10)
	c.Close()
	c.Close()
}

func TestImplementsCacheInterface(t *testing.T) {
	c := New(time.Minute, 10)
	defer c.Close()

	var _ interfaces.Cache = c
	assert.NotNil(t, c)
}
