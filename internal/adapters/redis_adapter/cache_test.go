package redis_a_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	redis_a "github.com/alsaqri/phoneshop/internal/adapters/redis_adapter"
	"github.com/alsaqri/phoneshop/internal/core/domain"
	"github.com/alsaqri/phoneshop/test/helpers"
)

func newCache(t *testing.T) (*redis_a.Cache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return redis_a.NewCache(client, 5*time.Minute, helpers.TestLogger()), mr
}

func TestCache_StoreAndLoad(t *testing.T) {
	ctx := context.Background()
	cache, mr := newCache(t)

	category := domain.AccessoryCategory{ID: 1, Name: "chargers", ArabicName: "شواحن"}
	require.NoError(t, cache.Store(ctx, "ref:categories", []domain.AccessoryCategory{category}, 0))

	var got []domain.AccessoryCategory
	require.NoError(t, cache.Load(ctx, "ref:categories", &got))
	assert.Equal(t, []domain.AccessoryCategory{category}, got)
	assert.Equal(t, 5*time.Minute, mr.TTL("ref:categories"))

	require.NoError(t, cache.Store(ctx, "short", "value", 100*time.Millisecond))
	mr.FastForward(200 * time.Millisecond)

	var s string
	assert.ErrorIs(t, cache.Load(ctx, "short", &s), redis_a.ErrCacheMiss)
}

func TestCache_Remember(t *testing.T) {
	tests := []struct {
		name      string
		setup     func(t *testing.T, mr *miniredis.Miniredis)
		load      func(calls *int32) (interface{}, error)
		want      map[string]int
		wantErr   string
		wantCalls int32
		cached    bool
	}{
		{
			name: "miss_loads_and_stores",
			load: func(calls *int32) (interface{}, error) {
				atomic.AddInt32(calls, 1)
				return map[string]int{"phone_units": 4}, nil
			},
			want:      map[string]int{"phone_units": 4},
			wantCalls: 1,
			cached:    true,
		},
		{
			name: "hit_skips_load",
			setup: func(t *testing.T, mr *miniredis.Miniredis) {
				require.NoError(t, mr.Set("report:dashboard", `{"phone_units":9}`))
			},
			load: func(calls *int32) (interface{}, error) {
				atomic.AddInt32(calls, 1)
				return nil, nil
			},
			want:      map[string]int{"phone_units": 9},
			wantCalls: 0,
			cached:    true,
		},
		{
			name: "load_error_not_cached",
			load: func(calls *int32) (interface{}, error) {
				atomic.AddInt32(calls, 1)
				return nil, errors.New("database down")
			},
			wantErr:   "database down",
			wantCalls: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			cache, mr := newCache(t)
			if tt.setup != nil {
				tt.setup(t, mr)
			}

			var calls int32
			var got map[string]int
			err := cache.Remember(ctx, "report:dashboard", time.Minute, &got, func(context.Context) (interface{}, error) {
				return tt.load(&calls)
			})

			assert.Equal(t, tt.wantCalls, calls)
			assert.Equal(t, tt.cached, mr.Exists("report:dashboard"))
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCache_Remember_RedisDown(t *testing.T) {
	cache, mr := newCache(t)
	mr.Close()

	var dest string
	err := cache.Remember(context.Background(), "ref:phone-types", time.Minute, &dest, func(context.Context) (interface{}, error) {
		return "from source", nil
	})

	require.NoError(t, err)
	assert.Equal(t, "from source", dest)
}

func TestCache_Remember_Concurrent(t *testing.T) {
	cache, _ := newCache(t)

	release := make(chan struct{})
	var calls int32
	load := func(context.Context) (interface{}, error) {
		atomic.AddInt32(&calls, 1)
		<-release
		return 42, nil
	}

	var wg sync.WaitGroup
	results := make([]int, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			assert.NoError(t, cache.Remember(context.Background(), "report:inventory-summary", 0, &results[i], load))
		}(i)
	}

	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.LessOrEqual(t, atomic.LoadInt32(&calls), int32(8))
	for _, r := range results {
		assert.Equal(t, 42, r)
	}
}

func TestCache_Invalidate(t *testing.T) {
	ctx := context.Background()
	cache, mr := newCache(t)

	for _, key := range []string{"report:dashboard", "report:inventory-summary", "ref:categories", "ref:phone-types:apple", "reserve:barcode:ACC1"} {
		require.NoError(t, mr.Set(key, "1"))
	}

	require.NoError(t, cache.Invalidate(ctx, "report:*", "ref:categories"))
	require.NoError(t, cache.Invalidate(ctx, "nothing:*"))
	require.NoError(t, cache.Invalidate(ctx))

	assert.False(t, mr.Exists("report:dashboard"))
	assert.False(t, mr.Exists("report:inventory-summary"))
	assert.False(t, mr.Exists("ref:categories"))
	assert.True(t, mr.Exists("ref:phone-types:apple"))
	assert.True(t, mr.Exists("reserve:barcode:ACC1"))
}

func TestCache_Reserve(t *testing.T) {
	ctx := context.Background()
	cache, mr := newCache(t)

	ok, err := cache.Reserve(ctx, "reserve:invoice:INV-1", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = cache.Reserve(ctx, "reserve:invoice:INV-1", time.Minute)
	require.NoError(t, err)
	assert.False(t, ok)

	mr.FastForward(2 * time.Minute)

	ok, err = cache.Reserve(ctx, "reserve:invoice:INV-1", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestCache_Count(t *testing.T) {
	ctx := context.Background()
	cache, _ := newCache(t)

	n, err := cache.Count(ctx, "counter:phone-number-resets")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	n, err = cache.Count(ctx, "counter:phone-number-resets")
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}

func TestCache_Ping(t *testing.T) {
	cache, mr := newCache(t)
	require.NoError(t, cache.Ping(context.Background()))

	mr.Close()
	assert.Error(t, cache.Ping(context.Background()))
}
