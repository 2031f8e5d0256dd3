// internal/core/ports/cache.go
package ports

import (
	"context"
	"time"
)

// Loader produces the value cached under a key on a miss.
type Loader func(ctx context.Context) (interface{}, error)

// Cache holds report and reference read models, identifier reservations
// and operational counters.
type Cache interface {
	// Remember decodes the cached value for key into dest, running load and
	// caching its result on a miss. ttl <= 0 uses the cache default.
	Remember(ctx context.Context, key string, ttl time.Duration, dest interface{}, load Loader) error

	// Invalidate drops keys; a pattern containing '*' is matched by scan.
	Invalidate(ctx context.Context, patterns ...string) error

	// Reserve claims key for ttl and reports whether this caller won it.
	Reserve(ctx context.Context, key string, ttl time.Duration) (bool, error)

	Count(ctx context.Context, key string) (int64, error)
	Ping(ctx context.Context) error
}
