// internal/core/ports/database.go
package ports

import "context"

// PoolStats is a snapshot of the database connection pool.
type PoolStats struct {
	Total    int32 `json:"total"`
	Idle     int32 `json:"idle"`
	Acquired int32 `json:"acquired"`
	Max      int32 `json:"max"`
}

// Database is what the health endpoint probes.
type Database interface {
	Ping(ctx context.Context) error
	Stats() PoolStats
}
