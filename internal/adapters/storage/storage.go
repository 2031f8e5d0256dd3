// internal/adapters/storage/storage.go
package storage

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/alsaqri/phoneshop/internal/core/ports"
	"github.com/alsaqri/phoneshop/internal/pkg/config"
)

// New builds the blob storage selected by cfg.Driver.
func New(ctx context.Context, cfg config.StorageConfig, logger *slog.Logger) (ports.BlobStorage, error) {
	switch cfg.Driver {
	case "s3":
		return NewObjectStore(ctx, cfg, logger)
	case "local", "":
		return NewLocalStorage(cfg.LocalPath, cfg.LocalBaseURL, logger)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}
