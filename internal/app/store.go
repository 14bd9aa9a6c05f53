package app

import (
	"context"
	"fmt"

	"github.com/mmynk/aidledger/internal/config"
	"github.com/mmynk/aidledger/internal/storage"
	"github.com/mmynk/aidledger/internal/storage/postgres"
	"github.com/mmynk/aidledger/internal/storage/sqlite"
)

// OpenStore opens the store selected by cfg.Driver.
func OpenStore(ctx context.Context, cfg config.DatabaseConfig) (storage.Store, error) {
	switch cfg.Driver {
	case config.DriverSQLite, "":
		store, err := sqlite.New(cfg.Path)
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite store: %w", err)
		}
		return store, nil
	case config.DriverPostgres:
		store, err := postgres.New(ctx, cfg.URL)
		if err != nil {
			return nil, fmt.Errorf("failed to open postgres store: %w", err)
		}
		return store, nil
	}
	return nil, fmt.Errorf("unknown database driver %q", cfg.Driver)
}
