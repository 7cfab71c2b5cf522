package repository

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/Stanley42442/OptiSolveLabs/internal/config"
	"github.com/Stanley42442/OptiSolveLabs/internal/service"
	"github.com/Stanley42442/OptiSolveLabs/pkg/database"
)

// Open builds the store selected by cfg.Storage.Driver.
// For postgres it connects with retry and applies the schema. The returned func releases the store.
func Open(ctx context.Context, cfg *config.Config) (service.Store, func(), error) {
	switch cfg.Storage.Driver {
	case config.StorageDriverMemory:
		log.Warn().Msg("using in-memory storage, data is lost on restart")
		return NewMemoryStore(), func() {}, nil

	case config.StorageDriverPostgres:
		dsn, err := cfg.DB.DSN()
		if err != nil {
			return nil, nil, err
		}
		pool, err := database.NewPool(ctx, dsn, cfg.DB.ConnectRetry)
		if err != nil {
			return nil, nil, fmt.Errorf("connect database: %w", err)
		}
		if err := database.Migrate(ctx, pool); err != nil {
			pool.Close()
			return nil, nil, err
		}
		return NewPostgresStore(pool), pool.Close, nil

	default:
		return nil, nil, fmt.Errorf("unsupported storage driver %q", cfg.Storage.Driver)
	}
}
