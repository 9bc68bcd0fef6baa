package kvstore

import (
	"context"
	"fmt"
	"io"

	"github.com/noah-isme/teacher-planner-api/pkg/cache"
	"github.com/noah-isme/teacher-planner-api/pkg/config"
	"github.com/noah-isme/teacher-planner-api/pkg/database"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Open builds the store selected by cfg.Store.Driver. The returned closer
// releases any connection the driver holds.
func Open(ctx context.Context, cfg *config.Config) (Store, io.Closer, error) {
	switch cfg.Store.Driver {
	case "", config.StoreDriverFile:
		store, err := NewFileStore(cfg.Store.Dir)
		if err != nil {
			return nil, nil, err
		}
		return store, nopCloser{}, nil
	case config.StoreDriverMemory:
		return NewMemoryStore(nil), nopCloser{}, nil
	case config.StoreDriverSQLite:
		store, err := NewSQLiteStore(cfg.Store.SQLitePath, cfg.Store.Table)
		if err != nil {
			return nil, nil, err
		}
		return store, store, nil
	case config.StoreDriverRedis:
		client, err := cache.NewRedis(ctx, cfg.Redis)
		if err != nil {
			return nil, nil, err
		}
		store := NewRedisStore(client, cfg.Store.KeyPrefix)
		return store, store, nil
	case config.StoreDriverPostgres:
		db, err := database.NewPostgres(ctx, cfg.Database)
		if err != nil {
			return nil, nil, err
		}
		store, err := NewPostgresStore(db, cfg.Store.Table)
		if err != nil {
			_ = db.Close()
			return nil, nil, err
		}
		if err := store.EnsureSchema(ctx); err != nil {
			_ = db.Close()
			return nil, nil, err
		}
		return store, store, nil
	default:
		return nil, nil, fmt.Errorf("kvstore: unknown driver %q", cfg.Store.Driver)
	}
}
