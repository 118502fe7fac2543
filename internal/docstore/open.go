package docstore

import (
	"context"
	"fmt"

	"myhealth/rehab-api/internal/config"
)

// Open builds the backend selected by cfg.Store.Backend.
func Open(ctx context.Context, cfg config.Config) (Store, error) {
	switch cfg.Store.Backend {
	case config.BackendFile, "":
		fs, err := NewFileStore(cfg.Store.DataDir)
		if err != nil {
			return nil, err
		}
		return fs, nil
	case config.BackendMemory:
		return NewMemoryStore(), nil
	case config.BackendMongo:
		ms, err := ConnectMongo(cfg.Database.URI, cfg.Database.Name)
		if err != nil {
			return nil, fmt.Errorf("connect mongo: %w", err)
		}
		return ms, nil
	case config.BackendRedis:
		rs, err := ConnectRedis(ctx, RedisOptions{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			Prefix:   cfg.Redis.Prefix,
		})
		if err != nil {
			return nil, err
		}
		return rs, nil
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.Store.Backend)
	}
}
