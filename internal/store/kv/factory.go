package kv

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-privacy-node/internal/config"
	"github.com/MKhiriev/go-privacy-node/internal/logger"
)

// New opens the engine selected by cfg.
func New(ctx context.Context, cfg config.Storage, log *logger.Logger) (Store, error) {
	switch cfg.Engine {
	case config.EngineMemory, "":
		log.Warn().Str("func", "kv.New").Msg("using in-memory storage, nothing survives a restart")
		return NewMemoryStore(), nil
	case config.EngineBadger:
		return NewBadgerStore(cfg.Path, log)
	case config.EngineSQLite:
		return NewSQLiteStore(ctx, cfg.Path, log)
	case config.EnginePostgres:
		return NewPostgresStore(ctx, cfg.DSN, log)
	case config.EngineRedis:
		return NewRedisStore(ctx, cfg.DSN, log)
	default:
		return nil, fmt.Errorf("unknown storage engine %q", cfg.Engine)
	}
}
