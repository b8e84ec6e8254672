package components

import (
	"context"
	"fmt"
	"log/slog"

	"racing-ticket-desk/internal/infra/db"
	"racing-ticket-desk/internal/infra/migrations"
	"racing-ticket-desk/internal/infra/store/filestore"
	"racing-ticket-desk/internal/infra/store/pgstore"
	"racing-ticket-desk/internal/infra/store/redisstore"
	"racing-ticket-desk/internal/infra/uow"
	"racing-ticket-desk/internal/pkg/config"
	"racing-ticket-desk/internal/usecase"

	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewCustomerStore,
	),
)

// NewCustomerStore opens the backend named by STORE_DRIVER. Connections are
// closed when the app stops.
func NewCustomerStore(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (usecase.CustomerStore, error) {
	switch cfg.Store.Driver {
	case config.StoreDriverPostgres:
		return newPostgresStore(lc, cfg, logger)
	case config.StoreDriverRedis:
		return newRedisStore(lc, cfg, logger)
	case config.StoreDriverFile:
		logger.Info("using file store", "path", cfg.Store.FilePath)
		return filestore.New(cfg.Store.FilePath, logger), nil
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}
}

func newPostgresStore(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (usecase.CustomerStore, error) {
	ctx := context.Background()

	pool, cleanup, err := db.Connect(ctx, cfg.DB)
	if err != nil {
		return nil, err
	}
	if err := migrations.Apply(ctx, pool); err != nil {
		cleanup()
		return nil, fmt.Errorf("apply migrations: %w", err)
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			cleanup()
			return nil
		},
	})

	logger.Info("using postgres store", "host", cfg.DB.Host, "database", cfg.DB.DBName)
	return pgstore.New(uow.NewPostgresUoW(pool, logger), logger), nil
}

func newRedisStore(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (usecase.CustomerStore, error) {
	client := redisstore.NewClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err := client.Ping(context.Background()).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	logger.Info("using redis store", "addr", cfg.Redis.Addr, "key", cfg.Redis.Key)
	return redisstore.New(client, cfg.Redis.Key, logger), nil
}
