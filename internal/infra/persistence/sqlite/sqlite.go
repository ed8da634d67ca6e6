// Package sqlite contains the favorites store implemented with GORM on SQLite.
package sqlite

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"wander/config"
	"wander/internal/domain/lifecycle"
	"wander/internal/errors"
	"wander/internal/infra/persistence/model"

	"go.uber.org/fx"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const (
	dbPoolMonitorInterval       = 5 * time.Second
	dbPoolWarnDurationThreshold = 50 * time.Millisecond
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the favorites database and registers its lifecycle hooks.
func New(params Params) (*gorm.DB, error) {
	db, sqlDB, err := Open(params.Config, params.Logger)
	if err != nil {
		return nil, err
	}

	monitorCtx, cancelMonitor := context.WithCancel(context.Background())

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping favorites store")
			}

			go monitorDBPool(monitorCtx, params.Logger, sqlDB, dbPoolMonitorInterval)

			return nil
		},
		OnStop: func(_ context.Context) error {
			cancelMonitor()

			return sqlDB.Close()
		},
	})

	return db, nil
}

// Open connects to the configured DSN and migrates the schema.
// SQLite allows a single writer, so the pool is capped at one connection;
// this also keeps ":memory:" databases alive across queries.
func Open(cfg *config.Config, logger *slog.Logger) (*gorm.DB, *sql.DB, error) {
	dsn := ":memory:"
	if cfg.Store != nil && cfg.Store.DSN != "" {
		dsn = cfg.Store.DSN
	}

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 newStoreLogger(logger, cfg),
	})
	if err != nil {
		return nil, nil, errors.Wrapf(err, "failed to open favorites store %q", dsn)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to get favorites store sql.DB")
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&model.ActivityModel{}, &model.FavoriteEventModel{}); err != nil {
		_ = sqlDB.Close()

		return nil, nil, errors.Wrap(err, "failed to migrate favorites store")
	}

	return db, sqlDB, nil
}

func monitorDBPool(ctx context.Context, logger *slog.Logger, sqlDB *sql.DB, interval time.Duration) {
	if logger == nil || sqlDB == nil {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	prev := sqlDB.Stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cur := sqlDB.Stats()
			waitDelta := cur.WaitCount - prev.WaitCount
			waitDurationDelta := cur.WaitDuration - prev.WaitDuration

			if waitDelta > 0 {
				attrs := []slog.Attr{
					slog.Int64("waitCountDelta", waitDelta),
					slog.Duration("waitDurationDelta", waitDurationDelta),
					slog.Duration("avgWait", waitDurationDelta/time.Duration(waitDelta)),
					slog.Int("inUseConns", cur.InUse),
					slog.Int64("waitCountTotal", cur.WaitCount),
				}
				if waitDurationDelta >= dbPoolWarnDurationThreshold {
					logger.LogAttrs(ctx, slog.LevelWarn, "Favorites store is contended", attrs...)
				} else {
					logger.LogAttrs(ctx, slog.LevelDebug, "Favorites store wait observed", attrs...)
				}
			}

			prev = cur
		}
	}
}
