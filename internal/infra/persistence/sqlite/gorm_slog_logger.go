package sqlite

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"wander/config"

	"gorm.io/gorm/logger"
)

// SQLite runs in-process, so anything slower than this is worth a warning.
const defaultSlowQueryThreshold = 100 * time.Millisecond

// storeLogger feeds gorm statement traces into the store's slog logger.
// Failed statements carry their storeErrorClass: a lookup miss is not logged,
// a busy database is a warning and anything else is an error.
type storeLogger struct {
	logger        *slog.Logger
	level         logger.LogLevel
	slowThreshold time.Duration
}

func newStoreLogger(baseLogger *slog.Logger, cfg *config.Config) logger.Interface {
	level := logger.Warn
	if cfg != nil && cfg.Env.Debug {
		level = logger.Info
	}

	slowThreshold := defaultSlowQueryThreshold
	if cfg != nil && cfg.Store != nil && cfg.Store.SlowQueryThreshold > 0 {
		slowThreshold = cfg.Store.SlowQueryThreshold
	}

	if baseLogger != nil {
		baseLogger = baseLogger.With(slog.String("component", "favorites_store"))
	}

	return &storeLogger{
		logger:        baseLogger,
		level:         level,
		slowThreshold: slowThreshold,
	}
}

func (l *storeLogger) LogMode(level logger.LogLevel) logger.Interface {
	cloned := *l
	cloned.level = level

	return &cloned
}

func (l *storeLogger) Info(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Info, slog.LevelInfo, msg, args...)
}

func (l *storeLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Warn, slog.LevelWarn, msg, args...)
}

func (l *storeLogger) Error(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Error, slog.LevelError, msg, args...)
}

func (l *storeLogger) printf(ctx context.Context, minLevel logger.LogLevel, level slog.Level, msg string, args ...any) {
	if l.logger == nil || l.level < minLevel {
		return
	}

	l.logger.Log(ctx, level, fmt.Sprintf(msg, args...))
}

func (l *storeLogger) Trace(ctx context.Context, begin time.Time, sqlAndRowsFn func() (string, int64), err error) {
	if l.logger == nil || l.level == logger.Silent {
		return
	}

	elapsed := time.Since(begin)
	class := classifyStoreError(err)

	switch {
	case class == storeErrorNotFound:
		return
	case class != storeErrorNone:
		level, minLevel := slog.LevelError, logger.Error
		if class.transient() {
			level, minLevel = slog.LevelWarn, logger.Warn
		}
		if l.level < minLevel {
			return
		}

		attrs := append(statementAttrs(sqlAndRowsFn, elapsed),
			slog.String("class", string(class)),
			slog.String("error", err.Error()))
		l.logger.LogAttrs(ctx, level, "Store statement failed", attrs...)
	case l.slowThreshold > 0 && elapsed > l.slowThreshold && l.level >= logger.Warn:
		attrs := append(statementAttrs(sqlAndRowsFn, elapsed), slog.Duration("threshold", l.slowThreshold))
		l.logger.LogAttrs(ctx, slog.LevelWarn, "Store statement slow", attrs...)
	case l.level >= logger.Info:
		l.logger.LogAttrs(ctx, slog.LevelDebug, "Store statement", statementAttrs(sqlAndRowsFn, elapsed)...)
	}
}

// statementAttrs names the statement by its leading verb so logs group by operation.
func statementAttrs(sqlAndRowsFn func() (string, int64), elapsed time.Duration) []slog.Attr {
	sql, rows := sqlAndRowsFn()

	verb, _, _ := strings.Cut(strings.TrimSpace(sql), " ")

	return []slog.Attr{
		slog.String("statement", strings.ToUpper(verb)),
		slog.Duration("elapsed", elapsed),
		slog.Int64("rows", rows),
		slog.String("sql", sql),
	}
}
