package middleware

import (
	"log/slog"
	"time"

	"wander/config"
	deliverycontext "wander/internal/delivery/context"
	"wander/internal/errors"

	"github.com/labstack/echo/v4"
)

// LoggerMiddleware logs every request in debug mode and failed requests otherwise
type LoggerMiddleware struct {
	logger *slog.Logger
	debug  bool
}

// NewLoggerMiddleware creates a new logger middleware
func NewLoggerMiddleware(logger *slog.Logger, config *config.Config) *LoggerMiddleware {
	return &LoggerMiddleware{
		logger: logger,
		debug:  config.Env.Debug,
	}
}

// Handle processes request logging
func (m *LoggerMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)
		m.logRequest(c, start, err)

		return err
	}
}

func (m *LoggerMiddleware) logRequest(c echo.Context, start time.Time, err error) {
	req := c.Request()
	res := c.Response()

	status := res.Status
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		status = httpErr.Code
	}

	level := slog.LevelDebug
	switch {
	case status >= 500 || (err != nil && status < 400):
		level = slog.LevelError
	case status >= 400:
		level = slog.LevelWarn
	case m.debug:
		level = slog.LevelInfo
	}

	fields := []slog.Attr{
		slog.String("request_id", deliverycontext.GetRequestID(c)),
		slog.String("method", req.Method),
		slog.String("uri", req.URL.Path),
		slog.Int("status", status),
		slog.Duration("latency", time.Since(start)),
		slog.String("remote_ip", c.RealIP()),
	}
	if len(req.URL.RawQuery) > 0 {
		fields = append(fields, slog.String("query", req.URL.RawQuery))
	}
	if err != nil {
		fields = append(fields, slog.Any("error", err))
	}

	m.logger.LogAttrs(req.Context(), level, "HTTP Request", fields...)
}
