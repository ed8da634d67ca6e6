package handler

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"sync/atomic"
	"time"

	"wander/internal/delivery/api/response"
	deliverycontext "wander/internal/delivery/context"
	domainerrors "wander/internal/domain/errors"
	"wander/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const defaultHeartbeatInterval = 15 * time.Second

// StreamHandlerParams holds dependencies for StreamHandler, injected by Fx.
type StreamHandlerParams struct {
	fx.In

	DiscoveryUC usecase.DiscoveryUsecase
	Logger      *slog.Logger
}

// StreamHandler serves the UI message stream as server-sent events.
// The stream has one consumer at a time.
type StreamHandler struct {
	discoveryUC usecase.DiscoveryUsecase
	logger      *slog.Logger
	busy        atomic.Bool
	heartbeat   time.Duration
	sequence    atomic.Uint64
}

// NewStreamHandler is the constructor for StreamHandler
func NewStreamHandler(params StreamHandlerParams) *StreamHandler {
	return &StreamHandler{
		discoveryUC: params.DiscoveryUC,
		logger:      params.Logger,
		heartbeat:   defaultHeartbeatInterval,
	}
}

// StreamMessages writes each message as an SSE event named after its kind
// until the client disconnects or the stream closes.
func (h *StreamHandler) StreamMessages(c echo.Context) error {
	if !h.busy.CompareAndSwap(false, true) {
		return response.HandleAppError(c, domainerrors.ErrStreamBusy)
	}
	defer h.busy.Store(false)

	logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger)
	ctx := c.Request().Context()

	res := c.Response()
	res.Header().Set(echo.HeaderContentType, "text/event-stream")
	res.Header().Set(echo.HeaderCacheControl, "no-cache")
	res.Header().Set(echo.HeaderConnection, "keep-alive")
	res.Header().Set("X-Accel-Buffering", "no")
	res.WriteHeader(http.StatusOK)
	res.Flush()

	logger.Info("Message stream consumer connected")
	defer logger.Info("Message stream consumer disconnected")

	ticker := time.NewTicker(h.heartbeat)
	defer ticker.Stop()

	messages := h.discoveryUC.Messages()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if _, err := fmt.Fprint(res, ": ping\n\n"); err != nil {
				return nil
			}
			res.Flush()
		case message, ok := <-messages:
			if !ok {
				_, _ = fmt.Fprint(res, "event: closed\ndata: {}\n\n")
				res.Flush()

				return nil
			}

			payload, err := json.Marshal(message)
			if err != nil {
				logger.Error("Failed to encode message", slog.String("kind", string(message.Kind)), slog.Any("error", err))

				continue
			}

			id := h.sequence.Add(1)
			if _, err := fmt.Fprintf(res, "id: %d\nevent: %s\ndata: %s\n\n", id, message.Kind, payload); err != nil {
				return nil
			}
			res.Flush()
		}
	}
}
