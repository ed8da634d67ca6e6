package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"wander/config"
	"wander/internal/delivery/api/response"
	deliverycontext "wander/internal/delivery/context"
	"wander/internal/domain/constants"
	"wander/internal/domain/entity"
	"wander/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

const defaultRecentEvents = 50

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// retryableError wraps an error to indicate it should trigger a Pub/Sub retry
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.err)
}

func (e *retryableError) Unwrap() error {
	return e.err
}

func newRetryableError(err error) error {
	return &retryableError{err: err}
}

func isRetryableError(err error) bool {
	var re *retryableError

	return errors.As(err, &re)
}

// tokenVerifier validates the push request's bearer token for the given audience
type tokenVerifier func(ctx context.Context, token, audience string) (*idtoken.Payload, error)

// PushHandler consumes favorite events pushed by the event subscription
type PushHandler struct {
	verifyPushAuth bool
	verify         tokenVerifier
	logger         *slog.Logger
	eventRepo      repository.FavoriteEventRepository
	now            func() time.Time
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config    *config.Config
	Logger    *slog.Logger
	EventRepo repository.FavoriteEventRepository
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	// Google push requests carry an OIDC token outside of local development
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	return &PushHandler{
		verifyPushAuth: verifyPushAuth,
		verify:         idtoken.Validate,
		logger:         params.Logger,
		eventRepo:      params.EventRepo,
		now:            time.Now,
	}
}

// HandlePush records one pushed favorite event.
// 503 asks the subscription to redeliver; any other outcome acknowledges the message.
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verifyPushAuth {
		if err := h.verifyPubSubToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	var event entity.FavoriteEvent
	if err := json.Unmarshal(data, &event); err != nil {
		h.logger.Error("[Worker] Failed to parse favorite event", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	requestID := h.extractRequestID(ctx, &pushMsg, &event)
	reqLogger := h.logger.With(slog.String("request_id", requestID))
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)
	event.RequestID = requestID

	reqLogger.Info("[Worker] Processing favorite event",
		slog.String("message_id", pushMsg.Message.MessageID),
		slog.String("activity_id", event.ActivityID),
		slog.Bool("favorite", event.Favorite),
	)

	recorded, err := h.recordEvent(ctx, pushMsg.Message.MessageID, &event)
	if err != nil {
		reqLogger.Error("[Worker] Failed to record favorite event",
			slog.String("message_id", pushMsg.Message.MessageID),
			slog.Any("error", err),
			slog.Bool("retryable", isRetryableError(err)),
		)
		if isRetryableError(err) {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	if !recorded {
		reqLogger.Info("[Worker] Ignored redelivered favorite event",
			slog.String("message_id", pushMsg.Message.MessageID),
		)
	}

	return c.NoContent(http.StatusOK)
}

// RecentEvents lists the newest recorded favorite events
func (h *PushHandler) RecentEvents(c echo.Context) error {
	limit := defaultRecentEvents
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			return response.BadRequest(c, "INVALID_LIMIT", "limit must be a positive integer")
		}
		limit = parsed
	}

	records, err := h.eventRepo.FetchRecentFavoriteEvents(c.Request().Context(), limit)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toRecentEvents(records))
}

// RecentEvent is the JSON view of a recorded favorite event
type RecentEvent struct {
	MessageID  string               `json:"message_id"`
	Event      entity.FavoriteEvent `json:"event"`
	ReceivedAt time.Time            `json:"received_at"`
}

func toRecentEvents(records []*repository.FavoriteEventRecord) []RecentEvent {
	events := make([]RecentEvent, 0, len(records))
	for _, record := range records {
		events = append(events, RecentEvent{
			MessageID:  record.MessageID,
			Event:      record.Event,
			ReceivedAt: record.ReceivedAt,
		})
	}

	return events
}

// extractRequestID extracts request_id from message attributes, event, or generates a new one
func (h *PushHandler) extractRequestID(ctx context.Context, pushMsg *PubSubMessage, event *entity.FavoriteEvent) string {
	if requestID, ok := pushMsg.Message.Attributes["request_id"]; ok && requestID != "" {
		return requestID
	}

	if event.RequestID != "" {
		return event.RequestID
	}

	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.NewString()
}

// recordEvent validates the event and appends it to the log
func (h *PushHandler) recordEvent(ctx context.Context, messageID string, event *entity.FavoriteEvent) (bool, error) {
	if strings.TrimSpace(messageID) == "" {
		return false, errors.New("push message has no message id")
	}
	if _, err := uuid.Parse(event.ActivityID); err != nil {
		return false, errors.Wrapf(err, "invalid activity id %q", event.ActivityID)
	}

	recorded, err := h.eventRepo.RecordFavoriteEvent(ctx, &repository.FavoriteEventRecord{
		MessageID:  messageID,
		Event:      *event,
		ReceivedAt: h.now(),
	})
	if err != nil {
		return false, newRetryableError(err)
	}

	return recorded, nil
}

// verifyPubSubToken verifies the JWT token from Google Pub/Sub push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func (h *PushHandler) verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	// The audience is the URL of this endpoint
	scheme := "https"
	if req.TLS == nil {
		scheme = "http"
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	payload, err := h.verify(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
