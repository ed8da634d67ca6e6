package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"wander/config"
	"wander/internal/domain/constants"
	"wander/internal/domain/entity"
	domainerrors "wander/internal/domain/errors"
	"wander/internal/domain/repository"
	"wander/internal/errors"
	mockrepository "wander/internal/mocks/repository"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

const testActivityID = "2b7c3f0e-8d0a-5b1e-9a3c-1f1d2e3c4b5a"

var fixedNow = time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

func newTestPushHandler(t *testing.T, cfg *config.Config) (*PushHandler, *mockrepository.MockFavoriteEventRepository) {
	t.Helper()

	repo := mockrepository.NewMockFavoriteEventRepository(t)
	h := NewPushHandler(PushHandlerParams{
		Config:    cfg,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		EventRepo: repo,
	})
	h.now = func() time.Time { return fixedNow }

	return h, repo
}

func pushBody(t *testing.T, messageID string, event entity.FavoriteEvent, attributes map[string]string) string {
	t.Helper()

	data, err := json.Marshal(event)
	require.NoError(t, err)

	var msg PubSubMessage
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.MessageID = messageID
	msg.Message.Attributes = attributes
	msg.Subscription = "projects/local/subscriptions/favorite-events"

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(body)
}

func servePush(h *PushHandler, body string, header http.Header) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for key, values := range header {
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}
	rec := httptest.NewRecorder()
	e.POST("/push", h.HandlePush)
	e.ServeHTTP(rec, req)

	return rec
}

func favoriteEvent() entity.FavoriteEvent {
	return entity.FavoriteEvent{
		ActivityID: testActivityID,
		Name:       "history museum",
		City:       "Cupertino",
		State:      "CA",
		Favorite:   true,
		OccurredAt: fixedNow.Add(-time.Minute),
	}
}

func TestPushHandler_RecordsEvent(t *testing.T) {
	h, repo := newTestPushHandler(t, &config.Config{})

	repo.EXPECT().RecordFavoriteEvent(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, record *repository.FavoriteEventRecord) (bool, error) {
			assert.Equal(t, "m-1", record.MessageID)
			assert.Equal(t, "req-attr", record.Event.RequestID, "attribute request id wins")
			assert.Equal(t, testActivityID, record.Event.ActivityID)
			assert.True(t, record.Event.Favorite)
			assert.Equal(t, fixedNow, record.ReceivedAt)

			return true, nil
		}).Once()

	event := favoriteEvent()
	event.RequestID = "req-body"
	rec := servePush(h, pushBody(t, "m-1", event, map[string]string{"request_id": "req-attr"}), nil)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_Outcomes(t *testing.T) {
	tests := []struct {
		name       string
		body       func(t *testing.T) string
		setup      func(repo *mockrepository.MockFavoriteEventRepository)
		wantStatus int
	}{
		{
			name: "redelivery is acknowledged",
			body: func(t *testing.T) string { return pushBody(t, "m-1", favoriteEvent(), nil) },
			setup: func(repo *mockrepository.MockFavoriteEventRepository) {
				repo.EXPECT().RecordFavoriteEvent(mock.Anything, mock.Anything).Return(false, nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "storage failure asks for redelivery",
			body: func(t *testing.T) string { return pushBody(t, "m-1", favoriteEvent(), nil) },
			setup: func(repo *mockrepository.MockFavoriteEventRepository) {
				repo.EXPECT().RecordFavoriteEvent(mock.Anything, mock.Anything).
					Return(false, domainerrors.NewStorageError(errors.New("database is locked"), "record favorite event")).Once()
			},
			wantStatus: http.StatusServiceUnavailable,
		},
		{
			name: "invalid activity id is dropped",
			body: func(t *testing.T) string {
				event := favoriteEvent()
				event.ActivityID = "not-a-uuid"

				return pushBody(t, "m-1", event, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "missing message id is dropped",
			body:       func(t *testing.T) string { return pushBody(t, "", favoriteEvent(), nil) },
			wantStatus: http.StatusOK,
		},
		{
			name:       "malformed envelope",
			body:       func(*testing.T) string { return `{"message":` },
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "data is not base64",
			body:       func(*testing.T) string { return `{"message":{"data":"%%%","messageId":"m-1"}}` },
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "data is not an event",
			body: func(*testing.T) string {
				data := base64.StdEncoding.EncodeToString([]byte("[1,2]"))

				return `{"message":{"data":"` + data + `","messageId":"m-1"}}`
			},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, repo := newTestPushHandler(t, &config.Config{})
			if tt.setup != nil {
				tt.setup(repo)
			}

			rec := servePush(h, tt.body(t), nil)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestPushHandler_VerifiesGoogleTokens(t *testing.T) {
	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle}}
	cfg.Env.Env = constants.EnvProduction

	tests := []struct {
		name       string
		header     http.Header
		payload    *idtoken.Payload
		verifyErr  error
		wantStatus int
	}{
		{
			name:       "missing header",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "not a bearer token",
			header:     http.Header{"Authorization": []string{"Basic abc"}},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "token rejected",
			header:     http.Header{"Authorization": []string{"Bearer abc"}},
			verifyErr:  errors.New("expired"),
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "wrong issuer",
			header:     http.Header{"Authorization": []string{"Bearer abc"}},
			payload:    &idtoken.Payload{Issuer: "example.com"},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "unverified email",
			header:     http.Header{"Authorization": []string{"Bearer abc"}},
			payload:    &idtoken.Payload{Issuer: "accounts.google.com", Claims: map[string]any{"email_verified": false}},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "valid token",
			header:     http.Header{"Authorization": []string{"Bearer abc"}},
			payload:    &idtoken.Payload{Issuer: "https://accounts.google.com", Claims: map[string]any{"email_verified": true}},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, repo := newTestPushHandler(t, cfg)
			require.True(t, h.verifyPushAuth)

			h.verify = func(_ context.Context, token, audience string) (*idtoken.Payload, error) {
				assert.Equal(t, "abc", token)
				assert.Equal(t, "http://example.com/push", audience)

				return tt.payload, tt.verifyErr
			}
			if tt.wantStatus == http.StatusOK {
				repo.EXPECT().RecordFavoriteEvent(mock.Anything, mock.Anything).Return(true, nil).Once()
			}

			rec := servePush(h, pushBody(t, "m-1", favoriteEvent(), nil), tt.header)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestPushHandler_SkipsVerificationInDevelop(t *testing.T) {
	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle}}
	cfg.Env.Env = constants.EnvDevelop

	h, _ := newTestPushHandler(t, cfg)
	assert.False(t, h.verifyPushAuth)
}

func TestPushHandler_RecentEvents(t *testing.T) {
	h, repo := newTestPushHandler(t, &config.Config{})

	repo.EXPECT().FetchRecentFavoriteEvents(mock.Anything, 2).Return([]*repository.FavoriteEventRecord{
		{MessageID: "m-2", Event: favoriteEvent(), ReceivedAt: fixedNow},
	}, nil).Once()

	e := echo.New()
	e.GET("/events/recent", h.RecentEvents)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/events/recent?limit=2", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data []RecentEvent `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Data, 1)
	assert.Equal(t, "m-2", body.Data[0].MessageID)
	assert.Equal(t, testActivityID, body.Data[0].Event.ActivityID)

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/events/recent?limit=zero", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
