package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"wander/config"
	"wander/internal/domain/constants"
	"wander/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newFavoriteEvent() *entity.FavoriteEvent {
	return &entity.FavoriteEvent{
		RequestID:  "req-1",
		ActivityID: "0b8f6a52-9a57-5d0e-8c3e-2f1f9a1c0d11",
		Name:       "history museum",
		City:       "Cupertino",
		State:      "CA",
		Favorite:   true,
		OccurredAt: time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC),
	}
}

func TestLocalHTTPPublisher_PublishFavoriteEvent(t *testing.T) {
	var pushed PushMessage
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "req-1", r.Header.Get("X-Request-Id"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&pushed))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, newDiscardLogger())
	event := newFavoriteEvent()
	require.NoError(t, publisher.PublishFavoriteEvent(context.Background(), event))

	assert.Equal(t, localSubscription, pushed.Subscription)
	assert.NotEmpty(t, pushed.Message.MessageID)
	assert.Equal(t, map[string]string{
		"activity_id": event.ActivityID,
		"action":      "added",
		"request_id":  "req-1",
	}, pushed.Message.Attributes)

	data, err := base64.StdEncoding.DecodeString(pushed.Message.Data)
	require.NoError(t, err)

	var decoded entity.FavoriteEvent
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, *event, decoded)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, newDiscardLogger())
	err := publisher.PublishFavoriteEvent(context.Background(), newFavoriteEvent())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

func TestEventAttributes_Removed(t *testing.T) {
	event := newFavoriteEvent()
	event.Favorite = false
	event.RequestID = ""

	assert.Equal(t, map[string]string{
		"activity_id": event.ActivityID,
		"action":      "removed",
	}, eventAttributes(event))
}

func TestNewEventPublisher(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *config.PubSubConfig
		wantErr bool
		noop    bool
	}{
		{name: "not configured", cfg: nil, noop: true},
		{name: "empty provider", cfg: &config.PubSubConfig{}, noop: true},
		{name: "local", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderLocal, LocalEndpoint: "http://localhost:9999/push"}},
		{name: "local without endpoint", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderLocal}, wantErr: true},
		{name: "google without project", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle, TopicID: "t"}, wantErr: true},
		{name: "google without topic", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle, ProjectID: "p"}, wantErr: true},
		{name: "unknown provider", cfg: &config.PubSubConfig{Provider: "kafka"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			publisher, err := NewEventPublisher(PublisherParams{
				Lc:     fxtest.NewLifecycle(t),
				Ctx:    context.Background(),
				Config: &config.Config{PubSub: tt.cfg},
				Logger: newDiscardLogger(),
			})
			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			_, isNoop := publisher.(*noopPublisher)
			assert.Equal(t, tt.noop, isNoop)
			if isNoop {
				assert.NoError(t, publisher.PublishFavoriteEvent(context.Background(), newFavoriteEvent()))
			}
		})
	}
}
