package api

import (
	"bufio"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"wander/config"
	"wander/internal/delivery/api/response"
	"wander/internal/delivery/api/router"
	"wander/internal/delivery/api/router/handler"
	"wander/internal/domain/entity"
	domainerrors "wander/internal/domain/errors"
	"wander/internal/infra/location"
	mockusecase "wander/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type apiFixture struct {
	echo      *echo.Echo
	discovery *mockusecase.MockDiscoveryUsecase
	source    *location.PushSource
}

func newAPIFixture(t *testing.T) *apiFixture {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "10KB"

	discovery := mockusecase.NewMockDiscoveryUsecase(t)
	source := location.NewPushSource(4, logger)

	e := NewEcho(cfg, logger, router.RouterParams{
		DiscoveryHandler: handler.NewDiscoveryHandler(handler.DiscoveryHandlerParams{DiscoveryUC: discovery, Logger: logger}),
		StreamHandler:    handler.NewStreamHandler(handler.StreamHandlerParams{DiscoveryUC: discovery, Logger: logger}),
		LocationHandler:  handler.NewLocationHandler(handler.LocationHandlerParams{Source: source, Logger: logger}),
	})

	return &apiFixture{echo: e, discovery: discovery, source: source}
}

func (f *apiFixture) do(method, target, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	f.echo.ServeHTTP(rec, req)

	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) response.ErrorInfo {
	t.Helper()

	var body response.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Error)
	require.NotNil(t, body.Meta)
	assert.NotEmpty(t, body.Meta.RequestID)

	return *body.Error
}

func TestAPI_Health(t *testing.T) {
	f := newAPIFixture(t)

	rec := f.do(http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
}

func TestAPI_SearchByText(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setup      func(f *apiFixture)
		wantStatus int
		wantCode   string
	}{
		{
			name: "accepted",
			body: `{"query": "Cupertino, CA"}`,
			setup: func(f *apiFixture) {
				f.discovery.EXPECT().SearchByText("Cupertino, CA").Return(nil).Once()
			},
			wantStatus: http.StatusAccepted,
		},
		{
			name: "invalid query",
			body: `{"query": "Cupertino"}`,
			setup: func(f *apiFixture) {
				f.discovery.EXPECT().SearchByText("Cupertino").
					Return(domainerrors.ErrInvalidQuery.WithDetails("expected \"city, state\"")).Once()
			},
			wantStatus: http.StatusBadRequest,
			wantCode:   "INVALID_QUERY",
		},
		{
			name:       "missing query",
			body:       `{}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_FAILED",
		},
		{
			name:       "malformed body",
			body:       `{"query":`,
			wantStatus: http.StatusBadRequest,
			wantCode:   "INVALID_INPUT",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newAPIFixture(t)
			if tt.setup != nil {
				tt.setup(f)
			}

			rec := f.do(http.MethodPost, "/api/v1/search/text", tt.body)
			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, decodeError(t, rec).Code)
			}
		})
	}
}

func TestAPI_FireAndForgetCommands(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		name   string
		method string
		target string
		setup  func(f *apiFixture)
	}{
		{name: "current location", method: http.MethodPost, target: "/api/v1/search/current-location", setup: func(f *apiFixture) {
			f.discovery.EXPECT().SearchByCurrentLocation().Return().Once()
		}},
		{name: "cancel", method: http.MethodPost, target: "/api/v1/search/cancel", setup: func(f *apiFixture) {
			f.discovery.EXPECT().CancelLoading().Return().Once()
		}},
		{name: "select", method: http.MethodPost, target: "/api/v1/activities/" + id.String() + "/select", setup: func(f *apiFixture) {
			f.discovery.EXPECT().SelectActivity(id).Return().Once()
		}},
		{name: "map", method: http.MethodPost, target: "/api/v1/map/load", setup: func(f *apiFixture) {
			f.discovery.EXPECT().LoadMapItems().Return().Once()
		}},
		{name: "load favorites", method: http.MethodPost, target: "/api/v1/favorites/load", setup: func(f *apiFixture) {
			f.discovery.EXPECT().LoadFavorites(mock.Anything).Return(nil).Once()
		}},
		{name: "clear favorites", method: http.MethodDelete, target: "/api/v1/favorites", setup: func(f *apiFixture) {
			f.discovery.EXPECT().ClearFavorites(mock.Anything).Return(nil).Once()
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newAPIFixture(t)
			tt.setup(f)

			rec := f.do(tt.method, tt.target, "")
			assert.Equal(t, http.StatusAccepted, rec.Code)
			assert.Contains(t, rec.Body.String(), `"status":"accepted"`)
		})
	}
}

func TestAPI_SelectActivity_InvalidID(t *testing.T) {
	f := newAPIFixture(t)

	rec := f.do(http.MethodPost, "/api/v1/activities/not-a-uuid/select", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_ACTIVITY_ID", decodeError(t, rec).Code)
}

func TestAPI_SetFavorite(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		name       string
		body       string
		setup      func(f *apiFixture)
		wantStatus int
		wantCode   string
	}{
		{
			name: "favorited",
			body: `{"favorite": true}`,
			setup: func(f *apiFixture) {
				f.discovery.EXPECT().SetFavorite(mock.Anything, true, id).Return(nil).Once()
			},
			wantStatus: http.StatusAccepted,
		},
		{
			name: "unknown activity",
			body: `{"favorite": false}`,
			setup: func(f *apiFixture) {
				f.discovery.EXPECT().SetFavorite(mock.Anything, false, id).Return(domainerrors.ErrActivityNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
			wantCode:   "ACTIVITY_NOT_FOUND",
		},
		{
			name: "storage failure",
			body: `{"favorite": true}`,
			setup: func(f *apiFixture) {
				f.discovery.EXPECT().SetFavorite(mock.Anything, true, id).
					Return(domainerrors.NewStorageError(context.DeadlineExceeded, "insert")).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantCode:   "STORAGE_FAILURE",
		},
		{
			name:       "flag is required",
			body:       `{}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_FAILED",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newAPIFixture(t)
			if tt.setup != nil {
				tt.setup(f)
			}

			rec := f.do(http.MethodPut, "/api/v1/activities/"+id.String()+"/favorite", tt.body)
			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCode != "" {
				info := decodeError(t, rec)
				assert.Equal(t, tt.wantCode, info.Code)
				if tt.wantStatus >= http.StatusInternalServerError {
					assert.Nil(t, info.Details)
				}
			}
		})
	}
}

func TestAPI_GetState(t *testing.T) {
	f := newAPIFixture(t)
	f.discovery.EXPECT().State().Return(entity.SessionState{
		SearchText: "Cupertino, CA",
		Activities: []entity.Activity{},
		IsLoading:  true,
	}).Once()

	rec := f.do(http.MethodGet, "/api/v1/state", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data entity.SessionState `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Cupertino, CA", body.Data.SearchText)
	assert.True(t, body.Data.IsLoading)
}

func TestAPI_PublishLocationUpdate(t *testing.T) {
	f := newAPIFixture(t)

	rec := f.do(http.MethodPost, "/api/v1/location/updates", `{"location": {"latitude": 37.334, "longitude": -122.009}}`)
	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Contains(t, rec.Body.String(), `"delivered":0`)

	rec = f.do(http.MethodPost, "/api/v1/location/updates", `{"location": {"latitude": 137.0, "longitude": 0}}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", decodeError(t, rec).Code)
}

func TestAPI_UnknownRoute(t *testing.T) {
	f := newAPIFixture(t)

	rec := f.do(http.MethodGet, "/api/v1/nope", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "HTTP_ERROR", decodeError(t, rec).Code)
}

func TestAPI_MessageStream(t *testing.T) {
	f := newAPIFixture(t)

	messages := make(chan entity.Message, 2)
	f.discovery.EXPECT().Messages().Return(messages)

	server := httptest.NewServer(f.echo)
	defer server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, server.URL+"/api/v1/messages", nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	// A second consumer is rejected while the first is connected.
	busy, err := http.Get(server.URL + "/api/v1/messages")
	require.NoError(t, err)
	assert.Equal(t, http.StatusConflict, busy.StatusCode)
	_ = busy.Body.Close()

	messages <- entity.Message{Kind: entity.MessageInitialize}
	messages <- entity.Message{Kind: entity.MessageError, Text: "invalid query"}
	close(messages)

	reader := bufio.NewReader(resp.Body)
	var events []string
	var data []string
	for {
		line, err := reader.ReadString('\n')
		if err != nil {
			break
		}
		line = strings.TrimRight(line, "\n")
		switch {
		case strings.HasPrefix(line, "event: "):
			events = append(events, strings.TrimPrefix(line, "event: "))
		case strings.HasPrefix(line, "data: "):
			data = append(data, strings.TrimPrefix(line, "data: "))
		}
	}

	assert.Equal(t, []string{"initialize", "error", "closed"}, events)
	require.Len(t, data, 3)
	assert.JSONEq(t, `{"kind": "error", "text": "invalid query"}`, data[1])
}
