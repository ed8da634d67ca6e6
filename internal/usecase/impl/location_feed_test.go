package impl

import (
	"context"
	"testing"

	"wander/internal/domain/entity"
	"wander/internal/errors"
	"wander/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLocationFeed(source *scriptedLocationSource) usecase.LocationFeed {
	return NewLocationFeed(LocationFeedParams{Source: source, Logger: newDiscardLogger()})
}

func TestLocationFeed_StopsAtCap(t *testing.T) {
	first := coordinate(37.334, -122.009)
	second := coordinate(38.0, -121.0)
	third := coordinate(39.0, -120.0)

	tests := []struct {
		name       string
		maxUpdates int
		expected   []entity.LocationEvent
	}{
		{
			name:       "single fix",
			maxUpdates: 1,
			expected:   []entity.LocationEvent{entity.NewLocationEvent(*first)},
		},
		{
			name:       "two fixes",
			maxUpdates: 2,
			expected: []entity.LocationEvent{
				entity.NewLocationEvent(*first),
				entity.NewLocationEvent(*second),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			source := &scriptedLocationSource{updates: []entity.LocationUpdate{
				{Location: first},
				{Location: second},
				{Location: third},
			}}
			feed := newTestLocationFeed(source)

			events := collectLocationEvents(t, feed.Start(context.Background(), tt.maxUpdates))

			assert.Equal(t, tt.expected, events)
			assert.Equal(t, tt.maxUpdates, feed.Count())
			assert.Equal(t, usecase.LocationFeedStopped, feed.State())
			assert.Equal(t, int32(tt.maxUpdates), source.yielded.Load(), "no update past the cap is consumed")
		})
	}
}

func TestLocationFeed_InfoContinues(t *testing.T) {
	source := &scriptedLocationSource{updates: []entity.LocationUpdate{
		{AuthorizationRequestInProgress: true},
		{Location: coordinate(37.334, -122.009)},
	}}
	feed := newTestLocationFeed(source)

	stream := feed.Start(context.Background(), 2)
	events := takeLocationEvents(t, stream, 2)

	require.Len(t, events, 2)
	assert.Equal(t, entity.NewLocationInfo(entity.LocationInfoAuthorizationRequestInProgress), events[0])
	assert.Equal(t, entity.NewLocationEvent(entity.Coordinate{Latitude: 37.334, Longitude: -122.009}), events[1])
	// Only one location arrived before the source went quiet; the feed is still running.
	assert.Equal(t, 1, feed.Count())

	feed.Stop()
	assert.Empty(t, collectLocationEvents(t, stream))
	assert.Equal(t, usecase.LocationFeedStopped, feed.State())
	assert.Equal(t, 0, feed.Count())
}

func TestLocationFeed_ErrorTerminates(t *testing.T) {
	a := coordinate(37.334, -122.009)
	b := coordinate(38.0, -121.0)
	source := &scriptedLocationSource{updates: []entity.LocationUpdate{
		{Location: a},
		{AuthorizationDenied: true},
		{Location: b},
	}}
	feed := newTestLocationFeed(source)

	events := collectLocationEvents(t, feed.Start(context.Background(), 2))

	assert.Equal(t, []entity.LocationEvent{
		entity.NewLocationEvent(*a),
		entity.NewLocationError(entity.LocationErrorAuthorizationDenied),
	}, events)
	assert.Equal(t, 1, feed.Count())
	assert.Equal(t, usecase.LocationFeedStopped, feed.State())
}

func TestLocationFeed_RestartResetsCount(t *testing.T) {
	source := &scriptedLocationSource{updates: []entity.LocationUpdate{
		{Location: coordinate(37.334, -122.009)},
	}}
	feed := newTestLocationFeed(source)
	assert.Equal(t, usecase.LocationFeedIdle, feed.State())

	events := collectLocationEvents(t, feed.Start(context.Background(), 1))
	require.Len(t, events, 1)
	assert.Equal(t, 1, feed.Count())

	events = collectLocationEvents(t, feed.Start(context.Background(), 1))
	require.Len(t, events, 1)
	assert.Equal(t, 1, feed.Count(), "count restarts from zero on every start")
}

func TestLocationFeed_StartWhileRunning(t *testing.T) {
	source := &scriptedLocationSource{}
	feed := newTestLocationFeed(source)

	first := feed.Start(context.Background(), 1)
	second := feed.Start(context.Background(), 1)

	// The first run is cancelled and closed before the second starts.
	assert.Empty(t, collectLocationEvents(t, first))
	assert.Equal(t, usecase.LocationFeedRunning, feed.State())

	feed.Stop()
	assert.Empty(t, collectLocationEvents(t, second))
	assert.Equal(t, usecase.LocationFeedStopped, feed.State())
}

func TestLocationFeed_SourceFailureClosesFeed(t *testing.T) {
	source := &scriptedLocationSource{
		updates:  []entity.LocationUpdate{{Stationary: true}},
		failWith: errors.New("location daemon crashed"),
	}
	feed := newTestLocationFeed(source)

	events := collectLocationEvents(t, feed.Start(context.Background(), 1))

	assert.Equal(t, []entity.LocationEvent{entity.NewLocationInfo(entity.LocationInfoStationary)}, events)
	assert.Equal(t, usecase.LocationFeedStopped, feed.State())
}

func TestClassifyLocationUpdate(t *testing.T) {
	fix := coordinate(37.334, -122.009)

	tests := []struct {
		name     string
		update   entity.LocationUpdate
		expected entity.LocationEvent
		ok       bool
	}{
		{
			name:     "location wins over every facet",
			update:   entity.LocationUpdate{Location: fix, AuthorizationDenied: true, Stationary: true},
			expected: entity.NewLocationEvent(*fix),
			ok:       true,
		},
		{
			name:     "denied globally before denied",
			update:   entity.LocationUpdate{AuthorizationDeniedGlobally: true, AuthorizationDenied: true},
			expected: entity.NewLocationError(entity.LocationErrorAuthorizationDeniedGlobally),
			ok:       true,
		},
		{
			name:     "denied before request in progress",
			update:   entity.LocationUpdate{AuthorizationDenied: true, AuthorizationRequestInProgress: true},
			expected: entity.NewLocationError(entity.LocationErrorAuthorizationDenied),
			ok:       true,
		},
		{
			name:     "request in progress before restricted",
			update:   entity.LocationUpdate{AuthorizationRequestInProgress: true, AuthorizationRestricted: true},
			expected: entity.NewLocationInfo(entity.LocationInfoAuthorizationRequestInProgress),
			ok:       true,
		},
		{
			name:     "restricted before unavailable",
			update:   entity.LocationUpdate{AuthorizationRestricted: true, LocationUnavailable: true},
			expected: entity.NewLocationError(entity.LocationErrorAuthorizationRestricted),
			ok:       true,
		},
		{
			name:     "unavailable has its own kind",
			update:   entity.LocationUpdate{LocationUnavailable: true, AccuracyLimited: true},
			expected: entity.NewLocationError(entity.LocationErrorLocationUnavailable),
			ok:       true,
		},
		{
			name:     "accuracy limited",
			update:   entity.LocationUpdate{AccuracyLimited: true, Stationary: true},
			expected: entity.NewLocationInfo(entity.LocationInfoAccuracyLimited),
			ok:       true,
		},
		{
			name:     "insufficiently in use",
			update:   entity.LocationUpdate{InsufficientlyInUse: true},
			expected: entity.NewLocationInfo(entity.LocationInfoInsufficientlyInUse),
			ok:       true,
		},
		{
			name:     "service session required",
			update:   entity.LocationUpdate{ServiceSessionRequired: true},
			expected: entity.NewLocationInfo(entity.LocationInfoServiceSessionRequired),
			ok:       true,
		},
		{
			name:     "stationary",
			update:   entity.LocationUpdate{Stationary: true},
			expected: entity.NewLocationInfo(entity.LocationInfoStationary),
			ok:       true,
		},
		{
			name:   "empty update is ignored",
			update: entity.LocationUpdate{},
			ok:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			event, ok := classifyLocationUpdate(tt.update)

			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, event)
		})
	}
}
