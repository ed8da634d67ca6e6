package impl

import (
	"context"
	"testing"

	"wander/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPickIcons(t *testing.T) {
	tests := []struct {
		name     string
		activity entity.Activity
		expected []string
	}{
		{
			name:     "museum prefers columns over plain building",
			activity: entity.Activity{Name: "history center", Category: "museum", Description: "an old building"},
			expected: []string{"building.columns"},
		},
		{
			name:     "several categories contribute in table order",
			activity: entity.Activity{Name: "lakeside cafe", Category: "restaurant", Description: "coffee by the lake"},
			expected: []string{"fork.knife", "cup.and.saucer", "water.waves"},
		},
		{
			name:     "hiking replaces walking",
			activity: entity.Activity{Name: "ridge trail", Category: "hike", Description: "a long walk"},
			expected: []string{"figure.hiking"},
		},
		{
			name:     "plural keywords match",
			activity: entity.Activity{Name: "the gardens", Category: "outdoors", Description: ""},
			expected: []string{"tree"},
		},
		{
			name:     "keywords inside other words do not match",
			activity: entity.Activity{Name: "barnyard startup", Category: "party", Description: ""},
			expected: []string{FallbackIcon},
		},
		{
			name:     "nothing matches",
			activity: entity.Activity{Name: "", Category: "", Description: ""},
			expected: []string{FallbackIcon},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, PickIcons(&tt.activity))
		})
	}
}

func TestDistanceMiles(t *testing.T) {
	cupertino := entity.Coordinate{Latitude: 37.334, Longitude: -122.009}
	sacramento := entity.Coordinate{Latitude: 38.0, Longitude: -121.0}

	assert.Zero(t, DistanceMiles(cupertino, cupertino))
	assert.InDelta(t, 71.9, DistanceMiles(cupertino, sacramento), 0.5)
	assert.Equal(t, DistanceMiles(cupertino, sacramento), DistanceMiles(sacramento, cupertino))
}

func TestEnricher_Enrich(t *testing.T) {
	anchor := entity.Coordinate{Latitude: 37.334, Longitude: -122.009}
	geocoder := &stubGeocoder{coordinates: map[string]entity.Coordinate{
		"1 main st, cupertino, ca": {Latitude: 38.0, Longitude: -121.0},
	}}
	cache := NewGeocodeCache(GeocodeCacheParams{Geocoder: geocoder, Logger: newDiscardLogger()})
	e := newEnricher(cache, 2, newDiscardLogger())

	batch := entity.CompleteActivities([]entity.PartialActivity{
		partialActivity("Found", "1 Main St"),
		partialActivity("Lost", "404 Nowhere Rd"),
	})
	require.Len(t, batch, 2)

	enriched := e.Enrich(context.Background(), batch, &anchor)

	require.Len(t, enriched, 2)
	assert.Equal(t, "found", enriched[0].Name)
	assert.InDelta(t, 71.9, enriched[0].Distance, 0.5)
	coordinate, ok := enriched[0].Coordinate()
	require.True(t, ok)
	assert.Equal(t, entity.Coordinate{Latitude: 38.0, Longitude: -121.0}, coordinate)
	assert.Equal(t, []string{"building.columns"}, enriched[0].Icons)

	assert.Equal(t, "lost", enriched[1].Name)
	assert.Equal(t, 2.5, enriched[1].Distance, "falls back to the reported distance")
	_, ok = enriched[1].Coordinate()
	assert.False(t, ok)
	assert.NotEmpty(t, enriched[1].Icons)

	assert.Nil(t, batch[0].Icons, "input batch is not mutated")

	// A second batch reuses cached lookups, including the miss.
	again := e.Enrich(context.Background(), batch, &anchor)
	assert.Equal(t, int32(2), geocoder.calls.Load())
	assert.Equal(t, 2.5, again[1].Distance)
}

func TestEnricher_WithoutAnchor(t *testing.T) {
	geocoder := &stubGeocoder{coordinates: map[string]entity.Coordinate{
		"1 main st, cupertino, ca": {Latitude: 38.0, Longitude: -121.0},
	}}
	e := newEnricher(NewGeocodeCache(GeocodeCacheParams{Geocoder: geocoder, Logger: newDiscardLogger()}), 0, newDiscardLogger())

	batch := entity.CompleteActivities([]entity.PartialActivity{partialActivity("Found", "1 Main St")})
	enriched := e.Enrich(context.Background(), batch, nil)

	require.Len(t, enriched, 1)
	assert.Equal(t, 2.5, enriched[0].Distance)
	_, ok := enriched[0].Coordinate()
	assert.True(t, ok)
}
