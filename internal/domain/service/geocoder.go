package service

import (
	"context"

	"wander/internal/domain/entity"
	"wander/internal/errors"
)

// ErrNoGeocodeResult is returned when the resolver has no match for the query.
var ErrNoGeocodeResult = errors.New("no geocode result")

// Geocoder resolves between free-text addresses and coordinates.
// Implementations are rate limited upstream; callers should cache results.
type Geocoder interface {
	// Geocode resolves an address to at most one coordinate.
	Geocode(ctx context.Context, address string) (entity.Coordinate, error)

	// ReverseGeocode resolves a coordinate to the city and state containing it.
	ReverseGeocode(ctx context.Context, coordinate entity.Coordinate) (entity.Placemark, error)
}
