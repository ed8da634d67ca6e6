package impl

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"wander/internal/domain/entity"
	"wander/internal/domain/service"
	"wander/internal/errors"
	"wander/internal/usecase"

	"go.uber.org/fx"
	"golang.org/x/sync/singleflight"
)

// ErrEmptyAddress is returned when an empty address is resolved
var ErrEmptyAddress = errors.New("empty address")

// geocodeCache is an unbounded address to coordinate memo.
// Entries are never evicted; a session sees at most a few dozen distinct addresses.
// Addresses the resolver has no match for are remembered too, so a streamed
// record carrying one is not resolved again on every snapshot.
type geocodeCache struct {
	geocoder service.Geocoder
	logger   *slog.Logger

	mu      sync.RWMutex
	entries map[string]entity.Coordinate
	misses  map[string]error
	flights singleflight.Group
}

// GeocodeCacheParams holds dependencies for the geocode cache
type GeocodeCacheParams struct {
	fx.In

	Geocoder service.Geocoder
	Logger   *slog.Logger
}

// NewGeocodeCache creates a geocode cache in front of the given resolver
func NewGeocodeCache(params GeocodeCacheParams) usecase.GeocodeCache {
	return &geocodeCache{
		geocoder: params.Geocoder,
		logger:   params.Logger,
		entries:  make(map[string]entity.Coordinate),
		misses:   make(map[string]error),
	}
}

// Lookup returns a cached coordinate without I/O
func (c *geocodeCache) Lookup(address string) (entity.Coordinate, bool) {
	return c.lookup(cacheKey(address))
}

// Store inserts or overwrites a cached coordinate
func (c *geocodeCache) Store(address string, coordinate entity.Coordinate) {
	key := cacheKey(address)
	if key == "" {
		return
	}

	c.mu.Lock()
	c.entries[key] = coordinate
	delete(c.misses, key)
	c.mu.Unlock()
}

// Resolve returns the cached coordinate or asks the resolver once and caches the result
func (c *geocodeCache) Resolve(ctx context.Context, address string) (entity.Coordinate, error) {
	key := cacheKey(address)
	if key == "" {
		return entity.Coordinate{}, ErrEmptyAddress
	}

	if coordinate, ok := c.lookup(key); ok {
		return coordinate, nil
	}
	if err := c.miss(key); err != nil {
		return entity.Coordinate{}, err
	}

	result, err, shared := c.flights.Do(key, func() (any, error) {
		// Another flight may have filled the entry between the miss and acquiring the key.
		if coordinate, ok := c.lookup(key); ok {
			return coordinate, nil
		}
		if err := c.miss(key); err != nil {
			return nil, err
		}

		coordinate, err := c.geocoder.Geocode(ctx, address)
		if err != nil {
			err = errors.Wrapf(err, "geocode %q", address)
			// Only a definite no-match is remembered; cancellation and transport failures retry.
			if errors.Is(err, service.ErrNoGeocodeResult) {
				c.mu.Lock()
				c.misses[key] = err
				c.mu.Unlock()
			}

			return nil, err
		}

		c.mu.Lock()
		c.entries[key] = coordinate
		c.mu.Unlock()

		return coordinate, nil
	})
	if err != nil {
		return entity.Coordinate{}, err
	}

	if shared && c.logger != nil {
		c.logger.Debug("Geocode lookup shared with concurrent caller", slog.String("address", address))
	}

	coordinate, _ := result.(entity.Coordinate)

	return coordinate, nil
}

// Len returns the number of cached addresses
func (c *geocodeCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.entries)
}

func (c *geocodeCache) lookup(key string) (entity.Coordinate, bool) {
	if key == "" {
		return entity.Coordinate{}, false
	}

	c.mu.RLock()
	coordinate, ok := c.entries[key]
	c.mu.RUnlock()

	return coordinate, ok
}

func (c *geocodeCache) miss(key string) error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.misses[key]
}

// cacheKey folds case and whitespace so "Cupertino,  CA" and "cupertino, ca" share an entry.
func cacheKey(address string) string {
	return strings.ToLower(strings.Join(strings.Fields(address), " "))
}
