package usecase

import (
	"context"

	"wander/internal/domain/entity"

	"github.com/google/uuid"
)

// DiscoveryUsecase is the command surface of the session coordinator.
// Commands are fire-and-forget: their effects are observed on Messages.
// Returned errors only mirror what was already emitted as an Error message.
type DiscoveryUsecase interface {
	// SearchByText searches around a "city, state" query.
	// Returns ErrInvalidQuery when the query does not have exactly two non-empty parts.
	SearchByText(query string) error

	// SearchByCurrentLocation waits for a location fix, resolves it to a place name and searches around it.
	SearchByCurrentLocation()

	// CancelLoading cancels the active generation, or ends a search still waiting to start one.
	CancelLoading()

	// SelectActivity emits a selection for the activity with the given id
	SelectActivity(id uuid.UUID)

	// SetFavorite marks or unmarks an activity of the current results as favorite and persists the change.
	SetFavorite(ctx context.Context, favorite bool, id uuid.UUID) error

	// LoadMapItems emits the currently known coordinates for map rendering
	LoadMapItems()

	// LoadFavorites replaces the current results with the stored favorites sorted by name.
	LoadFavorites(ctx context.Context) error

	// ClearFavorites deletes every stored favorite.
	ClearFavorites(ctx context.Context) error

	// LoadFavoriteIDs primes the favorite marks from the store without emitting anything.
	LoadFavoriteIDs(ctx context.Context) error

	// State returns a snapshot of the current session state
	State() entity.SessionState

	// Messages returns the ordered UI message stream. It has a single expected consumer
	// and is closed by Close.
	Messages() <-chan entity.Message

	// Close cancels any active search and closes the message stream.
	Close() error
}

// GeocodeCache memoizes address to coordinate lookups.
type GeocodeCache interface {
	// Lookup returns a cached coordinate without I/O.
	Lookup(address string) (entity.Coordinate, bool)

	// Store inserts or overwrites a cached coordinate.
	Store(address string, coordinate entity.Coordinate)

	// Resolve returns the cached coordinate or resolves and caches it.
	// Concurrent misses for the same address share one upstream call.
	Resolve(ctx context.Context, address string) (entity.Coordinate, error)

	// Len returns the number of cached addresses
	Len() int
}

// LocationFeedState is the lifecycle state of a LocationFeed.
type LocationFeedState string

const (
	LocationFeedIdle    LocationFeedState = "idle"
	LocationFeedRunning LocationFeedState = "running"
	LocationFeedStopped LocationFeedState = "stopped"
)

// LocationFeed classifies the live location source and caps it at a number of fixes.
type LocationFeed interface {
	// Start stops any running consumption, resets the count and starts consuming.
	// The returned channel is closed when the feed stops.
	Start(ctx context.Context, maxUpdates int) <-chan entity.LocationEvent

	// Stop cancels the running consumption, waits for it to end and resets the count.
	Stop()

	// Count returns the number of Location events emitted by the current run.
	Count() int

	// State returns the current lifecycle state.
	State() LocationFeedState
}

// GenerationSession runs one streamed generation at a time.
type GenerationSession interface {
	// Run emits Begin, Loading batches and then End, or a single Error.
	// The returned channel is closed after the terminal event.
	Run(ctx context.Context, params entity.PromptParameters) <-chan entity.GenerationEvent

	// Cancel requests cooperative cancellation of the active run.
	// It is a no-op when nothing is running.
	Cancel()

	// CancelRequested reports whether a cancellation is pending.
	CancelRequested() bool
}
