package impl

import (
	"context"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"

	"wander/config"
	deliverycontext "wander/internal/delivery/context"
	"wander/internal/domain/entity"
	domainerrors "wander/internal/domain/errors"
	"wander/internal/domain/repository"
	"wander/internal/domain/service"
	"wander/internal/errors"
	"wander/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/fx"
)

const (
	defaultMessageBuffer      = 64
	defaultLocationMaxUpdates = 1
)

const (
	placeUnresolvedMessage = "Unable to find a place name for your location."
	favoritesLoadMessage   = "Unable to load your favorites."
)

// searchRun is the single in-flight search.
type searchRun struct {
	ctx    context.Context
	cancel context.CancelFunc
	done   chan struct{}

	// generating is set under the coordinator lock once the generation session owns the search.
	generating bool
}

// sourceCoordinator owns the session state and merges the location feed and
// generation session into one ordered message stream.
type sourceCoordinator struct {
	generation   usecase.GenerationSession
	location     usecase.LocationFeed
	geocodes     usecase.GeocodeCache
	geocoder     service.Geocoder
	activityRepo repository.ActivityRepository
	publisher    service.EventPublisher
	enricher     *enricher
	validate     *validator.Validate
	logger       *slog.Logger

	maxActivities      int
	locationMaxUpdates int

	ctx       context.Context
	cancelAll context.CancelFunc
	closeOnce sync.Once

	// searchMu serializes search starts so at most one search is ever in flight.
	searchMu sync.Mutex

	mu        sync.Mutex
	state     entity.SessionState
	favorites map[uuid.UUID]struct{}
	active    *searchRun
	closed    bool

	outbox *outbox
}

// SourceCoordinatorParams holds dependencies for the source coordinator
type SourceCoordinatorParams struct {
	fx.In

	Generation   usecase.GenerationSession
	Location     usecase.LocationFeed
	Geocodes     usecase.GeocodeCache
	Geocoder     service.Geocoder
	ActivityRepo repository.ActivityRepository
	Publisher    service.EventPublisher
	Config       *config.Config
	Logger       *slog.Logger
}

// NewSourceCoordinator creates the session coordinator
func NewSourceCoordinator(params SourceCoordinatorParams) usecase.DiscoveryUsecase {
	messageBuffer := defaultMessageBuffer
	locationMaxUpdates := defaultLocationMaxUpdates
	workers := defaultEnrichmentWorkers
	if search := params.Config.Search; search != nil {
		if search.MessageBuffer > 0 {
			messageBuffer = search.MessageBuffer
		}
		if search.LocationMaxUpdates > 0 {
			locationMaxUpdates = search.LocationMaxUpdates
		}
		if search.EnrichmentWorkers > 0 {
			workers = search.EnrichmentWorkers
		}
	}

	maxActivities := defaultMaxActivities
	if params.Config.Generation != nil && params.Config.Generation.MaxActivities > 0 {
		maxActivities = params.Config.Generation.MaxActivities
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &sourceCoordinator{
		generation:         params.Generation,
		location:           params.Location,
		geocodes:           params.Geocodes,
		geocoder:           params.Geocoder,
		activityRepo:       params.ActivityRepo,
		publisher:          params.Publisher,
		enricher:           newEnricher(params.Geocodes, workers, params.Logger),
		validate:           validator.New(validator.WithRequiredStructEnabled()),
		logger:             params.Logger,
		maxActivities:      maxActivities,
		locationMaxUpdates: locationMaxUpdates,
		ctx:                ctx,
		cancelAll:          cancel,
		state:              entity.SessionState{Activities: []entity.Activity{}},
		favorites:          make(map[uuid.UUID]struct{}),
		outbox:             newOutbox(messageBuffer),
	}
}

// SearchByText validates the query and searches around the named place
func (c *sourceCoordinator) SearchByText(query string) error {
	place, err := ParseSearchQuery(c.validate, query)
	if err != nil {
		c.logger.Info("Rejected search query", slog.String("query", query), slog.Any("error", err))

		c.mu.Lock()
		c.state.ErrorText = domainerrors.ErrInvalidQuery.Message()
		c.emitErrorLocked(domainerrors.ErrInvalidQuery.Message())
		c.mu.Unlock()

		return err
	}

	c.startSearch(place.String(), func(ctx context.Context) {
		c.runTextSearch(ctx, place)
	})

	return nil
}

// SearchByCurrentLocation waits for one location fix and searches around it
func (c *sourceCoordinator) SearchByCurrentLocation() {
	c.startSearch("", c.runLocationSearch)
}

// CancelLoading forwards cancellation to the active generation.
// A search still waiting for its anchor or a location fix is ended directly.
func (c *sourceCoordinator) CancelLoading() {
	c.mu.Lock()
	current := c.active
	if current != nil && !current.generating && c.state.IsProcessing {
		current.cancel()
		c.state.IsLoading = false
		c.state.IsProcessing = false
		c.emitLocked(entity.Message{Kind: entity.MessageLoaded, IsLoading: false})
		c.mu.Unlock()

		c.logger.Info("Search cancelled before generation started")

		return
	}
	c.mu.Unlock()

	c.generation.Cancel()
}

// SelectActivity emits a selection and focuses the map on the activity when its position is known
func (c *sourceCoordinator) SelectActivity(id uuid.UUID) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.state.SelectedActivityID = &id
	if idx := c.indexLocked(id); idx >= 0 {
		if coordinate, ok := c.state.Activities[idx].Coordinate(); ok {
			c.state.MapFocus = &coordinate
		}
	}

	c.emitLocked(entity.Message{Kind: entity.MessageSelectActivity, ActivityID: &id})
}

// SetFavorite updates the in-memory flag and persists it, rolling back on storage failure
func (c *sourceCoordinator) SetFavorite(ctx context.Context, favorite bool, id uuid.UUID) error {
	c.mu.Lock()
	idx := c.indexLocked(id)
	if idx < 0 {
		c.emitErrorLocked(domainerrors.ErrActivityNotFound.Message())
		c.mu.Unlock()

		return domainerrors.ErrActivityNotFound
	}

	previous := c.state.Activities[idx].IsFavorite
	c.state.Activities[idx].IsFavorite = favorite
	c.markFavoriteLocked(id, favorite)
	activity := c.state.Activities[idx].Clone()
	c.mu.Unlock()

	var err error
	if favorite {
		err = c.activityRepo.InsertActivity(ctx, &activity)
	} else {
		err = c.activityRepo.DeleteActivity(ctx, id)
		if errors.Is(err, repository.ErrActivityNotFound) {
			err = nil
		}
	}

	c.mu.Lock()
	if err != nil {
		c.markFavoriteLocked(id, previous)
		if idx := c.indexLocked(id); idx >= 0 {
			c.state.Activities[idx].IsFavorite = previous
		}
		storageErr := domainerrors.NewStorageError(err, "set favorite "+id.String())
		c.requestLogger(ctx).Error("Failed to persist favorite",
			slog.String("activity_id", id.String()),
			slog.Bool("favorite", favorite),
			slog.Any("error", err))
		c.emitErrorLocked(storageErr.Message())
		c.mu.Unlock()

		return storageErr
	}

	if !favorite && c.state.IsFavoritesView {
		c.state.Activities = slices.DeleteFunc(c.state.Activities, func(a entity.Activity) bool {
			return a.ID == id
		})
	}
	c.emitLoadingLocked()
	c.mu.Unlock()

	c.publishFavorite(ctx, &activity, favorite)

	return nil
}

// LoadMapItems emits every activity with a known position
func (c *sourceCoordinator) LoadMapItems() {
	c.mu.Lock()
	defer c.mu.Unlock()

	items := make([]entity.Activity, 0, len(c.state.Activities))
	for i := range c.state.Activities {
		if _, ok := c.state.Activities[i].Coordinate(); ok {
			items = append(items, c.state.Activities[i].Clone())
		}
	}

	c.emitLocked(entity.Message{
		Kind:            entity.MessageLoadMapItems,
		Activities:      items,
		IsFavoritesView: c.state.IsFavoritesView,
	})
}

// LoadFavorites stops any search and shows the stored favorites sorted by name
func (c *sourceCoordinator) LoadFavorites(ctx context.Context) error {
	c.searchMu.Lock()
	defer c.searchMu.Unlock()

	c.stopActiveSearch()

	stored, err := c.activityRepo.FetchActivitiesSorted(ctx, repository.SortByName, repository.SortAscending)
	if err != nil {
		c.logger.Error("Failed to load favorites", slog.Any("error", err))

		c.mu.Lock()
		c.emitErrorLocked(favoritesLoadMessage)
		c.mu.Unlock()

		return domainerrors.NewStorageError(err, "load favorites")
	}

	activities := make([]entity.Activity, 0, len(stored))
	favorites := make(map[uuid.UUID]struct{}, len(stored))
	for _, activity := range stored {
		a := activity.Clone()
		a.IsFavorite = true
		if len(a.Icons) == 0 {
			a.Icons = PickIcons(&a)
		}
		activities = append(activities, a)
		favorites[a.ID] = struct{}{}
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.favorites = favorites
	c.state = entity.SessionState{
		Activities:      activities,
		IsFavoritesView: true,
	}
	c.emitLoadingLocked()

	return nil
}

// ClearFavorites deletes every stored favorite and clears the in-memory flags
func (c *sourceCoordinator) ClearFavorites(ctx context.Context) error {
	if err := c.activityRepo.DeleteAllActivities(ctx); err != nil {
		c.logger.Error("Failed to clear favorites", slog.Any("error", err))

		c.mu.Lock()
		c.emitErrorLocked(domainerrors.ErrStorageFailure.Message())
		c.mu.Unlock()

		return domainerrors.NewStorageError(err, "clear favorites")
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.favorites = make(map[uuid.UUID]struct{})
	if c.state.IsFavoritesView {
		c.state.Activities = []entity.Activity{}
	}
	for i := range c.state.Activities {
		c.state.Activities[i].IsFavorite = false
	}
	c.emitLoadingLocked()

	return nil
}

// State returns a snapshot of the current session state
func (c *sourceCoordinator) State() entity.SessionState {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.state.Clone()
}

// Messages returns the ordered UI message stream
func (c *sourceCoordinator) Messages() <-chan entity.Message {
	return c.outbox.messages()
}

// Close cancels any active search and closes the message stream
func (c *sourceCoordinator) Close() error {
	c.closeOnce.Do(func() {
		c.searchMu.Lock()
		defer c.searchMu.Unlock()

		c.mu.Lock()
		c.closed = true
		c.mu.Unlock()

		c.stopActiveSearch()
		c.cancelAll()
		c.location.Stop()

		if queued, dropped := c.outbox.backlog(); queued > 0 || dropped > 0 {
			c.logger.Info("Closing message stream with undelivered messages",
				slog.Int("queued", queued),
				slog.Int("dropped", dropped))
		}
		c.outbox.close()
	})

	return nil
}

// LoadFavoriteIDs primes the favorite id set so search results are marked outside the favorites view
func (c *sourceCoordinator) LoadFavoriteIDs(ctx context.Context) error {
	stored, err := c.activityRepo.FetchActivities(ctx)
	if err != nil {
		return errors.Wrap(err, "fetch favorites")
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for _, activity := range stored {
		c.favorites[activity.ID] = struct{}{}
	}

	return nil
}

// startSearch replaces the active search with a new one.
// The previous search is cancelled and awaited before the new one emits anything.
func (c *sourceCoordinator) startSearch(searchText string, run func(ctx context.Context)) {
	c.searchMu.Lock()
	defer c.searchMu.Unlock()

	c.stopActiveSearch()

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}

	c.state = entity.SessionState{
		SearchText:   searchText,
		Activities:   []entity.Activity{},
		IsProcessing: true,
	}
	c.emitLocked(entity.Message{Kind: entity.MessageInitialize})
	c.emitLocked(entity.Message{Kind: entity.MessageProcessing})

	ctx, cancel := context.WithCancel(c.ctx)
	current := &searchRun{ctx: ctx, cancel: cancel, done: make(chan struct{})}
	c.active = current

	go func() {
		defer close(current.done)
		defer cancel()

		run(ctx)

		c.mu.Lock()
		if c.active == current {
			c.active = nil
		}
		c.mu.Unlock()
	}()
}

// stopActiveSearch cancels the in-flight search and waits for it. Callers hold searchMu.
func (c *sourceCoordinator) stopActiveSearch() {
	c.mu.Lock()
	current := c.active
	c.active = nil
	c.mu.Unlock()

	if current == nil {
		return
	}

	c.generation.Cancel()
	current.cancel()
	<-current.done
}

func (c *sourceCoordinator) runTextSearch(ctx context.Context, place SearchPlace) {
	var anchor *entity.Coordinate
	if coordinate, err := c.geocodes.Resolve(ctx, place.String()); err != nil {
		c.logger.Warn("Search anchor unresolved, keeping reported distances",
			slog.String("place", place.String()),
			slog.Any("error", err))
	} else {
		anchor = &coordinate

		c.mu.Lock()
		if ctx.Err() == nil {
			c.state.SearchLocation = &coordinate
			c.state.MapFocus = &coordinate
		}
		c.mu.Unlock()
	}

	c.generate(ctx, entity.PromptParameters{
		City:          place.City,
		State:         place.State,
		MaxActivities: c.maxActivities,
	}, anchor)
}

func (c *sourceCoordinator) runLocationSearch(ctx context.Context) {
	fix, failure := c.awaitLocationFix(ctx)
	if ctx.Err() != nil {
		return
	}

	switch {
	case failure != "":
		c.failSearch(ctx, failure)

		return
	case fix == nil:
		// Source failure is logged by the feed; end the search quietly.
		c.finishSearch(ctx)

		return
	}

	placemark, err := c.geocoder.ReverseGeocode(ctx, *fix)
	if err != nil || strings.TrimSpace(placemark.City) == "" {
		c.logger.Warn("Reverse geocode failed",
			slog.String("location", fix.String()),
			slog.Any("error", err))
		c.failSearch(ctx, placeUnresolvedMessage)

		return
	}

	c.mu.Lock()
	if ctx.Err() == nil {
		c.state.SearchText = placemark.City + ", " + placemark.State
		c.state.SearchLocation = fix
		c.state.MapFocus = fix
	}
	c.mu.Unlock()

	c.generate(ctx, entity.PromptParameters{
		City:          placemark.City,
		State:         placemark.State,
		MaxActivities: c.maxActivities,
	}, fix)
}

// awaitLocationFix returns the first location fix, or the user-facing text of the error that ended the feed.
func (c *sourceCoordinator) awaitLocationFix(ctx context.Context) (*entity.Coordinate, string) {
	defer c.location.Stop()

	for event := range c.location.Start(ctx, c.locationMaxUpdates) {
		switch event.Kind {
		case entity.LocationEventLocation:
			fix := event.Location

			return &fix, ""
		case entity.LocationEventInfo:
			c.logger.Debug("Waiting for location", slog.String("info", string(event.Info)))
		case entity.LocationEventError:
			return nil, event.Error.Message()
		}
	}

	return nil, ""
}

func (c *sourceCoordinator) generate(ctx context.Context, params entity.PromptParameters, anchor *entity.Coordinate) {
	started := time.Now()

	// Run is started under the lock so CancelLoading either ends the search
	// before generation or reaches a session that is already active.
	c.mu.Lock()
	if ctx.Err() != nil {
		c.mu.Unlock()

		return
	}
	if c.active != nil && c.active.ctx == ctx {
		c.active.generating = true
	}
	events := c.generation.Run(ctx, params)
	c.mu.Unlock()

	for event := range events {
		if ctx.Err() != nil {
			// Superseded: drain without touching state.
			continue
		}

		switch event.Kind {
		case entity.GenerationBegin:
			c.mu.Lock()
			c.state.IsLoading = true
			c.mu.Unlock()
		case entity.GenerationLoading:
			batch := c.enricher.Enrich(ctx, event.Activities, anchor)

			c.mu.Lock()
			if ctx.Err() == nil {
				for i := range batch {
					_, batch[i].IsFavorite = c.favorites[batch[i].ID]
				}
				c.state.Activities = batch
				c.state.IsLoading = true
				c.emitLoadingLocked()
			}
			c.mu.Unlock()
		case entity.GenerationEnd:
			c.logger.Info("Search finished",
				slog.String("city", params.City),
				slog.String("state", params.State),
				slog.Duration("elapsed", time.Since(started)))
			c.finishSearch(ctx)
		case entity.GenerationFailed:
			message := "An unknown generation error occurred."
			if event.Err != nil {
				message = event.Err.Error()
			}
			c.failSearch(ctx, message)
		}
	}
}

func (c *sourceCoordinator) finishSearch(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if ctx.Err() != nil {
		return
	}

	c.state.IsLoading = false
	c.state.IsProcessing = false
	c.emitLocked(entity.Message{Kind: entity.MessageLoaded, IsLoading: false})
}

// failSearch resets to a clean slate so no stale partial results stay visible.
func (c *sourceCoordinator) failSearch(ctx context.Context, message string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if ctx.Err() != nil {
		return
	}

	c.state = entity.SessionState{
		Activities: []entity.Activity{},
		ErrorText:  message,
	}
	c.emitLocked(entity.Message{Kind: entity.MessageInitialize})
	c.emitErrorLocked(message)
}

func (c *sourceCoordinator) publishFavorite(ctx context.Context, activity *entity.Activity, favorite bool) {
	if c.publisher == nil {
		return
	}

	event := &entity.FavoriteEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		ActivityID: activity.ID.String(),
		Name:       activity.Name,
		City:       activity.City,
		State:      activity.State,
		Favorite:   favorite,
		OccurredAt: time.Now().UTC(),
	}
	if err := c.publisher.PublishFavoriteEvent(ctx, event); err != nil {
		c.requestLogger(ctx).Warn("Failed to publish favorite event",
			slog.String("activity_id", event.ActivityID),
			slog.Any("error", err))
	}
}

// requestLogger prefers the request-scoped logger for commands issued over HTTP.
func (c *sourceCoordinator) requestLogger(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, c.logger)
}

func (c *sourceCoordinator) indexLocked(id uuid.UUID) int {
	return slices.IndexFunc(c.state.Activities, func(a entity.Activity) bool {
		return a.ID == id
	})
}

func (c *sourceCoordinator) markFavoriteLocked(id uuid.UUID, favorite bool) {
	if favorite {
		c.favorites[id] = struct{}{}
	} else {
		delete(c.favorites, id)
	}
}

func (c *sourceCoordinator) emitLoadingLocked() {
	snapshot := c.state.Clone()
	c.emitLocked(entity.Message{
		Kind:            entity.MessageLoading,
		Activities:      snapshot.Activities,
		IsFavoritesView: snapshot.IsFavoritesView,
		IsLoading:       snapshot.IsLoading,
		State:           &snapshot,
	})
}

func (c *sourceCoordinator) emitErrorLocked(text string) {
	snapshot := c.state.Clone()
	c.emitLocked(entity.Message{Kind: entity.MessageError, Text: text, State: &snapshot})
}

func (c *sourceCoordinator) emitLocked(message entity.Message) {
	c.outbox.push(message)
}
