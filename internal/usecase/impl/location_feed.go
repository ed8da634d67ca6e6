package impl

import (
	"context"
	"log/slog"
	"sync"

	"wander/internal/domain/entity"
	"wander/internal/domain/service"
	"wander/internal/errors"
	"wander/internal/usecase"

	"go.uber.org/fx"
)

// locationFeed is the Idle -> Running -> Stopped state machine around the live location source.
type locationFeed struct {
	source service.LocationSource
	logger *slog.Logger

	mu     sync.Mutex
	state  usecase.LocationFeedState
	count  int
	run    uint64 // identifies the current consumption so stale runs cannot touch state
	cancel context.CancelFunc
	done   chan struct{}
}

// LocationFeedParams holds dependencies for the location feed
type LocationFeedParams struct {
	fx.In

	Source service.LocationSource
	Logger *slog.Logger
}

// NewLocationFeed creates an idle location feed
func NewLocationFeed(params LocationFeedParams) usecase.LocationFeed {
	return &locationFeed{
		source: params.Source,
		logger: params.Logger,
		state:  usecase.LocationFeedIdle,
	}
}

// Start restarts the feed with a fresh count. maxUpdates below one is treated as one.
func (f *locationFeed) Start(ctx context.Context, maxUpdates int) <-chan entity.LocationEvent {
	f.Stop()

	if maxUpdates < 1 {
		maxUpdates = 1
	}

	runCtx, cancel := context.WithCancel(ctx)
	events := make(chan entity.LocationEvent)
	done := make(chan struct{})

	f.mu.Lock()
	f.run++
	run := f.run
	f.state = usecase.LocationFeedRunning
	f.count = 0
	f.cancel = cancel
	f.done = done
	f.mu.Unlock()

	f.logger.Debug("Location feed started", slog.Int("max_updates", maxUpdates))

	go f.consume(runCtx, run, maxUpdates, events, done)

	return events
}

// Stop cancels the in-flight consumption, waits for it and resets the count
func (f *locationFeed) Stop() {
	f.mu.Lock()
	cancel, done := f.cancel, f.done
	f.cancel, f.done = nil, nil
	f.count = 0
	if f.state == usecase.LocationFeedRunning {
		f.state = usecase.LocationFeedStopped
	}
	f.mu.Unlock()

	if cancel == nil {
		return
	}

	cancel()
	<-done
}

// Count returns the number of Location events emitted by the current run
func (f *locationFeed) Count() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.count
}

// State returns the current lifecycle state
func (f *locationFeed) State() usecase.LocationFeedState {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.state
}

func (f *locationFeed) consume(ctx context.Context, run uint64, maxUpdates int, events chan<- entity.LocationEvent, done chan<- struct{}) {
	defer close(done)
	defer close(events)
	defer f.finish(run)

	for update, err := range f.source.Updates(ctx) {
		if err != nil {
			if errors.IsContextDone(err) || ctx.Err() != nil {
				return
			}
			// The source itself failed: abort the run without a user-facing event.
			f.logger.Error("Location source failed", slog.Any("error", err))

			return
		}

		event, ok := classifyLocationUpdate(update)
		if !ok {
			continue
		}

		count := 0
		if event.Kind == entity.LocationEventLocation {
			count = f.increment(run)
		}

		select {
		case events <- event:
		case <-ctx.Done():
			return
		}

		switch event.Kind {
		case entity.LocationEventLocation:
			if count >= maxUpdates {
				f.logger.Debug("Location feed reached its cap", slog.Int("count", count))

				return
			}
		case entity.LocationEventInfo:
			f.logger.Info("Location info", slog.String("info", string(event.Info)))
		case entity.LocationEventError:
			f.logger.Warn("Location error", slog.String("error", string(event.Error)))

			return
		}
	}
}

func (f *locationFeed) increment(run uint64) int {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.run != run {
		return 0
	}
	f.count++

	return f.count
}

func (f *locationFeed) finish(run uint64) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.run == run && f.state == usecase.LocationFeedRunning {
		f.state = usecase.LocationFeedStopped
	}
}

// classifyLocationUpdate picks the first matching facet in priority order.
// ok is false for updates that carry nothing worth emitting.
func classifyLocationUpdate(update entity.LocationUpdate) (entity.LocationEvent, bool) {
	switch {
	case update.Location != nil:
		return entity.NewLocationEvent(*update.Location), true
	case update.AuthorizationDeniedGlobally:
		return entity.NewLocationError(entity.LocationErrorAuthorizationDeniedGlobally), true
	case update.AuthorizationDenied:
		return entity.NewLocationError(entity.LocationErrorAuthorizationDenied), true
	case update.AuthorizationRequestInProgress:
		return entity.NewLocationInfo(entity.LocationInfoAuthorizationRequestInProgress), true
	case update.AuthorizationRestricted:
		return entity.NewLocationError(entity.LocationErrorAuthorizationRestricted), true
	case update.LocationUnavailable:
		return entity.NewLocationError(entity.LocationErrorLocationUnavailable), true
	case update.AccuracyLimited:
		return entity.NewLocationInfo(entity.LocationInfoAccuracyLimited), true
	case update.InsufficientlyInUse:
		return entity.NewLocationInfo(entity.LocationInfoInsufficientlyInUse), true
	case update.ServiceSessionRequired:
		return entity.NewLocationInfo(entity.LocationInfoServiceSessionRequired), true
	case update.Stationary:
		return entity.NewLocationInfo(entity.LocationInfoStationary), true
	default:
		return entity.LocationEvent{}, false
	}
}
