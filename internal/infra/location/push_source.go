// Package location provides the in-process live location push source.
package location

import (
	"context"
	"iter"
	"log/slog"
	"sync"

	"wander/config"
	"wander/internal/domain/entity"
	"wander/internal/errors"

	"go.uber.org/fx"
)

const defaultSubscriberBuffer = 16

// ErrSourceClosed ends every open subscription when the source shuts down.
var ErrSourceClosed = errors.New("location source closed")

// Params defines the parameters required for the push source
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// PushSource fans published updates out to every active subscription.
// A subscriber that falls behind its buffer misses updates rather than
// blocking the publisher.
type PushSource struct {
	mu          sync.Mutex
	subscribers map[uint64]chan entity.LocationUpdate
	nextID      uint64
	closed      bool
	buffer      int
	logger      *slog.Logger
}

// New creates the push source and closes it on shutdown.
func New(params Params) *PushSource {
	buffer := defaultSubscriberBuffer
	if params.Config.Search != nil && params.Config.Search.LocationSubscriberBuffer > 0 {
		buffer = params.Config.Search.LocationSubscriberBuffer
	}

	source := NewPushSource(buffer, params.Logger)
	params.Append(fx.Hook{
		OnStop: func(context.Context) error {
			source.Close()

			return nil
		},
	})

	return source
}

// NewPushSource creates a push source with the given per-subscriber buffer.
func NewPushSource(buffer int, logger *slog.Logger) *PushSource {
	return &PushSource{
		subscribers: make(map[uint64]chan entity.LocationUpdate),
		buffer:      max(buffer, 1),
		logger:      logger.With(slog.String("component", "location_source")),
	}
}

// Publish delivers an update to every subscriber and returns how many
// received it.
func (s *PushSource) Publish(update entity.LocationUpdate) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	delivered := 0
	for id, ch := range s.subscribers {
		select {
		case ch <- update:
			delivered++
		default:
			s.logger.Warn("Dropping location update for slow subscriber", slog.Uint64("subscriber", id))
		}
	}

	return delivered
}

// Subscribers returns the number of open subscriptions.
func (s *PushSource) Subscribers() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.subscribers)
}

// Updates subscribes for the duration of the iteration. The sequence ends
// quietly when ctx is done and with ErrSourceClosed when the source closes.
func (s *PushSource) Updates(ctx context.Context) iter.Seq2[entity.LocationUpdate, error] {
	return func(yield func(entity.LocationUpdate, error) bool) {
		id, ch, err := s.subscribe()
		if err != nil {
			yield(entity.LocationUpdate{}, err)

			return
		}
		defer s.unsubscribe(id)

		for {
			select {
			case <-ctx.Done():
				return
			case update, ok := <-ch:
				if !ok {
					yield(entity.LocationUpdate{}, ErrSourceClosed)

					return
				}
				if !yield(update, nil) {
					return
				}
			}
		}
	}
}

// Close ends every subscription; later subscriptions fail immediately.
func (s *PushSource) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.closed = true
	for id, ch := range s.subscribers {
		close(ch)
		delete(s.subscribers, id)
	}
}

func (s *PushSource) subscribe() (uint64, chan entity.LocationUpdate, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return 0, nil, ErrSourceClosed
	}

	s.nextID++
	ch := make(chan entity.LocationUpdate, s.buffer)
	s.subscribers[s.nextID] = ch

	return s.nextID, ch, nil
}

func (s *PushSource) unsubscribe(id uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.subscribers, id)
}
