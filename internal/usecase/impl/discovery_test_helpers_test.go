package impl

import (
	"context"
	"io"
	"iter"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"wander/config"
	"wander/internal/domain/entity"
	"wander/internal/domain/service"
)

const testTimeout = 2 * time.Second

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Generation: &config.GenerationConfig{Enabled: true, MaxActivities: 5},
		Search: &config.SearchConfig{
			MessageBuffer:      16,
			EnrichmentWorkers:  2,
			LocationMaxUpdates: 1,
		},
	}
}

func ptr[T any](v T) *T {
	return &v
}

func coordinate(lat, lng float64) *entity.Coordinate {
	return &entity.Coordinate{Latitude: lat, Longitude: lng}
}

// scriptedLocationSource yields its updates in order and then blocks like a live feed.
type scriptedLocationSource struct {
	updates  []entity.LocationUpdate
	failWith error
	yielded  atomic.Int32
}

func (s *scriptedLocationSource) Updates(ctx context.Context) iter.Seq2[entity.LocationUpdate, error] {
	return func(yield func(entity.LocationUpdate, error) bool) {
		for _, update := range s.updates {
			s.yielded.Add(1)
			if !yield(update, nil) {
				return
			}
		}
		if s.failWith != nil {
			yield(entity.LocationUpdate{}, s.failWith)

			return
		}
		<-ctx.Done()
		yield(entity.LocationUpdate{}, ctx.Err())
	}
}

// scriptedGenerator replays snapshots. When step is set, each snapshot waits for a value on it.
type scriptedGenerator struct {
	availability entity.Availability
	snapshots    [][]entity.PartialActivity
	failWith     error
	step         chan struct{}

	mu       sync.Mutex
	requests []entity.GenerationRequest
}

func (g *scriptedGenerator) Availability(context.Context) entity.Availability {
	if g.availability.Status == "" {
		return entity.Availability{Status: entity.AvailabilityAvailable}
	}

	return g.availability
}

func (g *scriptedGenerator) StreamActivities(ctx context.Context, req entity.GenerationRequest) iter.Seq2[[]entity.PartialActivity, error] {
	g.mu.Lock()
	g.requests = append(g.requests, req)
	g.mu.Unlock()

	return func(yield func([]entity.PartialActivity, error) bool) {
		for _, snapshot := range g.snapshots {
			if g.step != nil {
				select {
				case <-g.step:
				case <-ctx.Done():
					yield(nil, ctx.Err())

					return
				}
			}
			if !yield(snapshot, nil) {
				return
			}
		}
		if g.failWith != nil {
			yield(nil, g.failWith)
		}
	}
}

func (g *scriptedGenerator) requestCount() int {
	g.mu.Lock()
	defer g.mu.Unlock()

	return len(g.requests)
}

// stubGeocoder resolves from a fixed table and counts upstream calls.
type stubGeocoder struct {
	coordinates map[string]entity.Coordinate
	placemark   entity.Placemark
	reverseErr  error
	delay       time.Duration
	calls       atomic.Int32
}

func (g *stubGeocoder) Geocode(ctx context.Context, address string) (entity.Coordinate, error) {
	g.calls.Add(1)
	if g.delay > 0 {
		select {
		case <-time.After(g.delay):
		case <-ctx.Done():
			return entity.Coordinate{}, ctx.Err()
		}
	}

	coordinate, ok := g.coordinates[strings.ToLower(address)]
	if !ok {
		return entity.Coordinate{}, service.ErrNoGeocodeResult
	}

	return coordinate, nil
}

func (g *stubGeocoder) ReverseGeocode(context.Context, entity.Coordinate) (entity.Placemark, error) {
	if g.reverseErr != nil {
		return entity.Placemark{}, g.reverseErr
	}

	return g.placemark, nil
}

func partialActivity(name, address string) entity.PartialActivity {
	return entity.PartialActivity{
		Name:                 ptr(name),
		Address:              ptr(address),
		City:                 ptr("Cupertino"),
		State:                ptr("CA"),
		Category:             ptr("Museum"),
		Rating:               ptr(4.5),
		ReviewCount:          ptr(120),
		Distance:             ptr(2.5),
		PhoneNumber:          ptr("(408) 555-0100"),
		Description:          ptr("A Small History Museum"),
		SomethingInteresting: ptr("Built in 1904"),
	}
}

func collectLocationEvents(t *testing.T, events <-chan entity.LocationEvent) []entity.LocationEvent {
	t.Helper()

	var out []entity.LocationEvent
	timeout := time.After(testTimeout)
	for {
		select {
		case event, ok := <-events:
			if !ok {
				return out
			}
			out = append(out, event)
		case <-timeout:
			t.Fatalf("location feed did not stop, got %v", out)

			return out
		}
	}
}

func takeLocationEvents(t *testing.T, events <-chan entity.LocationEvent, n int) []entity.LocationEvent {
	t.Helper()

	out := make([]entity.LocationEvent, 0, n)
	for len(out) < n {
		select {
		case event, ok := <-events:
			if !ok {
				t.Fatalf("location feed closed after %v", out)
			}
			out = append(out, event)
		case <-time.After(testTimeout):
			t.Fatalf("timed out waiting for location events, got %v", out)
		}
	}

	return out
}

func collectGenerationEvents(t *testing.T, events <-chan entity.GenerationEvent) []entity.GenerationEvent {
	t.Helper()

	var out []entity.GenerationEvent
	timeout := time.After(testTimeout)
	for {
		select {
		case event, ok := <-events:
			if !ok {
				return out
			}
			out = append(out, event)
		case <-timeout:
			t.Fatalf("generation did not finish, got %d events", len(out))

			return out
		}
	}
}

func generationKinds(events []entity.GenerationEvent) []entity.GenerationEventKind {
	kinds := make([]entity.GenerationEventKind, len(events))
	for i, event := range events {
		kinds[i] = event.Kind
	}

	return kinds
}

// nextMessage reads one message or fails the test.
func nextMessage(t *testing.T, messages <-chan entity.Message) entity.Message {
	t.Helper()

	select {
	case message, ok := <-messages:
		if !ok {
			t.Fatal("message stream closed")
		}

		return message
	case <-time.After(testTimeout):
		t.Fatal("timed out waiting for message")

		return entity.Message{}
	}
}

// messagesUntil reads messages up to and including the first one of the given kind.
func messagesUntil(t *testing.T, messages <-chan entity.Message, kind entity.MessageKind) []entity.Message {
	t.Helper()

	var out []entity.Message
	for {
		message := nextMessage(t, messages)
		out = append(out, message)
		if message.Kind == kind {
			return out
		}
	}
}

func messageKinds(messages []entity.Message) []entity.MessageKind {
	kinds := make([]entity.MessageKind, len(messages))
	for i, message := range messages {
		kinds[i] = message.Kind
	}

	return kinds
}

func assertNoMessage(t *testing.T, messages <-chan entity.Message) {
	t.Helper()

	select {
	case message := <-messages:
		t.Fatalf("unexpected message %s", message.Kind)
	case <-time.After(50 * time.Millisecond):
	}
}
