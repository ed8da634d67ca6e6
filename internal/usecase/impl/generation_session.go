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

// generationSession drives the generator through begin -> loading* -> end|error.
// Overlapping Run calls are not serialized here; the coordinator owns that.
type generationSession struct {
	generator service.ActivityGenerator
	logger    *slog.Logger

	mu              sync.Mutex
	run             uint64
	active          bool
	cancelRequested bool
	cancelStream    context.CancelFunc
}

// GenerationSessionParams holds dependencies for the generation session
type GenerationSessionParams struct {
	fx.In

	Generator service.ActivityGenerator
	Logger    *slog.Logger
}

// NewGenerationSession creates a generation session around the given generator
func NewGenerationSession(params GenerationSessionParams) usecase.GenerationSession {
	return &generationSession{
		generator: params.Generator,
		logger:    params.Logger,
	}
}

// Run starts one streamed generation. The channel is closed after End or Error.
func (s *generationSession) Run(ctx context.Context, params entity.PromptParameters) <-chan entity.GenerationEvent {
	events := make(chan entity.GenerationEvent)
	streamCtx, cancel := context.WithCancel(ctx)

	s.mu.Lock()
	s.run++
	run := s.run
	s.active = true
	s.cancelRequested = false
	s.cancelStream = cancel
	s.mu.Unlock()

	go func() {
		defer close(events)
		defer s.finish(run, cancel)

		s.stream(ctx, streamCtx, params, events)
	}()

	return events
}

// Cancel requests cooperative cancellation of the active run
func (s *generationSession) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.active {
		return
	}

	s.cancelRequested = true
	if s.cancelStream != nil {
		s.cancelStream()
	}
}

// CancelRequested reports whether a cancellation is pending
func (s *generationSession) CancelRequested() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.cancelRequested
}

func (s *generationSession) stream(ctx, streamCtx context.Context, params entity.PromptParameters, events chan<- entity.GenerationEvent) {
	logger := s.logger.With(slog.String("city", params.City), slog.String("state", params.State))

	availability := s.generator.Availability(ctx)
	if genErr := entity.AvailabilityError(availability); genErr != nil {
		logger.Warn("Generator unavailable",
			slog.String("status", string(availability.Status)),
			slog.String("detail", availability.Detail))
		emitGeneration(ctx, events, entity.GenerationEvent{Kind: entity.GenerationFailed, Err: genErr})

		return
	}

	request := BuildGenerationRequest(params)
	begun := false
	increments := 0

	for snapshot, err := range s.generator.StreamActivities(streamCtx, request) {
		if s.takeCancel() {
			logger.Info("Generation cancelled", slog.Int("increments", increments))

			break
		}

		if err != nil {
			if errors.IsContextDone(err) && ctx.Err() == nil && s.takeCancel() {
				break
			}

			var genErr *entity.GenerationError
			if !errors.As(err, &genErr) {
				genErr = entity.NewGenerationError(entity.GenerationUnknown, err.Error())
			}
			logger.Error("Generation failed", slog.String("kind", string(genErr.Kind)), slog.Any("error", err))
			emitGeneration(ctx, events, entity.GenerationEvent{Kind: entity.GenerationFailed, Err: genErr})

			return
		}

		increments++
		if !begun {
			begun = true
			if !emitGeneration(ctx, events, entity.GenerationEvent{Kind: entity.GenerationBegin}) {
				return
			}
		}

		batch := entity.CompleteActivities(snapshot)
		if !emitGeneration(ctx, events, entity.GenerationEvent{Kind: entity.GenerationLoading, Activities: batch}) {
			return
		}
	}

	// Keep the begin/end pairing for streams that finished or were cancelled before any content.
	if !begun && !emitGeneration(ctx, events, entity.GenerationEvent{Kind: entity.GenerationBegin}) {
		return
	}

	logger.Debug("Generation finished", slog.Int("increments", increments))
	emitGeneration(ctx, events, entity.GenerationEvent{Kind: entity.GenerationEnd})
}

// takeCancel consumes a pending cancellation request.
func (s *generationSession) takeCancel() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	requested := s.cancelRequested
	s.cancelRequested = false

	return requested
}

func (s *generationSession) finish(run uint64, cancel context.CancelFunc) {
	cancel()

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.run != run {
		return
	}
	s.active = false
	s.cancelRequested = false
	s.cancelStream = nil
}

func emitGeneration(ctx context.Context, events chan<- entity.GenerationEvent, event entity.GenerationEvent) bool {
	select {
	case events <- event:
		return true
	case <-ctx.Done():
		return false
	}
}
