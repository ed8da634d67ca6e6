// Package service declares the external capabilities the discovery core consumes.
package service

import (
	"context"
	"iter"

	"wander/internal/domain/entity"
)

// ActivityGenerator is the generative text engine.
type ActivityGenerator interface {
	// Availability is a cheap, synchronous precondition check.
	Availability(ctx context.Context) entity.Availability

	// StreamActivities yields increasingly complete snapshots of the generated
	// records. Each snapshot is the whole list so far, not a delta. A non-nil
	// error ends the sequence; errors are *entity.GenerationError where the
	// engine can classify them.
	StreamActivities(ctx context.Context, req entity.GenerationRequest) iter.Seq2[[]entity.PartialActivity, error]
}
