package service

import (
	"context"
	"iter"

	"wander/internal/domain/entity"
)

// LocationSource is the platform's live location push feed.
type LocationSource interface {
	// Updates yields location updates until ctx is cancelled or the consumer
	// stops ranging. A non-nil error means the source itself failed.
	Updates(ctx context.Context) iter.Seq2[entity.LocationUpdate, error]
}
