package repository

import (
	"context"
	"time"

	"wander/internal/domain/entity"
)

// FavoriteEventRecord is one delivered favorite event as kept in the event log.
type FavoriteEventRecord struct {
	MessageID  string
	Event      entity.FavoriteEvent
	ReceivedAt time.Time
}

// FavoriteEventRepository is the append-only log of favorite events consumed
// from the event subscription.
type FavoriteEventRepository interface {
	// RecordFavoriteEvent appends the event keyed by its delivery message id.
	// Returns false when the message id was already recorded (a redelivery).
	RecordFavoriteEvent(ctx context.Context, record *FavoriteEventRecord) (bool, error)

	// FetchRecentFavoriteEvents returns at most limit records, newest first.
	FetchRecentFavoriteEvents(ctx context.Context, limit int) ([]*FavoriteEventRecord, error)
}
