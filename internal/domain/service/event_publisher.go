package service

import (
	"context"

	"wander/internal/domain/entity"
)

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishFavoriteEvent publishes a favorite added/removed event
	PublishFavoriteEvent(ctx context.Context, event *entity.FavoriteEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
