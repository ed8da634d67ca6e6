// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"wander/internal/domain/entity"
	"wander/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for activity persistence.
var (
	// ErrActivityNotFound is returned when no stored activity has the requested id.
	ErrActivityNotFound = errors.New("activity not found")
	// ErrInvalidSortField is returned when a sort is requested on an unknown field.
	ErrInvalidSortField = errors.New("invalid sort field")
)

// SortField names the columns favorites can be ordered by.
type SortField string

const (
	SortByName     SortField = "name"
	SortByCategory SortField = "category"
	SortByRating   SortField = "rating"
	SortByDistance SortField = "distance"
)

// SortDirection is the ordering direction of a sorted fetch.
type SortDirection string

const (
	SortAscending  SortDirection = "asc"
	SortDescending SortDirection = "desc"
)

// ActivityRepository is the keyed store for favorited activities.
// Every call is atomic on its own; there are no multi-record transactions.
type ActivityRepository interface {
	// InsertActivity persists an activity, replacing any stored record with the same id.
	InsertActivity(ctx context.Context, activity *entity.Activity) error

	// DeleteActivity removes the activity with the given id.
	// Returns ErrActivityNotFound if nothing was deleted.
	DeleteActivity(ctx context.Context, id uuid.UUID) error

	// FindActivityByID retrieves a stored activity by id.
	FindActivityByID(ctx context.Context, id uuid.UUID) (*entity.Activity, error)

	// FetchActivities returns every stored activity in insertion order.
	FetchActivities(ctx context.Context) ([]*entity.Activity, error)

	// FetchActivitiesSorted returns every stored activity ordered by field.
	FetchActivitiesSorted(ctx context.Context, field SortField, direction SortDirection) ([]*entity.Activity, error)

	// DeleteAllActivities removes every stored activity.
	DeleteAllActivities(ctx context.Context) error

	// CountActivities returns the number of stored activities.
	CountActivities(ctx context.Context) (int64, error)
}
