package sqlite

import (
	"context"
	"strings"

	"wander/internal/domain/entity"
	domainerrors "wander/internal/domain/errors"
	"wander/internal/domain/repository"
	"wander/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const maxRecentFavoriteEvents = 500

type favoriteEventRepository struct {
	db *gorm.DB
}

// NewFavoriteEventRepository is the constructor for favoriteEventRepository.
func NewFavoriteEventRepository(db *gorm.DB) repository.FavoriteEventRepository {
	return &favoriteEventRepository{db: db}
}

// RecordFavoriteEvent inserts the record unless its message id is already present.
func (repo *favoriteEventRepository) RecordFavoriteEvent(ctx context.Context, record *repository.FavoriteEventRecord) (bool, error) {
	if record == nil || strings.TrimSpace(record.MessageID) == "" {
		return false, errors.New("favorite event message id is required")
	}

	eventM := fromFavoriteEventRecord(record)

	result := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "message_id"}},
			DoNothing: true,
		}).
		Create(eventM)
	if result.Error != nil {
		return false, domainerrors.NewStorageError(result.Error, describeStoreError(result.Error, "record favorite event"))
	}

	return result.RowsAffected > 0, nil
}

// FetchRecentFavoriteEvents returns the newest records first.
func (repo *favoriteEventRepository) FetchRecentFavoriteEvents(ctx context.Context, limit int) ([]*repository.FavoriteEventRecord, error) {
	if limit <= 0 || limit > maxRecentFavoriteEvents {
		limit = maxRecentFavoriteEvents
	}

	var eventsM []*model.FavoriteEventModel
	err := repo.db.WithContext(ctx).
		Order("received_at DESC").
		Order("rowid DESC").
		Limit(limit).
		Find(&eventsM).Error
	if err != nil {
		return nil, domainerrors.NewStorageError(err, describeStoreError(err, "fetch favorite events"))
	}

	records := make([]*repository.FavoriteEventRecord, 0, len(eventsM))
	for _, eventM := range eventsM {
		records = append(records, toFavoriteEventRecord(eventM))
	}

	return records, nil
}

func fromFavoriteEventRecord(record *repository.FavoriteEventRecord) *model.FavoriteEventModel {
	return &model.FavoriteEventModel{
		MessageID:  record.MessageID,
		RequestID:  record.Event.RequestID,
		ActivityID: record.Event.ActivityID,
		Name:       record.Event.Name,
		City:       record.Event.City,
		State:      record.Event.State,
		Favorite:   record.Event.Favorite,
		OccurredAt: record.Event.OccurredAt.UTC(),
		ReceivedAt: record.ReceivedAt.UTC(),
	}
}

func toFavoriteEventRecord(eventM *model.FavoriteEventModel) *repository.FavoriteEventRecord {
	return &repository.FavoriteEventRecord{
		MessageID: eventM.MessageID,
		Event: entity.FavoriteEvent{
			RequestID:  eventM.RequestID,
			ActivityID: eventM.ActivityID,
			Name:       eventM.Name,
			City:       eventM.City,
			State:      eventM.State,
			Favorite:   eventM.Favorite,
			OccurredAt: eventM.OccurredAt.UTC(),
		},
		ReceivedAt: eventM.ReceivedAt.UTC(),
	}
}
