package sqlite

import (
	"context"

	"wander/internal/domain/entity"
	domainerrors "wander/internal/domain/errors"
	"wander/internal/domain/repository"
	"wander/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// sortColumns whitelists the columns a sorted fetch may order by.
var sortColumns = map[repository.SortField]string{
	repository.SortByName:     "name",
	repository.SortByCategory: "category",
	repository.SortByRating:   "rating",
	repository.SortByDistance: "distance",
}

// activityRepository implements the domain.ActivityRepository interface.
type activityRepository struct {
	db *gorm.DB
}

// NewActivityRepository is the constructor for activityRepository.
func NewActivityRepository(db *gorm.DB) repository.ActivityRepository {
	return &activityRepository{db: db}
}

// InsertActivity upserts the activity keyed by its id.
func (repo *activityRepository) InsertActivity(ctx context.Context, activity *entity.Activity) error {
	if activity == nil {
		return errors.New("activity is required")
	}

	activityM := fromActivityDomain(activity)

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns(upsertColumns),
		}).
		Create(activityM).Error
	if err != nil {
		return domainerrors.NewStorageError(err, describeStoreError(err, "insert activity"))
	}

	return nil
}

var upsertColumns = []string{
	"name", "address", "city", "state", "category", "rating", "review_count", "distance",
	"phone_number", "description", "something_interesting", "icons", "latitude", "longitude", "updated_at",
}

// DeleteActivity removes a single stored activity.
func (repo *activityRepository) DeleteActivity(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ActivityModel{})
	if result.Error != nil {
		return domainerrors.NewStorageError(result.Error, describeStoreError(result.Error, "delete activity"))
	}
	if result.RowsAffected == 0 {
		return repository.ErrActivityNotFound
	}

	return nil
}

// FindActivityByID retrieves a stored activity by its id.
func (repo *activityRepository) FindActivityByID(ctx context.Context, id uuid.UUID) (*entity.Activity, error) {
	var activityM model.ActivityModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&activityM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrActivityNotFound
		}

		return nil, domainerrors.NewStorageError(err, describeStoreError(err, "find activity"))
	}

	return toActivityDomain(&activityM), nil
}

// FetchActivities returns every stored activity in insertion order.
func (repo *activityRepository) FetchActivities(ctx context.Context) ([]*entity.Activity, error) {
	var activityModels []*model.ActivityModel
	err := repo.db.WithContext(ctx).
		Order("created_at ASC").
		Order("rowid ASC").
		Find(&activityModels).Error
	if err != nil {
		return nil, domainerrors.NewStorageError(err, describeStoreError(err, "fetch activities"))
	}

	return toActivityDomains(activityModels), nil
}

// FetchActivitiesSorted returns every stored activity ordered by field.
// Ties fall back to the id so the order is stable.
func (repo *activityRepository) FetchActivitiesSorted(ctx context.Context, field repository.SortField, direction repository.SortDirection) ([]*entity.Activity, error) {
	column, ok := sortColumns[field]
	if !ok {
		return nil, errors.Wrapf(repository.ErrInvalidSortField, "field %q", field)
	}

	desc := false
	switch direction {
	case repository.SortAscending, "":
	case repository.SortDescending:
		desc = true
	default:
		return nil, errors.Wrapf(repository.ErrInvalidSortField, "direction %q", direction)
	}

	var activityModels []*model.ActivityModel
	err := repo.db.WithContext(ctx).
		Order(clause.OrderByColumn{Column: clause.Column{Name: column}, Desc: desc}).
		Order(clause.OrderByColumn{Column: clause.Column{Name: "id"}}).
		Find(&activityModels).Error
	if err != nil {
		return nil, domainerrors.NewStorageError(err, describeStoreError(err, "fetch sorted activities"))
	}

	return toActivityDomains(activityModels), nil
}

// DeleteAllActivities removes every stored activity.
func (repo *activityRepository) DeleteAllActivities(ctx context.Context) error {
	err := repo.db.WithContext(ctx).
		Session(&gorm.Session{AllowGlobalUpdate: true}).
		Delete(&model.ActivityModel{}).Error
	if err != nil {
		return domainerrors.NewStorageError(err, describeStoreError(err, "delete all activities"))
	}

	return nil
}

// CountActivities returns the number of stored activities.
func (repo *activityRepository) CountActivities(ctx context.Context) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.ActivityModel{}).Count(&count).Error; err != nil {
		return 0, domainerrors.NewStorageError(err, describeStoreError(err, "count activities"))
	}

	return count, nil
}

// Mapper functions

// fromActivityDomain converts the entity into its storage record.
// Missing coordinates are stored as 0.
func fromActivityDomain(activity *entity.Activity) *model.ActivityModel {
	activityM := &model.ActivityModel{
		ID:                   activity.ID,
		Name:                 activity.Name,
		Address:              activity.Address,
		City:                 activity.City,
		State:                activity.State,
		Category:             activity.Category,
		Rating:               activity.Rating,
		ReviewCount:          activity.ReviewCount,
		Distance:             activity.Distance,
		PhoneNumber:          activity.PhoneNumber,
		Description:          activity.Description,
		SomethingInteresting: activity.SomethingInteresting,
		Icons:                append([]string(nil), activity.Icons...),
	}
	if activity.Latitude != nil {
		activityM.Latitude = *activity.Latitude
	}
	if activity.Longitude != nil {
		activityM.Longitude = *activity.Longitude
	}

	return activityM
}

// toActivityDomain converts a storage record back into an entity.
// Stored records are favorites by definition and always carry coordinates.
func toActivityDomain(activityM *model.ActivityModel) *entity.Activity {
	if activityM == nil {
		return nil
	}

	lat, lng := activityM.Latitude, activityM.Longitude

	return &entity.Activity{
		ID:                   activityM.ID,
		Name:                 activityM.Name,
		Address:              activityM.Address,
		City:                 activityM.City,
		State:                activityM.State,
		Category:             activityM.Category,
		Rating:               activityM.Rating,
		ReviewCount:          activityM.ReviewCount,
		Distance:             activityM.Distance,
		PhoneNumber:          activityM.PhoneNumber,
		Description:          activityM.Description,
		SomethingInteresting: activityM.SomethingInteresting,
		Icons:                activityM.Icons,
		IsFavorite:           true,
		Latitude:             &lat,
		Longitude:            &lng,
	}
}

func toActivityDomains(activityModels []*model.ActivityModel) []*entity.Activity {
	activities := make([]*entity.Activity, 0, len(activityModels))
	for _, activityM := range activityModels {
		activities = append(activities, toActivityDomain(activityM))
	}

	return activities
}
