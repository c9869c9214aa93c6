package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"tiew/internal/models/db_models"
)

type PlaceCacheRepository interface {
	UpsertPlaces(ctx context.Context, places []db_models.CachedPlace) error
	GetByPlaceID(ctx context.Context, placeID string) (*db_models.CachedPlace, error)
}

type placeCacheRepository struct {
	db *gorm.DB
}

func NewPlaceCacheRepository(db *gorm.DB) PlaceCacheRepository {
	return &placeCacheRepository{db: db}
}

func (r *placeCacheRepository) UpsertPlaces(ctx context.Context, places []db_models.CachedPlace) error {
	if len(places) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "place_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"name", "types", "latitude", "longitude", "rating",
				"rating_count", "address", "open_now", "category", "updated_at",
			}),
		}).
		Create(&places).Error
}

func (r *placeCacheRepository) GetByPlaceID(ctx context.Context, placeID string) (*db_models.CachedPlace, error) {
	var place db_models.CachedPlace
	err := r.db.WithContext(ctx).First(&place, "place_id = ?", placeID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil // default model
		}
		return nil, err
	}
	return &place, nil
}
