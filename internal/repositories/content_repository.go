package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"tiew/internal/models/db_models"
)

type ContentRepository interface {
	// GetCollection returns the raw JSON array stored under key, or nil when absent.
	GetCollection(ctx context.Context, key string) ([]byte, error)
}

type contentRepository struct {
	db *gorm.DB
}

func NewContentRepository(db *gorm.DB) ContentRepository {
	return &contentRepository{db: db}
}

func (r *contentRepository) GetCollection(ctx context.Context, key string) ([]byte, error) {
	var collection db_models.ContentCollection
	err := r.db.WithContext(ctx).Where("key = ?", key).First(&collection).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return collection.Items, nil
}
