package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"tiew/internal/models/db_models"
)

type PreferenceRepository interface {
	GetValue(ctx context.Context, scope, key string) (string, bool, error)
	SetValue(ctx context.Context, scope, key, value string) error
}

type preferenceRepository struct {
	db *gorm.DB
}

func NewPreferenceRepository(db *gorm.DB) PreferenceRepository {
	return &preferenceRepository{db: db}
}

func (r *preferenceRepository) GetValue(ctx context.Context, scope, key string) (string, bool, error) {
	var pref db_models.Preference
	err := r.db.WithContext(ctx).
		Where("scope = ? AND key = ?", scope, key).
		First(&pref).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", false, nil
		}
		return "", false, err
	}
	return pref.Value, true, nil
}

func (r *preferenceRepository) SetValue(ctx context.Context, scope, key, value string) error {
	pref := db_models.Preference{Scope: scope, Key: key, Value: value}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "scope"}, {Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&pref).Error
}
