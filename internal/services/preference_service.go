package services

import (
	"context"

	"go.uber.org/zap"
	"tiew/internal/config"
	"tiew/internal/i18n"
	"tiew/internal/repositories"
	"tiew/pkg/middleware"
)

// VisitorStorage adapts the preference table to i18n.Storage for one visitor.
type VisitorStorage struct {
	repo  repositories.PreferenceRepository
	scope string
}

func NewVisitorStorage(repo repositories.PreferenceRepository, visitorID string) i18n.Storage {
	return &VisitorStorage{repo: repo, scope: visitorID}
}

func (s *VisitorStorage) GetItem(ctx context.Context, key string) (string, bool, error) {
	return s.repo.GetValue(ctx, s.scope, key)
}

func (s *VisitorStorage) SetItem(ctx context.Context, key, value string) error {
	return s.repo.SetValue(ctx, s.scope, key, value)
}

// NewLocaleFactory builds translation stores backed by each visitor's preferences.
func NewLocaleFactory(cfg *config.Config, repo repositories.PreferenceRepository, log *zap.Logger) middleware.LocaleFactory {
	catalog := i18n.NewCatalog(cfg.Province.LocalName, cfg.Province.Name)
	return func(ctx context.Context, visitorID string) *i18n.Store {
		return i18n.NewStore(ctx, catalog, NewVisitorStorage(repo, visitorID), log)
	}
}
