package db_fx

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"tiew/internal/config"
	"tiew/internal/infra"
	"tiew/internal/repositories"
)

var Module = fx.Provide(
	provideDB,
	repositories.NewPreferenceRepository,
	repositories.NewContentRepository,
	repositories.NewPlaceCacheRepository)

func provideDB(lc fx.Lifecycle, cfg *config.Config, log *zap.Logger) *gorm.DB {
	db := infra.InitPostgresql(cfg, log)
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			infra.ClosePostgresql(db, log)
			return nil
		},
	})
	return db
}
