package content_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"tiew/internal/repositories"
	"tiew/internal/services"
)

var Module = fx.Provide(provideContentService)

func provideContentService(repo repositories.ContentRepository, log *zap.Logger) services.ContentServiceInterface {
	return services.NewContentService(repo, log)
}
