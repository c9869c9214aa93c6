package clients_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"tiew/internal/clients"
	"tiew/internal/config"
)

var Module = fx.Provide(
	provideHTTPGetter,
	clients.NewPlacesClient,
	clients.NewWeatherClient)

func provideHTTPGetter(cfg *config.Config, log *zap.Logger) clients.HTTPGetter {
	if cfg.RapidAPI.Key == "" {
		log.Warn("RAPIDAPI_KEY is empty, upstream calls will be rejected")
	}
	return clients.NewRapidAPIClient(cfg, log)
}
