package weather_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"tiew/internal/clients"
	"tiew/internal/services"
)

var Module = fx.Provide(provideWeatherService)

func provideWeatherService(client clients.WeatherClient, log *zap.Logger) services.WeatherServiceInterface {
	return services.NewWeatherService(client, log)
}
