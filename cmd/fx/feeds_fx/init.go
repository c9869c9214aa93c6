package feeds_fx

import (
	"time"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"tiew/internal/clients"
	"tiew/internal/config"
	"tiew/internal/repositories"
	"tiew/internal/services"
	mem "tiew/pkg/memcache"
)

var Module = fx.Provide(
	provideClock,
	services.NewTimeSeededRandomizer,
	providePlaceService,
	providePlaceRecorder,
	provideDestinationService,
	provideEventService,
	provideBlogService,
	provideAdvertisementService,
	provideRefreshers)

func provideClock() services.Clock {
	return time.Now
}

func providePlaceService(cache mem.PlaceCache, repo repositories.PlaceCacheRepository, log *zap.Logger) services.PlaceServiceInterface {
	return services.NewPlaceService(cache, repo, log)
}

func providePlaceRecorder(places services.PlaceServiceInterface) services.PlaceRecorder {
	return places
}

func provideDestinationService(places clients.PlacesClient, cfg *config.Config, recorder services.PlaceRecorder, log *zap.Logger) services.DestinationServiceInterface {
	return services.NewDestinationService(places, cfg, recorder, log)
}

func provideEventService(places clients.PlacesClient, cfg *config.Config, recorder services.PlaceRecorder, rng *services.Randomizer, now services.Clock, log *zap.Logger) services.EventServiceInterface {
	return services.NewEventService(places, cfg, recorder, rng, now, log)
}

func provideBlogService(places clients.PlacesClient, cfg *config.Config, recorder services.PlaceRecorder, rng *services.Randomizer, now services.Clock, log *zap.Logger) services.BlogServiceInterface {
	return services.NewBlogService(places, cfg, recorder, rng, now, log)
}

func provideAdvertisementService(places clients.PlacesClient, cfg *config.Config, recorder services.PlaceRecorder, rng *services.Randomizer, now services.Clock, log *zap.Logger) services.AdvertisementServiceInterface {
	return services.NewAdvertisementService(places, cfg, recorder, rng, now, log)
}

func provideRefreshers(
	destinations services.DestinationServiceInterface,
	events services.EventServiceInterface,
	blogs services.BlogServiceInterface,
	advertisements services.AdvertisementServiceInterface,
) []services.Refresher {
	return []services.Refresher{destinations, events, blogs, advertisements}
}
