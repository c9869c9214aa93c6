package controllers_fx

import (
	"go.uber.org/fx"
	"tiew/internal/api"
	"tiew/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewPageController),
	fx.Provide(controllers.NewFeedController),
	fx.Provide(controllers.NewWeatherController),
	fx.Provide(controllers.NewPlaceController),
	fx.Provide(controllers.NewLanguageController),
	fx.Provide(controllers.NewSectionController),
	fx.Provide(provideControllers),
	fx.Provide(api.NewRouter))

func provideControllers(
	pages *controllers.PageController,
	feeds *controllers.FeedController,
	weather *controllers.WeatherController,
	places *controllers.PlaceController,
	language *controllers.LanguageController,
	sections *controllers.SectionController,
) api.Controllers {
	return api.Controllers{
		Pages:    pages,
		Feeds:    feeds,
		Weather:  weather,
		Places:   places,
		Language: language,
		Sections: sections,
	}
}
