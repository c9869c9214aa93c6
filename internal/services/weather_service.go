package services

import (
	"context"
	"strings"

	"go.uber.org/zap"
	"tiew/internal/clients"
	"tiew/internal/models/response_models"
	"tiew/pkg/utils"
)

type WeatherServiceInterface interface {
	Forecast(ctx context.Context, lat, lng float64) ([]response_models.Forecast, error)
	Current(ctx context.Context, lat, lng float64) (response_models.CurrentWeather, error)
	AirQuality(ctx context.Context, place string) (response_models.AirQuality, error)
}

type WeatherService struct {
	client     clients.WeatherClient
	normalizer *ForecastNormalizer
	log        *zap.Logger
}

func NewWeatherService(client clients.WeatherClient, log *zap.Logger) *WeatherService {
	return &WeatherService{
		client:     client,
		normalizer: NewForecastNormalizer(log),
		log:        log,
	}
}

func (s *WeatherService) Forecast(ctx context.Context, lat, lng float64) ([]response_models.Forecast, error) {
	if lat == 0 && lng == 0 {
		return nil, &utils.ValidationError{Field: "coordinates", Message: "latitude and longitude are required"}
	}

	payload, err := s.client.Forecast(ctx, lat, lng, clients.DefaultWeatherLang)
	if err != nil {
		return nil, err
	}
	if len(payload.List) == 0 {
		return nil, &utils.EmptyResultError{Resource: "forecast entries"}
	}

	return s.normalizer.Normalize(payload.List), nil
}

func (s *WeatherService) Current(ctx context.Context, lat, lng float64) (response_models.CurrentWeather, error) {
	forecast, err := s.Forecast(ctx, lat, lng)
	if err != nil {
		return response_models.CurrentWeather{}, err
	}
	return CurrentFromForecast(forecast[0]), nil
}

func (s *WeatherService) AirQuality(ctx context.Context, place string) (response_models.AirQuality, error) {
	place = strings.TrimSpace(place)
	if place == "" {
		return response_models.AirQuality{}, &utils.ValidationError{Field: "place", Message: "place is required"}
	}

	payload, err := s.client.AirPollution(ctx, place, clients.DefaultUnits, clients.DefaultWeatherLang, clients.DefaultMode)
	if err != nil {
		return response_models.AirQuality{}, err
	}
	if len(payload.List) == 0 {
		return response_models.AirQuality{}, &utils.EmptyResultError{Resource: "air pollution readings"}
	}

	first := payload.List[0]
	return response_models.AirQuality{
		Place:      place,
		AQI:        first.Main.AQI,
		Level:      aqiLevel(first.Main.AQI),
		Components: first.Components,
		MeasuredAt: utils.FormatDisplayTH(utils.FromUnixSecondsTH(first.Dt)),
	}, nil
}

// aqiLevel follows the 1..5 scale of the air pollution endpoint.
func aqiLevel(aqi int) string {
	switch aqi {
	case 1:
		return "good"
	case 2:
		return "fair"
	case 3:
		return "moderate"
	case 4:
		return "poor"
	case 5:
		return "very poor"
	default:
		return "unknown"
	}
}
