package clients

import (
	"context"
	"net/url"
	"strconv"

	"tiew/internal/config"
	"tiew/internal/models/api_models"
)

const (
	forecastPath     = "/fivedaysforcast"
	airPollutionPath = "/air-pollution"

	DefaultWeatherLang = "EN"
	DefaultUnits       = "metric"
	DefaultMode        = "json"
)

type WeatherClient interface {
	Forecast(ctx context.Context, lat, lng float64, lang string) (*api_models.ForecastResponse, error)
	AirPollution(ctx context.Context, place, units, lang, mode string) (*api_models.AirPollutionResponse, error)
}

type weatherClient struct {
	http HTTPGetter
	host string
}

func NewWeatherClient(http HTTPGetter, cfg *config.Config) WeatherClient {
	return &weatherClient{http: http, host: cfg.RapidAPI.WeatherHost}
}

func (c *weatherClient) Forecast(ctx context.Context, lat, lng float64, lang string) (*api_models.ForecastResponse, error) {
	q := url.Values{}
	q.Set("latitude", strconv.FormatFloat(lat, 'f', -1, 64))
	q.Set("longitude", strconv.FormatFloat(lng, 'f', -1, 64))
	q.Set("lang", withDefault(lang, DefaultWeatherLang))

	var payload api_models.ForecastResponse
	if err := c.http.Get(ctx, c.host, forecastPath, q, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

func (c *weatherClient) AirPollution(ctx context.Context, place, units, lang, mode string) (*api_models.AirPollutionResponse, error) {
	q := url.Values{}
	q.Set("place", place)
	q.Set("units", withDefault(units, DefaultUnits))
	q.Set("lang", withDefault(lang, DefaultWeatherLang))
	q.Set("mode", withDefault(mode, DefaultMode))

	var payload api_models.AirPollutionResponse
	if err := c.http.Get(ctx, c.host, airPollutionPath, q, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}
