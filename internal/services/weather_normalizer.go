package services

import (
	"go.uber.org/zap"
	"tiew/internal/models/api_models"
	"tiew/internal/models/response_models"
	"tiew/pkg/utils"
)

// The forecast endpoint sometimes answers in Kelvin even when metric units are requested.
const (
	KelvinThreshold = 200.0
	KelvinOffset    = 273.15

	MinPlausibleTempC    = -20.0
	MaxPlausibleTempC    = 50.0
	MinHumidity          = 0.0
	MaxHumidity          = 100.0
	MinPlausiblePressure = 900.0
	MaxPlausiblePressure = 1100.0
)

// NormalizeTemperature converts values above KelvinThreshold from Kelvin to Celsius.
func NormalizeTemperature(v float64) float64 {
	if v > KelvinThreshold {
		return v - KelvinOffset
	}
	return v
}

// ForecastNormalizer is the single adapter between the raw forecast payload and
// the view models. Out of range readings are logged and passed through unchanged.
type ForecastNormalizer struct {
	log *zap.Logger
}

func NewForecastNormalizer(log *zap.Logger) *ForecastNormalizer {
	return &ForecastNormalizer{log: log}
}

func (n *ForecastNormalizer) Normalize(entries []api_models.ForecastEntry) []response_models.Forecast {
	out := make([]response_models.Forecast, 0, len(entries))
	for _, e := range entries {
		temp := NormalizeTemperature(e.Main.Temp)
		n.check(e.Dt, "temperature", temp, MinPlausibleTempC, MaxPlausibleTempC)
		n.check(e.Dt, "humidity", e.Main.Humidity, MinHumidity, MaxHumidity)
		n.check(e.Dt, "pressure", e.Main.Pressure, MinPlausiblePressure, MaxPlausiblePressure)

		f := response_models.Forecast{
			Time:         utils.FormatDisplayTH(utils.FromUnixSecondsTH(e.Dt)),
			Timestamp:    e.Dt,
			TemperatureC: temp,
			FeelsLikeC:   NormalizeTemperature(e.Main.FeelsLike),
			TempMinC:     NormalizeTemperature(e.Main.TempMin),
			TempMaxC:     NormalizeTemperature(e.Main.TempMax),
			Humidity:     e.Main.Humidity,
			PressureHPa:  e.Main.Pressure,
			WindSpeed:    e.Wind.Speed,
			WindDeg:      e.Wind.Deg,
		}
		if len(e.Weather) > 0 {
			f.Condition = e.Weather[0].Main
			f.Description = e.Weather[0].Description
			f.Icon = e.Weather[0].Icon
		}
		out = append(out, f)
	}
	return out
}

func (n *ForecastNormalizer) check(dt int64, field string, v, low, high float64) {
	if v < low || v > high {
		n.log.Warn("suspect forecast value",
			zap.String("field", field),
			zap.Float64("value", v),
			zap.Int64("dt", dt))
	}
}

// CurrentFromForecast aliases the first forecast slot under current-weather names.
func CurrentFromForecast(f response_models.Forecast) response_models.CurrentWeather {
	return response_models.CurrentWeather{
		Temperature: f.TemperatureC,
		FeelsLike:   f.FeelsLikeC,
		Humidity:    f.Humidity,
		Pressure:    f.PressureHPa,
		Condition:   f.Condition,
		Description: f.Description,
		Icon:        f.Icon,
		WindSpeed:   f.WindSpeed,
		ObservedAt:  f.Time,
	}
}
