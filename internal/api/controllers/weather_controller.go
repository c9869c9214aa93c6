package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"tiew/internal/models/request_models"
	"tiew/internal/services"
	"tiew/pkg/utils"
)

type WeatherController struct {
	weather services.WeatherServiceInterface
	log     *zap.Logger
}

func NewWeatherController(weather services.WeatherServiceInterface, log *zap.Logger) *WeatherController {
	return &WeatherController{weather: weather, log: log}
}

// GetForecast godoc
// @Summary Five day forecast
// @Description Forecast in 3 hour slots, temperatures normalized to Celsius
// @Tags Weather
// @Produce json
// @Param lat query number true "Latitude"
// @Param lng query number true "Longitude"
// @Success 200 {object} utils.APIResponse{data=[]response_models.Forecast}
// @Failure 400 {object} utils.APIResponse
// @Failure 502 {object} utils.APIResponse
// @Router /api/weather/forecast [get]
func (w *WeatherController) GetForecast(c *gin.Context) {
	var q request_models.CoordinatesQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid coordinates")
		return
	}

	forecast, err := w.weather.Forecast(c.Request.Context(), q.Latitude, q.Longitude)
	if err != nil {
		utils.HandleServiceError(c, w.log, err)
		return
	}

	utils.RespondSuccess(c, forecast, "Fetched forecast successfully")
}

// GetCurrent godoc
// @Summary Current weather
// @Description The first forecast slot under current-weather names
// @Tags Weather
// @Produce json
// @Param lat query number true "Latitude"
// @Param lng query number true "Longitude"
// @Success 200 {object} utils.APIResponse{data=response_models.CurrentWeather}
// @Failure 400 {object} utils.APIResponse
// @Failure 502 {object} utils.APIResponse
// @Router /api/weather/current [get]
func (w *WeatherController) GetCurrent(c *gin.Context) {
	var q request_models.CoordinatesQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid coordinates")
		return
	}

	current, err := w.weather.Current(c.Request.Context(), q.Latitude, q.Longitude)
	if err != nil {
		utils.HandleServiceError(c, w.log, err)
		return
	}

	utils.RespondSuccess(c, current, "Fetched current weather successfully")
}

// GetAirQuality godoc
// @Summary Air quality
// @Tags Weather
// @Produce json
// @Param place query string true "Place name"
// @Success 200 {object} utils.APIResponse{data=response_models.AirQuality}
// @Failure 400 {object} utils.APIResponse
// @Failure 502 {object} utils.APIResponse
// @Router /api/weather/air [get]
func (w *WeatherController) GetAirQuality(c *gin.Context) {
	var q request_models.AirQualityQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid place")
		return
	}

	air, err := w.weather.AirQuality(c.Request.Context(), q.Place)
	if err != nil {
		utils.HandleServiceError(c, w.log, err)
		return
	}

	utils.RespondSuccess(c, air, "Fetched air quality successfully")
}
