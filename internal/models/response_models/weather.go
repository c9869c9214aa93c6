package response_models

type Forecast struct {
	Time         string  `json:"time"`
	Timestamp    int64   `json:"timestamp"`
	TemperatureC float64 `json:"temperature_c"`
	FeelsLikeC   float64 `json:"feels_like_c"`
	TempMinC     float64 `json:"temp_min_c"`
	TempMaxC     float64 `json:"temp_max_c"`
	Humidity     float64 `json:"humidity"`
	PressureHPa  float64 `json:"pressure_hpa"`
	Condition    string  `json:"condition"`
	Description  string  `json:"description"`
	Icon         string  `json:"icon"`
	WindSpeed    float64 `json:"wind_speed"`
	WindDeg      float64 `json:"wind_deg"`
}

// CurrentWeather is the first forecast slot exposed under current-weather names.
type CurrentWeather struct {
	Temperature float64 `json:"temperature"`
	FeelsLike   float64 `json:"feels_like"`
	Humidity    float64 `json:"humidity"`
	Pressure    float64 `json:"pressure"`
	Condition   string  `json:"condition"`
	Description string  `json:"description"`
	Icon        string  `json:"icon"`
	WindSpeed   float64 `json:"wind_speed"`
	ObservedAt  string  `json:"observed_at"`
}

type AirQuality struct {
	Place      string             `json:"place"`
	AQI        int                `json:"aqi"`
	Level      string             `json:"level"`
	Components map[string]float64 `json:"components"`
	MeasuredAt string             `json:"measured_at"`
}
