package api_models

// ForecastResponse is the 5 day / 3 hour forecast payload.
type ForecastResponse struct {
	Cod  string          `json:"cod"`
	Cnt  int             `json:"cnt"`
	List []ForecastEntry `json:"list"`
	City *ForecastCity   `json:"city,omitempty"`
}

type ForecastEntry struct {
	Dt      int64            `json:"dt"`
	Main    ForecastMain     `json:"main"`
	Weather []WeatherSummary `json:"weather"`
	Wind    Wind             `json:"wind"`
	DtTxt   string           `json:"dt_txt,omitempty"`
}

type ForecastMain struct {
	Temp      float64 `json:"temp"`
	FeelsLike float64 `json:"feels_like"`
	TempMin   float64 `json:"temp_min"`
	TempMax   float64 `json:"temp_max"`
	Pressure  float64 `json:"pressure"`
	Humidity  float64 `json:"humidity"`
}

type WeatherSummary struct {
	ID          int    `json:"id"`
	Main        string `json:"main"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

type Wind struct {
	Speed float64 `json:"speed"`
	Deg   float64 `json:"deg"`
}

type ForecastCity struct {
	Name    string `json:"name"`
	Country string `json:"country"`
}

// AirPollutionResponse mirrors the air pollution endpoint.
type AirPollutionResponse struct {
	List []AirPollutionEntry `json:"list"`
}

type AirPollutionEntry struct {
	Dt         int64              `json:"dt"`
	Main       AirPollutionMain   `json:"main"`
	Components map[string]float64 `json:"components"`
}

type AirPollutionMain struct {
	AQI int `json:"aqi"`
}
