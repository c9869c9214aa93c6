package request_models

type ChangeLanguageRequest struct {
	Language string `json:"language" form:"language" binding:"required,oneof=th en"`
}

type CoordinatesQuery struct {
	Latitude  float64 `form:"lat"`
	Longitude float64 `form:"lng"`
}

type AirQualityQuery struct {
	Place string `form:"place"`
}

// RedirectForm carries the page a form post should return to.
type RedirectForm struct {
	Redirect string `form:"redirect"`
}
