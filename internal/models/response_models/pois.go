package response_models

type PlaceDetail struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Types       []string `json:"types"`
	Latitude    float64  `json:"latitude"`
	Longitude   float64  `json:"longitude"`
	Rating      *float64 `json:"rating,omitempty"`
	RatingCount *int     `json:"rating_count,omitempty"`
	Address     string   `json:"address"`
	OpenNow     *bool    `json:"open_now,omitempty"`
	MapURL      string   `json:"map_url"`
}
