package api_models

// PlacesResponse is the envelope returned by both text and nearby search.
type PlacesResponse struct {
	Results       []PlaceResult `json:"results"`
	Status        string        `json:"status"`
	NextPageToken string        `json:"next_page_token,omitempty"`
	ErrorMessage  string        `json:"error_message,omitempty"`
}

type PlaceResult struct {
	PlaceID          string        `json:"place_id"`
	Name             string        `json:"name"`
	Types            []string      `json:"types"`
	Geometry         Geometry      `json:"geometry"`
	Rating           *float64      `json:"rating,omitempty"`
	UserRatingsTotal *int          `json:"user_ratings_total,omitempty"`
	FormattedAddress *string       `json:"formatted_address,omitempty"`
	Vicinity         *string       `json:"vicinity,omitempty"`
	OpeningHours     *OpeningHours `json:"opening_hours,omitempty"`
	BusinessStatus   *string       `json:"business_status,omitempty"`
}

type Geometry struct {
	Location LatLng `json:"location"`
}

type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type OpeningHours struct {
	OpenNow *bool `json:"open_now,omitempty"`
}
