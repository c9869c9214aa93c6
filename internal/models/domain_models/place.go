package domain_models

import (
	"tiew/internal/models/api_models"
)

type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Place is a point of interest normalized from a Places search result.
type Place struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Types       []string   `json:"types"`
	Location    Coordinate `json:"location"`
	Rating      *float64   `json:"rating,omitempty"`
	RatingCount *int       `json:"rating_count,omitempty"`
	Address     *string    `json:"address,omitempty"`
	OpenNow     *bool      `json:"open_now,omitempty"`
}

func (p Place) RatingValue() float64 {
	if p.Rating == nil {
		return 0
	}
	return *p.Rating
}

func (p Place) RatingCountValue() int {
	if p.RatingCount == nil {
		return 0
	}
	return *p.RatingCount
}

func (p Place) AddressValue() string {
	if p.Address == nil {
		return ""
	}
	return *p.Address
}

func (p Place) HasType(t string) bool {
	for _, pt := range p.Types {
		if pt == t {
			return true
		}
	}
	return false
}

// PlaceFromResult maps a raw search result. Text search fills formatted_address,
// nearby search only fills vicinity.
func PlaceFromResult(r api_models.PlaceResult) Place {
	address := r.FormattedAddress
	if address == nil {
		address = r.Vicinity
	}

	var openNow *bool
	if r.OpeningHours != nil {
		openNow = r.OpeningHours.OpenNow
	}

	types := make([]string, len(r.Types))
	copy(types, r.Types)

	return Place{
		ID:          r.PlaceID,
		Name:        r.Name,
		Types:       types,
		Location:    Coordinate{Lat: r.Geometry.Location.Lat, Lng: r.Geometry.Location.Lng},
		Rating:      r.Rating,
		RatingCount: r.UserRatingsTotal,
		Address:     address,
		OpenNow:     openNow,
	}
}

func PlacesFromResults(results []api_models.PlaceResult) []Place {
	out := make([]Place, 0, len(results))
	for _, r := range results {
		out = append(out, PlaceFromResult(r))
	}
	return out
}

// DedupPlaces drops entries whose ID was already seen; the first occurrence wins.
func DedupPlaces(places []Place) []Place {
	seen := make(map[string]bool, len(places))
	out := make([]Place, 0, len(places))
	for _, p := range places {
		if seen[p.ID] {
			continue
		}
		seen[p.ID] = true
		out = append(out, p)
	}
	return out
}
