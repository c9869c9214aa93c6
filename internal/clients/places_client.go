package clients

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"tiew/internal/config"
	"tiew/internal/models/api_models"
)

const (
	textSearchPath   = "/maps/api/place/textsearch/json"
	nearbySearchPath = "/maps/api/place/nearbysearch/json"

	DefaultRadiusMeters = 50000
	DefaultLanguage     = "th"
	DefaultRegion       = "th"
)

// TextSearchParams maps to {query, location, radius, opennow, language, region}.
type TextSearchParams struct {
	Query    string
	Lat, Lng float64
	Radius   int
	OpenNow  bool
	Language string
	Region   string
}

// NearbySearchParams maps to {location, radius, type, keyword, language}.
type NearbySearchParams struct {
	Lat, Lng float64
	Radius   int
	Type     string
	Keyword  string
	Language string
}

type PlacesClient interface {
	TextSearch(ctx context.Context, p TextSearchParams) ([]api_models.PlaceResult, error)
	NearbySearch(ctx context.Context, p NearbySearchParams) ([]api_models.PlaceResult, error)
}

type placesClient struct {
	http HTTPGetter
	host string
}

func NewPlacesClient(http HTTPGetter, cfg *config.Config) PlacesClient {
	return &placesClient{http: http, host: cfg.RapidAPI.PlacesHost}
}

func (c *placesClient) TextSearch(ctx context.Context, p TextSearchParams) ([]api_models.PlaceResult, error) {
	q := url.Values{}
	q.Set("query", p.Query)
	if p.Lat != 0 || p.Lng != 0 {
		q.Set("location", formatLocation(p.Lat, p.Lng))
	}
	q.Set("radius", strconv.Itoa(withDefaultInt(p.Radius, DefaultRadiusMeters)))
	if p.OpenNow {
		q.Set("opennow", "true")
	}
	q.Set("language", withDefault(p.Language, DefaultLanguage))
	q.Set("region", withDefault(p.Region, DefaultRegion))

	var payload api_models.PlacesResponse
	if err := c.http.Get(ctx, c.host, textSearchPath, q, &payload); err != nil {
		return nil, err
	}
	return payload.Results, nil
}

func (c *placesClient) NearbySearch(ctx context.Context, p NearbySearchParams) ([]api_models.PlaceResult, error) {
	q := url.Values{}
	q.Set("location", formatLocation(p.Lat, p.Lng))
	q.Set("radius", strconv.Itoa(withDefaultInt(p.Radius, DefaultRadiusMeters)))
	if p.Type != "" {
		q.Set("type", p.Type)
	}
	if p.Keyword != "" {
		q.Set("keyword", p.Keyword)
	}
	q.Set("language", withDefault(p.Language, DefaultLanguage))

	var payload api_models.PlacesResponse
	if err := c.http.Get(ctx, c.host, nearbySearchPath, q, &payload); err != nil {
		return nil, err
	}
	return payload.Results, nil
}

func formatLocation(lat, lng float64) string {
	return fmt.Sprintf("%f,%f", lat, lng)
}

func withDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func withDefaultInt(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}
