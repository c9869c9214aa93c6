package clients

import (
	"context"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"tiew/internal/config"
	"tiew/internal/models/api_models"
)

type recordingGetter struct {
	host   string
	path   string
	params url.Values
	fill   func(out any)
}

func (r *recordingGetter) Get(_ context.Context, host, path string, params url.Values, out any) error {
	r.host, r.path, r.params = host, path, params
	if r.fill != nil {
		r.fill(out)
	}
	return nil
}

func testConfig() *config.Config {
	return &config.Config{RapidAPI: config.RapidAPIConfig{PlacesHost: "places.test", WeatherHost: "weather.test"}}
}

func TestTextSearchAppliesDefaults(t *testing.T) {
	g := &recordingGetter{fill: func(out any) {
		out.(*api_models.PlacesResponse).Results = []api_models.PlaceResult{{PlaceID: "1"}}
	}}
	c := NewPlacesClient(g, testConfig())

	results, err := c.TextSearch(context.Background(), TextSearchParams{Query: "hotels in Chiang Mai"})

	require.NoError(t, err)
	assert.Len(t, results, 1)
	assert.Equal(t, "places.test", g.host)
	assert.Equal(t, textSearchPath, g.path)
	assert.Equal(t, "hotels in Chiang Mai", g.params.Get("query"))
	assert.Equal(t, "50000", g.params.Get("radius"))
	assert.Equal(t, "th", g.params.Get("language"))
	assert.Equal(t, "th", g.params.Get("region"))
	assert.Empty(t, g.params.Get("location"))
	assert.Empty(t, g.params.Get("opennow"))
}

func TestNearbySearchParams(t *testing.T) {
	g := &recordingGetter{}
	c := NewPlacesClient(g, testConfig())

	_, err := c.NearbySearch(context.Background(), NearbySearchParams{
		Lat: 18.5, Lng: 98.25, Radius: 1000, Type: "tourist_attraction", Keyword: "festival", Language: "en",
	})

	require.NoError(t, err)
	assert.Equal(t, nearbySearchPath, g.path)
	assert.Equal(t, "18.500000,98.250000", g.params.Get("location"))
	assert.Equal(t, "1000", g.params.Get("radius"))
	assert.Equal(t, "tourist_attraction", g.params.Get("type"))
	assert.Equal(t, "festival", g.params.Get("keyword"))
	assert.Equal(t, "en", g.params.Get("language"))
}

func TestWeatherClientParams(t *testing.T) {
	g := &recordingGetter{}
	c := NewWeatherClient(g, testConfig())

	_, err := c.Forecast(context.Background(), 18.79, 98.98, "")
	require.NoError(t, err)
	assert.Equal(t, "weather.test", g.host)
	assert.Equal(t, forecastPath, g.path)
	assert.Equal(t, "18.79", g.params.Get("latitude"))
	assert.Equal(t, "98.98", g.params.Get("longitude"))
	assert.Equal(t, "EN", g.params.Get("lang"))

	_, err = c.AirPollution(context.Background(), "Chiang Mai", "", "", "")
	require.NoError(t, err)
	assert.Equal(t, airPollutionPath, g.path)
	assert.Equal(t, "Chiang Mai", g.params.Get("place"))
	assert.Equal(t, "metric", g.params.Get("units"))
	assert.Equal(t, "json", g.params.Get("mode"))
}
