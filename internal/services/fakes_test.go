package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"tiew/internal/clients"
	"tiew/internal/config"
	"tiew/internal/models/api_models"
	"tiew/internal/models/domain_models"
)

// fakePlaces answers by text query or nearby keyword.
type fakePlaces struct {
	mu      sync.Mutex
	results map[string][]api_models.PlaceResult
	errs    map[string]error
	calls   []string
}

func newFakePlaces() *fakePlaces {
	return &fakePlaces{
		results: map[string][]api_models.PlaceResult{},
		errs:    map[string]error{},
	}
}

func (f *fakePlaces) answer(key string) ([]api_models.PlaceResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, key)
	if err, ok := f.errs[key]; ok {
		return nil, err
	}
	return f.results[key], nil
}

func (f *fakePlaces) TextSearch(_ context.Context, p clients.TextSearchParams) ([]api_models.PlaceResult, error) {
	return f.answer(p.Query)
}

func (f *fakePlaces) NearbySearch(_ context.Context, p clients.NearbySearchParams) ([]api_models.PlaceResult, error) {
	return f.answer(p.Keyword)
}

// gatedPlaces runs before ahead of every answer so tests can hold or fail a search.
type gatedPlaces struct {
	*fakePlaces
	before func(key string) error
}

func (g *gatedPlaces) TextSearch(ctx context.Context, p clients.TextSearchParams) ([]api_models.PlaceResult, error) {
	if err := g.before(p.Query); err != nil {
		return nil, err
	}
	return g.answer(p.Query)
}

func (g *gatedPlaces) NearbySearch(ctx context.Context, p clients.NearbySearchParams) ([]api_models.PlaceResult, error) {
	if err := g.before(p.Keyword); err != nil {
		return nil, err
	}
	return g.answer(p.Keyword)
}

// barrier releases its callers once n of them have arrived.
type barrier struct {
	mu      sync.Mutex
	n       int
	arrived int
	all     chan struct{}
}

func newBarrier(n int) *barrier {
	return &barrier{n: n, all: make(chan struct{})}
}

func (b *barrier) arrive(timeout time.Duration) error {
	b.mu.Lock()
	b.arrived++
	if b.arrived == b.n {
		close(b.all)
	}
	b.mu.Unlock()

	select {
	case <-b.all:
		return nil
	case <-time.After(timeout):
		return fmt.Errorf("only %d of %d searches in flight", b.count(), b.n)
	}
}

func (b *barrier) count() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.arrived
}

type recordedPlaces struct {
	mu    sync.Mutex
	byCat map[string][]domain_models.Place
}

func newRecorder() *recordedPlaces {
	return &recordedPlaces{byCat: map[string][]domain_models.Place{}}
}

func (r *recordedPlaces) Remember(_ context.Context, category string, places []domain_models.Place) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byCat[category] = append(r.byCat[category], places...)
}

func rated(id, name string, rating float64) api_models.PlaceResult {
	addr := name + " road"
	return api_models.PlaceResult{
		PlaceID:          id,
		Name:             name,
		Rating:           &rating,
		FormattedAddress: &addr,
		Geometry:         api_models.Geometry{Location: api_models.LatLng{Lat: 18.79, Lng: 98.98}},
	}
}

func placesWithPrefix(prefix string, n int, rating float64) []api_models.PlaceResult {
	out := make([]api_models.PlaceResult, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, rated(fmt.Sprintf("%s-%d", prefix, i), fmt.Sprintf("%s %d", prefix, i), rating))
	}
	return out
}

func testProvinceConfig() *config.Config {
	return &config.Config{Province: config.Province{Name: "Chiang Mai", Lat: 18.7883, Lng: 98.9853}}
}

var fixedNow = func() time.Time {
	return time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC)
}
