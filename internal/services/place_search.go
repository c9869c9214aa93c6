package services

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
	"tiew/internal/clients"
	"tiew/internal/models/api_models"
	"tiew/internal/models/domain_models"
)

// searchCall is one sub-request of a feed, tagged with the label it contributes.
type searchCall struct {
	Source string
	Run    func(ctx context.Context, places clients.PlacesClient) ([]api_models.PlaceResult, error)
}

type sourcedPlace struct {
	domain_models.Place
	Source string
}

func textSearch(source, query string, lat, lng float64) searchCall {
	return searchCall{
		Source: source,
		Run: func(ctx context.Context, places clients.PlacesClient) ([]api_models.PlaceResult, error) {
			return places.TextSearch(ctx, clients.TextSearchParams{Query: query, Lat: lat, Lng: lng})
		},
	}
}

func nearbySearch(source, placeType, keyword string, lat, lng float64, radius int) searchCall {
	return searchCall{
		Source: source,
		Run: func(ctx context.Context, places clients.PlacesClient) ([]api_models.PlaceResult, error) {
			return places.NearbySearch(ctx, clients.NearbySearchParams{
				Lat: lat, Lng: lng, Radius: radius, Type: placeType, Keyword: keyword,
			})
		},
	}
}

// searchAll runs every call concurrently and waits for all of them. The first
// error fails the batch. Each result list is filtered, cut to limit, then the
// lists are concatenated in call order and deduplicated by place id.
func searchAll(
	ctx context.Context,
	places clients.PlacesClient,
	calls []searchCall,
	limit int,
	keep func(domain_models.Place) bool,
) ([]sourcedPlace, error) {
	results := make([][]api_models.PlaceResult, len(calls))

	g, gctx := errgroup.WithContext(ctx)
	for i, call := range calls {
		i, call := i, call
		g.Go(func() error {
			res, err := call.Run(gctx, places)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	merged := make([]sourcedPlace, 0, len(calls)*limit)
	for i, res := range results {
		taken := 0
		for _, raw := range res {
			if taken == limit {
				break
			}
			p := domain_models.PlaceFromResult(raw)
			if keep != nil && !keep(p) {
				continue
			}
			merged = append(merged, sourcedPlace{Place: p, Source: calls[i].Source})
			taken++
		}
	}

	seen := make(map[string]bool, len(merged))
	out := merged[:0]
	for _, sp := range merged {
		if seen[sp.ID] {
			continue
		}
		seen[sp.ID] = true
		out = append(out, sp)
	}
	return out, nil
}

func plainPlaces(sourced []sourcedPlace) []domain_models.Place {
	out := make([]domain_models.Place, len(sourced))
	for i, sp := range sourced {
		out[i] = sp.Place
	}
	return out
}

// Randomizer is the jitter source for synthesized dates. Safe for concurrent use.
type Randomizer struct {
	mu sync.Mutex
	r  *rand.Rand
}

func NewRandomizer(seed int64) *Randomizer {
	return &Randomizer{r: rand.New(rand.NewSource(seed))}
}

func NewTimeSeededRandomizer() *Randomizer {
	return NewRandomizer(time.Now().UnixNano())
}

// Intn returns a value in [0, n). n <= 0 yields 0.
func (r *Randomizer) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.r.Intn(n)
}

// Clock returns the current time; tests pin it.
type Clock func() time.Time
