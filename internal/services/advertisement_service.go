package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"tiew/internal/clients"
	"tiew/internal/config"
	"tiew/internal/models/response_models"
	"tiew/pkg/utils"
)

const (
	CategoryAdvertisements = "advertisements"

	// one slot per search so that hotel, restaurant and shopping line up with the template table
	advertisementsPerSearch = 1
)

type AdvertisementServiceInterface = FeedService[response_models.Advertisement]

type AdvertisementService struct {
	*Feed[response_models.Advertisement]
	places   clients.PlacesClient
	province config.Province
	recorder PlaceRecorder
	rng      *Randomizer
	now      Clock
}

func NewAdvertisementService(places clients.PlacesClient, cfg *config.Config, recorder PlaceRecorder, rng *Randomizer, now Clock, log *zap.Logger) *AdvertisementService {
	s := &AdvertisementService{
		places:   places,
		province: cfg.Province,
		recorder: recorder,
		rng:      rng,
		now:      now,
	}
	s.Feed = NewFeed[response_models.Advertisement](CategoryAdvertisements, "Could not load offers", s.load, log)
	return s
}

func (s *AdvertisementService) calls() []searchCall {
	p := s.province
	return []searchCall{
		textSearch("hotel", "hotels in "+p.Name, p.Lat, p.Lng),
		textSearch("restaurant", "restaurants in "+p.Name, p.Lat, p.Lng),
		textSearch("shopping", "shopping malls in "+p.Name, p.Lat, p.Lng),
	}
}

func (s *AdvertisementService) load(ctx context.Context) ([]response_models.Advertisement, error) {
	found, err := searchAll(ctx, s.places, s.calls(), advertisementsPerSearch, nil)
	if err != nil {
		return nil, err
	}

	s.recorder.Remember(ctx, CategoryAdvertisements, plainPlaces(found))

	today := s.now()
	out := make([]response_models.Advertisement, 0, len(found))
	for i, sp := range found {
		tpl := pick(advertisementTemplates, i)
		validUntil := utils.OffsetDays(today, 14+i*7+s.rng.Intn(7))
		out = append(out, response_models.Advertisement{
			ID:          fmt.Sprintf("ad-%s", sp.ID),
			PlaceID:     sp.ID,
			Title:       fmt.Sprintf(tpl.Title, sp.Name),
			Description: fmt.Sprintf(tpl.Description, sp.Name),
			Category:    tpl.Category,
			Price:       tpl.Price,
			Badge:       tpl.Badge,
			Rating:      sp.RatingValue(),
			Address:     sp.AddressValue(),
			ValidUntil:  utils.FormatDateTH(validUntil),
		})
	}
	return out, nil
}
