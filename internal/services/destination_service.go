package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"tiew/internal/clients"
	"tiew/internal/config"
	"tiew/internal/models/domain_models"
	"tiew/internal/models/response_models"
)

const (
	CategoryDestinations = "destinations"

	destinationsPerSearch = 4
	MinDestinationRating  = 4.0
)

type DestinationServiceInterface = FeedService[response_models.Destination]

type DestinationService struct {
	*Feed[response_models.Destination]
	places   clients.PlacesClient
	province config.Province
	recorder PlaceRecorder
}

func NewDestinationService(places clients.PlacesClient, cfg *config.Config, recorder PlaceRecorder, log *zap.Logger) *DestinationService {
	s := &DestinationService{
		places:   places,
		province: cfg.Province,
		recorder: recorder,
	}
	s.Feed = NewFeed[response_models.Destination](CategoryDestinations, "Could not load destinations", s.load, log)
	return s
}

func (s *DestinationService) calls() []searchCall {
	p := s.province
	return []searchCall{
		textSearch("attraction", "tourist attractions in "+p.Name, p.Lat, p.Lng),
		textSearch("temple", "temples in "+p.Name, p.Lat, p.Lng),
		textSearch("nature", "national parks and waterfalls in "+p.Name, p.Lat, p.Lng),
	}
}

func (s *DestinationService) load(ctx context.Context) ([]response_models.Destination, error) {
	found, err := searchAll(ctx, s.places, s.calls(), destinationsPerSearch, func(p domain_models.Place) bool {
		return p.RatingValue() >= MinDestinationRating
	})
	if err != nil {
		return nil, err
	}

	s.recorder.Remember(ctx, CategoryDestinations, plainPlaces(found))

	out := make([]response_models.Destination, 0, len(found))
	for i, sp := range found {
		tpl := pick(destinationTemplates, i)
		out = append(out, response_models.Destination{
			ID:          sp.ID,
			Name:        sp.Name,
			Category:    sp.Source,
			Rating:      sp.RatingValue(),
			RatingCount: sp.RatingCountValue(),
			Address:     sp.AddressValue(),
			OpenNow:     sp.OpenNow,
			Latitude:    sp.Location.Lat,
			Longitude:   sp.Location.Lng,
			Badge:       tpl.Badge,
			Description: fmt.Sprintf(tpl.Description, sp.Name, s.province.Name, sp.RatingValue(), sp.RatingCountValue()),
			Highlights:  append([]string(nil), tpl.Highlights...),
		})
	}
	return out, nil
}
