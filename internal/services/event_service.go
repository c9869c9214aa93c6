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
	CategoryEvents = "events"

	eventsPerSearch   = 3
	eventSearchRadius = 30000
)

type EventServiceInterface = FeedService[response_models.Event]

type EventService struct {
	*Feed[response_models.Event]
	places   clients.PlacesClient
	province config.Province
	recorder PlaceRecorder
	rng      *Randomizer
	now      Clock
}

func NewEventService(places clients.PlacesClient, cfg *config.Config, recorder PlaceRecorder, rng *Randomizer, now Clock, log *zap.Logger) *EventService {
	s := &EventService{
		places:   places,
		province: cfg.Province,
		recorder: recorder,
		rng:      rng,
		now:      now,
	}
	s.Feed = NewFeed[response_models.Event](CategoryEvents, "Could not load events", s.load, log)
	return s
}

func (s *EventService) calls() []searchCall {
	p := s.province
	return []searchCall{
		nearbySearch("festival", "tourist_attraction", "festival", p.Lat, p.Lng, eventSearchRadius),
		nearbySearch("market", "tourist_attraction", "night market", p.Lat, p.Lng, eventSearchRadius),
		nearbySearch("culture", "tourist_attraction", "cultural center", p.Lat, p.Lng, eventSearchRadius),
	}
}

func (s *EventService) load(ctx context.Context) ([]response_models.Event, error) {
	found, err := searchAll(ctx, s.places, s.calls(), eventsPerSearch, nil)
	if err != nil {
		return nil, err
	}

	s.recorder.Remember(ctx, CategoryEvents, plainPlaces(found))

	today := s.now()
	out := make([]response_models.Event, 0, len(found))
	for i, sp := range found {
		tpl := pick(eventTemplates, i)
		// upcoming: roughly every few days, jittered within a week
		date := utils.OffsetDays(today, (i+1)*3+s.rng.Intn(7))
		out = append(out, response_models.Event{
			ID:          fmt.Sprintf("event-%s", sp.ID),
			PlaceID:     sp.ID,
			Title:       fmt.Sprintf(tpl.Title, sp.Name),
			Description: fmt.Sprintf(tpl.Description, sp.Name),
			Venue:       sp.Name,
			Address:     sp.AddressValue(),
			Category:    sp.Source,
			Date:        utils.FormatDateTH(date),
			Time:        tpl.Time,
			Price:       tpl.Price,
		})
	}
	return out, nil
}
