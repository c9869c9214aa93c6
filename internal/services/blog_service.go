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
	CategoryBlogs = "blogs"

	blogsPerSearch = 3
)

type BlogServiceInterface = FeedService[response_models.Blog]

type BlogService struct {
	*Feed[response_models.Blog]
	places   clients.PlacesClient
	province config.Province
	recorder PlaceRecorder
	rng      *Randomizer
	now      Clock
}

func NewBlogService(places clients.PlacesClient, cfg *config.Config, recorder PlaceRecorder, rng *Randomizer, now Clock, log *zap.Logger) *BlogService {
	s := &BlogService{
		places:   places,
		province: cfg.Province,
		recorder: recorder,
		rng:      rng,
		now:      now,
	}
	s.Feed = NewFeed[response_models.Blog](CategoryBlogs, "Could not load blog posts", s.load, log)
	return s
}

func (s *BlogService) calls() []searchCall {
	p := s.province
	return []searchCall{
		textSearch("food", "best restaurants in "+p.Name, p.Lat, p.Lng),
		textSearch("travel", "must see attractions in "+p.Name, p.Lat, p.Lng),
	}
}

func (s *BlogService) load(ctx context.Context) ([]response_models.Blog, error) {
	found, err := searchAll(ctx, s.places, s.calls(), blogsPerSearch, nil)
	if err != nil {
		return nil, err
	}

	s.recorder.Remember(ctx, CategoryBlogs, plainPlaces(found))

	today := s.now()
	out := make([]response_models.Blog, 0, len(found))
	for i, sp := range found {
		tpl := pick(blogTemplates, i)
		published := utils.OffsetDays(today, -(i*2 + 1 + s.rng.Intn(5)))
		out = append(out, response_models.Blog{
			ID:          fmt.Sprintf("blog-%s", sp.ID),
			PlaceID:     sp.ID,
			Title:       fmt.Sprintf(tpl.Title, sp.Name),
			Excerpt:     fmt.Sprintf(tpl.Excerpt, sp.Name),
			Author:      pick(blogAuthors, i),
			Category:    sp.Source,
			PublishedAt: utils.FormatDateTH(published),
			ReadTime:    fmt.Sprintf("%d min", 4+i%5),
			PlaceName:   sp.Name,
			Rating:      sp.RatingValue(),
		})
	}
	return out, nil
}
