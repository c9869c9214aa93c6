package services

import (
	"context"
	"fmt"
	"time"

	"github.com/lib/pq"
	"go.uber.org/zap"
	"tiew/internal/models/db_models"
	"tiew/internal/models/domain_models"
	"tiew/internal/models/response_models"
	"tiew/internal/repositories"
	mem "tiew/pkg/memcache"
	"tiew/pkg/utils"
)

const placeCacheTTL = 24 * time.Hour

// PlaceRecorder receives every place a feed produced. Failures are logged only.
type PlaceRecorder interface {
	Remember(ctx context.Context, category string, places []domain_models.Place)
}

type PlaceServiceInterface interface {
	PlaceRecorder
	GetPlace(ctx context.Context, id string) (response_models.PlaceDetail, error)
}

type PlaceService struct {
	cache mem.PlaceCache
	repo  repositories.PlaceCacheRepository
	log   *zap.Logger
}

func NewPlaceService(cache mem.PlaceCache, repo repositories.PlaceCacheRepository, log *zap.Logger) *PlaceService {
	return &PlaceService{cache: cache, repo: repo, log: log}
}

func (s *PlaceService) Remember(ctx context.Context, category string, places []domain_models.Place) {
	if len(places) == 0 {
		return
	}

	rows := make([]db_models.CachedPlace, 0, len(places))
	for _, p := range places {
		s.cache.Set(p, category, placeCacheTTL)
		rows = append(rows, toCachedPlace(p, category))
	}

	if err := s.repo.UpsertPlaces(ctx, rows); err != nil {
		s.log.Warn("persisting places failed", zap.String("category", category), zap.Int("count", len(rows)), zap.Error(err))
	}
}

func (s *PlaceService) GetPlace(ctx context.Context, id string) (response_models.PlaceDetail, error) {
	if p, category, ok := s.cache.Get(id); ok {
		return toPlaceDetail(p, category), nil
	}

	row, err := s.repo.GetByPlaceID(ctx, id)
	if err != nil {
		s.log.Error("reading cached place failed", zap.String("place_id", id), zap.Error(err))
		return response_models.PlaceDetail{}, utils.ErrDatabaseError
	}
	if row == nil {
		return response_models.PlaceDetail{}, utils.ErrPlaceNotFound
	}

	p := fromCachedPlace(*row)
	s.cache.Set(p, row.Category, placeCacheTTL)
	return toPlaceDetail(p, row.Category), nil
}

func toCachedPlace(p domain_models.Place, category string) db_models.CachedPlace {
	return db_models.CachedPlace{
		PlaceID:     p.ID,
		Name:        p.Name,
		Types:       pq.StringArray(p.Types),
		Latitude:    p.Location.Lat,
		Longitude:   p.Location.Lng,
		Rating:      p.Rating,
		RatingCount: p.RatingCount,
		Address:     p.Address,
		OpenNow:     p.OpenNow,
		Category:    category,
	}
}

func fromCachedPlace(row db_models.CachedPlace) domain_models.Place {
	return domain_models.Place{
		ID:          row.PlaceID,
		Name:        row.Name,
		Types:       []string(row.Types),
		Location:    domain_models.Coordinate{Lat: row.Latitude, Lng: row.Longitude},
		Rating:      row.Rating,
		RatingCount: row.RatingCount,
		Address:     row.Address,
		OpenNow:     row.OpenNow,
	}
}

func toPlaceDetail(p domain_models.Place, category string) response_models.PlaceDetail {
	return response_models.PlaceDetail{
		ID:          p.ID,
		Name:        p.Name,
		Category:    category,
		Types:       p.Types,
		Latitude:    p.Location.Lat,
		Longitude:   p.Location.Lng,
		Rating:      p.Rating,
		RatingCount: p.RatingCount,
		Address:     p.AddressValue(),
		OpenNow:     p.OpenNow,
		MapURL: fmt.Sprintf("https://www.google.com/maps/search/?api=1&query=%f,%f&query_place_id=%s",
			p.Location.Lat, p.Location.Lng, p.ID),
	}
}
