// pkg/mem/place_cache.go
package mem

import (
	"sync"
	"time"

	"tiew/internal/models/domain_models"
)

type PlaceCache interface {
	Set(place domain_models.Place, category string, ttl time.Duration)

	// Get returns the place for id if present and not expired.
	Get(id string) (domain_models.Place, string, bool)

	Len() int
}

type entry struct {
	place     domain_models.Place
	category  string
	expiresAt time.Time
}

type Places struct {
	mu   sync.RWMutex
	data map[string]entry
	now  func() time.Time
}

func NewPlaces() *Places {
	return &Places{
		data: make(map[string]entry),
		now:  time.Now,
	}
}

func (s *Places) Set(place domain_models.Place, category string, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[place.ID] = entry{
		place:     place,
		category:  category,
		expiresAt: s.now().Add(ttl),
	}
}

func (s *Places) Get(id string) (domain_models.Place, string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.data[id]
	if !ok {
		return domain_models.Place{}, "", false
	}
	if s.now().After(e.expiresAt) {
		delete(s.data, id) // cleanup expired
		return domain_models.Place{}, "", false
	}
	return e.place, e.category, true
}

func (s *Places) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}
