package memcache_fx

import (
	"go.uber.org/fx"
	mem "tiew/pkg/memcache"
)

var Module = fx.Provide(providePlaceCache)

func providePlaceCache() mem.PlaceCache {
	return mem.NewPlaces()
}
