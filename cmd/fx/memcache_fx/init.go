package memcache_fx

import (
	mem "giftly/pkg/memcache"
	"go.uber.org/fx"
)

var Module = fx.Provide(provideResultCache)

func provideResultCache() mem.ResultCacheStore {
	return mem.NewResultCache()
}
