package common

import (
	"time"

	"github.com/patrickmn/go-cache"
)

const (
	PeopleCacheKey     = "people"
	StatisticsCacheKey = "statistics"
)

var Cache *cache.Cache

func InitCache() {
	Cache = cache.New(time.Minute, 10*time.Minute)
}
