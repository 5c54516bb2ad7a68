package routes

import (
	"net/http"
	"time"

	"github.com/garethreakes/drama-tracker/common"
	"github.com/garethreakes/drama-tracker/modules"

	"github.com/patrickmn/go-cache"
)

// GetStatistics serves the aggregate bundle. The computation is pure over the
// drama history, so the result is cached briefly and dropped on any mutation.
func GetStatistics(w http.ResponseWriter, r *http.Request) {
	if cached, found := common.Cache.Get(common.StatisticsCacheKey); found {
		common.SendStructResponse(w, cached.(modules.Statistics))
		return
	}

	dramas, err := modules.GetDramas()
	if err != nil {
		Error(w, err)
		return
	}
	people, err := modules.GetPeople()
	if err != nil {
		Error(w, err)
		return
	}

	stats := modules.CalculateStatistics(dramas, people, time.Now())

	common.Cache.Set(common.StatisticsCacheKey, stats, cache.DefaultExpiration)
	common.SendStructResponse(w, stats)
}
