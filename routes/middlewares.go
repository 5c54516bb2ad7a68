package routes

import (
	"net/http"

	"github.com/garethreakes/drama-tracker/common"

	"github.com/prometheus/client_golang/prometheus"
)

var TotalRequestCounter = prometheus.NewCounter(prometheus.CounterOpts{
	Name: "total_request",
	Help: "Total request count",
})

func init() {
	prometheus.MustRegister(TotalRequestCounter)
}

func CountRequests(handler http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		TotalRequestCounter.Inc()
		handler.ServeHTTP(w, r)
	})
}

func AdminMiddleware(handler http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := r.Header.Get("Authorization")
		if common.Config.AdminToken != "" && token == common.Config.AdminToken {
			handler.ServeHTTP(w, r)
			return
		}

		person, err := Authorize(r)
		if err != nil || !person.IsAdmin {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		handler.ServeHTTP(w, r)
	})
}
