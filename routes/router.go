package routes

import (
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func NewRouter() chi.Router {
	r := chi.NewRouter()

	r.Use(CountRequests)
	r.Use(httprate.LimitByIP(300, time.Minute))

	r.Route("/api", func(r chi.Router) {
		// login gets a tighter limit than everything else
		r.With(httprate.LimitByIP(10, time.Minute)).Post("/auth/login", Login)
		r.Post("/auth/logout", Logout)
		r.Get("/auth/me", Me)

		r.Get("/people", GetPeople)
		r.Post("/people", AddPerson)
		r.Get("/people/{id}", GetPerson)
		r.Put("/people/{id}", UpdatePerson)
		r.Delete("/people/{id}", DeletePerson)
		r.Patch("/people/{id}/password", ChangePassword)

		r.Get("/dramas", GetDramas)
		r.Post("/dramas", AddDrama)
		r.Get("/dramas/{id}", GetDrama)
		r.Put("/dramas/{id}", UpdateDrama)
		r.Delete("/dramas/{id}", DeleteDrama)
		r.Patch("/dramas/{id}/finish", FinishDrama)

		r.Get("/dramas/{id}/vote", GetVotingState)
		r.Post("/dramas/{id}/vote", SubmitVote)

		r.Get("/statistics", GetStatistics)

		r.Route("/admin", func(r chi.Router) {
			r.Use(AdminMiddleware)
			r.Get("/filters", GetFilters)
			r.Post("/filters", AddFilter)
			r.Delete("/filters", DeleteFilter)
		})
	})

	r.Handle("/metrics", promhttp.Handler())

	return r
}
