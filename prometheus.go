package main

import (
	"github.com/garethreakes/drama-tracker/modules"

	"github.com/prometheus/client_golang/prometheus"
)

func init() {
	prometheus.MustRegister(DramaCounter)
	prometheus.MustRegister(PersonCounter)
	prometheus.MustRegister(VoteCounter)
}

var DramaCounter = prometheus.NewCounterFunc(prometheus.CounterOpts{
	Name: "drama_count",
	Help: "Count of recorded dramas",
}, func() float64 {
	count, err := modules.GetDramaCount()
	if err != nil {
		return 0
	}
	return float64(count)
})

var PersonCounter = prometheus.NewCounterFunc(prometheus.CounterOpts{
	Name: "person_count",
	Help: "Count of registered people",
}, func() float64 {
	count, err := modules.GetPersonCount()
	if err != nil {
		return 0
	}
	return float64(count)
})

var VoteCounter = prometheus.NewCounterFunc(prometheus.CounterOpts{
	Name: "vote_count",
	Help: "Count of severity votes",
}, func() float64 {
	count, err := modules.GetVoteCount()
	if err != nil {
		return 0
	}
	return float64(count)
})
