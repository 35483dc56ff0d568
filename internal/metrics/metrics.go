// Package metrics holds the Prometheus counters for gameplay.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RoundsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wordle_rounds_total",
			Help: "Total number of finished rounds by result.",
		},
		[]string{"result"},
	)

	GuessesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "wordle_guesses_total",
		Help: "Total number of accepted guesses.",
	})

	GuessRejectionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wordle_guess_rejections_total",
			Help: "Total number of rejected guesses by reason.",
		},
		[]string{"reason"},
	)
)
