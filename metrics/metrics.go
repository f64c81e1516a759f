package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Reasons a submitted action is ignored
const (
	IgnoredEmptyDeck     = "empty_deck"
	IgnoredInTransition  = "in_transition"
	IgnoredInvalidAction = "invalid_action"
	IgnoredNoGesture     = "below_threshold"
)

var (
	SwipesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "heartwave_swipes_total",
			Help: "Total number of resolved card judgments",
		},
		[]string{"action"},
	)

	SwipesIgnored = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "heartwave_swipes_ignored_total",
			Help: "Submitted judgments that were absorbed without effect",
		},
		[]string{"reason"},
	)

	SessionsActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "heartwave_sessions_active",
			Help: "Number of live swipe sessions",
		},
	)
)
