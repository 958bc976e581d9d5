package request

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "canvas_client",
			Name:      "requests_total",
			Help:      "API requests issued, by operation.",
		},
		[]string{"operation"},
	)

	requestFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "canvas_client",
			Name:      "request_failures_total",
			Help:      "API requests that failed in transport or with status >= 400.",
		},
		[]string{"operation"},
	)
)
