// Package metrics exposes the Prometheus collectors for the analytics surface.
package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	// OutcomeOK labels gateway calls that produced a usable response.
	OutcomeOK = "ok"
	// OutcomeUnavailable labels gateway calls that failed and triggered a fallback.
	OutcomeUnavailable = "unavailable"
	// OutcomeFallback labels requests served entirely by a deterministic fallback path.
	OutcomeFallback = "fallback"
)

var (
	requestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "shopsight",
			Name:      "requests_total",
			Help:      "Total number of API requests, partitioned by route and status code.",
		},
		[]string{"route", "status"},
	)

	gatewayCallsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "shopsight",
			Name:      "gateway_calls_total",
			Help:      "Language-model gateway calls, partitioned by operation and outcome.",
		},
		[]string{"operation", "outcome"},
	)
)

// Register attaches the collectors to the supplied Prometheus registerer.
func Register(reg prometheus.Registerer) error {
	collectors := []prometheus.Collector{
		requestsTotal,
		gatewayCallsTotal,
	}

	for _, collector := range collectors {
		if err := reg.Register(collector); err != nil {
			if _, ok := err.(prometheus.AlreadyRegisteredError); ok {
				continue
			}
			return err
		}
	}
	return nil
}

// ObserveRequest records one handled API request.
func ObserveRequest(route string, status int) {
	requestsTotal.WithLabelValues(route, strconv.Itoa(status)).Inc()
}

// ObserveGateway records one gateway call or fallback decision.
func ObserveGateway(operation, outcome string) {
	gatewayCallsTotal.WithLabelValues(operation, outcome).Inc()
}
