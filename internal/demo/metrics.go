package demo

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type metrics struct {
	pagesServed    prometheus.Counter
	feedClients    prometheus.Gauge
	updatesSent    prometheus.Counter
	websocketError *prometheus.CounterVec
}

func newMetrics(reg prometheus.Registerer) *metrics {
	factory := promauto.With(reg)

	return &metrics{
		pagesServed: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "charttooltip",
			Subsystem: "demo",
			Name:      "pages_served_total",
			Help:      "Total number of demo pages served",
		}),
		feedClients: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "charttooltip",
			Subsystem: "demo",
			Name:      "feed_clients",
			Help:      "Number of connected series feed clients",
		}),
		updatesSent: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "charttooltip",
			Subsystem: "demo",
			Name:      "series_updates_total",
			Help:      "Total number of series updates pushed to clients",
		}),
		websocketError: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "charttooltip",
			Subsystem: "demo",
			Name:      "websocket_errors_total",
			Help:      "Total WebSocket errors by type",
		}, []string{"type"}),
	}
}
