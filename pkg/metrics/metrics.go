package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Director request metrics
	RequestTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pd_request_total",
			Help: "Total number of requests sent to the placement director by operation and outcome",
		},
		[]string{"op", "outcome"},
	)

	// Directive metrics
	HeartbeatTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pd_heartbeat_total",
			Help: "Total number of directives received on the heartbeat response stream by kind",
		},
		[]string{"kind"},
	)

	// Peer validation metrics
	ValidatePeerTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pd_validate_peer_total",
			Help: "Total number of peer validations by verdict",
		},
		[]string{"verdict"},
	)

	// Store capacity metrics
	StoreSizeBytes = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "store_size_bytes",
			Help: "Store capacity and available space in bytes",
		},
		[]string{"kind"},
	)
)

func init() {
	prometheus.MustRegister(RequestTotal)
	prometheus.MustRegister(HeartbeatTotal)
	prometheus.MustRegister(ValidatePeerTotal)
	prometheus.MustRegister(StoreSizeBytes)
}

// Handler returns the HTTP handler for the /metrics endpoint
func Handler() http.Handler {
	return promhttp.Handler()
}
