/*
Package metrics provides Prometheus metrics collection and exposition for Burrow.

The metrics package defines and registers all Burrow metrics using the
Prometheus client library, providing observability into the node's
conversations with the placement director and into store capacity. Metrics
are exposed via HTTP endpoint for scraping by Prometheus servers.

# Metrics Catalog

pd_request_total{op, outcome}:
  - Type: Counter
  - Description: Director requests by operation and outcome
  - Labels: op ("ask split", "heartbeat", "report split", "get region"),
    outcome ("all" on submission, "success" on OK resolution; for
    "heartbeat", "success" counts each directive received on the response
    stream, and for "get region" only lookups that found the region)
  - Example: pd_request_total{op="ask split",outcome="success"} 12

pd_heartbeat_total{kind}:
  - Type: Counter
  - Description: Directives received on the heartbeat response stream
  - Labels: kind ("change peer", "transfer leader")
  - Example: pd_heartbeat_total{kind="change peer"} 4

pd_validate_peer_total{verdict}:
  - Type: Counter
  - Description: Peer validation outcomes
  - Labels: verdict ("region epoch error", "peer stale", "peer valid")

store_size_bytes{kind}:
  - Type: Gauge
  - Description: Store capacity accounting published per store heartbeat
  - Labels: kind ("capacity", "available")
  - Example: store_size_bytes{kind="available"} 1.2e+10

# Usage

Updating metrics:

	import "github.com/cuemby/burrow/pkg/metrics"

	metrics.RequestTotal.WithLabelValues("ask split", "all").Inc()
	metrics.StoreSizeBytes.WithLabelValues("capacity").Set(float64(capacity))

Exposing the endpoint:

	http.Handle("/metrics", metrics.Handler())
	http.ListenAndServe(":9090", nil)

# Design Patterns

Package Init Registration:
  - All metrics registered in init() function
  - MustRegister panics on duplicate registration
  - Ensures metrics available before main()

Label Discipline:
  - All label values are drawn from small fixed vocabularies
  - Region and peer IDs never become labels (unbounded cardinality)

# Integration Points

This package integrates with:

  - pkg/placement: Increments request, directive and validation counters,
    sets capacity gauges per store heartbeat
  - cmd/burrow: Serves the /metrics endpoint
  - Prometheus: Scrapes the exposition endpoint
*/
package metrics
