// Package metrics defines the custom Prometheus metrics shared by the
// platform's processes. It is the single source of truth for metric names,
// labels, and help strings; registration happens at import time via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "shopmesh"

// RecordMutationsTotal counts successful store mutations.
// Labels:
//   - entity: "user" or "product"
//   - op: "create", "update", "delete", or "stock"
var RecordMutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "record_mutations_total",
		Help:      "Total number of successful store mutations, by entity and operation.",
	},
	[]string{"entity", "op"},
)

// ProxyRequestsTotal counts gateway requests forwarded to a backend that
// produced an HTTP response.
// Labels:
//   - backend: "users" or "products"
//   - code: the backend status code class ("2xx", "4xx", "5xx")
var ProxyRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "proxy_requests_total",
		Help:      "Total number of proxied requests that received a backend response.",
	},
	[]string{"backend", "code"},
)

// ProxyFailuresTotal counts gateway requests that never produced a backend
// response (connection refused, timeout, cancelled).
// Labels:
//   - backend: "users" or "products"
var ProxyFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "proxy_failures_total",
		Help:      "Total number of proxied requests that failed before a backend response.",
	},
	[]string{"backend"},
)
