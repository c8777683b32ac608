// Package metrics defines and registers all custom Prometheus metrics for
// the navicula launcher API. It is the single source of truth for metric
// names, labels, and help strings. Metrics register with the default
// registry at package init via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "navicula"

// NavigationRequestsTotal counts navigation-resolution requests.
// Label:
//   - result: "ok" or "error"
var NavigationRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "navigation_requests_total",
		Help:      "Total number of navigation resolution requests, by result.",
	},
	[]string{"result"},
)

// SettingsOperationsTotal counts per-user settings operations.
// Labels:
//   - operation: "get", "update", or "delete"
//   - result: "ok" or "error"
var SettingsOperationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "settings_operations_total",
		Help:      "Total number of user settings operations, by operation and result.",
	},
	[]string{"operation", "result"},
)

// NotificationFetchesTotal counts notification-count lookups.
// Label:
//   - result: "ok", "none" (no integration/credential), "unauthorized",
//     "timeout", "fetch_failed", or "error" (request-level failure)
var NotificationFetchesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notification_fetches_total",
		Help:      "Total number of notification count lookups, by result.",
	},
	[]string{"result"},
)

// NotificationFetchDuration measures how long a notification lookup takes
// end-to-end, including the outbound provider call.
var NotificationFetchDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "notification_fetch_duration_seconds",
		Help:      "Duration of notification count lookups.",
		Buckets:   prometheus.DefBuckets, // .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10
	},
)
