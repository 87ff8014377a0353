// Package metrics defines and registers all custom Prometheus metrics for the
// minoQ storefront service. It is the single source of truth for metric
// names, labels, and help strings.
//
// Metrics register with the default Prometheus registry at import time via
// promauto; the router exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "storefront"

// ── Catalog metrics ───────────────────────────────────────────────────────────

// ProductsCreatedTotal counts products added through the admin workflow.
var ProductsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "products_created_total",
		Help:      "Total number of products added to the catalog.",
	},
)

// ProductUpdatesTotal counts update attempts.
// Label:
//   - result: "updated" or "not_found" (unknown ids are silent no-ops)
var ProductUpdatesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "product_updates_total",
		Help:      "Total number of product update attempts, by result.",
	},
	[]string{"result"},
)

// BuyLinksBuiltTotal counts purchase deep links handed to clients.
var BuyLinksBuiltTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "buy_links_built_total",
		Help:      "Total number of Buy Now deep links built.",
	},
)

// ── Access metrics ────────────────────────────────────────────────────────────

// AccessAttemptsTotal counts admin access code submissions.
// Label:
//   - result: "granted" or "denied"
var AccessAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "access_attempts_total",
		Help:      "Total number of admin access attempts, by result.",
	},
	[]string{"result"},
)

// ── Note metrics ──────────────────────────────────────────────────────────────

// NotePersistFailuresTotal counts change-note writes that could not reach
// persistent storage and degraded to in-memory.
var NotePersistFailuresTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "note_persist_failures_total",
		Help:      "Total number of change-note writes that failed to persist.",
	},
)
