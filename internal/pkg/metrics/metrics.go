// Package metrics defines and registers the custom Prometheus metrics of the
// account service. It is the single source of truth for metric names, labels
// and help strings.
//
// All metrics are registered with the default registry on import, so the
// /metrics handler exposes them next to the HTTP metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "accounts"

// ── Account lifecycle ─────────────────────────────────────────────────────────

// AccountsCreatedTotal counts successful signups.
var AccountsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "created_total",
		Help:      "Total number of accounts created through signup.",
	},
)

// AccountsDeletedTotal counts accounts removed through the delete operation.
var AccountsDeletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "deleted_total",
		Help:      "Total number of accounts deleted.",
	},
)

// ── Authentication ────────────────────────────────────────────────────────────

// LoginsTotal counts login attempts.
// Label:
//   - result: "success", "unknown_email" or "wrong_password"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// RejectionsTotal counts requests refused by the service before reaching the store.
// Labels:
//   - operation: "list", "get_by_id" or "delete"
//   - reason: "invalid_token", "admin_only", "invalid_id" or "not_found"
var RejectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "rejections_total",
		Help:      "Total number of account requests rejected, by operation and reason.",
	},
	[]string{"operation", "reason"},
)

// ── Cache ─────────────────────────────────────────────────────────────────────

// CacheLookupsTotal counts account cache lookups.
// Label:
//   - result: "hit", "miss" or "error"
var CacheLookupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cache_lookups_total",
		Help:      "Total number of account cache lookups, labelled by result.",
	},
	[]string{"result"},
)
