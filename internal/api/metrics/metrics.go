// Package metrics defines all custom Prometheus metrics for the lost-and-found
// API. It is the single source of truth for metric names, labels, and help
// strings; promauto registers everything with the default registry at import.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "lostfound"

// ── Account metrics ───────────────────────────────────────────────────────────

// RegistrationsTotal counts successfully created accounts.
var RegistrationsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of accounts registered.",
	},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "ok" or "failed"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)

// ProfileUpdatesTotal counts successful profile mutations.
// Label:
//   - kind: "profile" or "password"
var ProfileUpdatesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "profile_updates_total",
		Help:      "Total number of profile mutations, labelled by kind.",
	},
	[]string{"kind"},
)

// ── Item metrics ──────────────────────────────────────────────────────────────

// ItemsReportedTotal counts newly filed reports.
// Label:
//   - type: "lost" or "found"
var ItemsReportedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "items_reported_total",
		Help:      "Total number of item reports filed, by type.",
	},
	[]string{"type"},
)

// ── Sighting pipeline metrics ─────────────────────────────────────────────────

// SightingsProcessedTotal counts sightings that completed processing.
var SightingsProcessedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sightings_processed_total",
		Help:      "Total number of sightings successfully processed.",
	},
)

// SightingsErrorsTotal counts sightings that failed processing.
// Label:
//   - reason: short description of the failure (e.g. "process_failed")
var SightingsErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sightings_errors_total",
		Help:      "Total number of sightings that failed processing.",
	},
	[]string{"reason"},
)

// SightingsDedupTotal counts deduplication decisions.
// Label:
//   - result: "hit" (duplicate, skipped) or "miss" (new sighting, processed)
var SightingsDedupTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sightings_dedup_total",
		Help:      "Total number of deduplication checks, labelled by result (hit/miss).",
	},
	[]string{"result"},
)

// SightingQueueDepth tracks the number of sightings waiting in each worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var SightingQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "sighting_queue_depth",
		Help:      "Current number of sightings pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)

// SightingProcessingDuration measures how long a single sighting takes to process.
// Label:
//   - status: "ok" or "error"
var SightingProcessingDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "sighting_processing_duration_seconds",
		Help:      "Duration of sighting processing from dequeue to persistence.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"status"},
)
