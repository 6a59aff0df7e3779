// Package metrics exposes prometheus counters for the enrichment pipeline.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// PipelineRuns counts completed pipeline runs by terminal outcome
	// (success, bad_request, not_found, upstream, internal).
	PipelineRuns = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "enrich_pipeline_runs_total",
		Help: "Completed enrichment pipeline runs by outcome.",
	}, []string{"outcome"})

	// EmailsSent counts successfully dispatched report emails.
	EmailsSent = promauto.NewCounter(prometheus.CounterOpts{
		Name: "enrich_emails_sent_total",
		Help: "Report emails successfully handed to the mail transport.",
	})

	// ReportCleanupFailures counts temporary report files that could not be
	// deleted. Deletion failures never reach the caller, so this counter is
	// the only durable signal that cleanup misbehaved.
	ReportCleanupFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "enrich_report_cleanup_failures_total",
		Help: "Temporary report files that could not be removed after a run.",
	})
)
