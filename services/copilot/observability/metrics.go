// Copyright (C) 2026 NZTC Labs (engineering@nztclabs.io)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package observability provides Prometheus metrics for the co-pilot
// service: generation request outcomes and latency, and review decisions.
// Metrics are exposed on /metrics; all operations are thread-safe via
// Prometheus's internal locking.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const metricsNamespace = "copilot"

// Metrics holds all Prometheus metrics for the service. Initialize once at
// startup via NewMetrics.
type Metrics struct {
	// GenerationRequestsTotal counts generation requests by outcome.
	// Labels: status (success, validation_error, empty_result, timeout,
	// unavailable, error)
	GenerationRequestsTotal *prometheus.CounterVec

	// GenerationDurationSeconds measures end-to-end generation latency,
	// including catalog search and the LLM call.
	GenerationDurationSeconds prometheus.Histogram

	// SolutionsGeneratedTotal counts solutions across all submissions.
	SolutionsGeneratedTotal prometheus.Counter

	// ReviewActionsTotal counts review decisions by action and outcome.
	// Labels: action (approve, reject), status (success, invalid_action,
	// invalid_transition, not_found, error)
	ReviewActionsTotal *prometheus.CounterVec
}

// NewMetrics registers the service metrics on the given registerer. Pass
// prometheus.DefaultRegisterer in production; tests use a fresh registry to
// avoid duplicate registration.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		GenerationRequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "generation_requests_total",
			Help:      "Solution generation requests by outcome.",
		}, []string{"status"}),

		GenerationDurationSeconds: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "generation_duration_seconds",
			Help:      "End-to-end latency of solution generation.",
			Buckets:   []float64{1, 5, 15, 30, 60, 120, 180, 300},
		}),

		SolutionsGeneratedTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "solutions_generated_total",
			Help:      "Total solutions produced across all submissions.",
		}),

		ReviewActionsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "review_actions_total",
			Help:      "Review decisions by action and outcome.",
		}, []string{"action", "status"}),
	}
}
