// Doclab - Broken Access Control Training Lab
// Copyright 2026 Secdojo Labs
// SPDX-License-Identifier: Apache-2.0
// https://github.com/secdojo/doclab

// Package metrics defines the Prometheus instrumentation for Doclab:
// API request counters and latency, authentication outcomes and access
// decision verdicts.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	// Authentication Metrics
	AuthAttemptsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "auth_attempts_total",
			Help: "Total number of token validation attempts",
		},
		[]string{"outcome"}, // "ok", "missing", "invalid", "expired"
	)

	DemoTokensIssued = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "demo_tokens_issued_total",
			Help: "Total number of tokens minted by the demo endpoint",
		},
	)

	// Access Decision Metrics
	AccessDecisionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "access_decisions_total",
			Help: "Total number of access decisions by operation and verdict",
		},
		[]string{"operation", "verdict"}, // verdict: "allowed", "denied"
	)
)

// RecordAPIRequest records a completed API request.
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest adjusts the active request gauge.
func TrackActiveRequest(active bool) {
	if active {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordAuthAttempt records a token validation outcome.
func RecordAuthAttempt(outcome string) {
	AuthAttemptsTotal.WithLabelValues(outcome).Inc()
}

// RecordAccessDecision records an access decision verdict.
func RecordAccessDecision(operation string, allowed bool) {
	verdict := "denied"
	if allowed {
		verdict = "allowed"
	}
	AccessDecisionsTotal.WithLabelValues(operation, verdict).Inc()
}
