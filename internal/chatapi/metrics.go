/*
This file is part of the AtomBPMN (R) project.
Copyright (c) 2025 Matreska Market LLC (ООО «Matreska Market»).
Authors: Matreska Team.

This project is dual-licensed under AGPL-3.0 and AtomBPMN Commercial License.
*/

package chatapi

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics counts session and edit-operation activity, exposed at
// /metrics the way the teacher exempts that path from request logging
// (DefaultLoggingConfig's SkipPaths) rather than omitting it.
type Metrics struct {
	registry *prometheus.Registry

	sessionsStarted   prometheus.Counter
	sessionsExhausted prometheus.Counter
	sessionsCompleted prometheus.Counter
	editsApplied      *prometheus.CounterVec
}

// NewMetrics registers the engine's counters against a dedicated
// registry, so tests can construct independent Metrics instances
// without colliding on prometheus's default global registry.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,
		sessionsStarted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "bpmn_sessions_started_total",
			Help: "Editing sessions started.",
		}),
		sessionsExhausted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "bpmn_sessions_exhausted_total",
			Help: "Editing sessions that hit the retry/iteration budget.",
		}),
		sessionsCompleted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "bpmn_sessions_completed_total",
			Help: "Editing sessions that stopped successfully.",
		}),
		editsApplied: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "bpmn_edits_applied_total",
			Help: "Edit operations applied, by function name.",
		}, []string{"function"}),
	}

	registry.MustRegister(m.sessionsStarted, m.sessionsExhausted, m.sessionsCompleted, m.editsApplied)
	return m
}

// Handler exposes the registry as a gin route.
func (m *Metrics) Handler() gin.HandlerFunc {
	h := promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
	return gin.WrapH(h)
}
