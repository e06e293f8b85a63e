// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package metrics holds the prometheus collectors of the node.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "privacy_node"

// Push results.
const (
	PushDelivered   = "delivered"
	PushFailed      = "failed"
	PushUnknownNode = "unknown_node"
	PushLocal       = "local"
)

// Metrics bundles every collector. All methods are safe for concurrent use.
type Metrics struct {
	distributions *prometheus.CounterVec
	pushes        *prometheus.CounterVec
	pushDuration  prometheus.Histogram
	received      *prometheus.CounterVec
	requests      *prometheus.CounterVec

	gatherer prometheus.Gatherer
}

// New registers the collectors with reg. Passing a fresh
// [prometheus.NewRegistry] keeps tests isolated.
func New(reg *prometheus.Registry) *Metrics {
	m := &Metrics{
		distributions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "distributions_total",
			Help:      "Distributions stored locally, by group type.",
		}, []string{"type"}),
		pushes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "pushes_total",
			Help:      "Per recipient delivery outcomes.",
		}, []string{"kind", "result"}),
		pushDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "push_duration_seconds",
			Help:      "Duration of one push to one peer, retries included.",
			Buckets:   prometheus.DefBuckets,
		}),
		received: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "received_total",
			Help:      "Records pushed to this node by peers.",
		}, []string{"kind"}),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Handled HTTP requests by interface and status code.",
		}, []string{"iface", "code"}),
		gatherer: reg,
	}

	reg.MustRegister(m.distributions, m.pushes, m.pushDuration, m.received, m.requests)
	return m
}

// Distribution counts one locally stored distribution.
func (m *Metrics) Distribution(groupType string) {
	m.distributions.WithLabelValues(groupType).Inc()
}

// Push records one recipient outcome. kind is "payload" or "group".
func (m *Metrics) Push(kind, result string) {
	m.pushes.WithLabelValues(kind, result).Inc()
}

// PushDuration observes one peer push in seconds.
func (m *Metrics) PushDuration(seconds float64) {
	m.pushDuration.Observe(seconds)
}

// Received counts one inbound record. kind is "payload" or "group".
func (m *Metrics) Received(kind string) {
	m.received.WithLabelValues(kind).Inc()
}

// Request counts one handled HTTP request.
func (m *Metrics) Request(iface, code string) {
	m.requests.WithLabelValues(iface, code).Inc()
}

// Handler serves the registry in the prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
