// Package metrics exposes Prometheus counters for the simulator.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestsTotal counts inbound API requests by method and status.
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "paysim_requests_total",
			Help: "Total number of API requests handled",
		},
		[]string{"method", "status"},
	)

	// WebhookDeliveriesTotal counts outbound webhook deliveries.
	WebhookDeliveriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "paysim_webhook_deliveries_total",
			Help: "Total number of webhook delivery attempts by result",
		},
		[]string{"result"},
	)

	// EventsScheduledTotal counts delayed effects placed on the scheduler.
	EventsScheduledTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "paysim_events_scheduled_total",
			Help: "Total number of delayed effects scheduled",
		},
	)

	// ChargesCreatedTotal counts charges by final status.
	ChargesCreatedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "paysim_charges_created_total",
			Help: "Total number of charges created by status",
		},
		[]string{"status"},
	)
)
