package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// AlertsSubmitted - количество принятых тревог по типу
	AlertsSubmitted = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tourist_alerts_submitted_total",
		Help: "Number of alerts recorded, by alert type",
	}, []string{"type"})

	// IncidentsGenerated - количество сформированных E-FIR по участку
	IncidentsGenerated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tourist_incidents_generated_total",
		Help: "Number of incident reports created, by resolved station",
	}, []string{"station"})

	SubmissionFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tourist_alert_submission_failures_total",
		Help: "Number of alert submissions that failed with an unexpected error",
	})
)

var (
	LocationUpdates = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tourist_location_updates_total",
		Help: "Number of persisted tourist location changes",
	})

	// PublishFailures - неудачные публикации; запрос при этом не падает
	PublishFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tourist_publish_failures_total",
		Help: "Number of broadcast publishes that failed, by topic",
	}, []string{"topic"})

	WebSocketSubscribers = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "tourist_websocket_subscribers",
		Help: "Number of currently connected WebSocket subscribers",
	})

	WebhookDeliveries = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tourist_webhook_deliveries_total",
		Help: "Station webhook delivery outcomes (delivered, failed, skipped)",
	}, []string{"outcome"})
)
