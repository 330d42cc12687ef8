package middleware

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	contactsRecorded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "crm_contacts_recorded_total",
			Help: "Total number of contacts recorded, by message type",
		},
		[]string{"type"},
	)

	quickMessagesSent = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "crm_quick_messages_total",
			Help: "Total number of quick messages composed and recorded",
		},
	)

	overdueQueueSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "crm_overdue_recruits",
			Help: "Number of recruits in the follow-up queue at last read",
		},
	)

	websocketClients = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "crm_websocket_clients",
			Help: "Number of connected websocket clients",
		},
	)
)

func (m Middleware) Metrics() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			if fiberErr, ok := err.(*fiber.Error); ok {
				status = fiberErr.Code
			}
		}

		path := c.Route().Path
		httpRequestsTotal.WithLabelValues(c.Method(), path, strconv.Itoa(status)).Inc()
		httpRequestDuration.WithLabelValues(c.Method(), path).Observe(time.Since(start).Seconds())

		return err
	}
}

func RecordContact(messageType string) {
	contactsRecorded.WithLabelValues(messageType).Inc()
}

func RecordQuickMessage() {
	quickMessagesSent.Inc()
}

func SetOverdueQueueSize(n int) {
	overdueQueueSize.Set(float64(n))
}

func SetWebsocketClients(n int) {
	websocketClients.Set(float64(n))
}
