// Package metrics mengekspos counter checkout dan request HTTP ke Prometheus.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "inventorypos"

// Checkout mengimplementasikan pos.Recorder.
type Checkout struct {
	Attempts      *prometheus.CounterVec
	StageFailures *prometheus.CounterVec
	Notifications *prometheus.CounterVec
}

func NewCheckout(reg prometheus.Registerer) *Checkout {
	attempts := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "checkout",
		Name:      "attempts_total",
		Help:      "Checkout attempts by result.",
	}, []string{"result"})
	stages := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "checkout",
		Name:      "stage_failures_total",
		Help:      "Failed checkout attempts by the stage they failed in.",
	}, []string{"stage"})
	notifications := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "checkout",
		Name:      "notifications_total",
		Help:      "Sale notifications by delivery outcome.",
	}, []string{"delivered"})

	reg.MustRegister(attempts, stages, notifications)
	return &Checkout{Attempts: attempts, StageFailures: stages, Notifications: notifications}
}

func (c *Checkout) ObserveCheckout(result string) {
	c.Attempts.WithLabelValues(result).Inc()
}

func (c *Checkout) ObserveStageFailure(stage string) {
	c.StageFailures.WithLabelValues(stage).Inc()
}

func (c *Checkout) ObserveNotification(delivered bool) {
	label := "false"
	if delivered {
		label = "true"
	}
	c.Notifications.WithLabelValues(label).Inc()
}

// HTTP menghitung request per route dan status.
type HTTP struct {
	Requests  *prometheus.CounterVec
	LatencyMS *prometheus.HistogramVec
}

func NewHTTP(reg prometheus.Registerer) *HTTP {
	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Total number of HTTP requests.",
	}, []string{"route", "status"})
	latency := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "request_duration_ms",
		Help:      "HTTP request latency in milliseconds.",
		Buckets:   []float64{5, 10, 25, 50, 100, 250, 500, 1000, 2500, 5000},
	}, []string{"route"})

	reg.MustRegister(requests, latency)
	return &HTTP{Requests: requests, LatencyMS: latency}
}

func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
