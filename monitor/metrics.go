// Package monitor exposes the prometheus collectors of the gateway.
package monitor

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "contentgen"

// Result label values.
const (
	ResultSuccess = "success"
	ResultError   = "error"
)

// Metrics groups the collectors recorded by the adaptor and the HTTP layer.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	PayloadBuilds      *prometheus.CounterVec
	Invocations        *prometheus.HistogramVec
	ExtractionFailures *prometheus.CounterVec
	HTTPRequests       *prometheus.CounterVec
	HTTPDuration       *prometheus.HistogramVec
	InFlightRequests   prometheus.Gauge
}

// New creates the collectors and registers them on reg when reg is not nil.
func New(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		PayloadBuilds: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "payload_builds_total",
			Help:      "Vendor payloads built, by vendor family and result.",
		}, []string{"vendor", "result"}),
		Invocations: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "bedrock_invocation_seconds",
			Help:      "Latency of Bedrock InvokeModel calls.",
			Buckets:   []float64{0.25, 0.5, 1, 2, 5, 10, 20, 40, 80},
		}, []string{"model", "result"}),
		ExtractionFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "extraction_failures_total",
			Help:      "Responses whose text could not be extracted.",
		}, []string{"vendor"}),
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests served, by route and status code.",
		}, []string{"method", "route", "code"}),
		HTTPDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		InFlightRequests: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "http_in_flight_requests",
			Help:      "HTTP requests currently being served.",
		}),
	}

	if reg == nil {
		return m, nil
	}
	for _, c := range []prometheus.Collector{
		m.PayloadBuilds, m.Invocations, m.ExtractionFailures,
		m.HTTPRequests, m.HTTPDuration, m.InFlightRequests,
	} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func result(err error) string {
	if err != nil {
		return ResultError
	}
	return ResultSuccess
}

func (m *Metrics) ObservePayloadBuild(vendor string, err error) {
	if m == nil {
		return
	}
	m.PayloadBuilds.WithLabelValues(vendor, result(err)).Inc()
}

func (m *Metrics) ObserveInvocation(model string, elapsed time.Duration, err error) {
	if m == nil {
		return
	}
	m.Invocations.WithLabelValues(model, result(err)).Observe(elapsed.Seconds())
}

func (m *Metrics) ObserveExtractionFailure(vendor string) {
	if m == nil {
		return
	}
	m.ExtractionFailures.WithLabelValues(vendor).Inc()
}

func (m *Metrics) ObserveHTTPRequest(method, route string, code int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.HTTPRequests.WithLabelValues(method, route, strconv.Itoa(code)).Inc()
	m.HTTPDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// TrackInFlight increments the in-flight gauge and returns the matching decrement.
func (m *Metrics) TrackInFlight() func() {
	if m == nil {
		return func() {}
	}
	m.InFlightRequests.Inc()
	return m.InFlightRequests.Dec
}
