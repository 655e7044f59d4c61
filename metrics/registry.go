// Package metrics accumulates call-outcome statistics for the eventsgateway
// client and exposes them through a pull-based prometheus endpoint and a
// push-based statsd forwarder.
package metrics

import (
	"bytes"
	"time"

	grpc_prometheus "github.com/grpc-ecosystem/go-grpc-prometheus"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/prometheus/common/expfmt"
	"google.golang.org/grpc"
)

// Registry holds the counters and latency summaries for every send operation.
// It owns its prometheus registry, so two clients in one process only share
// series when they explicitly share a Registry.
type Registry struct {
	registry       *prometheus.Registry
	responseTime   *prometheus.SummaryVec
	successCounter *prometheus.CounterVec
	failureCounter *prometheus.CounterVec
	grpcMetrics    *grpc_prometheus.ClientMetrics
}

// NewRegistry builds a Registry with all series registered.
func NewRegistry() *Registry {
	r := &Registry{
		registry: prometheus.NewRegistry(),
		responseTime: prometheus.NewSummaryVec(
			prometheus.SummaryOpts{
				Namespace:  "eventsgateway",
				Subsystem:  "client",
				Name:       "response_time_ms",
				Help:       "the response time in ms of calls to the server, reported at p50/p95/p99",
				Objectives: map[float64]float64{0.5: 0.05, 0.95: 0.01, 0.99: 0.001},
			},
			[]string{"route", "topic", "clientHost"},
		),
		successCounter: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "eventsgateway",
				Subsystem: "client",
				Name:      "requests_success_counter",
				Help:      "the count of successful calls to the server",
			},
			[]string{"route", "topic", "clientHost"},
		),
		failureCounter: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "eventsgateway",
				Subsystem: "client",
				Name:      "requests_failure_counter",
				Help:      "the count of failed calls to the server",
			},
			[]string{"route", "topic", "clientHost", "reason"},
		),
		grpcMetrics: grpc_prometheus.NewClientMetrics(),
	}
	r.registry.MustRegister(
		r.responseTime,
		r.successCounter,
		r.failureCounter,
		r.grpcMetrics,
	)
	return r
}

// ObserveResponseTime records one latency sample for the given series.
func (r *Registry) ObserveResponseTime(route, topic, host string, elapsed time.Duration) {
	ms := float64(elapsed) / float64(time.Millisecond)
	r.responseTime.WithLabelValues(route, topic, host).Observe(ms)
}

// IncrSuccess adds one to the success counter for the given series.
func (r *Registry) IncrSuccess(route, topic, host string) {
	r.successCounter.WithLabelValues(route, topic, host).Inc()
}

// IncrFailure adds one to the failure counter for the given series. The
// reason carries the transport error's string representation.
func (r *Registry) IncrFailure(route, topic, host, reason string) {
	r.failureCounter.WithLabelValues(route, topic, host, reason).Inc()
}

// Reset drops all accumulated series. Meant for test isolation only.
func (r *Registry) Reset() {
	r.responseTime.Reset()
	r.successCounter.Reset()
	r.failureCounter.Reset()
}

// Gatherer exposes the underlying registry for scrape handlers.
func (r *Registry) Gatherer() prometheus.Gatherer {
	return r.registry
}

// Gather returns the current metric families. Families and label pairs come
// back sorted, so two gathers without intervening writes are identical.
func (r *Registry) Gather() ([]*dto.MetricFamily, error) {
	return r.registry.Gather()
}

// Snapshot renders the current state in the prometheus text exposition
// format. Safe to call concurrently with writers.
func (r *Registry) Snapshot() (string, error) {
	mfs, err := r.Gather()
	if err != nil {
		return "", errors.Wrap(err, "could not gather metrics")
	}
	var buf bytes.Buffer
	enc := expfmt.NewEncoder(&buf, expfmt.FmtText)
	for _, mf := range mfs {
		if err := enc.Encode(mf); err != nil {
			return "", errors.Wrapf(err, "could not encode metric family %s", mf.GetName())
		}
	}
	return buf.String(), nil
}

// UnaryClientInterceptor returns an interceptor feeding the grpc client
// metrics registered on this registry. Pass it to grpc.Dial.
func (r *Registry) UnaryClientInterceptor() grpc.UnaryClientInterceptor {
	return r.grpcMetrics.UnaryClientInterceptor()
}
