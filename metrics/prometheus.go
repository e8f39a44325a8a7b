package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type promRecorder struct {
	requests   *prometheus.CounterVec
	duration   *prometheus.HistogramVec
	rateLimits *prometheus.CounterVec
	retries    *prometheus.CounterVec
	buckets    prometheus.Gauge
}

var _ Recorder = &promRecorder{}

// NewPrometheus returns a Recorder that registers its collectors on reg.
// Registering twice on the same registry panics, the same as any other
// duplicate prometheus registration.
func NewPrometheus(reg prometheus.Registerer) Recorder {
	factory := promauto.With(reg)
	return &promRecorder{
		requests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "discord_rest",
			Name:      "requests_total",
			Help:      "Completed Discord REST requests by generalized route and status.",
		}, []string{"method", "route", "status"}),
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "discord_rest",
			Name:      "request_duration_seconds",
			Help:      "Wall time of individual HTTP exchanges, excluding queue waits.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		rateLimits: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "discord_rest",
			Name:      "rate_limit_waits_total",
			Help:      "Requests delayed by a bucket or the global rate limit.",
		}, []string{"scope"}),
		retries: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "discord_rest",
			Name:      "retries_total",
			Help:      "Request attempts re-issued after a timeout or 5xx.",
		}, []string{"reason"}),
		buckets: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "discord_rest",
			Name:      "buckets",
			Help:      "Live rate limit bucket queues.",
		}),
	}
}

func (p *promRecorder) ObserveRequest(method, route string, status int, duration time.Duration) {
	p.requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	p.duration.WithLabelValues(method, route).Observe(duration.Seconds())
}

func (p *promRecorder) ObserveRateLimit(scope string, _ time.Duration) {
	p.rateLimits.WithLabelValues(scope).Inc()
}

func (p *promRecorder) ObserveRetry(reason string) {
	p.retries.WithLabelValues(reason).Inc()
}

func (p *promRecorder) SetBuckets(n int) {
	p.buckets.Set(float64(n))
}
