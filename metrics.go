package ioc

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	outcomeSuccess = "success"
	outcomeFailure = "failure"
)

// MetricsMiddleware records resolution counts and latency in Prometheus.
type MetricsMiddleware struct {
	resolutions *prometheus.CounterVec
	duration    *prometheus.HistogramVec
}

// NewMetricsMiddleware creates the collectors and registers them with reg.
//
//	ioc_resolutions_total{service, outcome}
//	ioc_resolution_duration_seconds{service}
func NewMetricsMiddleware(reg prometheus.Registerer) (*MetricsMiddleware, error) {
	m := &MetricsMiddleware{
		resolutions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "ioc",
			Name:      "resolutions_total",
			Help:      "Top-level service resolutions by outcome.",
		}, []string{"service", "outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "ioc",
			Name:      "resolution_duration_seconds",
			Help:      "Time spent resolving a service, dependencies included.",
			Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 10),
		}, []string{"service"}),
	}

	for _, c := range []prometheus.Collector{m.resolutions, m.duration} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// BeforeResolve implements Middleware.
func (m *MetricsMiddleware) BeforeResolve(context.Context, ServiceKey) error {
	return nil
}

// AfterResolve implements Middleware. Latency is measured from the start
// time carried by ctx, so concurrent calls for one key never mix.
func (m *MetricsMiddleware) AfterResolve(ctx context.Context, key ServiceKey, _ any, err error) error {
	service := key.String()

	outcome := outcomeSuccess
	if err != nil {
		outcome = outcomeFailure
	}
	m.resolutions.WithLabelValues(service, outcome).Inc()

	if start, ok := ResolveStarted(ctx); ok {
		m.duration.WithLabelValues(service).Observe(time.Since(start).Seconds())
	}

	return nil
}
