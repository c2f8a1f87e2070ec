package metrics

import (
	"github.com/danielgtaylor/huma/v2"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics counts requests and error responses per operation path.
type Metrics struct {
	requests *prometheus.CounterVec
	errors   *prometheus.CounterVec
}

func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "clinikit_endpoint_calls_total",
			Help: "Total number of calls per endpoint.",
		}, []string{"endpoint"}),
		errors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "clinikit_errors_total",
			Help: "Total number of error responses per endpoint.",
		}, []string{"endpoint"}),
	}
	reg.MustRegister(m.requests, m.errors)
	return m
}

func (m *Metrics) Middleware() func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		// Label with the operation path template, not the raw URL,
		// to keep label cardinality bounded.
		endpoint := ctx.Operation().Path
		m.requests.WithLabelValues(endpoint).Inc()

		next(ctx)

		if ctx.Status() >= 400 {
			m.errors.WithLabelValues(endpoint).Inc()
		}
	}
}
