package middleware

import (
	"context"
	"fmt"
	"time"

	"connectrpc.com/connect"
	"github.com/prometheus/client_golang/prometheus"
)

// RPCMetrics groups Prometheus collectors for Connect RPCs.
type RPCMetrics struct {
	Calls    *prometheus.CounterVec
	Duration *prometheus.HistogramVec
	Rejected *prometheus.CounterVec
}

// NewRPCMetrics registers and returns RPC collectors. A nil registerer means
// the default registry.
func NewRPCMetrics(namespace string, reg prometheus.Registerer) *RPCMetrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	m := &RPCMetrics{
		Calls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rpc_requests_total",
			Help:      "Total number of RPCs handled, by procedure and code.",
		}, []string{"procedure", "code"}),
		Duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "rpc_duration_ms",
			Help:      "RPC latency distribution in milliseconds.",
			Buckets:   []float64{1, 5, 10, 25, 50, 100, 250, 500, 1000},
		}, []string{"procedure"}),
		Rejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "edits_rejected_total",
			Help:      "Edits ignored because of invalid input, by procedure.",
		}, []string{"procedure"}),
	}
	m.Calls = register(reg, m.Calls)
	m.Duration = register(reg, m.Duration)
	m.Rejected = register(reg, m.Rejected)
	return m
}

// register adds c to reg, reusing an identical collector that is already registered.
func register[C prometheus.Collector](reg prometheus.Registerer, c C) C {
	if err := reg.Register(c); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing
			}
		}
		panic(fmt.Errorf("register collector: %w", err))
	}
	return c
}

// ObserveRejected counts an edit that was ignored.
func (m *RPCMetrics) ObserveRejected(procedure string) {
	if m == nil {
		return
	}
	m.Rejected.WithLabelValues(procedure).Inc()
}

// Interceptor records a call count and latency for every unary RPC.
func (m *RPCMetrics) Interceptor() connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			start := time.Now()
			procedure := req.Spec().Procedure

			resp, err := next(ctx, req)

			code := "ok"
			if err != nil {
				code = connect.CodeOf(err).String()
			}
			m.Calls.WithLabelValues(procedure, code).Inc()
			m.Duration.WithLabelValues(procedure).Observe(float64(time.Since(start)) / float64(time.Millisecond))

			return resp, err
		}
	}
}
