// Package metrics exposes Prometheus counters for token and login activity.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Result label values.
const (
	ResultOK            = "ok"
	ResultMalformed     = "malformed"
	ResultBadSignature  = "bad_signature"
	ResultExpired       = "expired"
	ResultUserNotFound  = "user_not_found"
	ResultWrongPassword = "wrong_password"
	ResultInternalError = "error"
)

// Metrics owns a private registry so tests can build as many as they like.
type Metrics struct {
	registry      *prometheus.Registry
	tokensIssued  prometheus.Counter
	verifications *prometheus.CounterVec
	logins        *prometheus.CounterVec
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		tokensIssued: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "backprop_tokens_issued_total",
			Help: "Tokens issued after registration or login.",
		}),
		verifications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "backprop_token_verifications_total",
			Help: "Token verifications by outcome.",
		}, []string{"result"}),
		logins: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "backprop_logins_total",
			Help: "Login attempts by outcome.",
		}, []string{"result"}),
	}

	m.registry.MustRegister(
		m.tokensIssued,
		m.verifications,
		m.logins,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

func (m *Metrics) TokenIssued() {
	m.tokensIssued.Inc()
}

func (m *Metrics) TokenVerified(result string) {
	m.verifications.WithLabelValues(result).Inc()
}

func (m *Metrics) LoginAttempt(result string) {
	m.logins.WithLabelValues(result).Inc()
}

// Registry returns the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
