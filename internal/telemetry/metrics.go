package telemetry

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"
)

// Исходы вызова API для метки outcome.
const (
	OutcomeOK          = "ok"
	OutcomeServerError = "server_error"
	OutcomeMalformed   = "malformed"
	OutcomeTransport   = "transport"
)

// Metrics — метрики одного запуска CLI.
//
// Регистрируются в собственном реестре, а не в глобальном: реестр целиком
// отправляется в Pushgateway. Методы безопасны для nil-получателя.
type Metrics struct {
	registry *prometheus.Registry

	rpcTotal     *prometheus.CounterVec
	rpcDuration  *prometheus.HistogramVec
	hostsCreated *prometheus.CounterVec
}

// NewMetrics создаёт и регистрирует метрики.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		rpcTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "zbx_rpc_requests_total",
			Help: "Total Zabbix API requests by method and outcome",
		}, []string{"method", "outcome"}),
		rpcDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "zbx_rpc_request_duration_seconds",
			Help:    "Zabbix API request latency",
			Buckets: prometheus.DefBuckets,
		}, []string{"method"}),
		hostsCreated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "zbx_hosts_created_total",
			Help: "Hosts processed by host create, by outcome",
		}, []string{"outcome"}),
	}

	m.registry.MustRegister(m.rpcTotal, m.rpcDuration, m.hostsCreated)
	return m
}

// Registry возвращает реестр метрик.
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// ObserveRPC учитывает один вызов API.
func (m *Metrics) ObserveRPC(method, outcome string, d time.Duration) {
	if m == nil {
		return
	}
	m.rpcTotal.WithLabelValues(method, outcome).Inc()
	m.rpcDuration.WithLabelValues(method).Observe(d.Seconds())
}

// HostCreated учитывает результат создания хоста.
func (m *Metrics) HostCreated(ok bool) {
	if m == nil {
		return
	}
	outcome := OutcomeOK
	if !ok {
		outcome = OutcomeServerError
	}
	m.hostsCreated.WithLabelValues(outcome).Inc()
}

// Push отправляет все метрики в Pushgateway по адресу url с именем job.
func (m *Metrics) Push(ctx context.Context, url, job string) error {
	if m == nil || url == "" {
		return nil
	}
	if err := push.New(url, job).Gatherer(m.registry).PushContext(ctx); err != nil {
		return fmt.Errorf("push metrics: %w", err)
	}
	return nil
}
