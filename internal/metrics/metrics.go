// Package metrics exposes Prometheus counters for task execution.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	tasks = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "agent_tasks_total",
		Help: "Tasks processed, by outcome",
	}, []string{"status"})
	taskDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "agent_task_duration_seconds",
		Help:    "Wall time spent processing a task",
		Buckets: prometheus.ExponentialBuckets(0.05, 2, 12),
	})
	providerErrors = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "agent_provider_errors_total",
		Help: "Provider calls that failed inside a task",
	}, []string{"provider"})
	wsConnections = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "agent_ws_connections",
		Help: "Open websocket connections",
	})
)

func init() {
	prometheus.MustRegister(tasks, taskDuration, providerErrors, wsConnections)
}

// Handler serves the Prometheus exposition format.
func Handler() http.Handler { return promhttp.Handler() }

// ObserveTask records one processed task.
func ObserveTask(status string, elapsed time.Duration) {
	tasks.WithLabelValues(status).Inc()
	taskDuration.Observe(elapsed.Seconds())
}

// IncProviderError counts a failed provider call inside a task.
func IncProviderError(provider string) { providerErrors.WithLabelValues(provider).Inc() }

// IncWSConnections marks a websocket connection opened.
func IncWSConnections() { wsConnections.Inc() }

// DecWSConnections marks a websocket connection closed.
func DecWSConnections() { wsConnections.Dec() }
