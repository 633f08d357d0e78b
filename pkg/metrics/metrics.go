package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	RunsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "hot_channels_runs_total",
		Help: "Execuções do ranking por resultado",
	}, []string{"status"})

	RunDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "hot_channels_run_duration_seconds",
		Help:    "Duração de uma execução completa do ranking",
		Buckets: []float64{1, 5, 15, 30, 60, 120, 300, 600, 1200, 1800},
	})

	Channels = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "hot_channels_channels",
		Help: "Canais considerados na última execução, após os filtros",
	})

	Messages = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "hot_channels_messages",
		Help: "Mensagens válidas contabilizadas na última execução",
	}, []string{"day"})

	SlackRequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "slack_request_duration_seconds",
		Help:    "Duração das requisições à API do Slack",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "status"})
)

// MustRegister registra as métricas.
func MustRegister(registerer prometheus.Registerer) {
	registerer.MustRegister(
		RunsTotal,
		RunDuration,
		Channels,
		Messages,
		SlackRequestDuration,
	)
}
