package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Loader agrupa as métricas das cargas da view
type Loader struct {
	fetches  *prometheus.CounterVec
	duration *prometheus.HistogramVec
	loads    *prometheus.CounterVec
	sinks    *prometheus.CounterVec
}

// NewLoader registra os coletores no registerer informado (use prometheus.NewRegistry() em testes)
func NewLoader(reg prometheus.Registerer) *Loader {
	m := &Loader{
		fetches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "predictions_view",
			Name:      "fetch_total",
			Help:      "Requisições à API de previsões por endpoint e resultado.",
		}, []string{"endpoint", "outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "predictions_view",
			Name:      "fetch_duration_seconds",
			Help:      "Latência das requisições à API de previsões.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"endpoint"}),
		loads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "predictions_view",
			Name:      "load_total",
			Help:      "Cargas da view por resultado (ok, partial, failed).",
		}, []string{"outcome"}),
		sinks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "predictions_view",
			Name:      "sink_errors_total",
			Help:      "Falhas ao publicar o snapshot em redis, kafka ou postgres.",
		}, []string{"sink"}),
	}
	reg.MustRegister(m.fetches, m.duration, m.loads, m.sinks)
	return m
}

// ObserveFetch registra uma requisição; err nil conta como "ok"
func (m *Loader) ObserveFetch(endpoint string, d time.Duration, err error) {
	if m == nil {
		return
	}
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	m.fetches.WithLabelValues(endpoint, outcome).Inc()
	m.duration.WithLabelValues(endpoint).Observe(d.Seconds())
}

// ObserveLoad registra o resultado consolidado de uma carga
func (m *Loader) ObserveLoad(outcome string) {
	if m == nil {
		return
	}
	m.loads.WithLabelValues(outcome).Inc()
}

// ObserveSinkError conta uma falha de publicação no sink informado
func (m *Loader) ObserveSinkError(sink string) {
	if m == nil {
		return
	}
	m.sinks.WithLabelValues(sink).Inc()
}
