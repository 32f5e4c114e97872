package core

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/sahayak-ai/sahayak/pkg/metrics"
)

type Metrics struct {
	apiResponseTime    *prometheus.HistogramVec
	apiErrorCounter    *prometheus.CounterVec
	generationTime     *prometheus.HistogramVec
	generationError    *prometheus.CounterVec
	queryTime          *prometheus.HistogramVec
	retrievalGrounding *prometheus.HistogramVec
}

func NewMetrics(ns, system string) *Metrics {
	metrics.SetupMetricsManager(ns, system, prometheus.DefaultRegisterer.(*prometheus.Registry))

	return &Metrics{
		apiResponseTime:    metrics.NewHistogramVec("api_response_time", []string{"api"}),
		apiErrorCounter:    metrics.NewCounterVec("api_error", []string{"method", "api", "status"}),
		generationTime:     metrics.NewHistogramVec("generation_time", []string{"driver"}),
		generationError:    metrics.NewCounterVec("generation_error", []string{"type"}),
		queryTime:          metrics.NewHistogramVec("query_time", []string{"subject"}),
		retrievalGrounding: metrics.NewHistogramVec("retrieval_grounding", []string{"subject"}),
	}
}

func (m *Metrics) ApiResponseTimer(api string) *prometheus.Timer {
	return prometheus.NewTimer(m.apiResponseTime.WithLabelValues(api))
}

func (m *Metrics) ApiErrorInc(method, api string, status int) {
	m.apiErrorCounter.WithLabelValues(method, api, strconv.Itoa(status)).Inc()
}

func (m *Metrics) GenerationTimer(driver string) *prometheus.Timer {
	return prometheus.NewTimer(m.generationTime.WithLabelValues(driver))
}

func (m *Metrics) GenerationErrorInc(kind string) {
	m.generationError.WithLabelValues(kind).Inc()
}

func (m *Metrics) QueryTimeObserve(subject string, d time.Duration) {
	m.queryTime.WithLabelValues(subject).Observe(d.Seconds())
}

func (m *Metrics) RetrievalGroundingObserve(subject string, entries int) {
	m.retrievalGrounding.WithLabelValues(subject).Observe(float64(entries))
}
