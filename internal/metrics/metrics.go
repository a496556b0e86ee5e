package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	TaskProcessed     *prometheus.CounterVec
	ConversionSeconds prometheus.Histogram
	ActiveWorkers     prometheus.Gauge
	APIRequests       *prometheus.CounterVec
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	return &Metrics{
		TaskProcessed: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "sextant_tasks_processed_total",
			Help: "Total number of tasks whose coordinates were converted to DMS.",
		}, []string{"status"}),
		ConversionSeconds: promauto.With(reg).NewHistogram(prometheus.HistogramOpts{
			Name:    "sextant_conversion_duration_seconds",
			Help:    "Duration of converting and storing the DMS coordinates of a task.",
			Buckets: prometheus.DefBuckets,
		}),
		ActiveWorkers: promauto.With(reg).NewGauge(prometheus.GaugeOpts{
			Name: "sextant_active_workers",
			Help: "Current number of active workers processing tasks.",
		}),
		APIRequests: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "sextant_api_requests_total",
			Help: "Total number of conversion API requests.",
		}, []string{"endpoint", "code"}),
	}
}
