package prometheus

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var registry = prometheus.NewRegistry()

var registerer = prometheus.WrapRegistererWith(nil, registry)

var (
	// Latency buckets in milliseconds; model inference sits in the upper
	// buckets, the keyword fallback in the lowest.
	latencyBuckets = []float64{
		1, 5, 10,
		25, 50, 100,
		250, 500, 1000,
		2500, 5000, 10000,
	}

	TextsAnalyzedTotal = promauto.With(registerer).NewCounterVec(
		prometheus.CounterOpts{
			Name: "toxiguard_texts_analyzed_total",
			Help: "Total number of texts analyzed",
		},
		[]string{"source"},
	)

	ToxicDetectionsTotal = promauto.With(registerer).NewCounterVec(
		prometheus.CounterOpts{
			Name: "toxiguard_toxic_detections_total",
			Help: "Total number of texts classified as toxic",
		},
		[]string{"risk_level"},
	)

	ClassifierLatency = promauto.With(registerer).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "toxiguard_classifier_latency_ms",
			Help:    "Classifier scoring latency in milliseconds",
			Buckets: latencyBuckets,
		},
		[]string{"category", "kind"},
	)
)

type MetricsConfig struct {
	EnableLatency bool
}

func DefaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		EnableLatency: true,
	}
}

var Config MetricsConfig

func Initialize(cfg MetricsConfig) {
	Config = cfg
	registry.MustRegister(
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	prometheus.DefaultRegisterer = registry
	prometheus.DefaultGatherer = registry
}
