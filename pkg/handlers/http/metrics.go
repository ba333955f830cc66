package http

import (
	"github.com/toxiguard/toxiguard/pkg/infra/prometheus"
	"github.com/toxiguard/toxiguard/pkg/scoring"
)

func recordAnalysisMetrics(source string, predictions ...scoring.Prediction) {
	for _, p := range predictions {
		prometheus.TextsAnalyzedTotal.WithLabelValues(source).Inc()
		if p.IsToxic {
			prometheus.ToxicDetectionsTotal.WithLabelValues(string(p.RiskLevel)).Inc()
		}
	}
}
