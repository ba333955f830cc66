package response

import "github.com/toxiguard/toxiguard/pkg/scoring"

type AnalyzeBatchOutput struct {
	Results    []scoring.Prediction `json:"results"`
	Statistics *scoring.Statistics  `json:"statistics,omitempty"`
}

type FilterOutput struct {
	FilteredResults []scoring.FilteredPrediction `json:"filtered_results"`
	TotalAnalyzed   int                          `json:"total_analyzed"`
	TotalFiltered   int                          `json:"total_filtered"`
	Threshold       float64                      `json:"threshold"`
	FilterType      string                       `json:"filter_type"`
}
