package request

import (
	"errors"

	"github.com/toxiguard/toxiguard/pkg/scoring"
)

var ErrInvalidFilterType = errors.New("filter_type must be one of: all, harassment, misogyny")

// FilterRequest is the body of a filter call. FilterType defaults to
// "all" when omitted.
type FilterRequest struct {
	Texts      []string `json:"texts"`
	Threshold  *float64 `json:"threshold"`
	FilterType string   `json:"filter_type"`
}

func (r *FilterRequest) Validate(maxBatchSize int) error {
	batch := AnalyzeBatchRequest{Texts: r.Texts, Threshold: r.Threshold}
	if err := batch.Validate(maxBatchSize); err != nil {
		return err
	}
	switch r.Mode() {
	case scoring.FilterAll, scoring.FilterHarassment, scoring.FilterMisogyny:
		return nil
	default:
		return ErrInvalidFilterType
	}
}

func (r *FilterRequest) Mode() scoring.FilterMode {
	if r.FilterType == "" {
		return scoring.FilterAll
	}
	return scoring.FilterMode(r.FilterType)
}

func (r *FilterRequest) ThresholdOr(fallback float64) float64 {
	if r.Threshold == nil {
		return fallback
	}
	return *r.Threshold
}
