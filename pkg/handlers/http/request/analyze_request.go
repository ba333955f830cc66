package request

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

var (
	ErrTextRequired     = errors.New("text is required")
	ErrTextsRequired    = errors.New("texts is required and must not be empty")
	ErrInvalidThreshold = errors.New("threshold must be a number between 0 and 1")
	ErrEmptyTextEntry   = errors.New("texts must not contain empty entries")
)

// AnalyzeRequest is the body of a single-text analysis call. Threshold
// is optional; a nil value means the server default applies.
type AnalyzeRequest struct {
	Text      string   `json:"text"`
	Threshold *float64 `json:"threshold"`
}

func (r *AnalyzeRequest) Validate() error {
	if strings.TrimSpace(r.Text) == "" {
		return ErrTextRequired
	}
	return validateThreshold(r.Threshold)
}

func (r *AnalyzeRequest) ThresholdOr(fallback float64) float64 {
	if r.Threshold == nil {
		return fallback
	}
	return *r.Threshold
}

// AnalyzeBatchRequest is the body of a batch analysis call. Statistics
// are included unless explicitly disabled.
type AnalyzeBatchRequest struct {
	Texts             []string `json:"texts"`
	Threshold         *float64 `json:"threshold"`
	IncludeStatistics *bool    `json:"include_statistics"`
}

func (r *AnalyzeBatchRequest) WantStatistics() bool {
	return r.IncludeStatistics == nil || *r.IncludeStatistics
}

func (r *AnalyzeBatchRequest) Validate(maxBatchSize int) error {
	if len(r.Texts) == 0 {
		return ErrTextsRequired
	}
	if maxBatchSize > 0 && len(r.Texts) > maxBatchSize {
		return fmt.Errorf("too many texts: %d exceeds the maximum of %d", len(r.Texts), maxBatchSize)
	}
	for _, text := range r.Texts {
		if strings.TrimSpace(text) == "" {
			return ErrEmptyTextEntry
		}
	}
	return validateThreshold(r.Threshold)
}

func (r *AnalyzeBatchRequest) ThresholdOr(fallback float64) float64 {
	if r.Threshold == nil {
		return fallback
	}
	return *r.Threshold
}

func validateThreshold(threshold *float64) error {
	if threshold == nil {
		return nil
	}
	v := *threshold
	if math.IsNaN(v) || v < 0 || v > 1 {
		return ErrInvalidThreshold
	}
	return nil
}
