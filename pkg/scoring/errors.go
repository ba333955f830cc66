package scoring

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidThreshold  = errors.New("threshold must be between 0 and 1")
	ErrInvalidFilterMode = errors.New("filter mode must be one of: all, harassment, misogyny")
)

// InvalidScoreError marks a classifier score that is not a finite number.
// Out-of-range finite scores are clamped instead; NaN and Inf cannot be.
type InvalidScoreError struct {
	Category string
	Value    float64
}

func (e *InvalidScoreError) Error() string {
	return fmt.Sprintf("invalid %s score: %v is not a finite number", e.Category, e.Value)
}
