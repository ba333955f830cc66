package scoring

import "math"

const (
	LabelToxic    = "toxic"
	LabelNonToxic = "non-toxic"
)

// Combine merges the two category scores into a single toxicity score
// as a weighted sum. Finite scores outside [0,1] are clamped before
// combining so the result stays in [0,1]; non-finite scores are rejected.
func Combine(harassment, misogyny float64, weights Weights) (float64, error) {
	if !isFinite(harassment) {
		return 0, &InvalidScoreError{Category: CategoryHarassment, Value: harassment}
	}
	if !isFinite(misogyny) {
		return 0, &InvalidScoreError{Category: CategoryMisogyny, Value: misogyny}
	}
	h := clamp01(harassment)
	m := clamp01(misogyny)
	return weights.Harassment*h + weights.Misogyny*m, nil
}

// Label classifies a score against a threshold. The comparison is a
// strict greater-than: a score exactly equal to the threshold is
// non-toxic. Filtering intentionally uses >= instead; see Filter.
func Label(score, threshold float64) string {
	if score > threshold {
		return LabelToxic
	}
	return LabelNonToxic
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
