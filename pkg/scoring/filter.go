package scoring

// FilterMode selects which score a filter compares against the threshold.
type FilterMode string

const (
	FilterAll        FilterMode = "all"
	FilterHarassment FilterMode = "harassment"
	FilterMisogyny   FilterMode = "misogyny"
)

// FilteredPrediction is a prediction selected by Filter, tagged with its
// zero-based position in the original batch.
type FilteredPrediction struct {
	Index int `json:"index"`
	Prediction
}

// Filter selects predictions whose relevant score meets the threshold.
// The comparison is inclusive (>=), unlike the strict > used for
// labeling; both behaviors come from the reference system and are kept
// distinct on purpose. Order is preserved and each selected record
// carries its original index. Invalid inputs are rejected before any
// result is produced.
func Filter(results []Prediction, threshold float64, mode FilterMode) ([]FilteredPrediction, error) {
	if threshold < 0 || threshold > 1 || !isFinite(threshold) {
		return nil, ErrInvalidThreshold
	}

	var pick func(Prediction) float64
	switch mode {
	case FilterAll:
		pick = func(p Prediction) float64 { return p.CombinedScore }
	case FilterHarassment:
		pick = func(p Prediction) float64 { return p.HarassmentScore }
	case FilterMisogyny:
		pick = func(p Prediction) float64 { return p.MisogynyScore }
	default:
		return nil, ErrInvalidFilterMode
	}

	filtered := make([]FilteredPrediction, 0, len(results))
	for i, r := range results {
		if pick(r) >= threshold {
			filtered = append(filtered, FilteredPrediction{Index: i, Prediction: r})
		}
	}
	return filtered, nil
}
