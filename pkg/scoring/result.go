package scoring

// Category names, in the fixed order they are flagged.
const (
	CategoryHarassment = "harassment"
	CategoryMisogyny   = "misogyny"
)

// Prediction is the per-text analysis record. It is never mutated after
// Aggregate builds it.
type Prediction struct {
	Text            string    `json:"text"`
	HarassmentScore float64   `json:"harassment_score"`
	MisogynyScore   float64   `json:"misogyny_score"`
	CombinedScore   float64   `json:"combined_toxicity_score"`
	IsHarassment    bool      `json:"is_harassment"`
	IsMisogyny      bool      `json:"is_misogyny"`
	IsToxic         bool      `json:"is_toxic"`
	RiskLevel       RiskLevel `json:"risk_level"`
	Flagged         []string  `json:"flagged_categories"`
}

// Aggregate builds a Prediction from the two category scores. Labels use
// a strict greater-than against the threshold, the combined score is the
// weighted sum and the risk tier is derived from it. Pure function:
// identical inputs always yield an identical record.
func Aggregate(text string, harassment, misogyny, threshold float64, weights Weights) (Prediction, error) {
	combined, err := Combine(harassment, misogyny, weights)
	if err != nil {
		return Prediction{}, err
	}

	h := clamp01(harassment)
	m := clamp01(misogyny)

	isHarassment := h > threshold
	isMisogyny := m > threshold

	flagged := make([]string, 0, 2)
	if isHarassment {
		flagged = append(flagged, CategoryHarassment)
	}
	if isMisogyny {
		flagged = append(flagged, CategoryMisogyny)
	}

	return Prediction{
		Text:            text,
		HarassmentScore: h,
		MisogynyScore:   m,
		CombinedScore:   combined,
		IsHarassment:    isHarassment,
		IsMisogyny:      isMisogyny,
		IsToxic:         isHarassment || isMisogyny,
		RiskLevel:       RiskFor(combined),
		Flagged:         flagged,
	}, nil
}
