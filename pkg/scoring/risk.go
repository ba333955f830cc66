package scoring

// RiskLevel is an ordinal bucketing of the combined toxicity score.
type RiskLevel string

const (
	RiskLow      RiskLevel = "low"
	RiskMedium   RiskLevel = "medium"
	RiskHigh     RiskLevel = "high"
	RiskCritical RiskLevel = "critical"
)

// Tier boundaries, lower bound inclusive.
const (
	mediumRiskThreshold   = 0.3
	highRiskThreshold     = 0.6
	criticalRiskThreshold = 0.8
)

// RiskLevels lists the tiers in ascending order of severity.
func RiskLevels() []RiskLevel {
	return []RiskLevel{RiskLow, RiskMedium, RiskHigh, RiskCritical}
}

// RiskFor maps a combined score to its risk tier.
func RiskFor(combined float64) RiskLevel {
	switch {
	case combined < mediumRiskThreshold:
		return RiskLow
	case combined < highRiskThreshold:
		return RiskMedium
	case combined < criticalRiskThreshold:
		return RiskHigh
	default:
		return RiskCritical
	}
}
