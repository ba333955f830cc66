package scoring

import "math"

// Statistics summarizes a batch of predictions. It is always recomputed
// from scratch; an empty batch yields a zeroed record, never an error.
type Statistics struct {
	TotalComments        int               `json:"total_comments"`
	ToxicComments        int               `json:"toxic_comments"`
	SafeComments         int               `json:"safe_comments"`
	ToxicityRate         float64           `json:"toxicity_rate"`
	HarassmentCount      int               `json:"harassment_count"`
	HarassmentPercentage float64           `json:"harassment_percentage"`
	MisogynyCount        int               `json:"misogyny_count"`
	MisogynyPercentage   float64           `json:"misogyny_percentage"`
	AverageScores        AverageScores     `json:"average_scores"`
	RiskDistribution     map[RiskLevel]int `json:"risk_distribution"`
}

// AverageScores carries arithmetic means rounded to 3 decimals for
// display; callers needing full precision should recompute from the
// predictions themselves.
type AverageScores struct {
	Harassment float64 `json:"harassment"`
	Misogyny   float64 `json:"misogyny"`
	Combined   float64 `json:"combined"`
}

// ComputeStatistics reduces a batch of predictions into counts, rates
// and the risk distribution. Every tier appears in the distribution
// even with a zero count.
func ComputeStatistics(results []Prediction) Statistics {
	distribution := make(map[RiskLevel]int, 4)
	for _, level := range RiskLevels() {
		distribution[level] = 0
	}

	stats := Statistics{RiskDistribution: distribution}
	total := len(results)
	stats.TotalComments = total
	if total == 0 {
		return stats
	}

	var sumHarassment, sumMisogyny, sumCombined float64
	for _, r := range results {
		if r.IsToxic {
			stats.ToxicComments++
		}
		if r.IsHarassment {
			stats.HarassmentCount++
		}
		if r.IsMisogyny {
			stats.MisogynyCount++
		}
		sumHarassment += r.HarassmentScore
		sumMisogyny += r.MisogynyScore
		sumCombined += r.CombinedScore
		distribution[r.RiskLevel]++
	}

	n := float64(total)
	stats.SafeComments = total - stats.ToxicComments
	stats.ToxicityRate = float64(stats.ToxicComments) / n
	stats.HarassmentPercentage = float64(stats.HarassmentCount) / n * 100
	stats.MisogynyPercentage = float64(stats.MisogynyCount) / n * 100
	stats.AverageScores = AverageScores{
		Harassment: round3(sumHarassment / n),
		Misogyny:   round3(sumMisogyny / n),
		Combined:   round3(sumCombined / n),
	}
	return stats
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
