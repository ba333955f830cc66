package scoring

import "fmt"

const weightSumTolerance = 1e-9

// Weights holds the fixed per-category weights used to combine
// harassment and misogyny scores into a single toxicity score.
// The two weights must be non-negative and sum to 1.
type Weights struct {
	Harassment float64
	Misogyny   float64
}

// DefaultWeights returns the standard 0.6/0.4 weighting.
func DefaultWeights() Weights {
	return Weights{Harassment: 0.6, Misogyny: 0.4}
}

func NewWeights(harassment, misogyny float64) (Weights, error) {
	if harassment < 0 || misogyny < 0 {
		return Weights{}, fmt.Errorf("weights must be non-negative, got harassment=%v misogyny=%v", harassment, misogyny)
	}
	sum := harassment + misogyny
	if sum < 1-weightSumTolerance || sum > 1+weightSumTolerance {
		return Weights{}, fmt.Errorf("weights must sum to 1, got %v", sum)
	}
	return Weights{Harassment: harassment, Misogyny: misogyny}, nil
}
