package scoring_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toxiguard/toxiguard/pkg/scoring"
)

func TestAggregate(t *testing.T) {
	weights := scoring.DefaultWeights()

	p, err := scoring.Aggregate("you are worthless", 0.9, 0.2, 0.5, weights)
	require.NoError(t, err)

	assert.Equal(t, "you are worthless", p.Text)
	assert.True(t, p.IsHarassment)
	assert.False(t, p.IsMisogyny)
	assert.True(t, p.IsToxic)
	assert.InDelta(t, 0.6*0.9+0.4*0.2, p.CombinedScore, 1e-9)
	assert.Equal(t, scoring.RiskHigh, p.RiskLevel)
	assert.Equal(t, []string{scoring.CategoryHarassment}, p.Flagged)
}

func TestAggregate_IsToxicIsDisjunction(t *testing.T) {
	weights := scoring.DefaultWeights()
	scores := []float64{0, 0.3, 0.5, 0.500001, 0.7, 1}
	for _, h := range scores {
		for _, m := range scores {
			p, err := scoring.Aggregate("t", h, m, 0.5, weights)
			require.NoError(t, err)
			assert.Equal(t, p.IsHarassment || p.IsMisogyny, p.IsToxic)
		}
	}
}

func TestAggregate_FlaggedCategoryOrder(t *testing.T) {
	p, err := scoring.Aggregate("t", 0.9, 0.9, 0.5, scoring.DefaultWeights())
	require.NoError(t, err)
	assert.Equal(t, []string{scoring.CategoryHarassment, scoring.CategoryMisogyny}, p.Flagged)
}

func TestAggregate_ThresholdBoundaryIsNotToxic(t *testing.T) {
	p, err := scoring.Aggregate("t", 0.5, 0.5, 0.5, scoring.DefaultWeights())
	require.NoError(t, err)
	assert.False(t, p.IsHarassment)
	assert.False(t, p.IsMisogyny)
	assert.False(t, p.IsToxic)
	assert.Empty(t, p.Flagged)
}

func TestAggregate_RejectsNonFiniteScore(t *testing.T) {
	_, err := scoring.Aggregate("t", math.NaN(), 0.5, 0.5, scoring.DefaultWeights())
	var scoreErr *scoring.InvalidScoreError
	require.ErrorAs(t, err, &scoreErr)
}

func TestAggregate_ClampsFiniteOutOfRangeScore(t *testing.T) {
	p, err := scoring.Aggregate("t", 1.4, -0.2, 0.5, scoring.DefaultWeights())
	require.NoError(t, err)
	assert.Equal(t, 1.0, p.HarassmentScore)
	assert.Equal(t, 0.0, p.MisogynyScore)
}

func TestAggregate_Idempotent(t *testing.T) {
	weights := scoring.DefaultWeights()
	first, err := scoring.Aggregate("same input", 0.42, 0.17, 0.5, weights)
	require.NoError(t, err)
	second, err := scoring.Aggregate("same input", 0.42, 0.17, 0.5, weights)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
