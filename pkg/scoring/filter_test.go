package scoring_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toxiguard/toxiguard/pkg/scoring"
)

func TestFilter_InclusiveThreshold(t *testing.T) {
	// combined == 0.5 exactly: selected by the filter (>=) even though
	// labeling the same score against the same threshold is non-toxic.
	p, err := scoring.Aggregate("t", 0.5, 0.5, 0.5, scoring.DefaultWeights())
	require.NoError(t, err)
	require.Equal(t, 0.5, p.CombinedScore)
	require.False(t, p.IsToxic)

	filtered, err := scoring.Filter([]scoring.Prediction{p}, 0.5, scoring.FilterAll)
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, 0, filtered[0].Index)
}

func TestFilter_ByCategory(t *testing.T) {
	results := []scoring.Prediction{
		mustAggregate(t, "clean", 0.1, 0.1),
		mustAggregate(t, "harassing", 0.9, 0.1),
		mustAggregate(t, "misogynistic", 0.1, 0.9),
	}

	harassment, err := scoring.Filter(results, 0.5, scoring.FilterHarassment)
	require.NoError(t, err)
	require.Len(t, harassment, 1)
	assert.Equal(t, 1, harassment[0].Index)
	assert.Equal(t, "harassing", harassment[0].Text)

	misogyny, err := scoring.Filter(results, 0.5, scoring.FilterMisogyny)
	require.NoError(t, err)
	require.Len(t, misogyny, 1)
	assert.Equal(t, 2, misogyny[0].Index)
}

func TestFilter_PreservesOrderAndIndexes(t *testing.T) {
	results := []scoring.Prediction{
		mustAggregate(t, "a", 0.9, 0.9),
		mustAggregate(t, "b", 0.1, 0.1),
		mustAggregate(t, "c", 0.8, 0.8),
		mustAggregate(t, "d", 0.7, 0.7),
	}

	filtered, err := scoring.Filter(results, 0.6, scoring.FilterAll)
	require.NoError(t, err)
	require.Len(t, filtered, 3)
	assert.Equal(t, []int{0, 2, 3}, []int{filtered[0].Index, filtered[1].Index, filtered[2].Index})
	assert.Equal(t, "a", filtered[0].Text)
	assert.Equal(t, "c", filtered[1].Text)
	assert.Equal(t, "d", filtered[2].Text)
}

func TestFilter_RejectsInvalidThreshold(t *testing.T) {
	results := []scoring.Prediction{mustAggregate(t, "a", 0.9, 0.9)}

	for _, threshold := range []float64{-0.1, 1.1, math.NaN()} {
		_, err := scoring.Filter(results, threshold, scoring.FilterAll)
		assert.ErrorIs(t, err, scoring.ErrInvalidThreshold, "threshold %v", threshold)
	}
}

func TestFilter_RejectsUnknownMode(t *testing.T) {
	results := []scoring.Prediction{mustAggregate(t, "a", 0.9, 0.9)}

	_, err := scoring.Filter(results, 0.5, scoring.FilterMode("spam"))
	assert.ErrorIs(t, err, scoring.ErrInvalidFilterMode)
}

func TestFilter_EmptyInput(t *testing.T) {
	filtered, err := scoring.Filter(nil, 0.5, scoring.FilterAll)
	require.NoError(t, err)
	assert.Empty(t, filtered)
}
