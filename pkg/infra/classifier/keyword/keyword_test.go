package keyword_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toxiguard/toxiguard/pkg/infra/classifier"
	"github.com/toxiguard/toxiguard/pkg/infra/classifier/keyword"
)

func TestHarassmentClassifier_CleanText(t *testing.T) {
	c, err := keyword.NewHarassmentClassifier()
	require.NoError(t, err)

	score, err := c.Score(context.Background(), "great job")
	require.NoError(t, err)
	assert.Equal(t, 0.0, score)
}

func TestHarassmentClassifier_ToxicText(t *testing.T) {
	c, err := keyword.NewHarassmentClassifier()
	require.NoError(t, err)

	score, err := c.Score(context.Background(), "you are worthless and should die")
	require.NoError(t, err)
	// "worthless" (0.3) + "die" (0.7)
	assert.InDelta(t, 1.0, score, 1e-9)
}

func TestMisogynyClassifier_ToxicText(t *testing.T) {
	c, err := keyword.NewMisogynyClassifier()
	require.NoError(t, err)

	score, err := c.Score(context.Background(), "women belong in the kitchen")
	require.NoError(t, err)
	// "women" (0.3) + "kitchen" (0.3)
	assert.InDelta(t, 0.6, score, 1e-9)
}

func TestClassifier_ScoreClampedToOne(t *testing.T) {
	c, err := keyword.NewHarassmentClassifier()
	require.NoError(t, err)

	score, err := c.Score(context.Background(), "fuck shit asshole bastard idiot stupid hate kill die")
	require.NoError(t, err)
	assert.Equal(t, 1.0, score)
}

func TestClassifier_MatchedWordCountedOnce(t *testing.T) {
	c, err := keyword.NewHarassmentClassifier()
	require.NoError(t, err)

	once, err := c.Score(context.Background(), "stupid")
	require.NoError(t, err)
	repeated, err := c.Score(context.Background(), "stupid stupid stupid")
	require.NoError(t, err)
	assert.Equal(t, once, repeated)
}

func TestClassifier_Deterministic(t *testing.T) {
	c, err := keyword.NewMisogynyClassifier()
	require.NoError(t, err)

	first, err := c.Score(context.Background(), "women are too emotional to lead")
	require.NoError(t, err)
	second, err := c.Score(context.Background(), "women are too emotional to lead")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestClassifier_CaseInsensitive(t *testing.T) {
	c, err := keyword.NewHarassmentClassifier()
	require.NoError(t, err)

	lower, err := c.Score(context.Background(), "you idiot")
	require.NoError(t, err)
	upper, err := c.Score(context.Background(), "You IDIOT")
	require.NoError(t, err)
	assert.Equal(t, lower, upper)
}

func TestClassifier_Info(t *testing.T) {
	h, err := keyword.NewHarassmentClassifier()
	require.NoError(t, err)
	m, err := keyword.NewMisogynyClassifier()
	require.NoError(t, err)

	assert.Equal(t, classifier.KindKeyword, h.Info().Kind)
	assert.Equal(t, "harassment", h.Info().Category)
	assert.Equal(t, "misogyny", m.Info().Category)
	assert.True(t, h.Info().Loaded)
}
