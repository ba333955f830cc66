package job_test

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toxiguard/toxiguard/pkg/app/job"
	"github.com/toxiguard/toxiguard/pkg/scoring"
)

type stubAnalyzer struct {
	scores  map[string]float64
	failOn  string
	failErr error
}

func (a *stubAnalyzer) AnalyzeText(_ context.Context, text string, threshold float64) (scoring.Prediction, error) {
	if text == a.failOn {
		return scoring.Prediction{}, a.failErr
	}
	return scoring.Aggregate(text, a.scores[text], a.scores[text], threshold, scoring.DefaultWeights())
}

func newTestLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	logger.SetLevel(logrus.PanicLevel)
	return logger
}

func TestProcessorCompletesJob(t *testing.T) {
	store := job.NewStore()
	analyzer := &stubAnalyzer{scores: map[string]float64{"safe": 0.1, "toxic": 0.9}}
	processor := job.NewProcessor(newTestLogger(), store, analyzer, 0.5)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go processor.Run(ctx)

	submitted := processor.Submit("comments.csv", []string{"safe", "toxic"})
	assert.Equal(t, job.StatusQueued, submitted.Status)

	require.Eventually(t, func() bool {
		j, _ := store.Get(submitted.ID)
		return j.Status == job.StatusCompleted
	}, 2*time.Second, 10*time.Millisecond)

	j, ok := store.Get(submitted.ID)
	require.True(t, ok)
	assert.Equal(t, 100, j.Progress)
	require.Len(t, j.Results, 2)
	assert.Equal(t, "safe", j.Results[0].Text)
	assert.Equal(t, "toxic", j.Results[1].Text)
	require.NotNil(t, j.Statistics)
	assert.Equal(t, 2, j.Statistics.TotalComments)
	assert.Equal(t, 1, j.Statistics.ToxicComments)
	require.NotNil(t, j.CompletedAt)
}

func TestProcessorFailsJobOnAnalyzerError(t *testing.T) {
	store := job.NewStore()
	analyzer := &stubAnalyzer{
		scores:  map[string]float64{"ok": 0.1},
		failOn:  "broken",
		failErr: errors.New("inference down"),
	}
	processor := job.NewProcessor(newTestLogger(), store, analyzer, 0.5)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go processor.Run(ctx)

	submitted := processor.Submit("comments.csv", []string{"ok", "broken"})

	require.Eventually(t, func() bool {
		j, _ := store.Get(submitted.ID)
		return j.Status == job.StatusFailed
	}, 2*time.Second, 10*time.Millisecond)

	j, _ := store.Get(submitted.ID)
	assert.Equal(t, "inference down", j.Error)
	assert.Nil(t, j.Results)
	require.NotNil(t, j.CompletedAt)
}
