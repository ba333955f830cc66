package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/toxiguard/toxiguard/pkg/app/analyze"
	"github.com/toxiguard/toxiguard/pkg/scoring"
)

type Analyzer struct {
	mock.Mock
}

func (m *Analyzer) AnalyzeText(ctx context.Context, text string, threshold float64) (scoring.Prediction, error) {
	args := m.Called(ctx, text, threshold)
	return args.Get(0).(scoring.Prediction), args.Error(1)
}

func (m *Analyzer) AnalyzeBatch(ctx context.Context, texts []string, threshold float64) ([]scoring.Prediction, error) {
	args := m.Called(ctx, texts, threshold)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]scoring.Prediction), args.Error(1)
}

func (m *Analyzer) ModelsInfo() analyze.ModelsInfo {
	args := m.Called()
	return args.Get(0).(analyze.ModelsInfo)
}
