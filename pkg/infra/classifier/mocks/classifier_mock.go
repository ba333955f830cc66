package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/toxiguard/toxiguard/pkg/infra/classifier"
)

type Classifier struct {
	mock.Mock
}

func (m *Classifier) Score(ctx context.Context, text string) (float64, error) {
	args := m.Called(ctx, text)
	score, _ := args.Get(0).(float64)
	return score, args.Error(1)
}

func (m *Classifier) Info() classifier.ModelInfo {
	args := m.Called()
	info, _ := args.Get(0).(classifier.ModelInfo)
	return info
}
