package analyze

import (
	"context"

	"github.com/toxiguard/toxiguard/pkg/scoring"
)

// Analyzer is the service surface the HTTP layer depends on.
type Analyzer interface {
	AnalyzeText(ctx context.Context, text string, threshold float64) (scoring.Prediction, error)
	AnalyzeBatch(ctx context.Context, texts []string, threshold float64) ([]scoring.Prediction, error)
	ModelsInfo() ModelsInfo
}
