package analyze

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/toxiguard/toxiguard/pkg/domain/analysis"
	"github.com/toxiguard/toxiguard/pkg/infra/cache"
	"github.com/toxiguard/toxiguard/pkg/infra/classifier"
	"github.com/toxiguard/toxiguard/pkg/infra/prometheus"
	"github.com/toxiguard/toxiguard/pkg/scoring"
)

// Upper bound on concurrent classifier calls per batch. Results are
// written by input index, so output order never depends on scheduling.
const maxConcurrentScores = 8

const persistTimeout = 5 * time.Second

// Service runs the two category classifiers over texts and aggregates
// their scores into predictions. Weights are fixed at construction;
// thresholds travel with each call.
type Service struct {
	logger     *logrus.Logger
	harassment classifier.Classifier
	misogyny   classifier.Classifier
	weights    scoring.Weights
	scores     *cache.ScoreCache
	history    analysis.Repository
}

func NewService(
	logger *logrus.Logger,
	harassment classifier.Classifier,
	misogyny classifier.Classifier,
	weights scoring.Weights,
) *Service {
	return &Service{
		logger:     logger,
		harassment: harassment,
		misogyny:   misogyny,
		weights:    weights,
	}
}

// WithScoreCache enables per-category score memoization.
func (s *Service) WithScoreCache(scores *cache.ScoreCache) *Service {
	s.scores = scores
	return s
}

// WithHistory enables best-effort persistence of analysis outcomes.
func (s *Service) WithHistory(history analysis.Repository) *Service {
	s.history = history
	return s
}

func (s *Service) AnalyzeText(ctx context.Context, text string, threshold float64) (scoring.Prediction, error) {
	harassmentScore, err := s.score(ctx, s.harassment, scoring.CategoryHarassment, text)
	if err != nil {
		return scoring.Prediction{}, fmt.Errorf("harassment classifier: %w", err)
	}
	misogynyScore, err := s.score(ctx, s.misogyny, scoring.CategoryMisogyny, text)
	if err != nil {
		return scoring.Prediction{}, fmt.Errorf("misogyny classifier: %w", err)
	}

	prediction, err := scoring.Aggregate(text, harassmentScore, misogynyScore, threshold, s.weights)
	if err != nil {
		return scoring.Prediction{}, err
	}

	s.persist([]scoring.Prediction{prediction})
	return prediction, nil
}

// AnalyzeBatch scores texts with bounded parallelism and returns the
// predictions in input order. A single failure aborts the whole batch;
// no partial output is returned.
func (s *Service) AnalyzeBatch(ctx context.Context, texts []string, threshold float64) ([]scoring.Prediction, error) {
	results := make([]scoring.Prediction, len(texts))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentScores)
	for i, text := range texts {
		i, text := i, text
		g.Go(func() error {
			harassmentScore, err := s.score(gctx, s.harassment, scoring.CategoryHarassment, text)
			if err != nil {
				return fmt.Errorf("harassment classifier: %w", err)
			}
			misogynyScore, err := s.score(gctx, s.misogyny, scoring.CategoryMisogyny, text)
			if err != nil {
				return fmt.Errorf("misogyny classifier: %w", err)
			}
			prediction, err := scoring.Aggregate(text, harassmentScore, misogynyScore, threshold, s.weights)
			if err != nil {
				return err
			}
			results[i] = prediction
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	s.persist(results)
	return results, nil
}

// ModelsInfo reports the classifiers behind the service and the active
// combination weights.
func (s *Service) ModelsInfo() ModelsInfo {
	return ModelsInfo{
		HarassmentModel: s.harassment.Info(),
		MisogynyModel:   s.misogyny.Info(),
		Weights: WeightsInfo{
			Harassment: s.weights.Harassment,
			Misogyny:   s.weights.Misogyny,
		},
	}
}

type ModelsInfo struct {
	HarassmentModel classifier.ModelInfo `json:"harassment_model"`
	MisogynyModel   classifier.ModelInfo `json:"misogyny_model"`
	Weights         WeightsInfo          `json:"toxicity_weights"`
}

type WeightsInfo struct {
	Harassment float64 `json:"harassment"`
	Misogyny   float64 `json:"misogyny"`
}

func (s *Service) score(ctx context.Context, c classifier.Classifier, category, text string) (float64, error) {
	if s.scores != nil {
		if cached, ok := s.scores.Get(ctx, category, text); ok {
			return cached, nil
		}
	}

	start := time.Now()
	score, err := c.Score(ctx, text)
	if prometheus.Config.EnableLatency {
		prometheus.ClassifierLatency.WithLabelValues(category, c.Info().Kind).
			Observe(float64(time.Since(start).Milliseconds()))
	}
	if err != nil {
		return 0, err
	}

	if s.scores != nil {
		s.scores.Set(ctx, category, text, score)
	}
	return score, nil
}

// persist writes outcomes to the history repository without blocking or
// failing the request path.
func (s *Service) persist(predictions []scoring.Prediction) {
	if s.history == nil || len(predictions) == 0 {
		return
	}

	records := make([]analysis.Record, 0, len(predictions))
	for _, p := range predictions {
		records = append(records, analysis.FromPrediction(p))
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
		defer cancel()
		if err := s.history.SaveBatch(ctx, records); err != nil {
			s.logger.WithError(err).Warn("failed to persist analysis history")
		}
	}()
}
