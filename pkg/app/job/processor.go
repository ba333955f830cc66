package job

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/toxiguard/toxiguard/pkg/infra/prometheus"
	"github.com/toxiguard/toxiguard/pkg/scoring"
)

const queueCapacity = 64

// Analyzer is the slice of the analysis service the processor needs.
type Analyzer interface {
	AnalyzeText(ctx context.Context, text string, threshold float64) (scoring.Prediction, error)
}

// Processor drains submitted jobs in a background goroutine, scoring
// each text in turn and publishing progress through the store.
type Processor struct {
	logger    *logrus.Logger
	store     *Store
	analyzer  Analyzer
	threshold float64
	queue     chan string
}

func NewProcessor(logger *logrus.Logger, store *Store, analyzer Analyzer, threshold float64) *Processor {
	return &Processor{
		logger:    logger,
		store:     store,
		analyzer:  analyzer,
		threshold: threshold,
		queue:     make(chan string, queueCapacity),
	}
}

// Submit registers the texts as a queued job and enqueues it for
// processing. It returns the job snapshot immediately.
func (p *Processor) Submit(filename string, texts []string) Job {
	j := p.store.Create(filename, texts)
	select {
	case p.queue <- j.ID:
	default:
		// Queue is saturated; fail fast instead of blocking the request.
		p.store.fail(j.ID, ErrQueueFull)
		j, _ = p.store.Get(j.ID)
	}
	return j
}

// Run consumes the queue until ctx is cancelled. Call it once, in its
// own goroutine.
func (p *Processor) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case id := <-p.queue:
			p.process(ctx, id)
		}
	}
}

func (p *Processor) process(ctx context.Context, id string) {
	j, ok := p.store.Get(id)
	if !ok || j.Status != StatusQueued {
		return
	}

	p.store.setProcessing(id)
	p.logger.WithFields(logrus.Fields{
		"job_id":   id,
		"filename": j.Filename,
		"texts":    j.TotalTexts,
	}).Info("processing analysis job")

	texts := j.Texts()
	results := make([]scoring.Prediction, 0, len(texts))
	for i, text := range texts {
		prediction, err := p.analyzer.AnalyzeText(ctx, text, p.threshold)
		if err != nil {
			p.logger.WithError(err).WithField("job_id", id).Error("analysis job failed")
			p.store.fail(id, err)
			return
		}
		results = append(results, prediction)
		p.store.setProgress(id, (i+1)*100/len(texts))

		prometheus.TextsAnalyzedTotal.WithLabelValues("file").Inc()
		if prediction.IsToxic {
			prometheus.ToxicDetectionsTotal.WithLabelValues(string(prediction.RiskLevel)).Inc()
		}
	}

	stats := scoring.ComputeStatistics(results)
	p.store.complete(id, results, stats)
	p.logger.WithField("job_id", id).Info("analysis job completed")
}
