package job

import (
	"errors"
	"time"

	"github.com/toxiguard/toxiguard/pkg/scoring"
)

var ErrQueueFull = errors.New("job queue is full")

type Status string

const (
	StatusQueued     Status = "queued"
	StatusProcessing Status = "processing"
	StatusCompleted  Status = "completed"
	StatusFailed     Status = "failed"
)

// Per-text processing estimate reported at submission time.
const EstimatedSecondsPerText = 0.1

// Job tracks one file-analysis request through its lifecycle:
// queued -> processing -> completed (or failed).
type Job struct {
	ID          string               `json:"jobId"`
	Filename    string               `json:"filename"`
	TotalTexts  int                  `json:"totalTexts"`
	Status      Status               `json:"status"`
	Progress    int                  `json:"progress"`
	Results     []scoring.Prediction `json:"results,omitempty"`
	Statistics  *scoring.Statistics  `json:"statistics,omitempty"`
	Error       string               `json:"error,omitempty"`
	CreatedAt   time.Time            `json:"createdAt"`
	CompletedAt *time.Time           `json:"completedAt,omitempty"`

	// texts are the raw inputs; they never appear in API responses.
	texts []string
}

func (j *Job) Texts() []string {
	return j.texts
}
