package classifier

import "context"

// Classifier scores a text for a single toxicity category. Implementations
// must return a probability in [0,1]; callers still defend against
// out-of-range values downstream.
type Classifier interface {
	Score(ctx context.Context, text string) (float64, error)
	Info() ModelInfo
}

// ModelInfo describes the model behind a classifier, surfaced by the
// models-info endpoint.
type ModelInfo struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Kind     string `json:"kind"`
	Loaded   bool   `json:"loaded"`
}

const (
	KindRemote  = "remote"
	KindKeyword = "keyword"
)
