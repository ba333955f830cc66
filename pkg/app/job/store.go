package job

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/toxiguard/toxiguard/pkg/scoring"
)

// Store is the explicit keyed job registry. All mutation goes through
// its methods; callers only ever see snapshots.
type Store struct {
	mu   sync.RWMutex
	jobs map[string]*Job
}

func NewStore() *Store {
	return &Store{
		jobs: make(map[string]*Job),
	}
}

func (s *Store) Create(filename string, texts []string) Job {
	j := &Job{
		ID:         uuid.NewString(),
		Filename:   filename,
		TotalTexts: len(texts),
		Status:     StatusQueued,
		CreatedAt:  time.Now().UTC(),
		texts:      texts,
	}

	s.mu.Lock()
	s.jobs[j.ID] = j
	s.mu.Unlock()

	return *j
}

// Get returns a snapshot of the job, or false if the id is unknown.
func (s *Store) Get(id string) (Job, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	j, ok := s.jobs[id]
	if !ok {
		return Job{}, false
	}
	return *j, true
}

func (s *Store) setProcessing(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if j, ok := s.jobs[id]; ok {
		j.Status = StatusProcessing
		j.Progress = 0
	}
}

func (s *Store) setProgress(id string, progress int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if j, ok := s.jobs[id]; ok {
		j.Progress = progress
	}
}

func (s *Store) complete(id string, results []scoring.Prediction, stats scoring.Statistics) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if j, ok := s.jobs[id]; ok {
		now := time.Now().UTC()
		j.Status = StatusCompleted
		j.Progress = 100
		j.Results = results
		j.Statistics = &stats
		j.CompletedAt = &now
	}
}

func (s *Store) fail(id string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if j, ok := s.jobs[id]; ok {
		now := time.Now().UTC()
		j.Status = StatusFailed
		j.Error = err.Error()
		j.CompletedAt = &now
	}
}
