package analysis

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/toxiguard/toxiguard/pkg/scoring"
)

// Record is a persisted analysis outcome, kept as a flat row so the
// history endpoint can list it without joins.
type Record struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Text            string    `gorm:"type:text" json:"text"`
	HarassmentScore float64   `json:"harassment_score"`
	MisogynyScore   float64   `json:"misogyny_score"`
	CombinedScore   float64   `json:"combined_toxicity_score"`
	IsToxic         bool      `json:"is_toxic"`
	RiskLevel       string    `gorm:"type:varchar(16)" json:"risk_level"`
	CreatedAt       time.Time `json:"created_at"`
}

func (Record) TableName() string {
	return "analysis_records"
}

//go:generate mockery --name=Repository --dir=. --output=./mocks --filename=repository_mock.go --case=underscore
type Repository interface {
	SaveBatch(ctx context.Context, records []Record) error
	ListRecent(ctx context.Context, limit int) ([]Record, error)
}

// FromPrediction converts a scoring result into a persistable record.
func FromPrediction(p scoring.Prediction) Record {
	return Record{
		ID:              uuid.New(),
		Text:            p.Text,
		HarassmentScore: p.HarassmentScore,
		MisogynyScore:   p.MisogynyScore,
		CombinedScore:   p.CombinedScore,
		IsToxic:         p.IsToxic,
		RiskLevel:       string(p.RiskLevel),
		CreatedAt:       time.Now().UTC(),
	}
}
