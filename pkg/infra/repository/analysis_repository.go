package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/toxiguard/toxiguard/pkg/domain/analysis"
)

type AnalysisRepository struct {
	db *gorm.DB
}

func NewAnalysisRepository(db *gorm.DB) analysis.Repository {
	return &AnalysisRepository{
		db: db,
	}
}

func (r *AnalysisRepository) SaveBatch(ctx context.Context, records []analysis.Record) error {
	if len(records) == 0 {
		return nil
	}
	if err := r.db.WithContext(ctx).Create(&records).Error; err != nil {
		return fmt.Errorf("analysis records: %w", err)
	}
	return nil
}

func (r *AnalysisRepository) ListRecent(ctx context.Context, limit int) ([]analysis.Record, error) {
	var records []analysis.Record
	result := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&records)
	if result.Error != nil {
		return nil, fmt.Errorf("analysis records: %w", result.Error)
	}
	return records, nil
}
