package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/toxiguard/toxiguard/pkg/domain/analysis"
)

type Repository struct {
	mock.Mock
}

func (m *Repository) SaveBatch(ctx context.Context, records []analysis.Record) error {
	args := m.Called(ctx, records)
	return args.Error(0)
}

func (m *Repository) ListRecent(ctx context.Context, limit int) ([]analysis.Record, error) {
	args := m.Called(ctx, limit)
	records, _ := args.Get(0).([]analysis.Record)
	return records, args.Error(1)
}
