package database

import (
	"context"

	"github.com/google/uuid"

	"langtool/internal/domain/entities"
	"langtool/internal/ports/output"
)

var _ output.RowWriter = (*Sink)(nil)

// Sink stores each export run and its rows through an ExportRepository.
type Sink struct {
	repo output.ExportRepository
}

func NewSink(repo output.ExportRepository) *Sink {
	return &Sink{repo: repo}
}

func (s *Sink) Name() string { return "postgres" }

func (s *Sink) Write(ctx context.Context, meta output.ExportMeta, rows []entities.Row) error {
	export := &entities.Export{
		ID:       uuid.New(),
		Language: meta.Language,
		Source:   meta.Source,
		Rows:     len(rows),
	}
	return s.repo.SaveExport(ctx, export, rows)
}
