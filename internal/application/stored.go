package application

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"langtool/internal/domain"
	"langtool/internal/ports/input"
	"langtool/internal/ports/output"
)

var _ input.StoredExportUseCase = (*StoredExportService)(nil)

// StoredExportService reads back what the database sink recorded.
type StoredExportService struct {
	repo       output.ExportRepository
	translator output.T
	locale     string
	logger     *log.Logger
}

func NewStoredExportService(
	repo output.ExportRepository,
	translator output.T,
	locale string,
	logger *log.Logger,
) *StoredExportService {
	return &StoredExportService{
		repo:       repo,
		translator: translator,
		locale:     locale,
		logger:     logger,
	}
}

// Latest returns the most recent export of language with its rows in export order.
func (s *StoredExportService) Latest(ctx context.Context, language string) (_ *input.StoredExport, err error) {
	defer func() {
		if err != nil {
			s.logger.Error(s.translator.T(s.locale, "inspect.failed", map[string]any{
				"Error": describeError(s.translator, s.locale, err),
			}))
		}
	}()

	if language == "" {
		return nil, domain.ErrEmptyLanguage
	}
	export, err := s.repo.LatestExport(ctx, language)
	if err != nil {
		return nil, err
	}
	rows, err := s.repo.ListEntries(ctx, language)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}

	s.logger.Info(s.translator.T(s.locale, "inspect.stored", map[string]any{
		"Language": export.Language,
		"Source":   export.Source,
		"Count":    len(rows),
		"Time":     export.CreatedAt.Format(time.RFC3339),
	}))
	return &input.StoredExport{Export: *export, Rows: rows}, nil
}
