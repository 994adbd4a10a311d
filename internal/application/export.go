package application

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"

	"langtool/internal/domain"
	"langtool/internal/domain/entities"
	"langtool/internal/ports/input"
	"langtool/internal/ports/output"
)

var _ input.ExportUseCase = (*ExportService)(nil)

type ExportService struct {
	loader     output.TreeLoader
	writers    []output.RowWriter
	translator output.T
	locale     string
	logger     *log.Logger
}

// NewExportService wires a loader and the writers every export goes through.
// locale selects the language of operator messages.
func NewExportService(
	loader output.TreeLoader,
	writers []output.RowWriter,
	translator output.T,
	locale string,
	logger *log.Logger,
) *ExportService {
	return &ExportService{
		loader:     loader,
		writers:    writers,
		translator: translator,
		locale:     locale,
		logger:     logger,
	}
}

// Export loads req.Input, flattens it and hands the rows to every writer.
// A source that cannot be loaded aborts the run before anything is written.
// Failures are logged here; callers only decide the exit status.
func (s *ExportService) Export(ctx context.Context, req input.ExportRequest) (_ *input.ExportResult, err error) {
	defer s.reportFailure(&err)

	if req.Language == "" {
		return nil, domain.ErrEmptyLanguage
	}
	if req.CreateSample {
		created, err := EnsureSample(req.Input)
		if err != nil {
			return nil, err
		}
		if created {
			s.logger.Info(s.msg("export.sample_created", map[string]any{"Path": req.Input}))
		}
	}

	result, err := s.load(ctx, req.Input)
	if err != nil {
		return nil, err
	}
	if len(result.Rows) == 0 {
		s.logger.Warn(s.msg("export.empty", map[string]any{"Path": req.Input}))
	}

	meta := output.ExportMeta{Source: req.Input, Language: req.Language}
	for _, w := range s.writers {
		if err := w.Write(ctx, meta, result.Rows); err != nil {
			return nil, fmt.Errorf("write %s: %w", w.Name(), err)
		}
		result.Writers = append(result.Writers, w.Name())
		s.logger.Info(s.msg("export.done", map[string]any{"Target": w.Name()}))
	}
	return result, nil
}

// Inspect loads and flattens path without writing anything.
func (s *ExportService) Inspect(ctx context.Context, path string) (_ *input.ExportResult, err error) {
	defer s.reportFailure(&err)
	return s.load(ctx, path)
}

func (s *ExportService) reportFailure(errp *error) {
	if *errp != nil {
		s.logger.Error(s.msg("export.failed", map[string]any{"Error": s.describe(*errp)}))
	}
}

func (s *ExportService) load(ctx context.Context, path string) (*input.ExportResult, error) {
	s.logger.Info(s.msg("export.loading", map[string]any{"Path": path}))
	tree, err := s.loader.Load(ctx, path)
	if err != nil {
		return nil, err
	}
	s.logger.Info(s.msg("export.loaded", nil))

	rows, skipped := flatten(tree, "")
	for _, path := range SkippedPaths(tree, entities.KindSpread) {
		s.logger.Warn(s.msg("export.spread", map[string]any{"Path": path}))
	}
	if skipped > 0 {
		s.logger.Debug(s.msg("export.skipped", map[string]any{"Count": skipped}))
	}
	return &input.ExportResult{Rows: rows, Skipped: skipped}, nil
}

func (s *ExportService) describe(err error) string {
	return describeError(s.translator, s.locale, err)
}

// describeError prefers the localized message of a domain error and keeps the
// raw error text as detail.
func describeError(translator output.T, locale string, err error) string {
	code := domain.Code(err)
	if code == "" {
		return err.Error()
	}
	return translator.T(locale, "error."+code, nil) + " (" + err.Error() + ")"
}

func (s *ExportService) msg(key string, data map[string]any) string {
	return s.translator.T(s.locale, key, data)
}
