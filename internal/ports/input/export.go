package input

import (
	"context"

	"langtool/internal/domain/entities"
)

type ExportRequest struct {
	Input        string
	Language     string
	CreateSample bool
}

type ExportResult struct {
	Rows    []entities.Row
	Skipped int
	Writers []string
}

type ExportUseCase interface {
	Export(ctx context.Context, req ExportRequest) (*ExportResult, error)
	Inspect(ctx context.Context, path string) (*ExportResult, error)
}

// StoredExport is the latest recorded run of a language and its stored rows.
type StoredExport struct {
	Export entities.Export
	Rows   []entities.Row
}

type StoredExportUseCase interface {
	Latest(ctx context.Context, language string) (*StoredExport, error)
}
