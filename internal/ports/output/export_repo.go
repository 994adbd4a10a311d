package output

import (
	"context"

	"langtool/internal/domain/entities"
)

type ExportRepository interface {
	SaveExport(ctx context.Context, export *entities.Export, rows []entities.Row) error
	ListEntries(ctx context.Context, language string) ([]entities.Row, error)
	LatestExport(ctx context.Context, language string) (*entities.Export, error)
}
