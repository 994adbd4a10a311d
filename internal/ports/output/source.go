package output

import (
	"context"

	"langtool/internal/domain/entities"
)

// TreeLoader reads a translation tree from a source file.
type TreeLoader interface {
	Load(ctx context.Context, path string) (*entities.Branch, error)
}

// ExportMeta identifies the run a RowWriter is writing.
type ExportMeta struct {
	Source   string
	Language string
}

// RowWriter persists flattened rows. Writers are independent of each other.
type RowWriter interface {
	Name() string
	Write(ctx context.Context, meta ExportMeta, rows []entities.Row) error
}
