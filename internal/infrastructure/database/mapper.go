package database

import (
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"

	"langtool/internal/domain/entities"
)

// pgtypeTimestamptzToTime returns t.Time when Valid, else zero time.
func pgtypeTimestamptzToTime(t pgtype.Timestamptz) time.Time {
	if !t.Valid {
		return time.Time{}
	}
	return t.Time
}

type exportRow struct {
	ID        uuid.UUID
	Language  string
	Source    string
	RowCount  int32
	CreatedAt pgtype.Timestamptz
}

func exportToDomain(r exportRow) entities.Export {
	return entities.Export{
		ID:        r.ID,
		Language:  r.Language,
		Source:    r.Source,
		Rows:      int(r.RowCount),
		CreatedAt: pgtypeTimestamptzToTime(r.CreatedAt),
	}
}

// entriesToCopyRows lays rows out in translation_entries column order.
func entriesToCopyRows(language string, exportID uuid.UUID, rows []entities.Row) [][]any {
	out := make([][]any, len(rows))
	for i, r := range rows {
		out[i] = []any{language, int32(i), r.Path, r.Value, exportID}
	}
	return out
}
