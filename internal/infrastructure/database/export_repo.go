package database

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"langtool/internal/domain"
	"langtool/internal/domain/entities"
	"langtool/internal/ports/output"
)

var _ output.ExportRepository = (*ExportRepository)(nil)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var entryColumns = []string{"language", "position", "path", "value", "export_id"}

// DB is the part of pgxpool.Pool the repository uses.
type DB interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type ExportRepository struct {
	db DB
}

func NewExportRepository(db DB) *ExportRepository {
	return &ExportRepository{db: db}
}

// SaveExport records export and replaces every entry of its language with rows,
// in a single transaction.
func (r *ExportRepository) SaveExport(ctx context.Context, export *entities.Export, rows []entities.Row) error {
	if export.Language == "" {
		return domain.ErrEmptyLanguage
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	if err := saveExport(ctx, tx, export, rows); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			return fmt.Errorf("rollback failed: %w (original error: %v)", rbErr, err)
		}
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

func saveExport(ctx context.Context, tx pgx.Tx, export *entities.Export, rows []entities.Row) error {
	query, args, err := psql.Insert("exports").
		Columns("id", "language", "source", "row_count").
		Values(export.ID, export.Language, export.Source, int32(export.Rows)).
		Suffix("RETURNING created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert export: %w", err)
	}
	var row exportRow
	if err := tx.QueryRow(ctx, query, args...).Scan(&row.CreatedAt); err != nil {
		return fmt.Errorf("insert export: %w", err)
	}
	export.CreatedAt = pgtypeTimestamptzToTime(row.CreatedAt)

	query, args, err = psql.Delete("translation_entries").
		Where(sq.Eq{"language": export.Language}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete entries: %w", err)
	}
	if _, err := tx.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("delete entries: %w", err)
	}

	if len(rows) == 0 {
		return nil
	}
	copied, err := tx.CopyFrom(ctx,
		pgx.Identifier{"translation_entries"},
		entryColumns,
		pgx.CopyFromRows(entriesToCopyRows(export.Language, export.ID, rows)),
	)
	if err != nil {
		return fmt.Errorf("copy entries: %w", err)
	}
	if int(copied) != len(rows) {
		return fmt.Errorf("copy entries: copied %d of %d rows", copied, len(rows))
	}
	return nil
}

// ListEntries returns the stored rows of language in export order.
func (r *ExportRepository) ListEntries(ctx context.Context, language string) ([]entities.Row, error) {
	query, args, err := psql.Select("path", "value").
		From("translation_entries").
		Where(sq.Eq{"language": language}).
		OrderBy("position").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list entries: %w", err)
	}
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (entities.Row, error) {
		var e entities.Row
		err := row.Scan(&e.Path, &e.Value)
		return e, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan entries: %w", err)
	}
	return out, nil
}

// LatestExport returns the most recent export of language.
func (r *ExportRepository) LatestExport(ctx context.Context, language string) (*entities.Export, error) {
	query, args, err := psql.Select("id", "language", "source", "row_count", "created_at").
		From("exports").
		Where(sq.Eq{"language": language}).
		OrderBy("created_at DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build latest export: %w", err)
	}
	var row exportRow
	err = r.db.QueryRow(ctx, query, args...).
		Scan(&row.ID, &row.Language, &row.Source, &row.RowCount, &row.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", domain.ErrExportNotFound, language)
	}
	if err != nil {
		return nil, fmt.Errorf("get latest export: %w", err)
	}
	e := exportToDomain(row)
	return &e, nil
}
