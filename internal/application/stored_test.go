package application

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"langtool/internal/domain"
	"langtool/internal/domain/entities"
)

type stubRepo struct {
	latest    *entities.Export
	rows      []entities.Row
	latestErr error
	listErr   error
	languages []string
}

func (r *stubRepo) SaveExport(context.Context, *entities.Export, []entities.Row) error {
	return errors.New("read only")
}

func (r *stubRepo) ListEntries(_ context.Context, language string) ([]entities.Row, error) {
	r.languages = append(r.languages, language)
	return r.rows, r.listErr
}

func (r *stubRepo) LatestExport(_ context.Context, language string) (*entities.Export, error) {
	r.languages = append(r.languages, language)
	return r.latest, r.latestErr
}

// dataTranslator renders the key followed by its template data.
type dataTranslator struct{}

func (dataTranslator) T(_, key string, data map[string]any) string {
	return fmt.Sprintf("%s %v", key, data)
}

func TestStoredExportService_Latest(t *testing.T) {
	export := &entities.Export{
		ID:        uuid.New(),
		Language:  "pt-BR",
		Source:    "samples.portuguese.ts",
		Rows:      2,
		CreatedAt: time.Date(2026, 10, 17, 9, 30, 0, 0, time.UTC),
	}
	repo := &stubRepo{
		latest: export,
		rows:   []entities.Row{{Path: "common.hello", Value: "Olá"}, {Path: "common.bye", Value: "Adeus"}},
	}
	svc := NewStoredExportService(repo, keyTranslator{}, "en", discardLogger())

	got, err := svc.Latest(context.Background(), "pt-BR")

	require.NoError(t, err)
	assert.Equal(t, *export, got.Export)
	assert.Equal(t, repo.rows, got.Rows)
	assert.Equal(t, []string{"pt-BR", "pt-BR"}, repo.languages)
}

func TestStoredExportService_Latest_Errors(t *testing.T) {
	tests := []struct {
		name     string
		language string
		repo     *stubRepo
		wantErr  error
		wantLog  string
	}{
		{
			name:    "language required",
			repo:    &stubRepo{},
			wantErr: domain.ErrEmptyLanguage,
			wantLog: "error.empty_language",
		},
		{
			name:     "nothing recorded",
			language: "fr",
			repo:     &stubRepo{latestErr: fmt.Errorf("%w: fr", domain.ErrExportNotFound)},
			wantErr:  domain.ErrExportNotFound,
			wantLog:  "error.export_not_found",
		},
		{
			name:     "listing fails",
			language: "pt",
			repo:     &stubRepo{latest: &entities.Export{Language: "pt"}, listErr: errors.New("connection reset")},
			wantLog:  "connection reset",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var logs bytes.Buffer
			svc := NewStoredExportService(tt.repo, dataTranslator{}, "en", log.New(&logs))

			_, err := svc.Latest(context.Background(), tt.language)

			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			assert.Contains(t, logs.String(), "inspect.failed")
			assert.Contains(t, logs.String(), tt.wantLog)
		})
	}
}
