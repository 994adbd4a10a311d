package csvfile

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"

	"langtool/internal/domain/entities"
	"langtool/internal/ports/output"
	"langtool/pkg/csvfmt"
)

// Header is the first line of every export.
const Header = "Path,Value"

var _ output.RowWriter = (*Writer)(nil)

// Writer writes rows to a CSV file, replacing its previous content.
type Writer struct {
	path string
}

func NewWriter(path string) *Writer {
	return &Writer{path: path}
}

func (w *Writer) Name() string { return w.path }

func (w *Writer) Write(ctx context.Context, _ output.ExportMeta, rows []entities.Row) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := Encode(&buf, rows); err != nil {
		return err
	}
	if err := os.WriteFile(w.path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}
	return nil
}

// Encode writes the header and one `path,value` line per row. Rows are
// separated by "\n" with no trailing newline; with no rows the output is the
// header followed by a single "\n". Paths are written unescaped.
func Encode(w io.Writer, rows []entities.Row) error {
	if _, err := io.WriteString(w, Header+"\n"); err != nil {
		return err
	}
	for i, r := range rows {
		line := r.Path + "," + csvfmt.Escape(r.Value)
		if i > 0 {
			line = "\n" + line
		}
		if _, err := io.WriteString(w, line); err != nil {
			return err
		}
	}
	return nil
}
