package application

import (
	"context"
	"io"
	"sync"

	"github.com/charmbracelet/log"

	"langtool/internal/domain/entities"
	"langtool/internal/ports/output"
)

type stubLoader struct {
	mu    sync.Mutex
	tree  *entities.Branch
	err   error
	paths []string
}

func (l *stubLoader) Load(_ context.Context, path string) (*entities.Branch, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.paths = append(l.paths, path)
	return l.tree, l.err
}

type recordingWriter struct {
	mu    sync.Mutex
	name  string
	err   error
	metas []output.ExportMeta
	rows  [][]entities.Row
}

func (w *recordingWriter) Name() string { return w.name }

func (w *recordingWriter) Write(_ context.Context, meta output.ExportMeta, rows []entities.Row) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.err != nil {
		return w.err
	}
	w.metas = append(w.metas, meta)
	w.rows = append(w.rows, rows)
	return nil
}

func (w *recordingWriter) calls() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.rows)
}

// keyTranslator renders every message as its key.
type keyTranslator struct{}

func (keyTranslator) T(_, key string, _ map[string]any) string { return key }

func discardLogger() *log.Logger {
	return log.New(io.Discard)
}

// tree builds a branch from alternating keys and values. Values may be
// strings (leaves), *entities.Branch or entities.Skipped.
func tree(kv ...any) *entities.Branch {
	b := entities.NewBranch()
	for i := 0; i+1 < len(kv); i += 2 {
		key := kv[i].(string)
		switch v := kv[i+1].(type) {
		case string:
			b.Set(key, entities.Leaf(v))
		case entities.Node:
			b.Set(key, v)
		default:
			panic("tree: unsupported value")
		}
	}
	return b
}
