package application

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"langtool/internal/ports/input"
)

func TestExportService_Watch(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pt.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"a": "b"}`), 0o644))

	csv := &recordingWriter{name: "out.csv"}
	svc := newService(&stubLoader{tree: tree("a", "b")}, csv)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- svc.Watch(ctx, input.ExportRequest{Input: path, Language: "pt"})
	}()

	require.Eventually(t, func() bool { return csv.calls() == 1 }, 2*time.Second, 10*time.Millisecond)

	// Other files in the directory are ignored.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.json"), []byte(`{}`), 0o644))
	require.NoError(t, os.WriteFile(path, []byte(`{"a": "c"}`), 0o644))

	require.Eventually(t, func() bool { return csv.calls() == 2 }, 3*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Watch did not return after cancel")
	}
	assert.Equal(t, 2, csv.calls())
}
