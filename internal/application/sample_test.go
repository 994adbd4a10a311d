package application

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureSample_WritesWhenMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "samples.portuguese.ts")

	created, err := EnsureSample(path)

	require.NoError(t, err)
	assert.True(t, created)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, strings.TrimSpace(SampleSource), string(data))
}

func TestEnsureSample_KeepsExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "samples.portuguese.ts")
	require.NoError(t, os.WriteFile(path, []byte("export default {}"), 0o644))

	created, err := EnsureSample(path)

	require.NoError(t, err)
	assert.False(t, created)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "export default {}", string(data))
}
