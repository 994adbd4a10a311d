package application

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// SampleSource is the demonstration module written by EnsureSample.
// The boolean and the array are there to show that non-string values are dropped.
const SampleSource = `export default {
  service: {
    default: {
      lang: 'pt-BR',
      currency: 'BRL',
      feature: {
        enabled: true, // This boolean won't be included
        name: "Recurso Principal"
      }
    },
    name: 'Serviço Exemplo',
  },
  common: {
    hello: 'Olá',
    goodbye: 'Adeus',
    messageWithComma: 'Valor, com vírgula',
    messageWithQuotes: 'Valor com "aspas"',
  },
  arrayValue: ['a', 'b'], // This array won't be included
};`

// EnsureSample writes SampleSource to path when nothing exists there yet.
// It reports whether the file was created.
func EnsureSample(path string) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return false, fmt.Errorf("stat sample: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return false, fmt.Errorf("create sample dir: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(strings.TrimSpace(SampleSource)), 0o644); err != nil {
		return false, fmt.Errorf("write sample: %w", err)
	}
	return true, nil
}
