package source

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"langtool/internal/domain"
	"langtool/internal/domain/entities"
	"langtool/internal/ports/output"
)

var _ output.TreeLoader = (*Loader)(nil)

// Loader reads translation trees from JSON, YAML, TOML and JS/TS module files.
// The format is picked from the file extension.
type Loader struct{}

func NewLoader() *Loader {
	return &Loader{}
}

// Load reads path and returns its root object.
func (l *Loader) Load(ctx context.Context, path string) (*entities.Branch, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	parse, ok := parserFor(path)
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedSource, filepath.Ext(path))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", domain.ErrSourceNotFound, path)
		}
		return nil, fmt.Errorf("read source: %w", err)
	}

	root, found, err := parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if root == nil {
		return nil, &domain.LoadError{Path: path, Found: found}
	}
	return root, nil
}

// parser returns the root branch, or nil and the kind of value that was found instead.
type parser func(data []byte) (*entities.Branch, string, error)

func parserFor(path string) (parser, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return parseJSON, true
	case ".yaml", ".yml":
		return parseYAML, true
	case ".toml":
		return parseTOML, true
	case ".ts", ".mts", ".cts", ".js", ".mjs", ".cjs":
		return parseModule, true
	}
	return nil, false
}
