package domain

import (
	"errors"
	"fmt"
)

// Domain errors.
var (
	ErrNotObject         = errors.New("source did not produce an object")
	ErrSourceNotFound    = errors.New("source file not found")
	ErrUnsupportedSource = errors.New("unsupported source format")
	ErrEmptyLanguage     = errors.New("export language is required")
	ErrExportNotFound    = errors.New("no export recorded for language")
)

// LoadError reports a source whose default export (or whole module) is not an object.
type LoadError struct {
	Path  string
	Found string
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to load a valid object from %s: found %s", e.Path, e.Found)
}

func (e *LoadError) Unwrap() error { return ErrNotObject }

var codes = []struct {
	err  error
	code string
}{
	{ErrNotObject, "not_object"},
	{ErrSourceNotFound, "source_not_found"},
	{ErrUnsupportedSource, "unsupported_source"},
	{ErrEmptyLanguage, "empty_language"},
	{ErrExportNotFound, "export_not_found"},
}

// Code returns the stable code of the first domain error found in err's chain,
// or "" when err carries none. Codes key the "error.<code>" messages.
func Code(err error) string {
	if err == nil {
		return ""
	}
	for _, c := range codes {
		if errors.Is(err, c.err) {
			return c.code
		}
	}
	return ""
}
