package source

import (
	"fmt"
	"sort"

	"github.com/pelletier/go-toml/v2"

	"langtool/internal/domain/entities"
)

// parseTOML decodes a TOML document. Decoded tables carry no key order, so
// keys are visited in sorted order.
func parseTOML(data []byte) (*entities.Branch, string, error) {
	var doc map[string]any
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, "", err
	}
	return convertTable(doc), "", nil
}

func convertTable(t map[string]any) *entities.Branch {
	keys := make([]string, 0, len(t))
	for k := range t {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	b := entities.NewBranch()
	for _, k := range keys {
		b.Set(k, convertValue(t[k]))
	}
	return b
}

func convertValue(v any) entities.Node {
	switch v := v.(type) {
	case map[string]any:
		return convertTable(v)
	case string:
		return entities.Leaf(v)
	case bool:
		return entities.Skipped{Kind: "boolean"}
	case int64, float64:
		return entities.Skipped{Kind: "number"}
	case []any:
		return entities.Skipped{Kind: "array"}
	default:
		return entities.Skipped{Kind: fmt.Sprintf("%T", v)}
	}
}
