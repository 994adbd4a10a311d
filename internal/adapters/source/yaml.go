package source

import (
	"strings"

	"gopkg.in/yaml.v3"

	"langtool/internal/domain/entities"
)

// parseJSON reads JSON through the YAML parser, which keeps key order. The
// parser rejects the JSON \/ escape, so it is replaced by the bare solidus first.
func parseJSON(data []byte) (*entities.Branch, string, error) {
	return parseYAML(unescapeSolidus(data))
}

// unescapeSolidus rewrites \/ inside JSON strings to /.
func unescapeSolidus(data []byte) []byte {
	out := make([]byte, 0, len(data))
	inString := false
	for i := 0; i < len(data); i++ {
		c := data[i]
		switch {
		case inString && c == '\\' && i+1 < len(data):
			if data[i+1] == '/' {
				out = append(out, '/')
			} else {
				out = append(out, c, data[i+1])
			}
			i++
			continue
		case c == '"':
			inString = !inString
		}
		out = append(out, c)
	}
	return out
}

func parseYAML(data []byte) (*entities.Branch, string, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, "", err
	}
	root, found := rootMapping(&doc)
	if root == nil {
		return nil, found, nil
	}
	return convertMapping(root, false), "", nil
}

// rootMapping unwraps the document node and returns the top-level mapping.
func rootMapping(doc *yaml.Node) (*yaml.Node, string) {
	n := doc
	if n.Kind == yaml.DocumentNode {
		if len(n.Content) == 0 {
			return nil, "undefined"
		}
		n = n.Content[0]
	}
	n = resolveAlias(n)
	if n.Kind != yaml.MappingNode {
		return nil, kindOf(n)
	}
	return n, ""
}

// convertMapping turns a mapping node into a Branch, keeping key order.
// In module mode only quoted scalars are strings: a plain scalar is an
// identifier such as undefined or a variable reference, and `...name` is an
// object spread that cannot be resolved.
//
// Merge keys (<<) insert the merged keys at their position. Keys written in
// the mapping itself win, then earlier merge sources over later ones.
func convertMapping(m *yaml.Node, module bool) *entities.Branch {
	own := make(map[string]bool, len(m.Content)/2)
	for i := 0; i+1 < len(m.Content); i += 2 {
		if !isMergeKey(m.Content[i]) {
			own[m.Content[i].Value] = true
		}
	}

	b := entities.NewBranch()
	for i := 0; i+1 < len(m.Content); i += 2 {
		key, value := m.Content[i], m.Content[i+1]
		switch {
		case isMergeKey(key):
			for _, src := range mergeSources(value) {
				for _, e := range convertMapping(src, module).Entries {
					if _, seen := b.Get(e.Key); !seen && !own[e.Key] {
						b.Set(e.Key, e.Value)
					}
				}
			}
		case module && isSpread(key):
			b.Set(key.Value, entities.Skipped{Kind: entities.KindSpread})
		default:
			b.Set(key.Value, convertNode(value, module))
		}
	}
	return b
}

func isMergeKey(n *yaml.Node) bool {
	return n.Kind == yaml.ScalarNode && n.ShortTag() == "!!merge"
}

func isSpread(n *yaml.Node) bool {
	return n.Kind == yaml.ScalarNode &&
		n.Style&(yaml.DoubleQuotedStyle|yaml.SingleQuotedStyle) == 0 &&
		strings.HasPrefix(n.Value, "...")
}

// mergeSources returns the mappings a merge key refers to: one mapping or a
// sequence of them.
func mergeSources(n *yaml.Node) []*yaml.Node {
	n = resolveAlias(n)
	switch n.Kind {
	case yaml.MappingNode:
		return []*yaml.Node{n}
	case yaml.SequenceNode:
		var out []*yaml.Node
		for _, item := range n.Content {
			if item = resolveAlias(item); item.Kind == yaml.MappingNode {
				out = append(out, item)
			}
		}
		return out
	}
	return nil
}

func convertNode(n *yaml.Node, module bool) entities.Node {
	n = resolveAlias(n)
	switch n.Kind {
	case yaml.MappingNode:
		return convertMapping(n, module)
	case yaml.ScalarNode:
		if n.ShortTag() != "!!str" {
			return entities.Skipped{Kind: kindOf(n)}
		}
		if module && n.Style&(yaml.DoubleQuotedStyle|yaml.SingleQuotedStyle) == 0 {
			return entities.Skipped{Kind: "reference"}
		}
		return entities.Leaf(n.Value)
	default:
		return entities.Skipped{Kind: kindOf(n)}
	}
}

func resolveAlias(n *yaml.Node) *yaml.Node {
	for n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	return n
}

func kindOf(n *yaml.Node) string {
	switch n.Kind {
	case yaml.MappingNode:
		return "object"
	case yaml.SequenceNode:
		return "array"
	case yaml.ScalarNode:
		switch n.ShortTag() {
		case "!!str":
			return "string"
		case "!!bool":
			return "boolean"
		case "!!int", "!!float":
			return "number"
		case "!!null":
			return "null"
		}
		return n.ShortTag()
	}
	return "undefined"
}
