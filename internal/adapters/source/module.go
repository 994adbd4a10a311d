package source

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"gopkg.in/yaml.v3"

	"langtool/internal/domain/entities"
)

var errUnterminated = errors.New("unterminated string or comment")

var leadingIdent = regexp.MustCompile(`^[A-Za-z_$][\w$]*`)

// parseModule reads a JS/TS module that exports an object literal, either as
// `export default {...}` or `module.exports = {...}`. The literal is rewritten
// into a YAML flow mapping: comments are dropped, string literals become YAML
// double-quoted scalars and every colon gets a following space.
//
// When the module has no default export, the whole exported object is used,
// unless it carries a `default` key holding an object (transpiled ES modules).
// An exported identifier is resolved through its const, let or var declaration.
func parseModule(data []byte) (*entities.Branch, string, error) {
	src, err := normalizeModule(string(data))
	if err != nil {
		return nil, "", err
	}
	body, isDefault := exportedExpression(src)
	if name := exportedIdent(body); name != "" {
		if init, ok := declaredValue(src, name); ok {
			body = init
		}
	}

	var doc yaml.Node
	if err := yaml.Unmarshal([]byte(body), &doc); err != nil {
		return nil, "", fmt.Errorf("object literal: %w", err)
	}
	root, found := rootMapping(&doc)
	if root == nil {
		return nil, found, nil
	}
	tree := convertMapping(root, true)

	if !isDefault {
		if def, ok := tree.Get("default"); ok {
			switch v := def.(type) {
			case *entities.Branch:
				return v, "", nil
			case entities.Leaf:
				if v != "" {
					return nil, "string", nil
				}
			}
		}
	}
	return tree, "", nil
}

// exportedExpression returns what follows the first export statement, without
// the trailing semicolon or `as const`.
func exportedExpression(src string) (string, bool) {
	s := src
	isDefault := false
	start, end := -1, 0
	for _, prefix := range []string{"export default", "module.exports =", "module.exports=", "exports.default =", "exports.default="} {
		if i := strings.Index(s, prefix); i >= 0 && (start < 0 || i < start) {
			start, end = i, i+len(prefix)
			isDefault = strings.Contains(prefix, "default")
		}
	}
	if start >= 0 {
		s = s[end:]
	}
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, ";")
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "as const")
	return strings.TrimSpace(s), isDefault
}

// exportedIdent returns the identifier body consists of, or "".
func exportedIdent(body string) string {
	name := leadingIdent.FindString(body)
	if name == "" {
		return ""
	}
	if rest := strings.TrimSpace(body[len(name):]); rest != "" && rest[0] != ';' {
		return ""
	}
	return name
}

// declaredValue finds `const|let|var name = ...` in the normalized source and
// returns the initializer, up to its closing bracket or the end of the statement.
func declaredValue(src, name string) (string, bool) {
	decl := regexp.MustCompile(`(?:^|[^\w$.])(?:const|let|var)\s+` + regexp.QuoteMeta(name) + `\s*(?::[^=;]*)?=\s*`)
	loc := decl.FindStringIndex(src)
	if loc == nil {
		return "", false
	}
	return strings.TrimSpace(initializer(src[loc[1]:])), true
}

// initializer cuts s after the bracket that closes its first bracket, or at the
// first top-level semicolon or newline. Strings are already double-quoted.
func initializer(s string) string {
	depth := 0
	inString := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if inString {
			switch c {
			case '\\':
				i++
			case '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{', '[', '(':
			depth++
		case '}', ']', ')':
			depth--
			if depth <= 0 {
				return s[:i+1]
			}
		case ';', '\n':
			if depth == 0 {
				return s[:i]
			}
		}
	}
	return s
}

// normalizeModule drops comments, rewrites '...', "..." and `...` literals into
// YAML double-quoted scalars and makes sure every colon outside a string is
// followed by a space.
func normalizeModule(src string) (string, error) {
	var out strings.Builder
	out.Grow(len(src))

	rs := []rune(src)
	for i := 0; i < len(rs); i++ {
		c := rs[i]
		switch {
		case c == '/' && i+1 < len(rs) && rs[i+1] == '/':
			for i < len(rs) && rs[i] != '\n' {
				i++
			}
			if i < len(rs) {
				out.WriteRune('\n')
			}
		case c == '/' && i+1 < len(rs) && rs[i+1] == '*':
			j := i + 2
			for j+1 < len(rs) && (rs[j] != '*' || rs[j+1] != '/') {
				j++
			}
			if j+1 >= len(rs) {
				return "", errUnterminated
			}
			i = j + 1
			out.WriteRune(' ')
		case c == '\'' || c == '"' || c == '`':
			n, err := writeQuoted(&out, rs[i:])
			if err != nil {
				return "", err
			}
			i += n - 1
		case c == ':':
			out.WriteRune(':')
			if i+1 < len(rs) && rs[i+1] != ' ' && rs[i+1] != '\t' && rs[i+1] != '\n' && rs[i+1] != '\r' {
				out.WriteRune(' ')
			}
		default:
			out.WriteRune(c)
		}
	}
	return out.String(), nil
}

// writeQuoted copies the string literal at the start of rs as a YAML
// double-quoted scalar and returns how many runes it consumed.
func writeQuoted(out *strings.Builder, rs []rune) (int, error) {
	quote := rs[0]
	out.WriteRune('"')
	for i := 1; i < len(rs); i++ {
		c := rs[i]
		switch {
		case c == quote:
			out.WriteRune('"')
			return i + 1, nil
		case c == '\\' && i+1 < len(rs):
			i++
			n, err := writeEscape(out, rs[i:])
			if err != nil {
				return 0, err
			}
			i += n - 1
		case c == '"':
			out.WriteString(`\"`)
		case c == '\n':
			if quote != '`' {
				return 0, errUnterminated
			}
			out.WriteString(`\n`)
		case c == '\r':
			out.WriteString(`\r`)
		case c == '\t':
			out.WriteString(`\t`)
		default:
			out.WriteRune(c)
		}
	}
	return 0, errUnterminated
}

// writeEscape translates the JS escape sequence at the start of rs (the part
// after the backslash) and returns how many runes it consumed. Escapes YAML
// shares are kept, \u{...} becomes \U, and any other character stands for itself.
func writeEscape(out *strings.Builder, rs []rune) (int, error) {
	switch next := rs[0]; next {
	case 'n', 'r', 't', 'b', 'f', 'v', '0', 'x', '\\', '"':
		out.WriteRune('\\')
		out.WriteRune(next)
	case 'u':
		if len(rs) < 2 || rs[1] != '{' {
			out.WriteString(`\u`)
			return 1, nil
		}
		end := 2
		for end < len(rs) && rs[end] != '}' {
			end++
		}
		if end >= len(rs) {
			return 0, errUnterminated
		}
		hex := string(rs[2:end])
		cp, err := strconv.ParseUint(hex, 16, 32)
		if err != nil || cp > unicode.MaxRune {
			return 0, fmt.Errorf("invalid code point escape \\u{%s}", hex)
		}
		fmt.Fprintf(out, `\U%08X`, cp)
		return end + 1, nil
	case '\n':
		// line continuation
	case '\r':
		if len(rs) > 1 && rs[1] == '\n' {
			return 2, nil
		}
	default:
		out.WriteRune(next)
	}
	return 1, nil
}
