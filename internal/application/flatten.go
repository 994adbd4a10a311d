package application

import (
	"fmt"
	"strings"

	"langtool/internal/domain/entities"
)

// PathSeparator joins the keys of a flattened path.
const PathSeparator = "."

// Flatten walks tree depth-first and returns one row per string leaf, in key order.
// A non-empty prefix is prepended to every path. Skipped values (booleans,
// numbers, arrays, null) never produce a row.
func Flatten(tree *entities.Branch, prefix string) []entities.Row {
	rows, _ := flatten(tree, prefix)
	return rows
}

// flatten also reports how many values were dropped.
func flatten(tree *entities.Branch, prefix string) ([]entities.Row, int) {
	var (
		rows    []entities.Row
		skipped int
	)
	var walk func(b *entities.Branch, parent string)
	walk = func(b *entities.Branch, parent string) {
		if b == nil {
			return
		}
		for _, e := range b.Entries {
			path := e.Key
			if parent != "" {
				path = parent + PathSeparator + e.Key
			}
			switch v := e.Value.(type) {
			case *entities.Branch:
				walk(v, path)
			case entities.Leaf:
				rows = append(rows, entities.Row{Path: path, Value: string(v)})
			case entities.Skipped:
				skipped++
			default:
				panic(fmt.Sprintf("flatten: unexpected node %T at %s", v, path))
			}
		}
	}
	walk(tree, prefix)
	return rows, skipped
}

// SkippedPaths returns the paths of the skipped values of the given kind, in key order.
func SkippedPaths(tree *entities.Branch, kind string) []string {
	var paths []string
	var walk func(b *entities.Branch, parent string)
	walk = func(b *entities.Branch, parent string) {
		for _, e := range b.Entries {
			path := e.Key
			if parent != "" {
				path = parent + PathSeparator + e.Key
			}
			switch v := e.Value.(type) {
			case *entities.Branch:
				walk(v, path)
			case entities.Skipped:
				if v.Kind == kind {
					paths = append(paths, path)
				}
			}
		}
	}
	if tree != nil {
		walk(tree, "")
	}
	return paths
}

// Unflatten rebuilds a tree from rows by splitting each path on PathSeparator.
// A later row whose path runs through an earlier leaf replaces that leaf.
func Unflatten(rows []entities.Row) *entities.Branch {
	root := entities.NewBranch()
	for _, r := range rows {
		keys := strings.Split(r.Path, PathSeparator)
		b := root
		for _, k := range keys[:len(keys)-1] {
			next, ok := b.Get(k)
			child, isBranch := next.(*entities.Branch)
			if !ok || !isBranch {
				child = entities.NewBranch()
				b.Set(k, child)
			}
			b = child
		}
		b.Set(keys[len(keys)-1], entities.Leaf(r.Value))
	}
	return root
}
