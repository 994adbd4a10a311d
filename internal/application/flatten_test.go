package application

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"langtool/internal/domain/entities"
)

func TestFlatten_NestedAndTopLevel(t *testing.T) {
	in := tree(
		"a", tree("b", "x"),
		"c", "y",
	)

	got := Flatten(in, "")

	assert.Equal(t, []entities.Row{
		{Path: "a.b", Value: "x"},
		{Path: "c", Value: "y"},
	}, got)
}

func TestFlatten_DropsNonStringValues(t *testing.T) {
	in := tree(
		"service", tree(
			"default", tree(
				"lang", "pt-BR",
				"feature", tree(
					"enabled", entities.Skipped{Kind: "boolean"},
					"name", "Recurso Principal",
				),
			),
			"retries", entities.Skipped{Kind: "number"},
		),
		"arrayValue", entities.Skipped{Kind: "array"},
		"nothing", entities.Skipped{Kind: "null"},
	)

	rows, skipped := flatten(in, "")

	assert.Equal(t, []entities.Row{
		{Path: "service.default.lang", Value: "pt-BR"},
		{Path: "service.default.feature.name", Value: "Recurso Principal"},
	}, rows)
	assert.Equal(t, 4, skipped)
}

func TestFlatten_Prefix(t *testing.T) {
	got := Flatten(tree("hello", "Olá", "nested", tree("bye", "Adeus")), "common")

	assert.Equal(t, []entities.Row{
		{Path: "common.hello", Value: "Olá"},
		{Path: "common.nested.bye", Value: "Adeus"},
	}, got)
}

func TestFlatten_EmptyInputs(t *testing.T) {
	assert.Empty(t, Flatten(nil, ""))
	assert.Empty(t, Flatten(entities.NewBranch(), ""))
	assert.Empty(t, Flatten(tree("only", entities.Skipped{Kind: "boolean"}, "empty", tree()), ""))
}

func TestFlatten_KeepsEmptyStrings(t *testing.T) {
	got := Flatten(tree("blank", ""), "")

	assert.Equal(t, []entities.Row{{Path: "blank", Value: ""}}, got)
}

func TestUnflatten_RoundTrip(t *testing.T) {
	in := tree(
		"service", tree(
			"default", tree("lang", "pt-BR", "currency", "BRL"),
			"name", "Serviço Exemplo",
		),
		"common", tree("hello", "Olá", "messageWithComma", "Valor, com vírgula"),
		"top", "level",
	)

	got := Unflatten(Flatten(in, ""))

	if diff := cmp.Diff(in, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestUnflatten_RoundTripIsLossyForSkippedValues(t *testing.T) {
	in := tree(
		"common", tree(
			"hello", "Olá",
			"enabled", entities.Skipped{Kind: "boolean"},
		),
		"flags", tree("on", entities.Skipped{Kind: "boolean"}),
		"list", entities.Skipped{Kind: "array"},
	)
	want := tree("common", tree("hello", "Olá"))

	got := Unflatten(Flatten(in, ""))

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("lossy round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestUnflatten_RandomTrees(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 200; i++ {
		in := randomTree(rng, 0)
		got := Unflatten(Flatten(in, ""))
		want := prune(in)
		if diff := cmp.Diff(want, got); diff != "" {
			t.Fatalf("tree %d: round trip mismatch (-want +got):\n%s", i, diff)
		}
	}
}

func TestUnflatten_LaterRowReplacesLeafOnItsPath(t *testing.T) {
	got := Unflatten([]entities.Row{
		{Path: "a", Value: "x"},
		{Path: "a.b", Value: "y"},
	})

	want := tree("a", tree("b", "y"))
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

// randomTree builds a tree of string leaves and nested branches. Keys never
// contain the path separator.
func randomTree(rng *rand.Rand, depth int) *entities.Branch {
	b := entities.NewBranch()
	n := rng.Intn(4)
	for i := 0; i < n; i++ {
		key := fmt.Sprintf("k%d_%s", i, strings.Repeat("x", rng.Intn(3)))
		if depth < 3 && rng.Intn(3) == 0 {
			b.Set(key, randomTree(rng, depth+1))
			continue
		}
		b.Set(key, entities.Leaf(fmt.Sprintf("v%d, \"q\" %d", i, rng.Intn(100))))
	}
	return b
}

// prune removes branches that hold no leaf at any depth: they produce no row,
// so they cannot come back from Unflatten.
func prune(b *entities.Branch) *entities.Branch {
	out := entities.NewBranch()
	for _, e := range b.Entries {
		switch v := e.Value.(type) {
		case entities.Leaf:
			out.Set(e.Key, v)
		case *entities.Branch:
			if p := prune(v); p.Len() > 0 {
				out.Set(e.Key, p)
			}
		}
	}
	return out
}

func TestSkippedPaths(t *testing.T) {
	in := tree(
		"...base", entities.Skipped{Kind: entities.KindSpread},
		"menu", tree(
			"open", "Abrir",
			"...shared", entities.Skipped{Kind: entities.KindSpread},
			"count", entities.Skipped{Kind: "number"},
		),
	)

	assert.Equal(t, []string{"...base", "menu....shared"}, SkippedPaths(in, entities.KindSpread))
	assert.Equal(t, []string{"menu.count"}, SkippedPaths(in, "number"))
	assert.Empty(t, SkippedPaths(in, "array"))
	assert.Empty(t, SkippedPaths(nil, entities.KindSpread))
}
