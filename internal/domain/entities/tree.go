package entities

// Node is one value of a translation tree: a Leaf, a *Branch or a Skipped value.
type Node interface {
	node()
}

// Leaf is a terminal string value.
type Leaf string

// Skipped stands for a value the flattener drops (booleans, numbers, arrays, null).
// Kind names what was found, e.g. "bool" or "array".
type Skipped struct {
	Kind string
}

// KindSpread is the Skipped kind of an object spread (`...other`) whose
// keys cannot be resolved from the module text.
const KindSpread = "spread"

// Entry is one key of a Branch.
type Entry struct {
	Key   string
	Value Node
}

// Branch is a nested mapping that keeps its keys in source order.
type Branch struct {
	Entries []Entry
}

func (Leaf) node()    {}
func (Skipped) node() {}
func (*Branch) node() {}

// NewBranch returns an empty branch.
func NewBranch() *Branch {
	return &Branch{}
}

// Set stores value under key. A key that already exists keeps its position.
func (b *Branch) Set(key string, value Node) {
	for i := range b.Entries {
		if b.Entries[i].Key == key {
			b.Entries[i].Value = value
			return
		}
	}
	b.Entries = append(b.Entries, Entry{Key: key, Value: value})
}

// Get returns the value stored under key.
func (b *Branch) Get(key string) (Node, bool) {
	for _, e := range b.Entries {
		if e.Key == key {
			return e.Value, true
		}
	}
	return nil, false
}

func (b *Branch) Len() int {
	return len(b.Entries)
}
