package huffman

import (
	"iter"
	"maps"
	"slices"
)

// Code is a sequence of '0' and '1' symbols.
type Code string

// CodeTable maps sample values to their codes.
//
// Only values present in the tree have an entry.
// No code in the table is a prefix of another.
// A CodeTable is immutable once built.
type CodeTable struct {
	codes map[byte]Code
}

// NewCodeTable derives the code for each leaf of the given tree.
//
// Each code is the path from the root to the leaf:
// '0' for every step into a left child, '1' for every step into a right child.
// If the root itself is a leaf, it gets the single-symbol code "0".
func NewCodeTable(root Node) CodeTable {
	codes := make(map[byte]Code)

	switch root := root.(type) {
	case nil:
		return CodeTable{codes: codes}
	case *Leaf:
		// A path to the root is empty, and an empty code can't be told
		// apart from no code at all.
		codes[root.Value] = "0"
		return CodeTable{codes: codes}
	}

	// Depth is bounded by the number of distinct byte values,
	// so recursing here is fine.
	var walk func(Node, []byte)
	walk = func(n Node, prefix []byte) {
		switch n := n.(type) {
		case *Leaf:
			// Converting to a string copies the prefix.
			// Siblings will overwrite its trailing symbol.
			codes[n.Value] = Code(prefix)
		case *Internal:
			walk(n.Left, append(prefix, '0'))
			walk(n.Right, append(prefix, '1'))
		}
	}
	walk(root, make([]byte, 0, 32))

	return CodeTable{codes: codes}
}

// Len reports the number of values in the table.
func (t CodeTable) Len() int { return len(t.codes) }

// Lookup returns the code for the given value
// and whether the value is in the table.
func (t CodeTable) Lookup(v byte) (Code, bool) {
	c, ok := t.codes[v]
	return c, ok
}

// Values returns the values in the table in ascending order.
func (t CodeTable) Values() []byte {
	return slices.Sorted(maps.Keys(t.codes))
}

// All iterates over the table in ascending order of value.
func (t CodeTable) All() iter.Seq2[byte, Code] {
	return func(yield func(byte, Code) bool) {
		for _, v := range t.Values() {
			if !yield(v, t.codes[v]) {
				return
			}
		}
	}
}

// WeightedLength reports the number of code symbols needed
// to encode every sample counted in h.
// Values of h that are not in the table are ignored.
func (t CodeTable) WeightedLength(h *Histogram) int {
	var total int
	for v, code := range t.codes {
		total += len(code) * h[v]
	}
	return total
}
