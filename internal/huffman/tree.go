package huffman

import "errors"

// ErrEmptyInput indicates that there were no samples to build a code for.
var ErrEmptyInput = errors.New("huffman: no samples to encode")

// Node is a node in a Huffman tree.
// It is either a *Leaf or an *Internal.
type Node interface {
	// Weight is the number of samples covered by this node.
	Weight() int

	node() // sealed
}

// Leaf is a node that represents a single sample value.
type Leaf struct {
	Value byte
	Count int
}

var _ Node = (*Leaf)(nil)

// Weight returns the leaf's count.
func (l *Leaf) Weight() int { return l.Count }

func (*Leaf) node() {}

// Internal is a node with exactly two children.
// The left child is reached with a '0', the right child with a '1'.
type Internal struct {
	Left, Right Node

	weight int
}

var _ Node = (*Internal)(nil)

// NewInternal joins two nodes under a new parent.
func NewInternal(left, right Node) *Internal {
	return &Internal{
		Left:   left,
		Right:  right,
		weight: left.Weight() + right.Weight(),
	}
}

// Weight returns the combined weight of both children.
func (n *Internal) Weight() int { return n.weight }

func (*Internal) node() {}

// BuildTree builds a Huffman tree for the given histogram.
// Every value with a positive count becomes exactly one leaf of the tree.
//
// If only one value is present, the returned tree is a single *Leaf.
// Returns ErrEmptyInput if no value has a positive count.
func BuildTree(h *Histogram) (Node, error) {
	// This is the textbook construction:
	//
	//  - put a leaf for each present value into a min-heap
	//  - take the two lightest nodes out, join them under a new parent,
	//    and put the parent back
	//  - repeat until only the root is left
	//
	// Leaves are inserted in ascending order of value,
	// so for a given histogram the tree always comes out the same.
	q := NewQueue(h.Distinct())
	for v, count := range h {
		if count > 0 {
			q.Insert(&Leaf{Value: byte(v), Count: count})
		}
	}

	if q.Len() == 0 {
		return nil, ErrEmptyInput
	}

	for q.Len() > 1 {
		left := q.ExtractMin()
		right := q.ExtractMin()
		q.Insert(NewInternal(left, right))
	}

	return q.ExtractMin(), nil
}
