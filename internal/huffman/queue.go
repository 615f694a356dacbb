package huffman

import "container/heap"

// Queue is a min-priority queue of tree nodes ordered by weight.
//
// It's an array-backed binary heap.
// Nodes of equal weight come out in whatever order their positions
// in the array dictate; the order is deterministic for a given
// sequence of operations but is not first-in-first-out.
type Queue struct {
	nodes nodeHeap
}

// NewQueue builds an empty queue with room for capacity nodes.
func NewQueue(capacity int) *Queue {
	return &Queue{nodes: make(nodeHeap, 0, capacity)}
}

// Len reports the number of nodes in the queue.
func (q *Queue) Len() int { return len(q.nodes) }

// Insert adds a node to the queue.
func (q *Queue) Insert(n Node) {
	heap.Push(&q.nodes, n)
}

// ExtractMin removes and returns the node with the smallest weight.
//
// It panics if the queue is empty.
func (q *Queue) ExtractMin() Node {
	if len(q.nodes) == 0 {
		panic("huffman: ExtractMin called on an empty queue")
	}
	return heap.Pop(&q.nodes).(Node)
}

// nodeHeap implements heap.Interface.
//
// container/heap sifts up while a child is strictly lighter than its parent,
// and sifts down into the right child only if it's strictly lighter
// than the left one.
type nodeHeap []Node

func (ns nodeHeap) Len() int { return len(ns) }

func (ns nodeHeap) Less(i, j int) bool {
	return ns[i].Weight() < ns[j].Weight()
}

func (ns nodeHeap) Swap(i, j int) {
	ns[i], ns[j] = ns[j], ns[i]
}

func (ns *nodeHeap) Push(e any) {
	*ns = append(*ns, e.(Node))
}

func (ns *nodeHeap) Pop() any {
	n := len(*ns) - 1
	v := (*ns)[n]
	(*ns)[n] = nil
	*ns = (*ns)[:n]
	return v
}
