package huffman

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestQueueExtractMinEmpty(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		NewQueue(0).ExtractMin()
	})
}

func TestQueueOrder(t *testing.T) {
	t.Parallel()

	q := NewQueue(5)
	for i, w := range []int{5, 3, 9, 1, 3} {
		q.Insert(&Leaf{Value: byte(i), Count: w})
	}
	assert.Equal(t, 5, q.Len())

	var got []int
	for q.Len() > 0 {
		got = append(got, q.ExtractMin().Weight())
	}
	assert.Equal(t, []int{1, 3, 3, 5, 9}, got)
}

func TestQueueTieBreak(t *testing.T) {
	t.Parallel()

	// Equal weights come out by array position, not insertion order.
	// After inserting a, b, c, extracting moves c to the root;
	// since b is not strictly lighter than c, c stays there.
	q := NewQueue(3)
	for _, v := range []byte{'a', 'b', 'c'} {
		q.Insert(&Leaf{Value: v, Count: 1})
	}

	var got []byte
	for q.Len() > 0 {
		got = append(got, q.ExtractMin().(*Leaf).Value)
	}
	assert.Equal(t, []byte{'a', 'c', 'b'}, got)
}

func TestQueue_rapid(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		weights := rapid.SliceOf(rapid.IntRange(0, 1000)).Draw(t, "weights")

		q := NewQueue(len(weights))
		for i, w := range weights {
			q.Insert(&Leaf{Value: byte(i), Count: w})
		}

		last := -1
		for q.Len() > 0 {
			w := q.ExtractMin().Weight()
			if w < last {
				t.Fatalf("extracted weight %d after %d", w, last)
			}
			last = w
		}
	})
}
