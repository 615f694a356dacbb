// Package huffman implements binary Huffman coding over byte samples.
//
// It is used to re-express a grid of one-byte samples
// (one channel of an image, for example)
// as a sequence of variable-length, prefix-free codes.
// Prefix-free codes are codes where for any two codes X and Y,
// there's a guarantee that X is not a prefix of Y.
// This allows a reader of the code stream to split it back
// into samples without any separators.
//
// Compression happens in the following stages:
//
//	samples -> Histogram -> tree (built with a Queue) -> CodeTable -> Encoder
//
// Compress runs all of them in order.
package huffman

import (
	"fmt"
	"io"
)

//go:generate mockgen -destination mock_source_test.go -package huffman github.com/Zamzurizmn/PROJECT-IF112/internal/huffman Source

// Source supplies the samples to be compressed.
type Source interface {
	// Dimensions reports the width and height of the sample grid.
	Dimensions() (width, height int)

	// Samples returns one sample per cell of the grid in row-major order.
	// The returned slice must have exactly width*height items.
	Samples() []byte
}

// grid is a Source that has already been materialized.
type grid struct {
	width, height int
	samples       []byte
}

func (g *grid) Dimensions() (int, int) { return g.width, g.height }

func (g *grid) Samples() []byte { return g.samples }

// CompressOptions specifies how Compress writes its output.
type CompressOptions struct {
	// Format of the code stream. Defaults to FormatText.
	Format Format
}

// Result holds the intermediate products of a Compress call.
type Result struct {
	Histogram Histogram
	Table     CodeTable
	Stats     EncodeStats
}

// Compress reads the samples from src, builds a Huffman code for them,
// and writes the encoded artifact to w.
//
// Returns ErrEmptyInput if src has no samples.
func Compress(w io.Writer, src Source, opts CompressOptions) (*Result, error) {
	width, height := src.Dimensions()
	g := &grid{
		width:   width,
		height:  height,
		samples: src.Samples(), // Source may build this on every call
	}

	hist := CountSamples(g.samples)
	root, err := BuildTree(&hist)
	if err != nil {
		return nil, err
	}
	table := NewCodeTable(root)

	enc := Encoder{Format: opts.Format}
	stats, err := enc.Encode(w, g, table)
	if err != nil {
		return nil, fmt.Errorf("encode: %w", err)
	}

	return &Result{
		Histogram: hist,
		Table:     table,
		Stats:     *stats,
	}, nil
}
