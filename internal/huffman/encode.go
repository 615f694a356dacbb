package huffman

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/icza/bitio"
)

// ErrUnknownSample indicates that a sample value has no code in the table
// used to encode it.
var ErrUnknownSample = errors.New("huffman: sample value has no code")

// _tableEnd terminates the code table in an encoded artifact.
const _tableEnd = "-1"

// Format specifies how the code stream of an artifact is written.
type Format int

const (
	// FormatText writes each code symbol as an ASCII '0' or '1'.
	FormatText Format = iota

	// FormatPacked writes each code symbol as a single bit,
	// most significant bit first,
	// padding the final byte with zeros.
	FormatPacked
)

func (f Format) String() string {
	switch f {
	case FormatText:
		return "text"
	case FormatPacked:
		return "packed"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// EncodeStats describes an encoded artifact.
type EncodeStats struct {
	// Symbols is the length of the code stream in code symbols.
	// This is the sum of len(code)*count over all values.
	Symbols int64

	// Bytes is the size of the whole artifact, header included.
	Bytes int64
}

// Encoder writes samples re-expressed as Huffman codes.
//
// An encoded artifact has the form:
//
//	<width> <height>
//	<value> <code>    (one line per entry in the table, ascending by value)
//	-1
//	<code stream>
//
// The code stream is the concatenation of the code for each sample
// in row-major order, with nothing between codes.
// In FormatText, the stream carries one byte per code symbol,
// so the artifact is typically larger than the samples themselves.
type Encoder struct {
	Format Format
}

// Encode writes the samples from src to w using the given table.
func (e *Encoder) Encode(w io.Writer, src Source, table CodeTable) (*EncodeStats, error) {
	width, height := src.Dimensions()
	samples := src.Samples()
	if want := width * height; len(samples) != want {
		return nil, fmt.Errorf("source has %d samples, want %d for %dx%d",
			len(samples), want, width, height)
	}

	cw := countingWriter{W: w}
	bw := bufio.NewWriter(&cw)

	// bufio.Writer errors are sticky. Any failure here is reported by
	// Flush.
	fmt.Fprintf(bw, "%d %d\n", width, height)
	for v, code := range table.All() {
		fmt.Fprintf(bw, "%d %s\n", v, code)
	}
	fmt.Fprintln(bw, _tableEnd)

	var (
		symbols int64
		err     error
	)
	switch e.Format {
	case FormatText:
		symbols, err = writeText(bw, samples, table)
	case FormatPacked:
		symbols, err = writePacked(bw, samples, table)
	default:
		err = fmt.Errorf("unsupported format %v", e.Format)
	}
	if err != nil {
		return nil, err
	}

	if err := bw.Flush(); err != nil {
		return nil, err
	}

	return &EncodeStats{
		Symbols: symbols,
		Bytes:   cw.N,
	}, nil
}

func writeText(w *bufio.Writer, samples []byte, table CodeTable) (int64, error) {
	var symbols int64
	for i, s := range samples {
		code, ok := table.Lookup(s)
		if !ok {
			return 0, fmt.Errorf("sample %d (value %d): %w", i, s, ErrUnknownSample)
		}

		w.WriteString(string(code))
		symbols += int64(len(code))
	}
	return symbols, nil
}

func writePacked(w *bufio.Writer, samples []byte, table CodeTable) (int64, error) {
	// Codes can be up to 255 symbols long in a degenerate tree,
	// so pre-split each into chunks that fit into a WriteBits call.
	var chunks [256][]bitChunk
	for v, code := range table.All() {
		chunks[v] = splitBits(code)
	}

	bitw := bitio.NewWriter(w)
	var symbols int64
	for i, s := range samples {
		cs := chunks[s]
		if len(cs) == 0 {
			return 0, fmt.Errorf("sample %d (value %d): %w", i, s, ErrUnknownSample)
		}

		for _, c := range cs {
			if err := bitw.WriteBits(c.Bits, c.N); err != nil {
				return 0, err
			}
			symbols += int64(c.N)
		}
	}

	// Close pads the last byte and leaves w open.
	if err := bitw.Close(); err != nil {
		return 0, err
	}
	return symbols, nil
}

type bitChunk struct {
	Bits uint64
	N    uint8 // 1 to 64
}

func splitBits(code Code) []bitChunk {
	var (
		chunks []bitChunk
		cur    bitChunk
	)
	for i := 0; i < len(code); i++ {
		cur.Bits <<= 1
		if code[i] == '1' {
			cur.Bits |= 1
		}
		cur.N++

		if cur.N == 64 {
			chunks = append(chunks, cur)
			cur = bitChunk{}
		}
	}
	if cur.N > 0 {
		chunks = append(chunks, cur)
	}
	return chunks
}

// countingWriter counts the bytes written through it.
type countingWriter struct {
	W io.Writer
	N int64
}

func (w *countingWriter) Write(b []byte) (int, error) {
	n, err := w.W.Write(b)
	w.N += int64(n)
	return n, err
}
