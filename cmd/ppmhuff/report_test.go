package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/Zamzurizmn/PROJECT-IF112/internal/huffman"
	"github.com/Zamzurizmn/PROJECT-IF112/internal/ppm"
	runewidth "github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteReport(t *testing.T) {
	t.Parallel()

	img := &ppm.Image{Width: 4, Height: 1, Pix: make([]byte, 12)}
	res := compressSamples(t, img.Width, img.Height, []byte{1, 1, 1, 2})

	var buf bytes.Buffer
	require.NoError(t, writeReport(&buf, img, res))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.GreaterOrEqual(t, len(lines), 4, "report:\n%s", buf.String())

	assert.Equal(t, []string{"value", "count", "bits", "code", "bar"}, strings.Fields(lines[0]))
	assert.Equal(t,
		[]string{"1", "3", "1", "1", strings.Repeat("█", _barWidth)},
		strings.Fields(lines[1]))
	assert.Equal(t,
		[]string{"2", "1", "1", "0", strings.Repeat("█", _barWidth/3)},
		strings.Fields(lines[2]))
	assert.Empty(t, lines[3])

	summary := make(map[string]string)
	for _, line := range lines[4:] {
		label, value, ok := strings.Cut(line, ":")
		require.True(t, ok, "summary line %q", line)
		summary[label] = strings.TrimSpace(value)
	}

	assert.Equal(t, map[string]string{
		"pixels":          "4 (4x1)",
		"distinct values": "2",
		"input bytes":     "12",
		"artifact bytes":  "19",
		"stream symbols":  "4",
		"average code":    "1.000 symbols/sample",
		"entropy":         "0.811 bits/sample",
	}, summary)
}

func TestWriteReportColumnsAlign(t *testing.T) {
	t.Parallel()

	// Counts 1, 2, 4, ..., 128 give codes of lengths 1 through 7.
	var samples []byte
	for v := range 8 {
		samples = append(samples, bytes.Repeat([]byte{byte(v)}, 1<<v)...)
	}

	img := &ppm.Image{Width: len(samples), Height: 1}
	res := compressSamples(t, img.Width, img.Height, samples)

	var buf bytes.Buffer
	require.NoError(t, writeReport(&buf, img, res))

	lines := strings.Split(buf.String(), "\n")
	barCol := strings.Index(lines[0], "bar")
	require.Positive(t, barCol)
	for _, line := range lines[1:9] {
		assert.Equal(t, barCol, strings.Index(line, "█"), "bar column in %q", line)
	}
}

func TestWriteReportLargeNumbers(t *testing.T) {
	t.Parallel()

	var h huffman.Histogram
	h[0] = 1_000_000
	h[1] = 234_567
	root, err := huffman.BuildTree(&h)
	require.NoError(t, err)

	img := &ppm.Image{Width: 1_234_567, Height: 1}
	res := &huffman.Result{
		Histogram: h,
		Table:     huffman.NewCodeTable(root),
		Stats:     huffman.EncodeStats{Symbols: 1_234_567, Bytes: 1_234_590},
	}

	var buf bytes.Buffer
	require.NoError(t, writeReport(&buf, img, res))

	out := buf.String()
	assert.Contains(t, out, "1,000,000")
	assert.Contains(t, out, "1,234,567 (1,234,567x1)")
	assert.Contains(t, out, "1,234,590")
}

func TestWriteReportLongCodes(t *testing.T) {
	t.Parallel()

	// Fibonacci counts make the deepest codes as long as possible.
	var h huffman.Histogram
	a, b := 1, 1
	for v := range 30 {
		h[v] = a
		a, b = b, a+b
	}
	root, err := huffman.BuildTree(&h)
	require.NoError(t, err)
	table := huffman.NewCodeTable(root)

	res := &huffman.Result{Histogram: h, Table: table}
	img := &ppm.Image{Width: h.Total(), Height: 1}

	var buf bytes.Buffer
	require.NoError(t, writeReport(&buf, img, res))

	code, ok := table.Lookup(0)
	require.True(t, ok)
	require.Greater(t, len(code), _codeWidth)

	row := strings.Split(buf.String(), "\n")[1]
	assert.Equal(t, "0", strings.Fields(row)[0])
	assert.Contains(t, row, string(code[:_codeWidth-1])+"…")
	assert.NotContains(t, row, string(code))
	assert.LessOrEqual(t, runewidth.StringWidth(strings.Fields(row)[3]), _codeWidth)
}

func TestEntropy(t *testing.T) {
	t.Parallel()

	var uniform huffman.Histogram
	for v := range uniform {
		uniform[v] = 3
	}

	var single huffman.Histogram
	single[42] = 10

	tests := []struct {
		desc string
		give huffman.Histogram
		want float64
	}{
		{desc: "empty", want: 0},
		{desc: "single value", give: single, want: 0},
		{desc: "uniform", give: uniform, want: 8},
		{
			desc: "skewed",
			give: huffman.CountSamples([]byte{1, 1, 1, 2}),
			want: 0.8112781244591328,
		},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			t.Parallel()

			assert.InDelta(t, tt.want, entropy(&tt.give), 1e-9)
		})
	}
}

func compressSamples(t *testing.T, width, height int, samples []byte) *huffman.Result {
	t.Helper()

	img := ppm.New(width, height)
	for i, s := range samples {
		img.Pix[i*3] = s
	}

	var buf bytes.Buffer
	res, err := huffman.Compress(&buf, img, huffman.CompressOptions{})
	require.NoError(t, err)
	return res
}
