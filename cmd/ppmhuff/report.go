package main

import (
	"bufio"
	"io"
	"math"
	"strings"

	"github.com/Zamzurizmn/PROJECT-IF112/internal/huffman"
	"github.com/Zamzurizmn/PROJECT-IF112/internal/ppm"
	runewidth "github.com/mattn/go-runewidth"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	_countWidth = 12 // columns for the count, separators included
	_codeWidth  = 24 // longer codes are truncated
	_barWidth   = 32 // length of the bar for the most frequent value
	_labelWidth = 18
)

// writeReport writes a human-readable description of a compression:
// one row per code table entry followed by a summary.
// Bars are scaled so that the most frequent value gets the longest one.
func writeReport(w io.Writer, img *ppm.Image, res *huffman.Result) error {
	bw := bufio.NewWriter(w)
	p := message.NewPrinter(language.English)

	p.Fprintf(bw, "%5s %s %5s  %s %s\n",
		"value",
		runewidth.FillLeft("count", _countWidth),
		"bits",
		runewidth.FillRight("code", _codeWidth),
		"bar")

	hist := &res.Histogram
	most := hist.Max()
	for v, code := range res.Table.All() {
		count := hist[v]
		p.Fprintf(bw, "%5d %s %5d  %s %s\n",
			v,
			runewidth.FillLeft(p.Sprintf("%d", count), _countWidth),
			len(code),
			runewidth.FillRight(runewidth.Truncate(string(code), _codeWidth, "…"), _codeWidth),
			strings.Repeat("█", max(1, count*_barWidth/most)))
	}

	pixels := hist.Total()
	summary := []struct {
		label string
		value string
	}{
		{"pixels", p.Sprintf("%d (%dx%d)", pixels, img.Width, img.Height)},
		{"distinct values", p.Sprintf("%d", hist.Distinct())},
		{"input bytes", p.Sprintf("%d", len(img.Pix))},
		{"artifact bytes", p.Sprintf("%d", res.Stats.Bytes)},
		{"stream symbols", p.Sprintf("%d", res.Stats.Symbols)},
		{"average code", p.Sprintf("%.3f symbols/sample", float64(res.Stats.Symbols)/float64(pixels))},
		{"entropy", p.Sprintf("%.3f bits/sample", entropy(hist))},
	}

	bw.WriteString("\n")
	for _, row := range summary {
		p.Fprintf(bw, "%s %s\n", runewidth.FillRight(row.label+":", _labelWidth), row.value)
	}

	return bw.Flush()
}

// entropy reports the Shannon entropy of the distribution in h,
// a lower bound on the average code length of any prefix code for it.
func entropy(h *huffman.Histogram) float64 {
	total := float64(h.Total())
	if total == 0 {
		return 0
	}

	var bits float64
	for _, count := range h {
		if count == 0 {
			continue
		}
		p := float64(count) / total
		bits -= p * math.Log2(p)
	}
	return bits
}
