// Package render draws charts from expression tables and gene summaries.
// It consumes read-only snapshots from the root and dge packages; nothing
// here feeds back into the computation.
package render

import (
	"math"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/bulkrna/diffexpr/dge"
)

// Size overrides a chart's pixel dimensions. The zero value keeps the
// chart's own defaults.
type Size struct {
	Width  int
	Height int
}

func (s Size) or(width, height int) (int, int) {
	if s.Width > 0 {
		width = s.Width
	}
	if s.Height > 0 {
		height = s.Height
	}

	return width, height
}

// indexSeq returns 0..n-1 as float64 x positions for series whose x axis
// is just column order.
func indexSeq(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(i)
	}

	return out
}

func floatRange(values []float64) (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, v := range values {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}

	return lo, hi
}

// pointStyle returns a style that renders points only (no connecting line).
func pointStyle(col drawing.Color) chart.Style {
	return chart.Style{
		StrokeWidth: 0,
		DotWidth:    4,
		DotColor:    col,
	}
}

func regulationColor(r dge.Regulation) drawing.Color {
	switch r {
	case dge.Up:
		return chart.ColorRed
	case dge.Down:
		return chart.ColorBlue
	}

	return chart.ColorAlternateGray
}
