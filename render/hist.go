package render

import (
	"fmt"
	"io"

	"github.com/carbocation/pfx"
	"github.com/wcharczuk/go-chart/v2"
)

// ValueHistogram renders the distribution of expression values as a
// fixed-width binned bar chart.
func ValueHistogram(w io.Writer, size Size, values []float64, bins int) error {
	if len(values) == 0 {
		return fmt.Errorf("no values to bin")
	}
	if bins < 1 {
		bins = 10
	}

	width, height := size.or(768, 384)

	lo, hi := floatRange(values)
	if lo == hi {
		hi = lo + 1
	}
	binWidth := (hi - lo) / float64(bins)

	counts := make([]int, bins)
	for _, v := range values {
		b := int((v - lo) / binWidth)
		// The maximum value belongs to the last bin, not one past it.
		if b >= bins {
			b = bins - 1
		}
		counts[b]++
	}

	bars := make([]chart.Value, bins)
	for i, c := range counts {
		bars[i] = chart.Value{
			Label: fmt.Sprintf("%.1f", lo+(float64(i)+0.5)*binWidth),
			Value: float64(c),
		}
	}

	barWidth := (width - 100) / bins
	if barWidth < 2 {
		barWidth = 2
	}

	graph := chart.BarChart{
		Title:        "Expression value distribution",
		Background:   chart.Style{Padding: chart.Box{Top: 40}},
		Width:        width,
		Height:       height,
		BarWidth:     barWidth,
		UseBaseValue: true,
		BaseValue:    0,
		Bars:         bars,
	}

	if err := graph.Render(chart.PNG, w); err != nil {
		return pfx.Err(err)
	}

	return nil
}
