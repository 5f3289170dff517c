package render

import (
	"fmt"
	"io"
	"math"

	"github.com/carbocation/pfx"
	"github.com/fogleman/gg"
	"github.com/montanaflynn/stats"
)

// TreatmentBox renders box-and-whisker plots of raw treatment-group values,
// one box per gene. Boxes span Q1..Q3 with the median drawn through them;
// whiskers reach the observed extremes.
func TreatmentBox(w io.Writer, size Size, genes []string, valuesPerGene [][]float64) error {
	if len(genes) == 0 || len(genes) != len(valuesPerGene) {
		return fmt.Errorf("box plot needs one value series per gene (%d genes, %d series)", len(genes), len(valuesPerGene))
	}

	width, height := size.or(640, 480)

	const (
		marginX = 60.0
		marginY = 40.0
	)

	// One shared scale across all series.
	lo, hi := math.Inf(1), math.Inf(-1)
	for i, values := range valuesPerGene {
		if len(values) == 0 {
			return fmt.Errorf("box plot series for %s is empty", genes[i])
		}
		seriesLo, seriesHi := floatRange(values)
		lo = math.Min(lo, seriesLo)
		hi = math.Max(hi, seriesHi)
	}
	if lo == hi {
		hi = lo + 1
	}

	dc := gg.NewContext(width, height)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	plotW := float64(width) - 2*marginX
	plotH := float64(height) - 2*marginY
	toY := func(v float64) float64 {
		return marginY + plotH*(1-(v-lo)/(hi-lo))
	}

	slot := plotW / float64(len(genes))
	boxW := slot * 0.5

	for i, gene := range genes {
		min, q, max, err := fiveNumbers(valuesPerGene[i])
		if err != nil {
			return pfx.Err(err)
		}

		cx := marginX + slot*(float64(i)+0.5)

		// Whisker through the full observed range, with end caps.
		dc.SetRGB(0, 0, 0)
		dc.DrawLine(cx, toY(min), cx, toY(max))
		dc.DrawLine(cx-boxW/4, toY(min), cx+boxW/4, toY(min))
		dc.DrawLine(cx-boxW/4, toY(max), cx+boxW/4, toY(max))
		dc.Stroke()

		// Interquartile box.
		dc.DrawRectangle(cx-boxW/2, toY(q.Q3), boxW, toY(q.Q1)-toY(q.Q3))
		dc.SetRGB(0.69, 0.77, 0.87)
		dc.FillPreserve()
		dc.SetRGB(0, 0, 0)
		dc.Stroke()

		// Median.
		dc.DrawLine(cx-boxW/2, toY(q.Q2), cx+boxW/2, toY(q.Q2))
		dc.Stroke()

		dc.DrawStringAnchored(gene, cx, float64(height)-marginY/2, 0.5, 0.5)
	}

	// A minimal scale: low, middle, and high tick labels.
	dc.SetRGB(0, 0, 0)
	for _, v := range []float64{lo, (lo + hi) / 2, hi} {
		dc.DrawStringAnchored(fmt.Sprintf("%.1f", v), marginX-8, toY(v), 1, 0.5)
	}
	dc.DrawStringAnchored("Treatment values", float64(width)/2, marginY/2, 0.5, 0.5)

	if err := dc.EncodePNG(w); err != nil {
		return pfx.Err(err)
	}

	return nil
}

// fiveNumbers returns the observed minimum, the quartiles, and the observed
// maximum. A single-value series degenerates to that value.
func fiveNumbers(values []float64) (min float64, q stats.Quartiles, max float64, err error) {
	data := stats.LoadRawData(values)

	if len(values) == 1 {
		v := values[0]
		return v, stats.Quartiles{Q1: v, Q2: v, Q3: v}, v, nil
	}

	if q, err = stats.Quartile(data); err != nil {
		return 0, stats.Quartiles{}, 0, err
	}
	if min, err = data.Min(); err != nil {
		return 0, stats.Quartiles{}, 0, err
	}
	if max, err = data.Max(); err != nil {
		return 0, stats.Quartiles{}, 0, err
	}

	return min, q, max, nil
}
