package render

import (
	"io"

	"github.com/carbocation/pfx"
	"github.com/wcharczuk/go-chart/v2"
)

// SampleLine renders one gene's expression value at every sample column,
// in table order. The x axis is just column order, so its ticks are
// hidden; the shape of the trace is the point.
func SampleLine(w io.Writer, size Size, gene string, values []float64) error {
	width, height := size.or(768, 384)

	graph := chart.Chart{
		Title:  "Expression across samples: " + gene,
		Width:  width,
		Height: height,
		XAxis: chart.XAxis{
			Style: chart.Hidden(),
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				XValues: indexSeq(len(values)),
				YValues: values,
			},
		},
	}

	if err := graph.Render(chart.PNG, w); err != nil {
		return pfx.Err(err)
	}

	return nil
}
