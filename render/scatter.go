package render

import (
	"fmt"
	"io"

	"github.com/carbocation/pfx"
	"github.com/wcharczuk/go-chart/v2"

	"github.com/bulkrna/diffexpr/dge"
)

// MeanScatter renders control mean against treatment mean, one point per
// gene and one series per regulation label. The dashed identity line is
// the boundary between up and down; the title carries the Pearson
// correlation between the two groups.
func MeanScatter(w io.Writer, size Size, summaries []dge.GeneSummary) error {
	if len(summaries) == 0 {
		return fmt.Errorf("no gene summaries to plot")
	}

	width, height := size.or(640, 640)

	means := make([]float64, 0, 2*len(summaries))
	for _, s := range summaries {
		means = append(means, s.ControlAvg, s.TreatmentAvg)
	}
	lo, hi := floatRange(means)
	if lo == hi {
		hi = lo + 1
	}

	series := []chart.Series{
		chart.ContinuousSeries{
			Name:    "no change",
			XValues: []float64{lo, hi},
			YValues: []float64{lo, hi},
			Style: chart.Style{
				StrokeWidth:     1,
				StrokeColor:     chart.ColorAlternateGray,
				StrokeDashArray: []float64{5, 5},
			},
		},
	}

	for _, reg := range []dge.Regulation{dge.Up, dge.Down, dge.Unchanged} {
		sub := dge.Filter(summaries, reg)
		if len(sub) == 0 {
			continue
		}

		xs := make([]float64, len(sub))
		ys := make([]float64, len(sub))
		for i, s := range sub {
			xs[i] = s.ControlAvg
			ys[i] = s.TreatmentAvg
		}

		series = append(series, chart.ContinuousSeries{
			Name:    string(reg),
			XValues: xs,
			YValues: ys,
			Style:   pointStyle(regulationColor(reg)),
		})
	}

	graph := chart.Chart{
		Title:      fmt.Sprintf("Group means by gene (r = %.2f)", dge.GroupCorrelation(summaries)),
		Background: chart.Style{Padding: chart.Box{Top: 20, Left: 20}},
		Width:      width,
		Height:     height,
		XAxis:      chart.XAxis{Name: "control mean"},
		YAxis:      chart.YAxis{Name: "treatment mean"},
		Series:     series,
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	if err := graph.Render(chart.PNG, w); err != nil {
		return pfx.Err(err)
	}

	return nil
}
