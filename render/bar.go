package render

import (
	"io"

	"github.com/carbocation/pfx"
	"github.com/wcharczuk/go-chart/v2"

	"github.com/bulkrna/diffexpr/dge"
)

// GroupBar renders one gene's control and treatment means side by side.
func GroupBar(w io.Writer, size Size, s dge.GeneSummary) error {
	width, height := size.or(512, 384)

	graph := chart.BarChart{
		Title:      "Mean expression: " + s.Gene,
		Background: chart.Style{Padding: chart.Box{Top: 40}},
		Width:      width,
		Height:     height,
		BarWidth:   80,
		// Anchor the bars at zero so two similar means still render and
		// read as a comparison from a common baseline.
		UseBaseValue: true,
		BaseValue:    0,
		Bars: []chart.Value{
			{Label: "Control", Value: s.ControlAvg},
			{Label: "Treatment", Value: s.TreatmentAvg},
		},
	}

	if err := graph.Render(chart.PNG, w); err != nil {
		return pfx.Err(err)
	}

	return nil
}
