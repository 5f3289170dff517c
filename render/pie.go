package render

import (
	"fmt"
	"io"

	"github.com/carbocation/pfx"
	"github.com/wcharczuk/go-chart/v2"

	"github.com/bulkrna/diffexpr/dge"
)

// RegulationPie renders the share of genes per regulation label. Labels
// with no genes are left out so the chart never draws an empty slice.
func RegulationPie(w io.Writer, size Size, summaries []dge.GeneSummary) error {
	width, height := size.or(512, 512)

	var values []chart.Value
	for _, reg := range []dge.Regulation{dge.Up, dge.Down, dge.Unchanged} {
		if n := len(dge.Filter(summaries, reg)); n > 0 {
			values = append(values, chart.Value{
				Label: fmt.Sprintf("%s (%d)", reg, n),
				Value: float64(n),
			})
		}
	}
	if len(values) == 0 {
		return fmt.Errorf("no gene summaries to plot")
	}

	graph := chart.PieChart{
		Title:  "Genes by regulation",
		Width:  width,
		Height: height,
		Values: values,
	}

	if err := graph.Render(chart.PNG, w); err != nil {
		return pfx.Err(err)
	}

	return nil
}
