package dge

import (
	"math"

	"github.com/carbocation/runningvariance"

	"github.com/bulkrna/diffexpr"
)

// Norms holds running statistics over every expression value in a table.
// The heatmap color scale and the histogram header are derived from these.
type Norms struct {
	runningvariance.RunningStat
	Min float64
	Max float64
}

// TableNorms walks every value in the table once, in table order.
func TableNorms(t *diffexpr.SampleTable) Norms {
	norms := Norms{
		RunningStat: *runningvariance.NewRunningStat(),
		Min:         math.Inf(1),
		Max:         math.Inf(-1),
	}

	for _, row := range t.Rows {
		for _, v := range row.Values {
			norms.Push(v)
			if v < norms.Min {
				norms.Min = v
			}
			if v > norms.Max {
				norms.Max = v
			}
		}
	}

	return norms
}
