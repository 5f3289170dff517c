package dge

import (
	"github.com/montanaflynn/stats"

	"github.com/bulkrna/diffexpr"
)

// Regulation labels a gene by the direction of its expression change under
// treatment.
type Regulation string

const (
	Up        Regulation = "up"
	Down      Regulation = "down"
	Unchanged Regulation = "unchanged"
)

// GeneSummary holds the derived statistics for one gene: the two group
// means, their difference, the sample standard deviation across all of the
// gene's values, and the regulation label.
type GeneSummary struct {
	Gene           string
	ControlAvg     float64
	TreatmentAvg   float64
	ExpressionDiff float64
	Variability    float64
	Regulation     Regulation
}

// Summarize derives one GeneSummary per table row, in table order. The
// same table and assignment always produce the same summaries.
func Summarize(t *diffexpr.SampleTable, g *diffexpr.GroupAssignment) ([]GeneSummary, error) {
	out := make([]GeneSummary, 0, t.Len())

	for _, row := range t.Rows {
		s, err := summarizeRow(row, g)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}

	return out, nil
}

func summarizeRow(row diffexpr.GeneRow, g *diffexpr.GroupAssignment) (GeneSummary, error) {
	control := gather(row.Values, g.Control)
	treatment := gather(row.Values, g.Treatment)

	controlAvg, err := groupMean(diffexpr.ControlGroup, control)
	if err != nil {
		return GeneSummary{}, err
	}
	treatmentAvg, err := groupMean(diffexpr.TreatmentGroup, treatment)
	if err != nil {
		return GeneSummary{}, err
	}

	// Variability is the sample (N-1) standard deviation over the union of
	// both groups, so it reflects the spread across every measurement of
	// the gene, not within one arm.
	variability, err := stats.StandardDeviationSample(append(control, treatment...))
	if err != nil {
		return GeneSummary{}, err
	}

	return GeneSummary{
		Gene:           row.Gene,
		ControlAvg:     controlAvg,
		TreatmentAvg:   treatmentAvg,
		ExpressionDiff: treatmentAvg - controlAvg,
		Variability:    variability,
		Regulation:     Classify(controlAvg, treatmentAvg),
	}, nil
}

func gather(values []float64, indices []int) stats.Float64Data {
	out := make(stats.Float64Data, 0, len(indices))
	for _, i := range indices {
		out = append(out, values[i])
	}

	return out
}

// groupMean guards the degenerate case explicitly so an empty group
// surfaces as an error rather than as a NaN that would poison everything
// downstream.
func groupMean(group string, values stats.Float64Data) (float64, error) {
	if len(values) == 0 {
		return 0, &diffexpr.EmptyGroupError{Group: group}
	}

	return values.Mean()
}

// Classify labels a gene from its group means: up when the treatment mean
// is strictly higher than the control mean, down when strictly lower, and
// unchanged on exact equality.
func Classify(controlAvg, treatmentAvg float64) Regulation {
	switch {
	case treatmentAvg > controlAvg:
		return Up
	case treatmentAvg < controlAvg:
		return Down
	}

	return Unchanged
}
