package dge

import (
	"math"
	"testing"

	"github.com/bulkrna/diffexpr"
)

func TestTableNorms(t *testing.T) {
	table := &diffexpr.SampleTable{
		Samples: []string{"Control1", "Treatment1"},
		Rows: []diffexpr.GeneRow{
			{Gene: "Gene1", Values: []float64{1, 2}},
			{Gene: "Gene2", Values: []float64{3, 4}},
		},
	}

	norms := TableNorms(table)

	if norms.N != 4 {
		t.Errorf("expected 4 values, got %d", norms.N)
	}
	if mean := norms.Mean(); math.Abs(mean-2.5) > tolerance {
		t.Errorf("expected mean 2.5, got %v", mean)
	}
	if norms.Min != 1 {
		t.Errorf("expected min 1, got %v", norms.Min)
	}
	if norms.Max != 4 {
		t.Errorf("expected max 4, got %v", norms.Max)
	}
	if sd := norms.StandardDeviation(); sd <= 0 {
		t.Errorf("expected a positive standard deviation, got %v", sd)
	}

	// Negative-only tables must still track the true extremes.
	negative := &diffexpr.SampleTable{
		Samples: []string{"Control1", "Treatment1"},
		Rows:    []diffexpr.GeneRow{{Gene: "Gene1", Values: []float64{-5, -2}}},
	}
	if n := TableNorms(negative); n.Max != -2 || n.Min != -5 {
		t.Errorf("expected extremes -5 and -2, got %v and %v", n.Min, n.Max)
	}
}
