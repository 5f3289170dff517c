package dge

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/bulkrna/diffexpr"
)

const tolerance = 1e-9

// walkthroughTable mirrors the two-gene example used throughout: Gene1
// rises under treatment, Gene2 falls.
func walkthroughTable() (*diffexpr.SampleTable, *diffexpr.GroupAssignment) {
	t := &diffexpr.SampleTable{
		Samples: []string{"Control1", "Control2", "Treatment1", "Treatment2", "Treatment3"},
		Rows: []diffexpr.GeneRow{
			{Gene: "Gene1", Values: []float64{10, 20, 15, 25, 35}},
			{Gene: "Gene2", Values: []float64{50, 50, 10, 10, 10}},
		},
	}

	return t, &diffexpr.GroupAssignment{Control: []int{0, 1}, Treatment: []int{2, 3, 4}}
}

func TestSummarize(t *testing.T) {
	type expectation struct {
		gene         string
		controlAvg   float64
		treatmentAvg float64
		diff         float64
		variability  float64
		regulation   Regulation
	}

	expectations := []expectation{
		{"Gene1", 15, 25, 10, math.Sqrt(92.5), Up},
		{"Gene2", 50, 10, -40, math.Sqrt(480), Down},
	}

	table, groups := walkthroughTable()
	summaries, err := Summarize(table, groups)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(summaries) != len(expectations) {
		t.Fatalf("expected %d summaries, got %d", len(expectations), len(summaries))
	}

	for i, v := range expectations {
		s := summaries[i]
		if s.Gene != v.gene {
			t.Fatalf("expected %s at position %d, got %s", v.gene, i, s.Gene)
		}
		if math.Abs(s.ControlAvg-v.controlAvg) > tolerance {
			t.Errorf("%s: expected control mean %v, got %v", v.gene, v.controlAvg, s.ControlAvg)
		}
		if math.Abs(s.TreatmentAvg-v.treatmentAvg) > tolerance {
			t.Errorf("%s: expected treatment mean %v, got %v", v.gene, v.treatmentAvg, s.TreatmentAvg)
		}
		if math.Abs(s.ExpressionDiff-v.diff) > tolerance {
			t.Errorf("%s: expected difference %v, got %v", v.gene, v.diff, s.ExpressionDiff)
		}
		if math.Abs(s.Variability-v.variability) > tolerance {
			t.Errorf("%s: expected variability %v, got %v", v.gene, v.variability, s.Variability)
		}
		if s.Regulation != v.regulation {
			t.Errorf("%s: expected regulation %s, got %s", v.gene, v.regulation, s.Regulation)
		}
	}
}

func TestSummarizeDeterminism(t *testing.T) {
	table, groups := walkthroughTable()

	first, err := Summarize(table, groups)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	second, err := Summarize(table, groups)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Error("expected repeated runs over the same table to agree exactly")
	}
}

func TestSummarizeEmptyGroup(t *testing.T) {
	table, _ := walkthroughTable()
	groups := &diffexpr.GroupAssignment{Control: []int{0, 1}}

	_, err := Summarize(table, groups)

	var emptyErr *diffexpr.EmptyGroupError
	if !errors.As(err, &emptyErr) {
		t.Fatalf("expected an EmptyGroupError, got %T: %v", err, err)
	}
	if emptyErr.Group != diffexpr.TreatmentGroup {
		t.Errorf("expected the error to name the treatment group, got %q", emptyErr.Group)
	}
}

func TestClassify(t *testing.T) {
	type expectation struct {
		controlAvg   float64
		treatmentAvg float64
		regulation   Regulation
	}

	expectations := []expectation{
		{15, 25, Up},
		{50, 10, Down},
		{12.5, 12.5, Unchanged},
		{0, 0, Unchanged},
	}

	for _, v := range expectations {
		if r := Classify(v.controlAvg, v.treatmentAvg); r != v.regulation {
			t.Errorf("control %v vs treatment %v: expected %s, got %s", v.controlAvg, v.treatmentAvg, v.regulation, r)
		}
	}
}

func TestFilter(t *testing.T) {
	summaries := []GeneSummary{
		{Gene: "Gene1", Regulation: Up},
		{Gene: "Gene2", Regulation: Down},
		{Gene: "Gene3", Regulation: Up},
		{Gene: "Gene4", Regulation: Unchanged},
	}

	up := Filter(summaries, Up)
	if len(up) != 2 || up[0].Gene != "Gene1" || up[1].Gene != "Gene3" {
		t.Errorf("expected Gene1 and Gene3 in table order, got %v", up)
	}

	if down := Filter(summaries, Down); len(down) != 1 || down[0].Gene != "Gene2" {
		t.Errorf("expected only Gene2, got %v", down)
	}

	if unchanged := Filter(summaries, Unchanged); len(unchanged) != 1 || unchanged[0].Gene != "Gene4" {
		t.Errorf("expected only Gene4, got %v", unchanged)
	}
}

func TestLookup(t *testing.T) {
	summaries := []GeneSummary{
		{Gene: "Gene1", TreatmentAvg: 25},
		{Gene: "Gene2", TreatmentAvg: 10},
	}

	s, err := Lookup(summaries, "Gene2")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if s.TreatmentAvg != 10 {
		t.Errorf("expected Gene2's summary, got %v", s)
	}

	_, err = Lookup(summaries, "GeneX")
	var lookupErr *diffexpr.LookupError
	if !errors.As(err, &lookupErr) {
		t.Fatalf("expected a LookupError, got %T: %v", err, err)
	}
}

func TestGroupCorrelation(t *testing.T) {
	summaries := []GeneSummary{
		{ControlAvg: 1, TreatmentAvg: 2},
		{ControlAvg: 2, TreatmentAvg: 4},
		{ControlAvg: 3, TreatmentAvg: 6},
	}

	if r := GroupCorrelation(summaries); math.Abs(r-1) > tolerance {
		t.Errorf("expected a perfect positive correlation, got %v", r)
	}

	inverse := []GeneSummary{
		{ControlAvg: 1, TreatmentAvg: 6},
		{ControlAvg: 2, TreatmentAvg: 4},
		{ControlAvg: 3, TreatmentAvg: 2},
	}
	if r := GroupCorrelation(inverse); math.Abs(r+1) > tolerance {
		t.Errorf("expected a perfect negative correlation, got %v", r)
	}
}
