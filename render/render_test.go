package render

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/bulkrna/diffexpr"
	"github.com/bulkrna/diffexpr/dge"
)

func testSummaries(t *testing.T) (*diffexpr.SampleTable, []dge.GeneSummary) {
	t.Helper()

	table := &diffexpr.SampleTable{
		Samples: []string{"Control1", "Control2", "Treatment1", "Treatment2", "Treatment3"},
		Rows: []diffexpr.GeneRow{
			{Gene: "Gene1", Values: []float64{10, 20, 15, 25, 35}},
			{Gene: "Gene2", Values: []float64{50, 50, 10, 10, 10}},
			{Gene: "Gene3", Values: []float64{7, 7, 7, 7, 7}},
		},
	}
	groups := &diffexpr.GroupAssignment{Control: []int{0, 1}, Treatment: []int{2, 3, 4}}

	summaries, err := dge.Summarize(table, groups)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	return table, summaries
}

// decodePNG fails the test unless buf holds a decodable PNG, and returns
// its pixel dimensions.
func decodePNG(t *testing.T, name string, buf *bytes.Buffer) (int, int) {
	t.Helper()

	cfg, err := png.DecodeConfig(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("%s: expected a PNG stream, got %v", name, err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		t.Fatalf("%s: expected positive dimensions, got %dx%d", name, cfg.Width, cfg.Height)
	}

	return cfg.Width, cfg.Height
}

func TestGroupBar(t *testing.T) {
	_, summaries := testSummaries(t)

	var buf bytes.Buffer
	if err := GroupBar(&buf, Size{}, summaries[0]); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	decodePNG(t, "bar", &buf)
}

func TestGroupBarSizeOverride(t *testing.T) {
	_, summaries := testSummaries(t)

	var buf bytes.Buffer
	if err := GroupBar(&buf, Size{Width: 300, Height: 220}, summaries[0]); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if w, h := decodePNG(t, "bar", &buf); w != 300 || h != 220 {
		t.Errorf("expected a 300x220 canvas, got %dx%d", w, h)
	}
}

func TestSampleLine(t *testing.T) {
	table, _ := testSummaries(t)

	var buf bytes.Buffer
	if err := SampleLine(&buf, Size{}, table.Rows[0].Gene, table.Rows[0].Values); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	decodePNG(t, "line", &buf)
}

func TestMeanScatter(t *testing.T) {
	_, summaries := testSummaries(t)

	var buf bytes.Buffer
	if err := MeanScatter(&buf, Size{}, summaries); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	decodePNG(t, "scatter", &buf)

	if err := MeanScatter(&bytes.Buffer{}, Size{}, nil); err == nil {
		t.Error("expected an error for empty input, got none")
	}
}

func TestRegulationPie(t *testing.T) {
	_, summaries := testSummaries(t)

	var buf bytes.Buffer
	if err := RegulationPie(&buf, Size{}, summaries); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	decodePNG(t, "pie", &buf)

	if err := RegulationPie(&bytes.Buffer{}, Size{}, nil); err == nil {
		t.Error("expected an error for empty input, got none")
	}
}

func TestValueHistogram(t *testing.T) {
	table, _ := testSummaries(t)

	var buf bytes.Buffer
	if err := ValueHistogram(&buf, Size{}, table.Values(), 10); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	decodePNG(t, "hist", &buf)

	if err := ValueHistogram(&bytes.Buffer{}, Size{}, nil, 10); err == nil {
		t.Error("expected an error for empty input, got none")
	}
}

func TestTreatmentBox(t *testing.T) {
	var buf bytes.Buffer
	genes := []string{"Gene1", "Gene2"}
	values := [][]float64{{15, 25, 35}, {10, 10, 10}}

	if err := TreatmentBox(&buf, Size{}, genes, values); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	decodePNG(t, "box", &buf)

	// One box with a single observation still renders.
	buf.Reset()
	if err := TreatmentBox(&buf, Size{}, []string{"Gene1"}, [][]float64{{12}}); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	decodePNG(t, "box", &buf)

	if err := TreatmentBox(&bytes.Buffer{}, Size{}, genes, [][]float64{{1}}); err == nil {
		t.Error("expected an error for mismatched inputs, got none")
	}
}

func TestExpressionHeatmap(t *testing.T) {
	table, _ := testSummaries(t)
	norms := dge.TableNorms(table)

	var buf bytes.Buffer
	if err := ExpressionHeatmap(&buf, Size{}, table, norms); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	decodePNG(t, "heatmap", &buf)

	buf.Reset()
	if err := ExpressionHeatmap(&buf, Size{}, table.Head(2), norms); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	decodePNG(t, "heatmap", &buf)

	empty := &diffexpr.SampleTable{Samples: table.Samples}
	if err := ExpressionHeatmap(&bytes.Buffer{}, Size{}, empty, norms); err == nil {
		t.Error("expected an error for an empty table, got none")
	}
}
