package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/aybabtme/uniplot/histogram"
	"github.com/carbocation/pfx"
	"github.com/gocarina/gocsv"

	"github.com/bulkrna/diffexpr"
	"github.com/bulkrna/diffexpr/dge"
)

// printAverages lists one line per gene in table order. Which average is
// reported depends on group: the treatment mean, the control mean, or the
// mean over every sample (reconstructed from the group means and sizes).
func printAverages(w io.Writer, summaries []dge.GeneSummary, group string, nControl, nTreatment int) error {
	for _, s := range summaries {
		var avg float64

		switch group {
		case diffexpr.TreatmentGroup:
			avg = s.TreatmentAvg
		case diffexpr.ControlGroup:
			avg = s.ControlAvg
		case "all":
			avg = (s.ControlAvg*float64(nControl) + s.TreatmentAvg*float64(nTreatment)) / float64(nControl+nTreatment)
		default:
			return fmt.Errorf("unknown group %q (want %s, %s, or all)", group, diffexpr.TreatmentGroup, diffexpr.ControlGroup)
		}

		if _, err := fmt.Fprintf(w, "Gene: %s, Average: %.2f\n", s.Gene, avg); err != nil {
			return err
		}
	}

	return nil
}

// printGene reports both group means for one gene.
func printGene(w io.Writer, summaries []dge.GeneSummary, gene string) error {
	s, err := dge.Lookup(summaries, gene)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(w, "Gene: %s, Control: %.2f, Treatment: %.2f\n", s.Gene, s.ControlAvg, s.TreatmentAvg)

	return err
}

// printExtremes reports the gene with the highest treatment mean and the
// gene with the highest variability. With no genes there is nothing to
// report.
func printExtremes(w io.Writer, summaries []dge.GeneSummary) error {
	if len(summaries) == 0 {
		return nil
	}

	top, err := dge.MaxTreatment(summaries)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Gene: %s, Avg: %.2f\n", top.Gene, top.TreatmentAvg); err != nil {
		return err
	}

	varied, err := dge.MostVariable(summaries)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Gene: %s, Variation: %.2f\n", varied.Gene, varied.Variability); err != nil {
		return err
	}

	return nil
}

// dumpRow is the record shape of the gene dumps.
type dumpRow struct {
	Gene           string  `csv:"Gene"`
	ControlAvg     float64 `csv:"control_avg"`
	TreatmentAvg   float64 `csv:"treatment_avg"`
	ExpressionDiff float64 `csv:"expression_diff"`
}

// printDump emits a titled tabular dump of the given summaries. The tsv
// form is for reading at a terminal and rounds to two decimals; the csv
// form is for feeding other tools and keeps full precision.
func printDump(w io.Writer, title string, rows []dge.GeneSummary, format string) error {
	if format != "tsv" && format != "csv" {
		return fmt.Errorf("unknown format %q (want tsv or csv)", format)
	}

	if _, err := fmt.Fprintf(w, "\n%s:\n", title); err != nil {
		return err
	}

	switch format {
	case "tsv":
		header := strings.Join([]string{"Gene", "control_avg", "treatment_avg", "expression_diff"}, "\t")
		if _, err := fmt.Fprintln(w, header); err != nil {
			return err
		}
		for _, s := range rows {
			output := []string{
				s.Gene,
				fmt.Sprintf("%.2f", s.ControlAvg),
				fmt.Sprintf("%.2f", s.TreatmentAvg),
				fmt.Sprintf("%.2f", s.ExpressionDiff),
			}
			if _, err := fmt.Fprintln(w, strings.Join(output, "\t")); err != nil {
				return err
			}
		}
	case "csv":
		out := make([]dumpRow, 0, len(rows))
		for _, s := range rows {
			out = append(out, dumpRow{
				Gene:           s.Gene,
				ControlAvg:     s.ControlAvg,
				TreatmentAvg:   s.TreatmentAvg,
				ExpressionDiff: s.ExpressionDiff,
			})
		}
		if err := gocsv.Marshal(&out, w); err != nil {
			return pfx.Err(err)
		}
	}

	return nil
}

// printHistogram draws a text histogram of every expression value in the
// table, headed by the table-wide running statistics.
func printHistogram(w io.Writer, table *diffexpr.SampleTable, bins int) error {
	values := table.Values()
	if len(values) == 0 {
		return nil
	}
	if bins < 1 {
		bins = 10
	}

	norms := dge.TableNorms(table)
	if _, err := fmt.Fprintf(w, "\nExpression values: n=%d mean=%.2f sd=%.2f min=%.2f max=%.2f\n",
		norms.N, norms.Mean(), norms.StandardDeviation(), norms.Min, norms.Max); err != nil {
		return err
	}

	hist := histogram.Hist(bins, values)

	return histogram.Fprint(w, hist, histogram.Linear(40))
}
