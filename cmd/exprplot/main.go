// exprplot renders charts from a differential gene-expression table: a
// single-gene group-mean comparison, that gene's per-sample trace, a
// scatter of group means, a regulation pie, a histogram of all values,
// box plots of treatment values, and an expression heatmap. Each chart is
// written to its own PNG under --out.
package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"cloud.google.com/go/storage"

	"github.com/bulkrna/diffexpr"
	_ "github.com/bulkrna/diffexpr/compileinfoprint"
	"github.com/bulkrna/diffexpr/dge"
	"github.com/bulkrna/diffexpr/render"
)

// boxGeneCap bounds how many boxes the default box-plot selection draws.
const boxGeneCap = 5

var chartNames = []string{"bar", "line", "scatter", "pie", "hist", "box", "heatmap"}

var client *storage.Client

type options struct {
	outDir       string
	charts       string
	gene         string
	top          int
	boxGenes     string
	bins         int
	size         render.Size
	controlTag   string
	treatmentTag string
}

func main() {
	var input string
	var opts options

	flag.StringVar(&input, "input", "", "Path to the expression table. May be local, ~-prefixed, or a google storage path (gs://). Compressed (gzip, zip, xz, bzip2) inputs are detected, as is the delimiter.")
	flag.StringVar(&opts.outDir, "out", ".", "Directory where the PNG files will be written (created if absent)")
	flag.StringVar(&opts.charts, "charts", "all", fmt.Sprint("Comma-delimited subset of the chart types, or all. Options: ", strings.Join(chartNames, ",")))
	flag.StringVar(&opts.gene, "gene", "", "Optional: the gene drawn by the bar and line charts. Defaults to the gene with the highest treatment mean.")
	flag.IntVar(&opts.top, "top", 10, "Number of table rows drawn by the heatmap")
	flag.StringVar(&opts.boxGenes, "box-genes", "", fmt.Sprint("Optional: comma-delimited genes drawn by the box plot. Defaults to the ", boxGeneCap, " most variable genes."))
	flag.IntVar(&opts.bins, "bins", 10, "Number of histogram bins")
	flag.IntVar(&opts.size.Width, "width", 0, "Optional: chart width in pixels (0 keeps each chart's default)")
	flag.IntVar(&opts.size.Height, "height", 0, "Optional: chart height in pixels (0 keeps each chart's default)")
	flag.StringVar(&opts.controlTag, "control-tag", diffexpr.ControlTag, "Substring that assigns a sample column to the control group")
	flag.StringVar(&opts.treatmentTag, "treatment-tag", diffexpr.TreatmentTag, "Substring that assigns a sample column to the treatment group")
	flag.Parse()

	if input == "" {
		flag.PrintDefaults()
		log.Fatalln("Please provide --input")
	}

	if strings.HasPrefix(input, "gs://") {
		var err error
		client, err = storage.NewClient(context.Background())
		if err != nil {
			log.Fatalln(err)
		}
	}

	if err := run(input, opts); err != nil {
		log.Fatalln(err)
	}
}

func run(input string, opts options) error {
	wanted, err := parseCharts(opts.charts)
	if err != nil {
		return err
	}

	table, err := diffexpr.OpenTable(input, client)
	if err != nil {
		return err
	}
	log.Printf("Loaded %d genes x %d samples from %s\n", table.Len(), len(table.Samples), input)

	groups, err := diffexpr.AssignGroups(table.Samples, opts.controlTag, opts.treatmentTag)
	if err != nil {
		return err
	}

	summaries, err := dge.Summarize(table, groups)
	if err != nil {
		return err
	}

	subject, err := subjectSummary(summaries, opts.gene)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(opts.outDir, 0o755); err != nil {
		return err
	}

	base := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))

	renderers := map[string]func(io.Writer) error{
		"bar": func(w io.Writer) error {
			return render.GroupBar(w, opts.size, subject)
		},
		"line": func(w io.Writer) error {
			row, err := table.Row(subject.Gene)
			if err != nil {
				return err
			}
			return render.SampleLine(w, opts.size, row.Gene, row.Values)
		},
		"scatter": func(w io.Writer) error {
			return render.MeanScatter(w, opts.size, summaries)
		},
		"pie": func(w io.Writer) error {
			return render.RegulationPie(w, opts.size, summaries)
		},
		"hist": func(w io.Writer) error {
			return render.ValueHistogram(w, opts.size, table.Values(), opts.bins)
		},
		"box": func(w io.Writer) error {
			genes, values, err := boxSeries(table, groups, summaries, opts.boxGenes)
			if err != nil {
				return err
			}
			return render.TreatmentBox(w, opts.size, genes, values)
		},
		"heatmap": func(w io.Writer) error {
			return render.ExpressionHeatmap(w, opts.size, table.Head(opts.top), dge.TableNorms(table))
		},
	}

	for _, name := range wanted {
		path := filepath.Join(opts.outDir, fmt.Sprintf("%s_%s.png", base, name))
		if err := renderTo(path, renderers[name]); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}

	return nil
}

// parseCharts validates the --charts flag and returns the chart names to
// draw, in the fixed chartNames order so "all" output is stable.
func parseCharts(s string) ([]string, error) {
	if s == "" || s == "all" {
		return chartNames, nil
	}

	wanted := map[string]bool{}
	for _, name := range strings.Split(s, ",") {
		name = strings.TrimSpace(name)

		known := false
		for _, k := range chartNames {
			if name == k {
				known = true
				break
			}
		}
		if !known {
			return nil, fmt.Errorf("unknown chart %q (options: %s, or all)", name, strings.Join(chartNames, ","))
		}

		wanted[name] = true
	}

	out := make([]string, 0, len(wanted))
	for _, k := range chartNames {
		if wanted[k] {
			out = append(out, k)
		}
	}

	return out, nil
}

// subjectSummary resolves the gene drawn by the single-gene charts: the
// named gene when --gene is set, otherwise the gene with the highest
// treatment mean.
func subjectSummary(summaries []dge.GeneSummary, gene string) (dge.GeneSummary, error) {
	if gene != "" {
		return dge.Lookup(summaries, gene)
	}

	return dge.MaxTreatment(summaries)
}

// boxSeries resolves which genes the box plot draws and collects each
// one's raw treatment values. With no explicit list it takes the most
// variable genes, capped at boxGeneCap.
func boxSeries(table *diffexpr.SampleTable, groups *diffexpr.GroupAssignment, summaries []dge.GeneSummary, boxGenes string) ([]string, [][]float64, error) {
	var genes []string

	if boxGenes != "" {
		for _, gene := range strings.Split(boxGenes, ",") {
			genes = append(genes, strings.TrimSpace(gene))
		}
	} else {
		byVariability := make([]dge.GeneSummary, len(summaries))
		copy(byVariability, summaries)
		// Stable keeps table order between equally variable genes.
		sort.SliceStable(byVariability, func(i, j int) bool {
			return byVariability[i].Variability > byVariability[j].Variability
		})

		for i := 0; i < len(byVariability) && i < boxGeneCap; i++ {
			genes = append(genes, byVariability[i].Gene)
		}
	}

	values := make([][]float64, 0, len(genes))
	for _, gene := range genes {
		row, err := table.Row(gene)
		if err != nil {
			return nil, nil, err
		}

		treatment := make([]float64, 0, len(groups.Treatment))
		for _, i := range groups.Treatment {
			treatment = append(treatment, row.Values[i])
		}
		values = append(values, treatment)
	}

	return genes, values, nil
}

// renderTo draws into memory first and only then creates the output file,
// so a failed render leaves no partial PNG behind.
func renderTo(path string, draw func(io.Writer) error) error {
	buffer := bytes.NewBuffer(nil)
	if err := draw(buffer); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := f.Write(buffer.Bytes()); err != nil {
		return err
	}

	log.Println("Wrote", path)

	return nil
}
