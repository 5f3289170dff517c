// exprsummary walks a differential gene-expression table and prints the
// derived summary to stdout: one average per gene, the most expressed and
// most variable genes under treatment, and dumps of all, upregulated, and
// downregulated genes.
package main

import (
	"bufio"
	"context"
	"flag"
	"log"
	"os"
	"strings"

	"cloud.google.com/go/storage"

	"github.com/bulkrna/diffexpr"
	_ "github.com/bulkrna/diffexpr/compileinfoprint"
	"github.com/bulkrna/diffexpr/dge"
)

var (
	BufferSize = 4096
	STDOUT     = bufio.NewWriterSize(os.Stdout, BufferSize)
)

var client *storage.Client

type options struct {
	group        string
	gene         string
	format       string
	hist         bool
	bins         int
	controlTag   string
	treatmentTag string
}

func main() {
	defer STDOUT.Flush()

	var input string
	var opts options

	flag.StringVar(&input, "input", "", "Path to the expression table. May be local, ~-prefixed, or a google storage path (gs://). Compressed (gzip, zip, xz, bzip2) inputs are detected, as is the delimiter.")
	flag.StringVar(&opts.group, "group", diffexpr.TreatmentGroup, "Which average the per-gene listing reports: treatment, control, or all")
	flag.StringVar(&opts.gene, "gene", "", "Optional: a single gene whose control and treatment means will be reported")
	flag.StringVar(&opts.format, "format", "tsv", "Encoding for the gene dumps: tsv or csv")
	flag.BoolVar(&opts.hist, "hist", false, "If true, prints a histogram of every expression value in the table")
	flag.IntVar(&opts.bins, "bins", 10, "Number of histogram bins (with --hist)")
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
	table, err := diffexpr.OpenTable(input, client)
	if err != nil {
		return err
	}
	log.Printf("Loaded %d genes x %d samples from %s\n", table.Len(), len(table.Samples), input)

	groups, err := diffexpr.AssignGroups(table.Samples, opts.controlTag, opts.treatmentTag)
	if err != nil {
		return err
	}
	log.Printf("Assigned %d control and %d treatment columns\n", len(groups.Control), len(groups.Treatment))

	summaries, err := dge.Summarize(table, groups)
	if err != nil {
		return err
	}

	if err := printAverages(STDOUT, summaries, opts.group, len(groups.Control), len(groups.Treatment)); err != nil {
		return err
	}

	if opts.gene != "" {
		if err := printGene(STDOUT, summaries, opts.gene); err != nil {
			return err
		}
	}

	if err := printExtremes(STDOUT, summaries); err != nil {
		return err
	}

	dumps := []struct {
		title string
		rows  []dge.GeneSummary
	}{
		{"All genes", summaries},
		{"Upregulated genes", dge.Filter(summaries, dge.Up)},
		{"Downregulated genes", dge.Filter(summaries, dge.Down)},
	}
	for _, dump := range dumps {
		if err := printDump(STDOUT, dump.title, dump.rows, opts.format); err != nil {
			return err
		}
	}

	if opts.hist {
		if err := printHistogram(STDOUT, table, opts.bins); err != nil {
			return err
		}
	}

	return nil
}
