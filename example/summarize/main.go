package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/bulkrna/diffexpr"
	"github.com/bulkrna/diffexpr/dge"
)

func main() {
	path := flag.String("path", "example/expression.csv", "Path to an expression table")
	flag.Parse()

	if *path == "" {
		flag.PrintDefaults()
		log.Fatalln("No path provided")
	}

	table, err := diffexpr.OpenTable(*path, nil)
	if err != nil {
		log.Fatalln(err)
	}

	groups, err := diffexpr.AssignGroups(table.Samples, diffexpr.ControlTag, diffexpr.TreatmentTag)
	if err != nil {
		log.Fatalln(err)
	}

	summaries, err := dge.Summarize(table, groups)
	if err != nil {
		log.Fatalln(err)
	}

	for _, s := range summaries {
		fmt.Printf("%s\t%.2f\t%.2f\t%+.2f\t%s\n", s.Gene, s.ControlAvg, s.TreatmentAvg, s.ExpressionDiff, s.Regulation)
	}

	top, err := dge.MaxTreatment(summaries)
	if err != nil {
		log.Fatalln(err)
	}

	log.Println("Highest treatment mean:", top.Gene)
}
