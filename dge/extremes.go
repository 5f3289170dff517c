package dge

import "errors"

// MaxTreatment returns the gene with the highest treatment-group mean.
// Exact ties go to the earliest table row, so repeated runs over the same
// table name the same gene.
func MaxTreatment(summaries []GeneSummary) (GeneSummary, error) {
	return maxBy(summaries, func(s GeneSummary) float64 { return s.TreatmentAvg })
}

// MostVariable returns the gene with the highest standard deviation across
// its samples, with ties again going to the earliest table row.
func MostVariable(summaries []GeneSummary) (GeneSummary, error) {
	return maxBy(summaries, func(s GeneSummary) float64 { return s.Variability })
}

func maxBy(summaries []GeneSummary, metric func(GeneSummary) float64) (GeneSummary, error) {
	if len(summaries) == 0 {
		return GeneSummary{}, errors.New("no gene summaries to search")
	}

	best := summaries[0]
	for _, s := range summaries[1:] {
		// Strictly greater, so the first of equals wins.
		if metric(s) > metric(best) {
			best = s
		}
	}

	return best, nil
}
