package dge

import "gonum.org/v1/gonum/stat"

// GroupCorrelation returns the Pearson correlation between the control and
// treatment means across genes. With fewer than two genes the correlation
// is undefined and NaN is returned.
func GroupCorrelation(summaries []GeneSummary) float64 {
	control := make([]float64, len(summaries))
	treatment := make([]float64, len(summaries))
	for i, s := range summaries {
		control[i] = s.ControlAvg
		treatment[i] = s.TreatmentAvg
	}

	return stat.Correlation(control, treatment, nil)
}
