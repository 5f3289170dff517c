package dge

import "github.com/bulkrna/diffexpr"

// Filter returns the summaries carrying the given regulation label,
// preserving table order.
func Filter(summaries []GeneSummary, r Regulation) []GeneSummary {
	out := make([]GeneSummary, 0, len(summaries))
	for _, s := range summaries {
		if s.Regulation == r {
			out = append(out, s)
		}
	}

	return out
}

// Lookup returns the summary for the named gene, or a LookupError.
func Lookup(summaries []GeneSummary, gene string) (GeneSummary, error) {
	for _, s := range summaries {
		if s.Gene == gene {
			return s, nil
		}
	}

	return GeneSummary{}, &diffexpr.LookupError{Gene: gene}
}
