package diffexpr

import "fmt"

// NotFoundError indicates that an input table could not be opened at the
// given path, whether local or on Google Storage.
type NotFoundError struct {
	Path string
	Err  error
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("table %s: %v", e.Path, e.Err)
}

func (e *NotFoundError) Unwrap() error { return e.Err }

// FormatError indicates a malformed header or data row, or a sample column
// that cannot be assigned to exactly one group. Line is the 1-based data
// row number; it is 0 when the problem is at the header level.
type FormatError struct {
	Line   int
	Column string
	Reason string
}

func (e *FormatError) Error() string {
	switch {
	case e.Line > 0 && e.Column != "":
		return fmt.Sprintf("row %d, column %s: %s", e.Line, e.Column, e.Reason)
	case e.Line > 0:
		return fmt.Sprintf("row %d: %s", e.Line, e.Reason)
	case e.Column != "":
		return fmt.Sprintf("column %s: %s", e.Column, e.Reason)
	}

	return e.Reason
}

// EmptyGroupError indicates a sample group with no members, whose mean
// would otherwise be undefined.
type EmptyGroupError struct {
	Group string
}

func (e *EmptyGroupError) Error() string {
	return fmt.Sprintf("group %s has no samples", e.Group)
}

// LookupError indicates a request for a gene identifier that is not
// present in the table.
type LookupError struct {
	Gene string
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("gene %s not found", e.Gene)
}
