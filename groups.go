package diffexpr

import (
	"fmt"
	"strings"
)

// Substring tags that assign a sample column to a group.
const (
	ControlTag   = "Control"
	TreatmentTag = "Treatment"
)

// Group names as they appear in errors and console output.
const (
	ControlGroup   = "control"
	TreatmentGroup = "treatment"
)

// GroupAssignment partitions the sample columns into the control and
// treatment groups. Control and Treatment hold indices into the column
// list the assignment was built from, in table order.
type GroupAssignment struct {
	Control   []int
	Treatment []int

	columns []string
}

// AssignGroups classifies every column by substring match against the two
// tags. A column matching both tags is ambiguous and a column matching
// neither is unassignable; both are format errors, so a misspelled sample
// name fails loudly instead of silently shrinking a group. A tag that
// matches no column at all leaves that group empty, which is also an
// error.
func AssignGroups(columns []string, controlTag, treatmentTag string) (*GroupAssignment, error) {
	if controlTag == "" || treatmentTag == "" {
		return nil, fmt.Errorf("group tags must be non-empty")
	}

	g := &GroupAssignment{columns: columns}
	for i, col := range columns {
		isControl := strings.Contains(col, controlTag)
		isTreatment := strings.Contains(col, treatmentTag)

		switch {
		case isControl && isTreatment:
			return nil, &FormatError{Column: col, Reason: fmt.Sprintf("sample matches both %q and %q", controlTag, treatmentTag)}
		case isControl:
			g.Control = append(g.Control, i)
		case isTreatment:
			g.Treatment = append(g.Treatment, i)
		default:
			return nil, &FormatError{Column: col, Reason: fmt.Sprintf("sample matches neither %q nor %q", controlTag, treatmentTag)}
		}
	}

	if len(g.Control) == 0 {
		return nil, &EmptyGroupError{Group: ControlGroup}
	}
	if len(g.Treatment) == 0 {
		return nil, &EmptyGroupError{Group: TreatmentGroup}
	}

	return g, nil
}

// ControlNames returns the control columns by name, in table order.
func (g *GroupAssignment) ControlNames() []string {
	return g.names(g.Control)
}

// TreatmentNames returns the treatment columns by name, in table order.
func (g *GroupAssignment) TreatmentNames() []string {
	return g.names(g.Treatment)
}

func (g *GroupAssignment) names(indices []int) []string {
	out := make([]string, 0, len(indices))
	for _, i := range indices {
		out = append(out, g.columns[i])
	}

	return out
}
