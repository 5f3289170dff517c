package diffexpr

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/carbocation/pfx"
)

// GeneColumn is the required name of the first header column.
const GeneColumn = "Gene"

// GeneRow holds one gene's expression values, parallel to
// SampleTable.Samples.
type GeneRow struct {
	Gene   string
	Values []float64
}

// SampleTable is an in-memory expression table: one row per gene, one
// column per sample. It is loaded once and then only read; every derived
// statistic is computed from the same snapshot, so repeated queries agree.
type SampleTable struct {
	Samples []string
	Rows    []GeneRow

	byGene map[string]int
}

// OpenTable loads the expression table at path. The path may be local,
// ~-prefixed, or a google storage URL (client may be nil for local paths).
// Compressed inputs (gzip, zip, xz, bzip2) are detected by signature, and
// the delimiter is detected from the decompressed text.
func OpenTable(path string, client *storage.Client) (*SampleTable, error) {
	f, err := MaybeOpenFromGoogleStorage(ExpandHome(path), client)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r, err := MaybeDecompress(f)
	if err != nil {
		return nil, pfx.Err(err)
	}

	delim := DetermineDelimiter(r)

	// The delimiter detector consumed the stream, and decompressed readers
	// cannot rewind. Seek the raw input back and decompress again.
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, pfx.Err(err)
	}
	if r, err = MaybeDecompress(f); err != nil {
		return nil, pfx.Err(err)
	}

	return ReadTable(r, delim)
}

// ReadTable parses a delimited expression table. The first header column
// must be named "Gene"; every following header cell names a sample. Each
// data row carries a unique, non-empty gene identifier and one numeric
// value per sample. Any violation yields a FormatError, and no partial
// table is returned.
func ReadTable(r io.Reader, delim rune) (*SampleTable, error) {
	cr := csv.NewReader(r)
	cr.Comma = delim

	header, err := cr.Read()
	if err == io.EOF {
		return nil, &FormatError{Reason: "empty input: no header row"}
	} else if err != nil {
		return nil, &FormatError{Reason: fmt.Sprintf("header: %v", err)}
	}

	if len(header) < 2 {
		return nil, &FormatError{Reason: "header must name the gene column and at least one sample column"}
	}
	if header[0] != GeneColumn {
		return nil, &FormatError{Column: header[0], Reason: fmt.Sprintf("first header column must be %q", GeneColumn)}
	}

	samples := make([]string, len(header)-1)
	copy(samples, header[1:])

	t := &SampleTable{
		Samples: samples,
		byGene:  make(map[string]int),
	}

	for line := 1; ; line++ {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			reason := err.Error()
			if errors.Is(err, csv.ErrFieldCount) {
				reason = fmt.Sprintf("expected %d fields", len(header))
			}
			return nil, &FormatError{Line: line, Reason: reason}
		}

		gene := strings.TrimSpace(record[0])
		if gene == "" {
			return nil, &FormatError{Line: line, Column: GeneColumn, Reason: "missing gene identifier"}
		}
		if _, seen := t.byGene[gene]; seen {
			return nil, &FormatError{Line: line, Column: GeneColumn, Reason: fmt.Sprintf("duplicate gene %q", gene)}
		}

		values := make([]float64, len(samples))
		for i, cell := range record[1:] {
			v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
			if err != nil {
				return nil, &FormatError{Line: line, Column: samples[i], Reason: fmt.Sprintf("value %q is not numeric", cell)}
			}
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, &FormatError{Line: line, Column: samples[i], Reason: fmt.Sprintf("value %q is not a real number", cell)}
			}
			values[i] = v
		}

		t.byGene[gene] = len(t.Rows)
		t.Rows = append(t.Rows, GeneRow{Gene: gene, Values: values})
	}

	return t, nil
}

// Len returns the number of gene rows.
func (t *SampleTable) Len() int {
	return len(t.Rows)
}

// Row returns the row for the named gene, or a LookupError.
func (t *SampleTable) Row(gene string) (GeneRow, error) {
	i, ok := t.byGene[gene]
	if !ok {
		return GeneRow{}, &LookupError{Gene: gene}
	}

	return t.Rows[i], nil
}

// Head returns a view over the first n rows, or over every row when n
// exceeds the table length. The view shares the table's backing data.
func (t *SampleTable) Head(n int) *SampleTable {
	if n < 0 {
		n = 0
	}
	if n > len(t.Rows) {
		n = len(t.Rows)
	}

	head := &SampleTable{
		Samples: t.Samples,
		Rows:    t.Rows[:n],
		byGene:  make(map[string]int),
	}
	for i, row := range head.Rows {
		head.byGene[row.Gene] = i
	}

	return head
}

// Values returns every expression value in the table, row by row in table
// order, as one flat slice.
func (t *SampleTable) Values() []float64 {
	out := make([]float64, 0, len(t.Rows)*len(t.Samples))
	for _, row := range t.Rows {
		out = append(out, row.Values...)
	}

	return out
}
