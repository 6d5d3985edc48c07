// Package dataset decodes categorical datasets into relations and encodes
// relations into integer transactions.
package dataset

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// Missing is the cell value of an absent attribute value. A missing cell
// contributes no item to its transaction.
const Missing = ""

var (
	// ErrMalformedRow is returned when a data row's column count differs
	// from the number of attributes.
	ErrMalformedRow = errors.New("dataset: row does not match attribute count")

	// ErrNoAttributes is returned when a dataset declares no attributes.
	ErrNoAttributes = errors.New("dataset: no attributes declared")

	// ErrNoData is returned when an ARFF file has no @data section.
	ErrNoData = errors.New("dataset: no @data section")
)

// Relation is a table of nominal values: one column per attribute, one row
// per instance. Missing cells hold Missing.
type Relation struct {
	Name       string
	Attributes []string
	Rows       [][]string
}

// Instances returns the number of rows.
func (r *Relation) Instances() int {
	return len(r.Rows)
}

func (r *Relation) addRow(cells []string, line int) error {
	if len(cells) != len(r.Attributes) {
		return fmt.Errorf("%w: line %d has %d values, expected %d",
			ErrMalformedRow, line, len(cells), len(r.Attributes))
	}
	r.Rows = append(r.Rows, cells)
	return nil
}

// normalizeCell maps the missing-value markers to Missing.
func normalizeCell(s string) string {
	s = strings.TrimSpace(s)
	if s == "?" {
		return Missing
	}
	return s
}

// ReadFile decodes the file at path with the decoder for format ("arff" or
// "csv").
func ReadFile(path, format string) (*Relation, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset: %w", err)
	}
	defer f.Close()

	var rel *Relation
	switch format {
	case "arff":
		rel, err = ParseARFF(f)
	case "csv":
		rel, err = ParseCSV(f)
	default:
		return nil, fmt.Errorf("unsupported dataset format %q", format)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return rel, nil
}
