package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
)

// ParseCSV reads a dataset whose first record names the attributes. Empty
// cells and '?' are missing values.
func ParseCSV(r io.Reader) (*Relation, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	reader.Comment = '%'

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrNoAttributes
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read csv header: %w", err)
	}

	rel := &Relation{}
	for _, name := range header {
		rel.Attributes = append(rel.Attributes, normalizeCell(name))
	}

	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read csv record: %w", err)
		}
		line, _ := reader.FieldPos(0)

		cells := make([]string, len(record))
		for i, c := range record {
			cells[i] = normalizeCell(c)
		}
		if err := rel.addRow(cells, line); err != nil {
			return nil, err
		}
	}
	return rel, nil
}
