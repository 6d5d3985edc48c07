package store

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/blackwell-systems/arules/internal/dataset"
)

// LoadRelation reads every row of table. Each column is an attribute; NULL
// cells are missing values. Rows come back in rowid order.
func (s *Store) LoadRelation(table string) (*dataset.Relation, error) {
	ok, err := s.hasTable(table)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNoTable, table)
	}

	rows, err := s.db.Query("SELECT * FROM " + quoteIdent(table) + " ORDER BY rowid")
	if err != nil {
		return nil, fmt.Errorf("failed to query table %s: %w", table, err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to read columns of %s: %w", table, err)
	}
	if len(columns) == 0 {
		return nil, dataset.ErrNoAttributes
	}

	rel := &dataset.Relation{Name: table, Attributes: columns}
	cells := make([]sql.NullString, len(columns))
	dest := make([]any, len(columns))
	for i := range cells {
		dest[i] = &cells[i]
	}

	for rows.Next() {
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("failed to scan row of %s: %w", table, err)
		}
		row := make([]string, len(columns))
		for i, c := range cells {
			if c.Valid {
				row[i] = strings.TrimSpace(c.String)
			}
		}
		rel.Rows = append(rel.Rows, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate rows of %s: %w", table, err)
	}
	return rel, nil
}

// WriteRelation stores rel in a new TEXT-column table, replacing any table
// of the same name. Missing cells become NULL.
func (s *Store) WriteRelation(table string, rel *dataset.Relation) error {
	if len(rel.Attributes) == 0 {
		return dataset.ErrNoAttributes
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	quoted := quoteIdent(table)
	if _, err := tx.Exec("DROP TABLE IF EXISTS " + quoted); err != nil {
		return fmt.Errorf("failed to drop table %s: %w", table, err)
	}

	defs := make([]string, len(rel.Attributes))
	marks := make([]string, len(rel.Attributes))
	for i, attr := range rel.Attributes {
		defs[i] = quoteIdent(attr) + " TEXT"
		marks[i] = "?"
	}
	if _, err := tx.Exec("CREATE TABLE " + quoted + " (" + strings.Join(defs, ", ") + ")"); err != nil {
		return fmt.Errorf("failed to create table %s: %w", table, err)
	}

	stmt, err := tx.Prepare("INSERT INTO " + quoted + " VALUES (" + strings.Join(marks, ", ") + ")")
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	args := make([]any, len(rel.Attributes))
	for n, row := range rel.Rows {
		for i, cell := range row {
			if cell == dataset.Missing {
				args[i] = nil
			} else {
				args[i] = cell
			}
		}
		if _, err := stmt.Exec(args...); err != nil {
			return fmt.Errorf("failed to insert row %d: %w", n+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit table %s: %w", table, err)
	}
	return nil
}
