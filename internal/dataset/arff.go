package dataset

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode"
)

// ParseARFF reads a nominal ARFF dataset. Text from '%' to the end of a line
// is a comment. Attribute names may be quoted. Data rows are comma
// separated; all whitespace inside a row is removed and '?' marks a missing
// value.
func ParseARFF(r io.Reader) (*Relation, error) {
	rel := &Relation{}
	inData := false

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	line := 0
	for scanner.Scan() {
		line++
		text := scanner.Text()
		if i := strings.IndexByte(text, '%'); i >= 0 {
			text = text[:i]
		}
		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}

		if inData {
			if err := rel.addRow(splitDataRow(text), line); err != nil {
				return nil, err
			}
			continue
		}

		keyword, rest := splitKeyword(text)
		switch strings.ToLower(keyword) {
		case "@relation":
			rel.Name, _ = unquoteName(rest)
		case "@attribute":
			name, _ := unquoteName(rest)
			if name == "" {
				return nil, fmt.Errorf("line %d: attribute without a name", line)
			}
			rel.Attributes = append(rel.Attributes, name)
		case "@data":
			if len(rel.Attributes) == 0 {
				return nil, ErrNoAttributes
			}
			inData = true
		default:
			return nil, fmt.Errorf("line %d: unexpected header line %q", line, text)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read arff: %w", err)
	}

	if len(rel.Attributes) == 0 {
		return nil, ErrNoAttributes
	}
	if !inData {
		return nil, ErrNoData
	}
	return rel, nil
}

func splitKeyword(text string) (string, string) {
	i := strings.IndexFunc(text, unicode.IsSpace)
	if i < 0 {
		return text, ""
	}
	return text[:i], strings.TrimSpace(text[i:])
}

// unquoteName splits the leading name off s. A name starting with a single
// or double quote runs to the matching quote.
func unquoteName(s string) (string, string) {
	if s == "" {
		return "", ""
	}
	if q := s[0]; q == '\'' || q == '"' {
		if end := strings.IndexByte(s[1:], q); end >= 0 {
			return s[1 : end+1], strings.TrimSpace(s[end+2:])
		}
		return s[1:], ""
	}
	return splitKeyword(s)
}

func splitDataRow(text string) []string {
	compact := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, text)

	cells := strings.Split(compact, ",")
	for i, c := range cells {
		cells[i] = normalizeCell(c)
	}
	return cells
}
