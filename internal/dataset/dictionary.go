package dataset

import (
	"github.com/blackwell-systems/arules/internal/itemset"
)

// Entry describes one dictionary item.
type Entry struct {
	Code  itemset.Item
	Label string
	Count int
}

// Dictionary maps attribute=value labels to item codes and back. Codes are
// assigned from 1 in the order labels are first seen, row by row.
type Dictionary struct {
	codes  map[string]itemset.Item
	labels []string
	counts []int
}

// NewDictionary returns an empty dictionary.
func NewDictionary() *Dictionary {
	return &Dictionary{codes: make(map[string]itemset.Item)}
}

// Encode turns every row of rel into the item codes of its non-missing
// cells and returns the records together with the dictionary built along
// the way. A label repeated within a row, as with a duplicated attribute
// name, is encoded once.
func Encode(rel *Relation) ([][]itemset.Item, *Dictionary) {
	dict := NewDictionary()
	records := make([][]itemset.Item, 0, len(rel.Rows))
	for _, row := range rel.Rows {
		record := make([]itemset.Item, 0, len(row))
		seen := make(map[itemset.Item]bool, len(row))
		for col, value := range row {
			if value == Missing {
				continue
			}
			code := dict.add(rel.Attributes[col] + "=" + value)
			if seen[code] {
				continue
			}
			seen[code] = true
			dict.counts[code-1]++
			record = append(record, code)
		}
		records = append(records, record)
	}
	return records, dict
}

// add returns the code of label, assigning the next one if label is new.
func (d *Dictionary) add(label string) itemset.Item {
	code, ok := d.codes[label]
	if !ok {
		d.labels = append(d.labels, label)
		d.counts = append(d.counts, 0)
		code = itemset.Item(len(d.labels))
		d.codes[label] = code
	}
	return code
}

// Len returns the number of distinct items.
func (d *Dictionary) Len() int {
	return len(d.labels)
}

// Code returns the item code of label.
func (d *Dictionary) Code(label string) (itemset.Item, bool) {
	code, ok := d.codes[label]
	return code, ok
}

// Label returns the label of code, or "" for an unknown code.
func (d *Dictionary) Label(code itemset.Item) string {
	if code == 0 || int(code) > len(d.labels) {
		return ""
	}
	return d.labels[code-1]
}

// Labels decodes s in item-code order.
func (d *Dictionary) Labels(s itemset.Itemset) []string {
	items := s.Items()
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, d.Label(item))
	}
	return out
}

// Entries lists every item with the number of rows it occurs in, by code.
func (d *Dictionary) Entries() []Entry {
	entries := make([]Entry, len(d.labels))
	for i, label := range d.labels {
		entries[i] = Entry{
			Code:  itemset.Item(i + 1),
			Label: label,
			Count: d.counts[i],
		}
	}
	return entries
}
