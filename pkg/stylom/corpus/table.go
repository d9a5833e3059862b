package corpus

import (
	"fmt"

	"github.com/stylom/stylom/pkg/stylom/internalerr"
)

// Well-known column names.
const (
	ColText   = "text"
	ColAuthor = "author"
)

// Table is an in-memory tabular collection of raw writing samples.
// Columns are named, cells are nullable strings, and row order is
// significant: the row position is the sample identity.
type Table struct {
	names []string
	cols  map[string][]*string
	rows  int
}

// NewTable creates an empty table with the given row count.
func NewTable(rows int) *Table {
	return &Table{
		cols: make(map[string][]*string),
		rows: rows,
	}
}

// SetColumn adds or replaces a column. The value count must match the
// table's row count.
func (t *Table) SetColumn(name string, values []*string) error {
	if len(values) != t.rows {
		return fmt.Errorf("%w: column %q has %d values, table has %d rows",
			internalerr.ErrSchema, name, len(values), t.rows)
	}
	if _, ok := t.cols[name]; !ok {
		t.names = append(t.names, name)
	}
	t.cols[name] = values
	return nil
}

// Column returns the named column's cells, or false if it does not exist.
func (t *Table) Column(name string) ([]*string, bool) {
	col, ok := t.cols[name]
	return col, ok
}

// HasColumn reports whether the named column exists.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.cols[name]
	return ok
}

// Rows returns the number of rows.
func (t *Table) Rows() int { return t.rows }

// Columns returns the column names in insertion order.
func (t *Table) Columns() []string {
	out := make([]string, len(t.names))
	copy(out, t.names)
	return out
}

// Sample is one raw input record: the text to analyze plus an optional
// author label. Either field may be null.
type Sample struct {
	Text   *string
	Author *string
}

// FromSamples builds a table with text and author columns from a sample
// slice.
func FromSamples(samples []Sample) *Table {
	texts := make([]*string, len(samples))
	authors := make([]*string, len(samples))
	for i, s := range samples {
		texts[i] = s.Text
		authors[i] = s.Author
	}
	t := NewTable(len(samples))
	t.SetColumn(ColText, texts)
	t.SetColumn(ColAuthor, authors)
	return t
}

// String returns a pointer to s, for building nullable cells inline.
func String(s string) *string { return &s }
