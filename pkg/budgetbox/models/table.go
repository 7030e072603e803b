// Package models defines data structures for proposal tables.
package models

// Row holds one table row's cell values, aligned to the table's columns.
type Row []string

// Table represents an ordered set of named columns with loosely-typed rows.
// Cell values are text; numeric and date interpretation happens downstream.
type Table struct {
	// Columns holds the column names in display order.
	Columns []string `json:"columns"`
	// Rows holds the data rows. Each row has exactly len(Columns) cells.
	Rows []Row `json:"rows"`
}

// Segment represents a contiguous named sub-table split off the source table.
type Segment struct {
	// Name is the segment's display name, derived from its first label value.
	Name string `json:"name"`
	// Table holds the segment's rows and the shared column set.
	Table Table `json:"table"`
}

// ColumnIndex returns the position of the named column, or -1 if absent.
// Column names are case-sensitive after normalization.
func (t Table) ColumnIndex(name string) int {
	for i, c := range t.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// Cell returns the value at (row, col), or "" if either index is out of range.
func (t Table) Cell(row, col int) string {
	if row < 0 || row >= len(t.Rows) {
		return ""
	}
	r := t.Rows[row]
	if col < 0 || col >= len(r) {
		return ""
	}
	return r[col]
}

// Clone returns a deep copy of the table. Sessions hosted behind a service
// must operate on independent copies so concurrent requests never alias rows.
func (t Table) Clone() Table {
	out := Table{
		Columns: append([]string(nil), t.Columns...),
		Rows:    make([]Row, len(t.Rows)),
	}
	for i, r := range t.Rows {
		out.Rows[i] = append(Row(nil), r...)
	}
	return out
}

// Clone returns a deep copy of the segment.
func (s Segment) Clone() Segment {
	return Segment{Name: s.Name, Table: s.Table.Clone()}
}
