// Package table defines the raw tabular dataset exchanged between feed
// sources and the transform pipeline. Values are kept as strings until the
// preprocessor types them; this mirrors how the raw feed arrives (CSV or a
// catalog table rendered to text).
package table

// Table is an immutable header + rows dataset. Rows are positional; the
// value of column Columns[i] in row r is r[i].
type Table struct {
	Columns []string
	Rows    [][]string
}

// ColumnIndex returns the position of the named column, or -1 when the
// column is not present. Matching is exact; callers normalize names first.
func (t *Table) ColumnIndex(name string) int {
	for i, c := range t.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// NumRows returns the number of data rows.
func (t *Table) NumRows() int {
	return len(t.Rows)
}

// Field returns the value of the given column in the given row. Rows
// shorter than the header (ragged input) yield an empty string.
func (t *Table) Field(row []string, col int) string {
	if col < 0 || col >= len(row) {
		return ""
	}
	return row[col]
}
