package feed

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/pgEdge/pgedge-warehouse/internal/table"
)

// ReadCSV decodes a CSV stream into a Table. The first record is the
// header. Ragged records are tolerated; short rows read as empty fields.
func ReadCSV(r io.Reader) (*table.Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("empty feed: no header row")
	}
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}

	var rows [][]string
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading row %d: %w", len(rows)+2, err)
		}
		rows = append(rows, rec)
	}

	return &table.Table{Columns: header, Rows: rows}, nil
}
