package feed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/pgEdge/pgedge-warehouse/internal/logging"
	"github.com/pgEdge/pgedge-warehouse/internal/table"
)

// CatalogSource reads the raw feed from a registered Postgres table.
type CatalogSource struct {
	Connection string
	Table      string
}

// NewCatalogSource creates a catalog feed source.
func NewCatalogSource(connection, tbl string) *CatalogSource {
	return &CatalogSource{Connection: connection, Table: tbl}
}

// Fetch reads every row of the registered table. Column names come from
// the result field descriptions; values are rendered to strings so the
// preprocessor sees the same shape as a CSV feed.
func (s *CatalogSource) Fetch(ctx context.Context) (*table.Table, error) {
	conn, err := pgx.Connect(ctx, s.Connection)
	if err != nil {
		return nil, fmt.Errorf("connecting to catalog: %w", err)
	}
	defer conn.Close(ctx)

	logging.Debug().
		Str("table", s.Table).
		Msg("Reading raw feed from catalog")

	sql := fmt.Sprintf("SELECT * FROM %s", pgx.Identifier{s.Table}.Sanitize())
	rows, err := conn.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("querying catalog table %s: %w", s.Table, err)
	}
	defer rows.Close()

	fields := rows.FieldDescriptions()
	columns := make([]string, len(fields))
	for i, f := range fields {
		columns[i] = f.Name
	}

	var out [][]string
	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return nil, fmt.Errorf("reading catalog row: %w", err)
		}
		rec := make([]string, len(values))
		for i, v := range values {
			if v == nil {
				continue
			}
			rec[i] = fmt.Sprintf("%v", v)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("scanning catalog table %s: %w", s.Table, err)
	}

	logging.Info().
		Str("table", s.Table).
		Int("rows", len(out)).
		Msg("Read raw feed from catalog")

	return &table.Table{Columns: columns, Rows: out}, nil
}
