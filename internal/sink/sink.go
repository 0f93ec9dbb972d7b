// Package sink writes the warehouse tables to local snappy-compressed
// parquet files.
package sink

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/parquet-go/parquet-go"
	"golang.org/x/sync/errgroup"

	"github.com/pgEdge/pgedge-warehouse/internal/logging"
	"github.com/pgEdge/pgedge-warehouse/internal/warehouse"
)

// Fixed output file names, one per warehouse table.
const (
	FileDate     = "dim_date.parquet"
	FileCustomer = "dim_cust.parquet"
	FileGeo      = "dim_geo.parquet"
	FileProduct  = "dim_prod.parquet"
	FileStatus   = "dim_ostatus.parquet"
	FileEmployee = "dim_emp.parquet"
	FileFact     = "fact_orders.parquet"
)

// FileNames lists the seven warehouse files in their canonical order.
func FileNames() []string {
	return []string{
		FileDate, FileCustomer, FileGeo, FileProduct,
		FileStatus, FileEmployee, FileFact,
	}
}

// Write persists all seven tables under dir, creating it if needed.
// Existing files are overwritten so a re-run replaces the previous
// warehouse wholesale. The tables are independent and written in
// parallel; the first failure cancels the run.
func Write(ctx context.Context, dir string, wh *warehouse.Warehouse) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating output directory %s: %w", dir, err)
	}

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error { return writeTable(dir, FileDate, wh.Dates) })
	g.Go(func() error { return writeTable(dir, FileCustomer, wh.Customers) })
	g.Go(func() error { return writeTable(dir, FileGeo, wh.Geography) })
	g.Go(func() error { return writeTable(dir, FileProduct, wh.Products) })
	g.Go(func() error { return writeTable(dir, FileStatus, wh.Statuses) })
	g.Go(func() error { return writeTable(dir, FileEmployee, wh.Employees) })
	g.Go(func() error { return writeTable(dir, FileFact, wh.Facts) })
	if err := g.Wait(); err != nil {
		return err
	}

	logging.Info().
		Str("dir", dir).
		Int("files", len(FileNames())).
		Msg("Wrote warehouse parquet files")
	return nil
}

func writeTable[T any](dir, name string, rows []T) error {
	path := filepath.Join(dir, name)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}

	w := parquet.NewGenericWriter[T](f, parquet.Compression(&parquet.Snappy))
	if len(rows) > 0 {
		if _, err := w.Write(rows); err != nil {
			f.Close()
			return fmt.Errorf("writing %s: %w", path, err)
		}
	}
	if err := w.Close(); err != nil {
		f.Close()
		return fmt.Errorf("closing parquet writer for %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}

	logging.Debug().
		Str("file", path).
		Int("rows", len(rows)).
		Msg("Wrote table")
	return nil
}
