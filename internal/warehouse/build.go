package warehouse

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/pgEdge/pgedge-warehouse/internal/geodata"
	"github.com/pgEdge/pgedge-warehouse/internal/logging"
)

// Build runs the full transform: the six dimension builders fan out in
// parallel over the immutable cleaned feed (each writes a disjoint field
// of the result), then the fact builder joins everything. now becomes the
// create/update timestamp of every dimension row in this run.
func Build(ctx context.Context, orders []Order, now time.Time) (*Warehouse, error) {
	sets, err := geodata.Load()
	if err != nil {
		return nil, fmt.Errorf("loading geography reference data: %w", err)
	}

	wh := &Warehouse{}

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		wh.Dates = BuildDateDim(orders)
		return nil
	})
	g.Go(func() error {
		wh.Customers = BuildCustomerDim(orders, now)
		return nil
	})
	g.Go(func() error {
		wh.Geography = BuildGeographyDim(sets, now)
		return nil
	})
	g.Go(func() error {
		wh.Products = BuildProductDim(orders, now)
		return nil
	})
	g.Go(func() error {
		wh.Statuses = BuildStatusDim(orders, now)
		return nil
	})
	g.Go(func() error {
		wh.Employees = BuildEmployeeDim(orders, now)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Hard synchronization point: the fact builder needs every dimension.
	wh.Facts = BuildFactTable(orders, wh)

	logging.Info().
		Int("dim_date", len(wh.Dates)).
		Int("dim_cust", len(wh.Customers)).
		Int("dim_geo", len(wh.Geography)).
		Int("dim_prod", len(wh.Products)).
		Int("dim_ostatus", len(wh.Statuses)).
		Int("dim_emp", len(wh.Employees)).
		Int("fact_orders", len(wh.Facts)).
		Msg("Built warehouse tables")

	return wh, nil
}
