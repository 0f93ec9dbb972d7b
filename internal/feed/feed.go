// Package feed obtains the raw order feed as a tabular dataset. Two
// sources are supported: a remotely hosted CSV file fetched over HTTP and
// a registered Postgres catalog table.
package feed

import (
	"context"

	"github.com/pgEdge/pgedge-warehouse/internal/table"
)

// Source produces the raw order feed.
type Source interface {
	// Fetch retrieves the full raw feed. A failure here aborts the run;
	// there is no partial-feed recovery.
	Fetch(ctx context.Context) (*table.Table, error)
}
