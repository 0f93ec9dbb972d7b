package warehouse

import (
	"time"

	"github.com/google/uuid"

	"github.com/pgEdge/pgedge-warehouse/internal/geodata"
)

// BuildGeographyDim assembles the geography dimension from the static
// reference sets. It does not read the order feed; the row count is fixed
// by the reference data. Surrogate identifiers are fresh UUIDs per run.
func BuildGeographyDim(sets []geodata.RegionSet, now time.Time) []GeographyRow {
	total := 0
	for _, set := range sets {
		total += len(set.Subdivisions)
	}

	rows := make([]GeographyRow, 0, total)
	for _, set := range sets {
		for _, sub := range set.Subdivisions {
			rows = append(rows, GeographyRow{
				StateID:     uuid.NewString(),
				StateCode:   sub.Code,
				Country:     set.Country,
				StateName:   sub.Name,
				CapitalCity: sub.Capital,
				Status:      sub.Status,
				ISOCode:     sub.ISOCode,
				CreatedAt:   now,
			})
		}
	}
	return rows
}
