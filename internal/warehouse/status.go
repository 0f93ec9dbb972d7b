package warehouse

import "time"

// BuildStatusDim derives the order status dimension from the distinct
// status values, keyed lexicographically, with descriptions from the
// fixed lookup. Unmapped statuses get the sentinel description.
func BuildStatusDim(orders []Order, now time.Time) []StatusRow {
	values := distinctSorted(orders, func(o Order) string { return o.Status })

	rows := make([]StatusRow, 0, len(values))
	for i, v := range values {
		rows = append(rows, StatusRow{
			StatusID:          int32(i + 1),
			StatusName:        v,
			StatusDescription: StatusDescription(v),
			CreateDate:        now,
			UpdateDate:        now,
		})
	}
	return rows
}
