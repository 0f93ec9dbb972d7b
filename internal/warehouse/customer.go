package warehouse

import (
	"sort"
	"time"
)

// distinctSorted returns the distinct values of extract over the cleaned
// feed in ascending lexicographic order. Surrogate key assignment walks
// this order, so identical input always yields identical keys.
func distinctSorted(orders []Order, extract func(Order) string) []string {
	seen := make(map[string]struct{}, len(orders))
	values := make([]string, 0, len(orders))
	for _, o := range orders {
		v := extract(o)
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		values = append(values, v)
	}
	sort.Strings(values)
	return values
}

// BuildCustomerDim derives the customer dimension: one row per distinct
// customer name, keyed 1..n in lexicographic order.
func BuildCustomerDim(orders []Order, now time.Time) []CustomerRow {
	names := distinctSorted(orders, func(o Order) string { return o.CustomerName })

	rows := make([]CustomerRow, 0, len(names))
	for i, name := range names {
		first, last := SplitName(name)
		rows = append(rows, CustomerRow{
			CustomerID:   int32(i + 1),
			CustomerName: name,
			FirstName:    first,
			LastName:     last,
			CreateDate:   now,
			UpdateDate:   now,
		})
	}
	return rows
}
