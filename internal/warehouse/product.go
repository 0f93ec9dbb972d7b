package warehouse

import (
	"sort"
	"time"
)

type productTriple struct {
	product  string
	category string
	brand    string
}

func (a productTriple) less(b productTriple) bool {
	if a.product != b.product {
		return a.product < b.product
	}
	if a.category != b.category {
		return a.category < b.category
	}
	return a.brand < b.brand
}

// BuildProductDim derives the product dimension: one row per distinct
// (product, category, brand) triple, keyed 1..n in lexicographic order
// over the triple. standard_cost is attached only when exactly one
// distinct cost value exists for the triple; an ambiguous cost degrades
// to 0 rather than picking a winner or aborting.
func BuildProductDim(orders []Order, now time.Time) []ProductRow {
	costs := make(map[productTriple]map[float64]struct{}, len(orders))
	triples := make([]productTriple, 0, len(orders))
	for _, o := range orders {
		key := productTriple{product: o.Product, category: o.Category, brand: o.Brand}
		set, ok := costs[key]
		if !ok {
			set = make(map[float64]struct{}, 1)
			costs[key] = set
			triples = append(triples, key)
		}
		set[o.Cost] = struct{}{}
	}
	sort.Slice(triples, func(i, j int) bool { return triples[i].less(triples[j]) })

	rows := make([]ProductRow, 0, len(triples))
	for i, key := range triples {
		var standardCost float64
		if set := costs[key]; len(set) == 1 {
			for c := range set {
				standardCost = c
			}
		}
		rows = append(rows, ProductRow{
			ProductID:    int32(i + 1),
			ProductName:  key.product,
			Category:     key.category,
			Brand:        key.brand,
			StandardCost: standardCost,
			CreateDate:   now,
			UpdateDate:   now,
		})
	}
	return rows
}
