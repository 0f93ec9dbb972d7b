package warehouse

import (
	"github.com/pgEdge/pgedge-warehouse/internal/geodata"
	"github.com/pgEdge/pgedge-warehouse/internal/logging"
)

// BuildFactTable resolves one fact row per cleaned order against the six
// dimension tables. Unresolved foreign keys carry the -1 sentinel; the
// output row count always equals the cleaned input row count.
//
// state_code resolves against the India subset of geography only: the
// feed's addresses are India-only by design. product resolves by name
// alone even though the dimension is keyed by (product, category, brand);
// when several triples share a name the lowest surrogate key wins, and
// the ambiguity is surfaced in the log.
func BuildFactTable(orders []Order, wh *Warehouse) []FactRow {
	customerIDs := make(map[string]int32, len(wh.Customers))
	for _, c := range wh.Customers {
		customerIDs[c.CustomerName] = c.CustomerID
	}

	stateIDs := make(map[string]string)
	for _, g := range wh.Geography {
		if g.Country == geodata.CountryIndia {
			stateIDs[g.StateCode] = g.StateID
		}
	}

	// Products are already ordered by ascending surrogate key, so the
	// first triple seen for a name is the deterministic tie-break winner.
	productIDs := make(map[string]int32, len(wh.Products))
	ambiguousNames := make(map[string]struct{})
	for _, p := range wh.Products {
		if _, ok := productIDs[p.ProductName]; ok {
			ambiguousNames[p.ProductName] = struct{}{}
			continue
		}
		productIDs[p.ProductName] = p.ProductID
	}

	statusIDs := make(map[string]int32, len(wh.Statuses))
	for _, s := range wh.Statuses {
		statusIDs[s.StatusName] = s.StatusID
	}

	employeeIDs := make(map[string]int32, len(wh.Employees))
	for _, e := range wh.Employees {
		employeeIDs[e.EmployeeName] = e.EmployeeID
	}

	facts := make([]FactRow, 0, len(orders))
	ambiguousRows := 0
	for _, o := range orders {
		if _, ok := ambiguousNames[o.Product]; ok {
			ambiguousRows++
		}

		profit := o.TotalSales - o.TotalCost
		facts = append(facts, FactRow{
			OrderNumber:  o.OrderNumber,
			OrderDate:    o.OrderDate,
			CustomerID:   lookupKey(customerIDs, o.CustomerName),
			StateID:      lookupStateID(stateIDs, o.StateCode),
			ProductID:    lookupKey(productIDs, o.Product),
			StatusID:     lookupKey(statusIDs, o.Status),
			EmployeeID:   lookupKey(employeeIDs, o.Supervisor),
			UnitCost:     o.Cost,
			UnitSales:    o.Sales,
			Quantity:     o.Quantity,
			TotalCost:    o.TotalCost,
			TotalSales:   o.TotalSales,
			Profit:       profit,
			ProfitMargin: ProfitMargin(o.TotalSales, o.TotalCost),
		})
	}

	if len(ambiguousNames) > 0 {
		logging.Warn().
			Int("names", len(ambiguousNames)).
			Int("fact_rows", ambiguousRows).
			Msg("Product name maps to multiple dimension triples; lowest surrogate key used")
	}

	return facts
}

func lookupKey(m map[string]int32, key string) int32 {
	if id, ok := m[key]; ok {
		return id
	}
	return UnresolvedKey
}

func lookupStateID(m map[string]string, code string) string {
	if id, ok := m[code]; ok {
		return id
	}
	return UnresolvedStateID
}
