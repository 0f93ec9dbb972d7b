package warehouse

import (
	"testing"

	"github.com/pgEdge/pgedge-warehouse/internal/geodata"
)

// factWarehouse builds the six dimensions for a set of cleaned orders the
// same way the pipeline does, so fact tests exercise the real key spaces.
func factWarehouse(t *testing.T, orders []Order) *Warehouse {
	t.Helper()
	sets, err := geodata.Load()
	if err != nil {
		t.Fatalf("Loading reference data: %v", err)
	}
	return &Warehouse{
		Dates:     BuildDateDim(orders),
		Customers: BuildCustomerDim(orders, testNow),
		Geography: BuildGeographyDim(sets, testNow),
		Products:  BuildProductDim(orders, testNow),
		Statuses:  BuildStatusDim(orders, testNow),
		Employees: BuildEmployeeDim(orders, testNow),
	}
}

func TestBuildFactTable(t *testing.T) {
	orders := []Order{testOrder("O1")}
	wh := factWarehouse(t, orders)

	facts := BuildFactTable(orders, wh)
	if len(facts) != 1 {
		t.Fatalf("Expected 1 fact row, got %d", len(facts))
	}

	f := facts[0]
	if f.OrderNumber != "O1" {
		t.Errorf("Unexpected order number: %s", f.OrderNumber)
	}
	if f.CustomerID != 1 || f.ProductID != 1 || f.StatusID != 1 || f.EmployeeID != 1 {
		t.Errorf("Foreign keys not resolved: %+v", f)
	}
	if f.StateID == UnresolvedStateID {
		t.Error("MH should resolve against the India subset")
	}
	if f.Profit != 10 { // 30 - 20
		t.Errorf("Expected profit 10, got %v", f.Profit)
	}
	if f.ProfitMargin != 10.0/30.0 {
		t.Errorf("Expected margin 1/3, got %v", f.ProfitMargin)
	}
}

func TestBuildFactTableUnresolvedKeys(t *testing.T) {
	o := testOrder("O1")
	o.StateCode = "ZZ"
	orders := []Order{o}
	wh := factWarehouse(t, orders)

	// Drop the customer dimension row so the name no longer resolves.
	wh.Customers = nil

	facts := BuildFactTable(orders, wh)
	if facts[0].CustomerID != UnresolvedKey {
		t.Errorf("Expected customer sentinel %d, got %d", UnresolvedKey, facts[0].CustomerID)
	}
	if facts[0].StateID != UnresolvedStateID {
		t.Errorf("Expected state sentinel %q, got %q", UnresolvedStateID, facts[0].StateID)
	}
}

func TestBuildFactTableIndiaOnlyStateJoin(t *testing.T) {
	// CA is a US state code in the reference data but must not resolve:
	// the feed's addresses join against the India subset only.
	o := testOrder("O1")
	o.StateCode = "CA"
	orders := []Order{o}
	wh := factWarehouse(t, orders)

	facts := BuildFactTable(orders, wh)
	if facts[0].StateID != UnresolvedStateID {
		t.Errorf("US state code resolved against non-India subset: %q", facts[0].StateID)
	}
}

func TestBuildFactTableAmbiguousProductName(t *testing.T) {
	o1 := testOrder("O1") // Widget/Tools/Acme
	o2 := testOrder("O2")
	o2.Brand = "Globex" // Widget under a second brand
	orders := []Order{o1, o2}
	wh := factWarehouse(t, orders)

	if len(wh.Products) != 2 {
		t.Fatalf("Expected 2 product triples, got %d", len(wh.Products))
	}

	facts := BuildFactTable(orders, wh)
	// Both rows resolve by name to the lowest surrogate key.
	for i, f := range facts {
		if f.ProductID != 1 {
			t.Errorf("Row %d: expected lowest surrogate key 1, got %d", i, f.ProductID)
		}
	}
}

func TestBuildFactTableRowCountPreserved(t *testing.T) {
	orders := []Order{testOrder("O1"), testOrder("O2"), testOrder("O3")}
	wh := factWarehouse(t, orders)

	facts := BuildFactTable(orders, wh)
	if len(facts) != len(orders) {
		t.Errorf("Expected %d fact rows, got %d", len(orders), len(facts))
	}
}
