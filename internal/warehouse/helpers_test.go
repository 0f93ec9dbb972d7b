package warehouse

import "time"

// testOrder returns a fully populated cleaned row that individual tests
// override field by field.
func testOrder(orderNumber string) Order {
	return Order{
		OrderNumber:  orderNumber,
		OrderDate:    time.Date(2023, time.February, 1, 0, 0, 0, 0, time.UTC),
		CustomerName: "Jane Doe",
		StateCode:    "MH",
		Product:      "Widget",
		Category:     "Tools",
		Brand:        "Acme",
		Cost:         10,
		Sales:        15,
		Status:       "Shipped",
		Supervisor:   "John Supervisor",
		Quantity:     2,
		TotalCost:    20,
		TotalSales:   30,
	}
}

// testNow is the fixed run timestamp used by dimension builder tests.
var testNow = time.Date(2023, time.July, 1, 12, 0, 0, 0, time.UTC)
