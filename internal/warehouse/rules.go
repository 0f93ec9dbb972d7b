package warehouse

import "strings"

// statusDescriptions is the fixed order-status lookup.
var statusDescriptions = map[string]string{
	"Delivered":  "Order has been delivered",
	"Order":      "Order has been placed",
	"Processing": "Order is being processed",
	"Shipped":    "Order has been shipped",
}

// UnknownStatusDescription is the sentinel for statuses outside the fixed
// lookup.
const UnknownStatusDescription = "Unknown status"

// StatusDescription resolves a status value to its description. Unmapped
// statuses get the sentinel description rather than a null.
func StatusDescription(status string) string {
	if d, ok := statusDescriptions[status]; ok {
		return d
	}
	return UnknownStatusDescription
}

// SplitName splits a full name on whitespace into first and last tokens.
// A single-token name yields identical first and last names.
func SplitName(full string) (first, last string) {
	parts := strings.Fields(full)
	if len(parts) == 0 {
		return "", ""
	}
	return parts[0], parts[len(parts)-1]
}

// ProfitMargin computes profit / total_sales, guarding the division:
// non-positive total sales yield a margin of 0.
func ProfitMargin(totalSales, totalCost float64) float64 {
	if totalSales <= 0 {
		return 0
	}
	return (totalSales - totalCost) / totalSales
}
