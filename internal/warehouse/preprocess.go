package warehouse

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/pgEdge/pgedge-warehouse/internal/logging"
	"github.com/pgEdge/pgedge-warehouse/internal/table"
)

// feedDateLayout is the day/month/year format of the raw feed.
const feedDateLayout = "02/01/2006"

// Raw feed column names after lower-casing.
const (
	colOrderNumber  = "order_number"
	colOrderDate    = "order_date"
	colCustomerName = "customer_name"
	colStateCode    = "state_code"
	colProduct      = "product"
	colCategory     = "category"
	colBrand        = "brand"
	colCost         = "cost"
	colSales        = "sales"
	colStatus       = "status"
	colSupervisor   = "assigned supervisor"
	colQuantity     = "quantity"
	colTotalCost    = "total_cost"
	colTotalSales   = "total_sales"
)

var requiredColumns = []string{
	colOrderNumber, colOrderDate, colCustomerName, colStateCode,
	colProduct, colCategory, colBrand, colCost, colSales,
	colStatus, colSupervisor, colQuantity, colTotalCost, colTotalSales,
}

// Preprocess cleans the raw feed: column names are lower-cased, rows
// without an order number are dropped, and order_date is parsed from
// day/month/year text. A missing required column or a malformed date
// aborts the run; no partial warehouse is built from a bad feed.
func Preprocess(raw *table.Table) ([]Order, error) {
	cols := make([]string, len(raw.Columns))
	for i, c := range raw.Columns {
		cols[i] = strings.ToLower(strings.TrimSpace(c))
	}
	norm := &table.Table{Columns: cols, Rows: raw.Rows}

	idx := make(map[string]int, len(requiredColumns))
	for _, name := range requiredColumns {
		i := norm.ColumnIndex(name)
		if i < 0 {
			return nil, fmt.Errorf("required column %q not found in the input data", name)
		}
		idx[name] = i
	}

	orders := make([]Order, 0, len(norm.Rows))
	dropped := 0
	for n, row := range norm.Rows {
		orderNumber := strings.TrimSpace(norm.Field(row, idx[colOrderNumber]))
		if orderNumber == "" {
			dropped++
			continue
		}

		dateText := strings.TrimSpace(norm.Field(row, idx[colOrderDate]))
		orderDate, err := time.Parse(feedDateLayout, dateText)
		if err != nil {
			return nil, fmt.Errorf("row %d: parsing order_date %q: %w", n+1, dateText, err)
		}

		orders = append(orders, Order{
			OrderNumber:  orderNumber,
			OrderDate:    orderDate,
			CustomerName: norm.Field(row, idx[colCustomerName]),
			StateCode:    norm.Field(row, idx[colStateCode]),
			Product:      norm.Field(row, idx[colProduct]),
			Category:     norm.Field(row, idx[colCategory]),
			Brand:        norm.Field(row, idx[colBrand]),
			Cost:         parseFloat(norm.Field(row, idx[colCost])),
			Sales:        parseFloat(norm.Field(row, idx[colSales])),
			Status:       norm.Field(row, idx[colStatus]),
			Supervisor:   norm.Field(row, idx[colSupervisor]),
			Quantity:     parseInt(norm.Field(row, idx[colQuantity])),
			TotalCost:    parseFloat(norm.Field(row, idx[colTotalCost])),
			TotalSales:   parseFloat(norm.Field(row, idx[colTotalSales])),
		})
	}

	logging.Info().
		Int("rows", len(orders)).
		Int("dropped", dropped).
		Msg("Preprocessed raw feed")

	return orders, nil
}

// parseFloat applies the null-defaulting policy: empty or unparseable
// numeric fields become 0.
func parseFloat(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return v
}

func parseInt(s string) int64 {
	v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		// Some feeds render quantities as "2.0".
		if f, ferr := strconv.ParseFloat(strings.TrimSpace(s), 64); ferr == nil {
			return int64(f)
		}
		return 0
	}
	return v
}
