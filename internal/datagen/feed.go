//-------------------------------------------------------------------------
//
// pgEdge Warehouse Builder
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package datagen generates synthetic raw order feeds for demos and
// testing. The output deliberately carries the quirks of a real feed:
// mixed-case headers, occasional blank order numbers, statuses outside
// the fixed lookup, and product triples with conflicting costs.
package datagen

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/brianvoe/gofakeit/v7"

	"github.com/pgEdge/pgedge-warehouse/internal/geodata"
)

// FeedColumns are the raw feed headers, in feed order.
var FeedColumns = []string{
	"Order_Number", "Order_Date", "Customer_Name", "State_Code",
	"Product", "Category", "Brand", "Cost", "Sales", "Status",
	"Assigned Supervisor", "Quantity", "Total_Cost", "Total_Sales",
}

type product struct {
	name     string
	category string
	brand    string
	cost     float64
}

var products = []product{
	{name: "Steel Anvil", category: "Hardware", brand: "Forge Works", cost: 120},
	{name: "Claw Hammer", category: "Hardware", brand: "Forge Works", cost: 18},
	{name: "Desk Lamp", category: "Home", brand: "Brightline", cost: 22},
	{name: "Office Chair", category: "Home", brand: "Brightline", cost: 85},
	{name: "Trail Backpack", category: "Outdoor", brand: "Summit Gear", cost: 45},
	{name: "Camp Stove", category: "Outdoor", brand: "Summit Gear", cost: 60},
	{name: "Water Bottle", category: "Outdoor", brand: "Summit Gear", cost: 9},
	// Same name under a second brand: exercises the by-name fact join.
	{name: "Desk Lamp", category: "Home", brand: "Lumena", cost: 27},
}

var statuses = []string{
	"Shipped", "Delivered", "Processing", "Cancelled",
	// Outside the fixed description lookup.
	"Returned", "Pending",
}

// WriteSampleFeed writes rows synthetic raw order rows as CSV to w.
// A non-zero seed makes the output reproducible. Roughly 2% of rows
// carry a blank order number and some rows jitter the product cost, so
// the downstream pipeline's cleaning and ambiguity rules get exercised.
func WriteSampleFeed(w io.Writer, rows int, seed uint64) error {
	f := gofakeit.New(seed)

	sets, err := geodata.Load()
	if err != nil {
		return fmt.Errorf("loading geography reference data: %w", err)
	}
	var stateCodes []string
	for _, set := range sets {
		if set.Country == geodata.CountryIndia {
			for _, sub := range set.Subdivisions {
				stateCodes = append(stateCodes, sub.Code)
			}
		}
	}

	supervisors := make([]string, 5)
	for i := range supervisors {
		supervisors[i] = f.Name()
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(FeedColumns); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	start := time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < rows; i++ {
		orderNumber := fmt.Sprintf("ORD-%06d", i+1)
		if f.Number(1, 100) <= 2 {
			orderNumber = ""
		}

		p := products[f.Number(0, len(products)-1)]
		cost := p.cost
		if f.Number(1, 100) <= 5 {
			// Conflicting cost for an otherwise identical triple.
			cost = p.cost + 2
		}
		sales := cost * (1 + float64(f.Number(10, 60))/100)
		qty := f.Number(1, 10)

		date := start.AddDate(0, 0, f.Number(0, 364))

		record := []string{
			orderNumber,
			date.Format("02/01/2006"),
			f.Name(),
			stateCodes[f.Number(0, len(stateCodes)-1)],
			p.name,
			p.category,
			p.brand,
			fmt.Sprintf("%.2f", cost),
			fmt.Sprintf("%.2f", sales),
			statuses[f.Number(0, len(statuses)-1)],
			supervisors[f.Number(0, len(supervisors)-1)],
			fmt.Sprintf("%d", qty),
			fmt.Sprintf("%.2f", cost*float64(qty)),
			fmt.Sprintf("%.2f", sales*float64(qty)),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("writing row %d: %w", i+1, err)
		}
	}

	cw.Flush()
	return cw.Error()
}
