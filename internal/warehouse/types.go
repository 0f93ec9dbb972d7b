// Package warehouse implements the dimensional transform pipeline: it
// cleans the raw order feed, derives the six dimension tables, and
// resolves the orders fact table.
package warehouse

import "time"

// Order is one cleaned raw feed row. All downstream builders consume this
// type; it is never mutated after preprocessing.
type Order struct {
	OrderNumber  string
	OrderDate    time.Time
	CustomerName string
	StateCode    string
	Product      string
	Category     string
	Brand        string
	Cost         float64
	Sales        float64
	Status       string
	Supervisor   string
	Quantity     int64
	TotalCost    float64
	TotalSales   float64
}

// DateRow is one row of the date dimension.
type DateRow struct {
	DateFull   time.Time `parquet:"date_full"`
	DayOfWeek  int32     `parquet:"day_of_week"`
	DayName    string    `parquet:"day_name"`
	DayOfMonth int32     `parquet:"day_of_month"`
	DayOfYear  int32     `parquet:"day_of_year"`
	WeekOfYear int32     `parquet:"week_of_year"`
	MonthNum   int32     `parquet:"month_num"`
	MonthName  string    `parquet:"month_name"`
	Quarter    int32     `parquet:"quarter"`
	Year       int32     `parquet:"year"`
	IsWeekend  bool      `parquet:"is_weekend"`
}

// CustomerRow is one row of the customer dimension.
type CustomerRow struct {
	CustomerID   int32     `parquet:"customer_id"`
	CustomerName string    `parquet:"customer_name"`
	FirstName    string    `parquet:"first_name"`
	LastName     string    `parquet:"last_name"`
	CreateDate   time.Time `parquet:"create_date"`
	UpdateDate   time.Time `parquet:"update_date"`
}

// GeographyRow is one row of the geography dimension. Surrogate keys are
// fresh UUIDs each run; the table is rebuilt wholesale and never joined
// across runs.
type GeographyRow struct {
	StateID     string    `parquet:"state_id"`
	StateCode   string    `parquet:"state_code"`
	Country     string    `parquet:"country"`
	StateName   string    `parquet:"state_name"`
	CapitalCity string    `parquet:"capital_city"`
	Status      string    `parquet:"status"`
	ISOCode     string    `parquet:"iso_code"`
	CreatedAt   time.Time `parquet:"created_at"`
}

// ProductRow is one row of the product dimension.
type ProductRow struct {
	ProductID    int32     `parquet:"product_id"`
	ProductName  string    `parquet:"product_name"`
	Category     string    `parquet:"category"`
	Brand        string    `parquet:"brand"`
	StandardCost float64   `parquet:"standard_cost"`
	CreateDate   time.Time `parquet:"create_date"`
	UpdateDate   time.Time `parquet:"update_date"`
}

// StatusRow is one row of the order status dimension.
type StatusRow struct {
	StatusID          int32     `parquet:"status_id"`
	StatusName        string    `parquet:"status_name"`
	StatusDescription string    `parquet:"status_description"`
	CreateDate        time.Time `parquet:"create_date"`
	UpdateDate        time.Time `parquet:"update_date"`
}

// EmployeeRow is one row of the employee (assigned supervisor) dimension.
type EmployeeRow struct {
	EmployeeID        int32     `parquet:"employee_id"`
	EmployeeName      string    `parquet:"employee_name"`
	EmployeeFirstName string    `parquet:"employee_first_name"`
	EmployeeLastName  string    `parquet:"employee_last_name"`
	CreateDate        time.Time `parquet:"create_date"`
	UpdateDate        time.Time `parquet:"update_date"`
}

// FactRow is one row of the orders fact table. Unresolved foreign keys
// carry the -1 sentinel ("-1" for the uuid-typed state_id) so the table is
// always fully populated and joinable.
type FactRow struct {
	OrderNumber  string    `parquet:"order_number"`
	OrderDate    time.Time `parquet:"order_date"`
	CustomerID   int32     `parquet:"customer_id"`
	StateID      string    `parquet:"state_id"`
	ProductID    int32     `parquet:"product_id"`
	StatusID     int32     `parquet:"status_id"`
	EmployeeID   int32     `parquet:"employee_id"`
	UnitCost     float64   `parquet:"unit_cost"`
	UnitSales    float64   `parquet:"unit_sales"`
	Quantity     int64     `parquet:"quantity"`
	TotalCost    float64   `parquet:"total_cost"`
	TotalSales   float64   `parquet:"total_sales"`
	Profit       float64   `parquet:"profit"`
	ProfitMargin float64   `parquet:"profit_margin"`
}

// Warehouse holds the seven tables of one pipeline run.
type Warehouse struct {
	Dates     []DateRow
	Customers []CustomerRow
	Geography []GeographyRow
	Products  []ProductRow
	Statuses  []StatusRow
	Employees []EmployeeRow
	Facts     []FactRow
}

// UnresolvedKey is the sentinel for foreign keys with no dimension match.
const UnresolvedKey = -1

// UnresolvedStateID mirrors UnresolvedKey for the uuid-typed state_id.
const UnresolvedStateID = "-1"
