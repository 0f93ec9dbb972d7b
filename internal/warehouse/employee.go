package warehouse

import "time"

// BuildEmployeeDim derives the employee dimension from the distinct
// assigned supervisor values, keyed and name-split like customers.
func BuildEmployeeDim(orders []Order, now time.Time) []EmployeeRow {
	names := distinctSorted(orders, func(o Order) string { return o.Supervisor })

	rows := make([]EmployeeRow, 0, len(names))
	for i, name := range names {
		first, last := SplitName(name)
		rows = append(rows, EmployeeRow{
			EmployeeID:        int32(i + 1),
			EmployeeName:      name,
			EmployeeFirstName: first,
			EmployeeLastName:  last,
			CreateDate:        now,
			UpdateDate:        now,
		})
	}
	return rows
}
