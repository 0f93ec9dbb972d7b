package warehouse

import (
	"testing"
	"time"
)

func dateOrder(orderNumber string, date time.Time) Order {
	o := testOrder(orderNumber)
	o.OrderDate = date
	return o
}

func TestBuildDateDim(t *testing.T) {
	// 1 Feb 2023 was a Wednesday.
	wed := time.Date(2023, time.February, 1, 0, 0, 0, 0, time.UTC)
	sat := time.Date(2023, time.February, 4, 0, 0, 0, 0, time.UTC)
	sun := time.Date(2023, time.February, 5, 0, 0, 0, 0, time.UTC)

	orders := []Order{
		dateOrder("O1", sat),
		dateOrder("O2", wed),
		dateOrder("O3", wed), // duplicate date
		dateOrder("O4", sun),
	}

	rows := BuildDateDim(orders)
	if len(rows) != 3 {
		t.Fatalf("Expected 3 distinct dates, got %d", len(rows))
	}

	// Sorted ascending.
	if !rows[0].DateFull.Equal(wed) || !rows[2].DateFull.Equal(sun) {
		t.Errorf("Dates not sorted ascending: %v", rows)
	}

	w := rows[0]
	if w.DayOfWeek != 4 { // 1=Sunday..7=Saturday
		t.Errorf("Expected day_of_week 4 for Wednesday, got %d", w.DayOfWeek)
	}
	if w.DayName != "Wednesday" {
		t.Errorf("Unexpected day name: %s", w.DayName)
	}
	if w.DayOfMonth != 1 || w.DayOfYear != 32 {
		t.Errorf("Unexpected day fields: %+v", w)
	}
	if w.WeekOfYear != 5 { // ISO week of 1 Feb 2023
		t.Errorf("Expected ISO week 5, got %d", w.WeekOfYear)
	}
	if w.MonthNum != 2 || w.MonthName != "February" {
		t.Errorf("Unexpected month fields: %+v", w)
	}
	if w.Quarter != 1 || w.Year != 2023 {
		t.Errorf("Unexpected quarter/year: %+v", w)
	}
	if w.IsWeekend {
		t.Error("Wednesday flagged as weekend")
	}

	if !rows[1].IsWeekend || rows[1].DayOfWeek != 7 {
		t.Errorf("Saturday not flagged as weekend: %+v", rows[1])
	}
	if !rows[2].IsWeekend || rows[2].DayOfWeek != 1 {
		t.Errorf("Sunday not flagged as weekend: %+v", rows[2])
	}
}

func TestBuildDateDimQuarters(t *testing.T) {
	tests := []struct {
		month time.Month
		want  int32
	}{
		{month: time.January, want: 1},
		{month: time.March, want: 1},
		{month: time.April, want: 2},
		{month: time.September, want: 3},
		{month: time.December, want: 4},
	}

	for _, tt := range tests {
		orders := []Order{dateOrder("O1", time.Date(2023, tt.month, 10, 0, 0, 0, 0, time.UTC))}
		rows := BuildDateDim(orders)
		if rows[0].Quarter != tt.want {
			t.Errorf("Quarter for %s = %d, want %d", tt.month, rows[0].Quarter, tt.want)
		}
	}
}

func TestBuildDateDimRowOrderIndependence(t *testing.T) {
	d1 := time.Date(2023, time.February, 1, 0, 0, 0, 0, time.UTC)
	d2 := time.Date(2023, time.June, 15, 0, 0, 0, 0, time.UTC)

	a := BuildDateDim([]Order{dateOrder("O1", d1), dateOrder("O2", d2)})
	b := BuildDateDim([]Order{dateOrder("O2", d2), dateOrder("O1", d1)})

	if len(a) != len(b) {
		t.Fatalf("Row counts differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("Row %d differs between input orderings: %+v vs %+v", i, a[i], b[i])
		}
	}
}
