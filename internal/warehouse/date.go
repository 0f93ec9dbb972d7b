package warehouse

import (
	"sort"
	"time"
)

// BuildDateDim derives the date dimension from the distinct order dates of
// the cleaned feed. Output order and content depend only on the set of
// dates, not on row order.
func BuildDateDim(orders []Order) []DateRow {
	seen := make(map[time.Time]struct{}, len(orders))
	dates := make([]time.Time, 0, len(orders))
	for _, o := range orders {
		if _, ok := seen[o.OrderDate]; ok {
			continue
		}
		seen[o.OrderDate] = struct{}{}
		dates = append(dates, o.OrderDate)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	rows := make([]DateRow, 0, len(dates))
	for _, d := range dates {
		// 1=Sunday .. 7=Saturday
		dow := int32(d.Weekday()) + 1
		_, isoWeek := d.ISOWeek()

		rows = append(rows, DateRow{
			DateFull:   d,
			DayOfWeek:  dow,
			DayName:    d.Weekday().String(),
			DayOfMonth: int32(d.Day()),
			DayOfYear:  int32(d.YearDay()),
			WeekOfYear: int32(isoWeek),
			MonthNum:   int32(d.Month()),
			MonthName:  d.Month().String(),
			Quarter:    (int32(d.Month())-1)/3 + 1,
			Year:       int32(d.Year()),
			IsWeekend:  dow == 1 || dow == 7,
		})
	}
	return rows
}
