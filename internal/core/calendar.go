package core

import "time"

// MonthLabelLayout renders dates as MM/DD/YYYY.
const MonthLabelLayout = "01/02/2006"

// MonthSequence returns the month dates from start (inclusive) up to end
// (exclusive). The first entry is start itself; every later entry is the
// first day of the following month. Advancing jumps to day 28, adds four
// days, and truncates back to day 1, which lands in the next month for
// every month length, leap Februaries included.
func MonthSequence(start, end time.Time) []time.Time {
	var months []time.Time
	current := start
	for current.Before(end) {
		months = append(months, current)
		jumped := time.Date(current.Year(), current.Month(), 28, 0, 0, 0, 0, current.Location()).AddDate(0, 0, 4)
		current = time.Date(jumped.Year(), jumped.Month(), 1, 0, 0, 0, 0, jumped.Location())
	}
	return months
}

// MonthLabel formats a month date with MonthLabelLayout.
func MonthLabel(t time.Time) string {
	return t.Format(MonthLabelLayout)
}
