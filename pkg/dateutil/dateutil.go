package dateutil

import (
	"fmt"
	"time"
)

// AddMonths adds calendar months, clamping the day to the end of the target month.
// 2025-01-31 plus one month is 2025-02-28, not March 3rd.
func AddMonths(t time.Time, months int) time.Time {
	first := time.Date(t.Year(), t.Month(), 1, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
	target := first.AddDate(0, months, 0)
	day := t.Day()
	if last := DaysInMonth(target); day > last {
		day = last
	}
	return time.Date(target.Year(), target.Month(), day, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

// DaysInMonth returns the number of days in t's month
func DaysInMonth(t time.Time) int {
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, t.Location()).Day()
}

// ContractEndDate returns the date a contract with `remaining` months left expires
func ContractEndDate(asOf time.Time, remaining int) time.Time {
	if remaining < 0 {
		remaining = 0
	}
	return AddMonths(asOf, remaining)
}

// FormatYearMonth renders a month the way bills print it, e.g. "2026년 5월"
func FormatYearMonth(t time.Time) string {
	return fmt.Sprintf("%d년 %d월", t.Year(), int(t.Month()))
}
