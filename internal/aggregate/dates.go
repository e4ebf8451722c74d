package aggregate

import "time"

// PastMonthStart returns midnight on the first day of the month n months
// before ref.
func PastMonthStart(n int, ref time.Time) time.Time {
	return time.Date(ref.Year(), ref.Month()-time.Month(n), 1, 0, 0, 0, 0, ref.Location())
}
