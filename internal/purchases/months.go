package purchases

import "time"

// monthDiff returns a-b in whole calendar months, truncated toward zero.
// Partial months are measured against the length of the month they fall in,
// and day-of-month overflow clamps to the last day of the target month.
func monthDiff(a, b time.Time) int {
	b = b.In(a.Location())

	whole := (b.Year()-a.Year())*12 + int(b.Month()-a.Month())
	anchor := addMonths(a, whole)

	var adjust float64
	if b.Before(anchor) {
		prev := addMonths(a, whole-1)
		adjust = float64(b.Sub(anchor)) / float64(anchor.Sub(prev))
	} else {
		next := addMonths(a, whole+1)
		adjust = float64(b.Sub(anchor)) / float64(next.Sub(anchor))
	}

	return int(-(float64(whole) + adjust))
}

func addMonths(t time.Time, n int) time.Time {
	year, month, day := t.Date()
	first := time.Date(year, month+time.Month(n), 1, 0, 0, 0, 0, t.Location())
	if last := daysIn(first); day > last {
		day = last
	}
	return time.Date(first.Year(), first.Month(), day, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

func daysIn(t time.Time) int {
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, t.Location()).Day()
}
