package timeutil

import "time"

// DateLayout defines the canonical date format (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// FeedDateLayout is the compact date stamp the scoreboard feed expects (YYYYMMDD).
const FeedDateLayout = "20060102"

// ParseDate parses a YYYY-MM-DD date string.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, value)
}

// FormatDate formats a time as YYYY-MM-DD in its current location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// StartOfDay truncates t to midnight in its own location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// DateRange returns every calendar day from back days before day to ahead days after, inclusive.
func DateRange(day time.Time, back, ahead int) []time.Time {
	if back < 0 {
		back = 0
	}
	if ahead < 0 {
		ahead = 0
	}
	start := StartOfDay(day).AddDate(0, 0, -back)
	out := make([]time.Time, 0, back+ahead+1)
	for i := 0; i <= back+ahead; i++ {
		out = append(out, start.AddDate(0, 0, i))
	}
	return out
}
