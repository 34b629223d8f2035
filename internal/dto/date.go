package dto

import "time"

// DateLayout is the wire format for all dates: YYYY-MM-DD.
const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD wire date.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// FormatDate renders a time as a YYYY-MM-DD wire date.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
