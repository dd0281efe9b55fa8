// Package greeting formats the banner salutation and live clock.
package greeting

import "time"

// Salutation picks a greeting by the hour of t.
func Salutation(t time.Time) string {
	switch h := t.Hour(); {
	case h < 12:
		return "Good Morning"
	case h < 17:
		return "Good Afternoon"
	default:
		return "Good Evening"
	}
}

// FormatClock renders t as a 12-hour clock with seconds, e.g. "3:04:05 PM".
func FormatClock(t time.Time) string {
	return t.Format("3:04:05 PM")
}

// FormatDate renders t as a long date, e.g. "Monday, January 2, 2006".
func FormatDate(t time.Time) string {
	return t.Format("Monday, January 2, 2006")
}
