package render

import (
	"time"

	"github.com/dustin/go-humanize"
)

// Count formats n with thousands separators.
func Count(n int) string {
	return humanize.Comma(int64(n))
}

// Plays formats a play count with its unit.
func Plays(n int) string {
	if n == 1 {
		return "1 play"
	}
	return Count(n) + " plays"
}

// Ago formats t relative to now, such as "3 days ago".
func Ago(t, now time.Time) string {
	return humanize.RelTime(t, now, "ago", "from now")
}
