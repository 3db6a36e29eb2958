// Package date formats instants relative to now, the way a person would say
// it: "less than a minute ago", "about 3 hours ago", "in 2 days".
package date

import (
	"fmt"
	"math"
	"time"
)

const (
	minutesInDay           = 24 * 60
	minutesInAlmostTwoDays = 42 * 60
	minutesInMonth         = 30 * minutesInDay
	minutesInTwoMonths     = 2 * minutesInMonth
)

// Distance returns the length of d in words. The sign of d is ignored.
func Distance(d time.Duration) string {
	if d < 0 {
		d = -d
	}
	seconds := d.Round(time.Second).Seconds()
	minutes := int(math.Round(seconds / 60))

	switch {
	case minutes < 1:
		return "less than a minute"
	case minutes < 45:
		return plural(minutes, "minute")
	case minutes < 90:
		return "about 1 hour"
	case minutes < minutesInDay:
		return "about " + plural(roundDiv(minutes, 60), "hour")
	case minutes < minutesInAlmostTwoDays:
		return "1 day"
	case minutes < minutesInMonth:
		return plural(roundDiv(minutes, minutesInDay), "day")
	case minutes < minutesInTwoMonths:
		return "about " + plural(roundDiv(minutes, minutesInMonth), "month")
	}

	months := minutes / minutesInMonth
	if months < 12 {
		return plural(roundDiv(minutes, minutesInMonth), "month")
	}

	years, rest := months/12, months%12
	switch {
	case rest < 3:
		return "about " + plural(years, "year")
	case rest < 9:
		return "over " + plural(years, "year")
	default:
		return "almost " + plural(years+1, "year")
	}
}

// Ago returns the distance between t and now with a suffix: "… ago" when t
// is in the past, "in …" when it is in the future.
func Ago(t, now time.Time) string {
	d := now.Sub(t)
	if d < 0 {
		return "in " + Distance(d)
	}
	return Distance(d) + " ago"
}

func roundDiv(a, b int) int { return int(math.Round(float64(a) / float64(b))) }

func plural(n int, unit string) string {
	if n == 1 {
		return "1 " + unit
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
