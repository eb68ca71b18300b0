// Package when holds the small pieces of clock and calendar arithmetic the
// commands share: clock-time formatting, next-occurrence lookup for weekly
// slots, and human-friendly countdown messages.
package when

import (
	"fmt"
	"strings"
	"time"
)

// HHMM formats minutes after midnight as a clock time with a space-padded
// hour, so times line up in a column.
func HHMM(minutes int) string {
	return fmt.Sprintf("%2d:%02d", minutes/60, minutes%60)
}

// ParseHHMM converts "H:MM" or "HH:MM" to minutes after midnight.
func ParseHHMM(s string) (int, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid time '%s', expected HH:MM", s)
	}

	var h, m int
	if _, err := fmt.Sscanf(parts[0], "%d", &h); err != nil {
		return 0, fmt.Errorf("invalid time '%s', expected HH:MM", s)
	}
	if _, err := fmt.Sscanf(parts[1], "%d", &m); err != nil {
		return 0, fmt.Errorf("invalid time '%s', expected HH:MM", s)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("time '%s' out of range", s)
	}
	return h*60 + m, nil
}

// Next returns the first instant strictly after now that falls on day at
// the given minutes after midnight.
func Next(now time.Time, day time.Weekday, minutes int) time.Time {
	t := time.Date(now.Year(), now.Month(), now.Day(), minutes/60, minutes%60, 0, 0, now.Location())

	days := (int(day) - int(now.Weekday()) + 7) % 7
	t = t.AddDate(0, 0, days)
	if !t.After(now) {
		t = t.AddDate(0, 0, 7)
	}
	return t
}

// Due humanizes a duration the way a person would say it: "3 days, 2 hours",
// "45 minutes", or "now". Below a day, minutes are only mentioned when there
// is no whole hour to report.
func Due(d time.Duration) string {
	if d < 0 {
		d = -d
	}

	msg := ""
	if days := int(d.Hours()) / 24; days != 0 {
		msg = fmt.Sprintf("%d day%s, ", days, plural(days))
	}

	if hours := int(d.Hours()) % 24; hours != 0 {
		msg += fmt.Sprintf("%d hour%s", hours, plural(hours))
	} else {
		if minutes := int(d.Minutes()) % 60; minutes != 0 {
			msg += fmt.Sprintf("%d minute%s", minutes, plural(minutes))
		}
		if msg == "" {
			msg = "now"
		}
	}

	return strings.Trim(strings.TrimSpace(msg), ",")
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
