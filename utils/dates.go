// utils/dates.go
package utils

import (
	"fmt"
	"time"
)

// timestampLayouts are accepted for incoming dueDate values: full RFC3339 or
// a bare date, which is treated as midnight UTC.
var timestampLayouts = []string{time.RFC3339, "2006-01-02"}

func ParseTimestamp(s string) (time.Time, error) {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", s)
}

func BeginningOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

func DaysBetween(start, end time.Time) int {
	start = BeginningOfDay(start)
	end = BeginningOfDay(end)
	return int(end.Sub(start).Hours() / 24)
}
