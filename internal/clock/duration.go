package clock

import (
	"strconv"
	"strings"
	"time"
)

// FormatDuration renders d as its non-zero day, hour, minute and second
// components, e.g. "1h 1m 2s". Sub-second precision is dropped and a zero or
// negative span yields "".
func FormatDuration(d time.Duration) string {
	days := int64(d / Day)
	hours := int64(d/time.Hour) % 24
	minutes := int64(d/time.Minute) % 60
	seconds := int64(d/time.Second) % 60

	parts := make([]string, 0, 4)
	for _, unit := range []struct {
		value  int64
		suffix string
	}{
		{days, "d"},
		{hours, "h"},
		{minutes, "m"},
		{seconds, "s"},
	} {
		if unit.value > 0 {
			parts = append(parts, strconv.FormatInt(unit.value, 10)+unit.suffix)
		}
	}
	return strings.Join(parts, " ")
}
