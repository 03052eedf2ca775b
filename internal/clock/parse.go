// Package clock turns a partial time-of-day into a concrete future instant and
// renders spans of time for display.
package clock

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	maxFields = 3
	// Day is the rollover applied when the requested time has already passed.
	Day = 24 * time.Hour
)

// ParseTargetNow is ParseTarget evaluated against the current local time.
func ParseTargetNow(input string) (time.Time, error) {
	return ParseTarget(input, time.Now().In(time.Local))
}

// ParseTarget resolves "H", "H:M" or "H:M:S" to the next instant, in now's
// location, whose wall clock matches. Times at or before now roll over by Day.
func ParseTarget(input string, now time.Time) (time.Time, error) {
	parts := strings.Split(input, ":")
	if len(parts) > maxFields {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidFormat, input)
	}

	fields := [maxFields]int{}
	sentinels := [maxFields]error{ErrInvalidHour, ErrInvalidMinute, ErrInvalidSecond}
	for i, part := range parts {
		value, err := strconv.ParseUint(part, 10, 32)
		if err != nil {
			return time.Time{}, fmt.Errorf("%w %q", sentinels[i], part)
		}
		fields[i] = int(value)
	}

	target, err := resolveLocal(now, fields[0], fields[1], fields[2])
	if err != nil {
		return time.Time{}, err
	}

	if !target.After(now) {
		target = target.Add(Day)
	}
	return target, nil
}

// resolveLocal finds the single instant on now's calendar day whose wall clock
// reads hour:minute:second. time.Date silently normalizes skipped and repeated
// wall clocks, so every zone offset in effect around that day is tried instead.
func resolveLocal(now time.Time, hour, minute, second int) (time.Time, error) {
	loc := now.Location()
	year, month, day := now.Date()
	wall := time.Date(year, month, day, hour, minute, second, 0, time.UTC)

	noon := time.Date(year, month, day, 12, 0, 0, 0, loc)
	offsets := make(map[int]struct{}, 3)
	for _, probe := range []time.Time{noon.Add(-Day), noon, noon.Add(Day)} {
		_, offset := probe.Zone()
		offsets[offset] = struct{}{}
	}

	var matches []time.Time
	for offset := range offsets {
		candidate := wall.Add(-time.Duration(offset) * time.Second).In(loc)
		if !sameWallClock(candidate, year, month, day, hour, minute, second) {
			continue
		}
		if !containsInstant(matches, candidate) {
			matches = append(matches, candidate)
		}
	}

	switch len(matches) {
	case 0:
		return time.Time{}, fmt.Errorf("%w: %02d:%02d:%02d", ErrNonexistentTime, hour, minute, second)
	case 1:
		return matches[0], nil
	default:
		return time.Time{}, fmt.Errorf("%w: %02d:%02d:%02d", ErrAmbiguousTime, hour, minute, second)
	}
}

func sameWallClock(t time.Time, year int, month time.Month, day, hour, minute, second int) bool {
	y, m, d := t.Date()
	return y == year && m == month && d == day &&
		t.Hour() == hour && t.Minute() == minute && t.Second() == second
}

func containsInstant(list []time.Time, t time.Time) bool {
	for _, existing := range list {
		if existing.Equal(t) {
			return true
		}
	}
	return false
}
