package progress

import (
	"strconv"
	"strings"
	"time"

	"github.com/paucazou/wait-until/internal/clock"
)

// decorations counts the fixed characters of a line: "[", ">", "] " and "% ".
const decorations = 6

// Percent is the truncated share of total already elapsed, in whole seconds.
// A countdown shorter than a second reports 100.
func Percent(elapsed, total time.Duration) int64 {
	totalSecs := int64(total / time.Second)
	if totalSecs <= 0 {
		return 100
	}
	elapsedSecs := int64(elapsed / time.Second)
	if elapsedSecs < 0 {
		return 0
	}
	return elapsedSecs * 100 / totalSecs
}

// Layout renders a single progress line exactly width columns wide (when width
// leaves room for the bar), e.g. "[=====>     ] 45% 1m 2s".
func Layout(width int, elapsed, total, remaining time.Duration) string {
	percent := strconv.FormatInt(Percent(elapsed, total), 10)
	left := clock.FormatDuration(remaining)

	bar := width - decorations - len(percent) - len(left)
	if bar < 0 {
		bar = 0
	}
	filled := fill(bar, elapsed, total)

	var b strings.Builder
	b.Grow(width)
	b.WriteByte('[')
	b.WriteString(strings.Repeat("=", filled))
	b.WriteByte('>')
	b.WriteString(strings.Repeat(" ", bar-filled))
	b.WriteString("] ")
	b.WriteString(percent)
	b.WriteString("% ")
	b.WriteString(left)
	return b.String()
}

// fill is the number of bar cells covered by elapsed, each second worth bar/total cells.
func fill(bar int, elapsed, total time.Duration) int {
	totalSecs := int64(total / time.Second)
	if totalSecs <= 0 {
		return bar
	}
	perSecond := float64(bar) / float64(totalSecs)
	filled := int(perSecond * float64(int64(elapsed/time.Second)))
	switch {
	case filled < 0:
		return 0
	case filled > bar:
		return bar
	}
	return filled
}
