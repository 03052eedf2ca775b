package clock

import (
	"strconv"
	"strings"
	"testing"
	"time"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{3662 * time.Second, "1h 1m 2s"},
		{time.Hour, "1h"},
		{60 * time.Second, "1m"},
		{70 * time.Second, "1m 10s"},
		{time.Second, "1s"},
		{0, ""},
		{90061 * time.Second, "1d 1h 1m 1s"},
		{48*time.Hour + 5*time.Second, "2d 5s"},
		{1500 * time.Millisecond, "1s"},
		{999 * time.Millisecond, ""},
		{-5 * time.Second, ""},
	}

	for _, tt := range tests {
		if got := FormatDuration(tt.in); got != tt.want {
			t.Fatalf("FormatDuration(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatDurationComponents(t *testing.T) {
	for _, days := range []int{0, 1, 3, 12} {
		for _, hours := range []int{0, 1, 23} {
			for _, minutes := range []int{0, 1, 59} {
				for _, seconds := range []int{0, 1, 59} {
					d := time.Duration(days)*Day +
						time.Duration(hours)*time.Hour +
						time.Duration(minutes)*time.Minute +
						time.Duration(seconds)*time.Second

					var want []string
					if days > 0 {
						want = append(want, strconv.Itoa(days)+"d")
					}
					if hours > 0 {
						want = append(want, strconv.Itoa(hours)+"h")
					}
					if minutes > 0 {
						want = append(want, strconv.Itoa(minutes)+"m")
					}
					if seconds > 0 {
						want = append(want, strconv.Itoa(seconds)+"s")
					}

					if got := FormatDuration(d); got != strings.Join(want, " ") {
						t.Fatalf("FormatDuration(%v) = %q, want %q", d, got, strings.Join(want, " "))
					}
				}
			}
		}
	}
}
