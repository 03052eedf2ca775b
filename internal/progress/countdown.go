package progress

import (
	"fmt"
	"time"

	"github.com/paucazou/wait-until/internal/clock"
)

// Countdown is the span between the moment a target was resolved and the target itself.
type Countdown struct {
	Start  time.Time
	Target time.Time
}

// NewCountdown resolves input against now and returns the resulting countdown.
func NewCountdown(input string, now time.Time) (Countdown, error) {
	target, err := clock.ParseTarget(input, now)
	if err != nil {
		return Countdown{}, fmt.Errorf("parse target: %w", err)
	}
	return Countdown{Start: now, Target: target}, nil
}

// Total is the full length of the countdown.
func (c Countdown) Total() time.Duration {
	return c.Target.Sub(c.Start)
}

// Summary is the one-line banner printed before the bar starts.
func (c Countdown) Summary() string {
	return fmt.Sprintf("Waiting for %s until %s", clock.FormatDuration(c.Total()), c.Target.Format("02/01/2006 15:04:05"))
}
