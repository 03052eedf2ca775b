// Package progress draws a countdown as a single self-overwriting terminal line.
package progress

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/x/term"
)

// DefaultInterval is the pause between two redraws.
const DefaultInterval = time.Second

// ErrTerminalSize is returned when the terminal width cannot be determined.
var ErrTerminalSize = errors.New("no terminal size found")

// Loop redraws the progress line until the countdown target passes.
type Loop struct {
	Out      io.Writer
	Width    func() (int, error)
	Now      func() time.Time
	Sleep    func(ctx context.Context, d time.Duration) error
	Interval time.Duration
}

// NewLoop wires a loop writing to out and sizing itself from the terminal behind fd.
func NewLoop(out io.Writer, fd uintptr) *Loop {
	return &Loop{
		Out:      out,
		Width:    TerminalWidth(fd),
		Now:      time.Now,
		Sleep:    sleepContext,
		Interval: DefaultInterval,
	}
}

// TerminalWidth returns a width query for the terminal attached to fd.
func TerminalWidth(fd uintptr) func() (int, error) {
	return func() (int, error) {
		width, _, err := term.GetSize(fd)
		if err != nil {
			return 0, err
		}
		return width, nil
	}
}

// Run draws one line per interval while the remaining time is non-negative.
// Lines end with a carriage return, except the one drawn at zero seconds left,
// which ends with a newline.
func (l *Loop) Run(ctx context.Context, c Countdown) error {
	if l == nil || l.Out == nil || l.Width == nil {
		return errors.New("progress loop not initialized")
	}

	out := bufio.NewWriter(l.Out)
	total := c.Total()
	remaining := total

	for remaining >= 0 {
		width, err := l.Width()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrTerminalSize, err)
		}

		elapsed := l.now().Sub(c.Start)
		eol := "\r"
		if remaining < time.Second {
			eol = "\n"
		}

		if _, err := fmt.Fprint(out, Layout(width, elapsed, total, remaining), eol); err != nil {
			return fmt.Errorf("write progress: %w", err)
		}
		if err := out.Flush(); err != nil {
			return fmt.Errorf("flush progress: %w", err)
		}

		if err := l.sleep(ctx); err != nil {
			return err
		}
		remaining = c.Target.Sub(l.now())
	}

	return nil
}

func (l *Loop) now() time.Time {
	if l.Now == nil {
		return time.Now()
	}
	return l.Now()
}

func (l *Loop) sleep(ctx context.Context) error {
	interval := l.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}
	if l.Sleep == nil {
		return sleepContext(ctx, interval)
	}
	return l.Sleep(ctx, interval)
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
