package clock

import "errors"

// ErrInvalidFormat is returned when the target has more than hour, minute and second fields.
var ErrInvalidFormat = errors.New("invalid input format (expected H, H:M or H:M:S)")

// ErrInvalidHour, ErrInvalidMinute and ErrInvalidSecond report a field that is not an unsigned integer.
var (
	ErrInvalidHour   = errors.New("invalid hour")
	ErrInvalidMinute = errors.New("invalid minute")
	ErrInvalidSecond = errors.New("invalid second")
)

// ErrNonexistentTime means no local instant carries the requested wall clock today,
// either because a field is out of range or because a DST jump skips it.
var ErrNonexistentTime = errors.New("no such local time today")

// ErrAmbiguousTime means the requested wall clock occurs twice today (DST fall-back).
var ErrAmbiguousTime = errors.New("ambiguous local time")
