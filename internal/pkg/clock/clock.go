// Package clock allows injecting time into command handlers so timestamps such
// as created_at and fulfilled_at stay deterministic in tests.
package clock

import "time"

// Clock supplies the current time. The surrounding environment guarantees it is
// monotone enough for ordering timestamps within a single order's lifecycle.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

// NewSystem returns a clock backed by time.Now in UTC.
func NewSystem() Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return time.Now().UTC()
}

type fixedClock struct {
	now time.Time
}

// NewFixed returns a clock that always reports the same instant. Useful in tests.
func NewFixed(t time.Time) Clock {
	return fixedClock{now: t.UTC()}
}

func (f fixedClock) Now() time.Time {
	return f.now
}
