// Package clock provides the time source a context embeds to offer the
// clock capability. Production contexts use System; tests and the gated
// walkthroughs pin the hour with Fixed.
package clock

import "time"

// Clock reports the current time.
type Clock interface {
	Now() time.Time
}

// Func adapts a function to Clock.
type Func func() time.Time

// Now implements Clock.
func (f Func) Now() time.Time { return f() }

// System returns the wall clock.
func System() Clock { return systemClock{} }

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// Fixed returns a clock pinned at t.
func Fixed(t time.Time) Clock {
	return Func(func() time.Time { return t })
}
