package greet

import (
	"strconv"
	"time"

	"github.com/sghaida/capwire/capability"
	"github.com/sghaida/capwire/component"
	"github.com/sghaida/capwire/fault"
)

// Window is a daily open window in whole hours, Open inclusive to Close
// exclusive. Open greater than Close wraps past midnight, so {22, 6} is
// open overnight. {0, 24} is always open; Open equal to Close is never
// open.
type Window struct {
	Open  int
	Close int
}

// Contains reports whether hour falls inside the window.
func (w Window) Contains(hour int) bool {
	if w.Open <= w.Close {
		return hour >= w.Open && hour < w.Close
	}
	return hour >= w.Open || hour < w.Close
}

// String renders the window, e.g. "open 8-20".
func (w Window) String() string {
	return "open " + strconv.Itoa(w.Open) + "-" + strconv.Itoa(w.Close)
}

func (w Window) validate() {
	if w.Open < 0 || w.Open > 23 || w.Close < 0 || w.Close > 24 {
		panic("greet: daytime window hours out of range")
	}
}

// ClosedError is the narrow error the daytime gate raises outside its
// window. Contexts composing a gated greeter register an injector for
// it, exactly as for any leaf error class.
type ClosedError struct {
	Hour   int // hour of the rejected call
	Window Window
}

// Error implements the error interface.
func (e ClosedError) Error() string {
	// Example: greet: closed at hour 3 (open 8-20)
	return "greet: closed at hour " + strconv.Itoa(e.Hour) + " (" + e.Window.String() + ")"
}

// Daytime returns the override decorator gating inner on the context's
// own clock capability: outside w the gate injects ClosedError into the
// aggregate fault and inner is never consulted; inside it delegates
// unchanged.
//
// Nil inner and an out-of-range window are wiring bugs and panic.
func Daytime[C interface {
	capability.Clocked
	fault.Carrier
}, ID comparable](inner Greeter[C, ID], w Window) Greeter[C, ID] {
	if inner == nil {
		panic("greet: daytime gate around nil greeter")
	}
	w.validate()
	return gate(inner, func(ctx C) time.Time { return ctx.Now() }, w)
}

// DaytimeWith is the same gate with an explicit clock, for contexts
// whose clock arrives through a binding rather than a method of their
// own. The context still carries the fault capability for the
// ClosedError injection.
//
// Nil inner, nil clock and an out-of-range window are wiring bugs and
// panic.
func DaytimeWith[C fault.Carrier, ID comparable](inner Greeter[C, ID], clk capability.Clocked, w Window) Greeter[C, ID] {
	if inner == nil {
		panic("greet: daytime gate around nil greeter")
	}
	if clk == nil {
		panic("greet: daytime gate with nil clock")
	}
	w.validate()
	return gate(inner, func(C) time.Time { return clk.Now() }, w)
}

func gate[C fault.Carrier, ID comparable](inner Greeter[C, ID], now func(C) time.Time, w Window) Greeter[C, ID] {
	return component.Intercept(inner, func(ctx C, _ ID) (string, bool, error) {
		if h := now(ctx).Hour(); !w.Contains(h) {
			return "", false, fault.Absorb(ctx, ClosedError{Hour: h, Window: w})
		}
		return "", false, nil
	})
}
