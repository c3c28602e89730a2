// Package greet is the worked example the composition machinery is
// demonstrated with: greeters that look an entity up by identity and
// address it by name.
//
// Simple runs over a context that answers queries itself; Queried runs
// over an explicit querier component and is the form plans compose (see
// package wire). Daytime is an override decorator gating any greeter on
// a clock, raising its own narrow ClosedError outside the window; the
// error reaches callers only through the context's aggregate fault.
package greet
