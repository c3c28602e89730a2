// Package fault provides the aggregate error type composed components
// return, plus the per-context injection tables that absorb narrow
// component errors into it.
//
// The model is deliberately one-way:
//
//   - Every leaf or decorator that can fail owns a narrow error type and
//     returns it internally.
//   - Each application context owns an Injectors table mapping every
//     narrow error type reachable from its composition to a conversion
//     into *Fault.
//   - At the point of failure the component calls Absorb (static type
//     known) or AbsorbAny (error crossed an interface boundary), so its
//     caller only ever observes *Fault.
//
// Injection is lossless: the narrow error is retained as the Fault's
// cause and remains reachable through errors.Is / errors.As, and the
// Fault records which component raised it.
//
// Coverage of a table is checkable before anything runs: a component
// declares the Classes it can raise, and the resolver verifies the
// context's table Covers each one (see package wire). A narrow error
// that slips through anyway is wrapped into a generic envelope with code
// CodeUnclassified rather than dropped.
package fault
