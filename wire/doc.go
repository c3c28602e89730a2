// Package wire binds capability keys to build functions and resolves a
// composition once, at startup, before any component runs.
//
// A Binding declares everything its build is allowed to assume: the
// capabilities it resolves (Requires), the contracts the context must
// satisfy (Needs), and the narrow error classes its component can raise
// (Raises). NewPlan collects bindings over one context value and rejects
// only duplicates, so a plan stays usable even when bindings unrelated
// to a given target are broken.
//
// Check(target) validates the target's full declared closure without
// executing anything: missing bindings, binding cycles, nil builds,
// unsatisfied contracts, and undeclared fault injectors are all caught
// here and attributed with the path of capability keys that led to the
// offender. Prove runs Check, then builds bottom-up (each build at most
// once per plan) and returns the target as the bare contract type T.
// From the caller's side the proof is the only evidence the composition
// is sound; what it received stays opaque.
//
// There is no container at run time: after MustProve returns, the wiring
// machinery is out of the picture and calls go straight through the
// composed components.
//
// Resolution is intentionally single-threaded. Build a plan and prove
// its targets during startup, then share the proven components; the
// plan itself is not for concurrent use.
//
// Error paths avoid fmt.Errorf; every failure is a typed error carrying
// the keys and path needed to assert on it in tests.
package wire
