// Package component defines the unit of composition and the decorator
// algebra over it.
//
// A Component[C, A, R] runs one operation against an opaque environment
// C, taking A and producing R or an error. Components never know the
// concrete context type; they state what they need from it as type
// constraints (see package capability).
//
// Decorators wrap a component without changing its shape, so decorated
// and undecorated components are interchangeable wherever the contract
// type matches. Exactly three behaviors exist, one per decorator:
//
//   - Tap: pass through. The inner component runs unchanged; an observer
//     sees each call and its outcome on a side channel and cannot alter
//     either.
//   - Intercept: override. A decide function may produce the result or
//     the failure itself, in which case the inner component is never
//     consulted; otherwise the call delegates unchanged.
//   - Post: transform. The inner component runs; successful results are
//     post-processed, failures pass through untouched.
//
// Nesting is plain function composition and is associative: wrapping a
// wrapped component behaves identically to a single decorator fusing
// both behaviors, for all inputs.
package component
