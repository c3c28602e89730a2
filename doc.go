// Package capwire provides capability-based static composition for Go.
//
// A component runs against an opaque context and declares what that
// context must provide as capabilities: small interfaces for querying,
// caching, storage reads, the clock, and error absorption. Composition
// happens on two layers:
//
//   - compile time: constructors constrain their context type parameter
//     with the capability interfaces, so a context missing one is a type
//     error (packages component, capability, greet, query)
//   - startup time: a plan binds capability keys to build functions and
//     proves a target before anything runs, so broken wiring is a typed
//     report naming the binding and the path to it (package wire)
//
// Failures cross one boundary only: narrow errors are absorbed into a
// single aggregate fault at the point of failure through a context-owned
// injector table (package fault).
//
// See subpackages:
//   - capability, component, fault, wire: the composition machinery
//   - query, greet, cache, clock, store: the composed pipeline pieces
//   - examples/*: runnable walkthroughs for each layer
//   - cmd/capwire: the end-to-end CLI
package capwire
