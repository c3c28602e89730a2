// Package capability defines the contract surface a context exposes to
// composed components.
//
// A capability is an operation the context provides (a clock, a blob
// read, a cache, an entity query) together with the type projections it
// fixes (the identity type ID, the entity type E). Contracts live in two
// coupled layers:
//
//   - Compile-time: each contract is a small generic interface over the
//     context (Clocked, Blobs, Cacher[ID, E], Querier[ID, E]).
//     Components state what they need as type constraints, and the
//     compiler enforces that every party to a composition agrees on the
//     projections. Satisfaction is structural and costs nothing at
//     runtime.
//
//   - Startup-time: each contract also has a Contract descriptor (name,
//     probe, contract dependencies) so a resolver can verify once,
//     before anything runs, that a concrete context value satisfies a
//     component's declared needs, and can name the missing contract when
//     it does not. See package wire.
//
// Ready-made descriptors exist for every built-in contract
// (ClockContract, BlobContract, CacheContract, QueryContract,
// FaultContract); Satisfies builds one for any interface.
//
// Contexts stay opaque to components: a component sees exactly the
// methods its constraints name, nothing else.
package capability
