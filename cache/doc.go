// Package cache provides the mapping state a context exposes through
// its cache capability.
//
// The caching decorator (package query) owns no state: lookups and
// stores go through the context, and the context backs them with one of
// these types, or with anything else exposing Lookup/Store. Map is for
// single-goroutine contexts; SyncMap serializes access for contexts
// shared across goroutines. Neither evicts: entries only accumulate,
// and replacement policies are the backing type's business (an LRU
// works as a drop-in backing; see cmd/capwire).
package cache
