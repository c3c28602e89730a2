// Package query provides the query-shaped components: leaves that
// produce an entity for an identity, and the caching decorator over
// them.
//
// Two leaves cover the common context shapes. FromContext delegates to
// a context that answers queries itself; FromStore reads a raw payload
// through the context's storage capability and decodes it, absorbing
// the store's narrow error and its own DecodeError into the aggregate
// fault at the point of failure.
//
// Cached wraps any querier with a one-way absent-to-present cache over
// the context's mapping, storing and returning duplicates so cached
// state cannot be mutated through results. Failures are never cached.
package query
