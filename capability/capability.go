package capability

import "time"

// Clocked is the clock capability: the context can report the current
// wall-clock time. Gating decorators constrain their context with it.
type Clocked interface {
	Now() time.Time
}

// Blobs is the storage-read capability: the context can fetch a raw
// payload by key. Implementations return their own narrow error types;
// absorption into the aggregate fault happens at the caller.
type Blobs interface {
	ReadBlob(key string) ([]byte, error)
}

// Cacher is the cache capability at projections ID, E. The mapping is
// context-owned state; Lookup reports presence explicitly so absent and
// zero-valued entries stay distinguishable.
type Cacher[ID comparable, E any] interface {
	LookupCached(id ID) (E, bool)
	StoreCached(id ID, entity E)
}

// Querier is the query capability at projections ID, E: the context can
// produce the entity identified by id. A failed query returns the
// aggregate fault, never a narrow sub-error.
type Querier[ID comparable, E any] interface {
	QueryEntity(id ID) (E, error)
}

// Cloner constrains entity types that can produce independent
// duplicates of themselves. Caching stores and returns duplicates, so
// cached state cannot be mutated through returned values.
type Cloner[E any] interface {
	Clone() E
}
