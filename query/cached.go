package query

import (
	"github.com/sghaida/capwire/capability"
	"github.com/sghaida/capwire/component"
)

// Cached wraps a querier with the caching decorator. Per identity the
// cached state moves one way, absent to present:
//
//   - Present: return a duplicate of the stored entity. The inner
//     querier is not consulted and this branch cannot fail.
//   - Absent: delegate once. A failure propagates unchanged and is
//     never cached; a success is stored as a duplicate under the
//     identity, then returned.
//
// Nothing here evicts, expires, or invalidates: entries the context's
// mapping drops on its own (an LRU backing, say) simply read as absent
// and trigger a fresh delegation.
//
// The decorator holds no state of its own. Lookups and stores go
// through the context's cache capability, so sharing one context across
// goroutines is safe exactly when its mapping is (see package cache).
//
// The behavior is composed from the algebra rather than hand-rolled:
// an override answering on a cache hit, around a transform storing on
// success. Nil inner is a wiring bug and panics.
func Cached[C capability.Cacher[ID, E], ID comparable, E capability.Cloner[E]](inner Querier[C, ID, E]) Querier[C, ID, E] {
	if inner == nil {
		panic("query: cached around nil querier")
	}
	storing := component.Post(inner, func(ctx C, id ID, entity E) (E, error) {
		ctx.StoreCached(id, entity.Clone())
		return entity, nil
	})
	return component.Intercept(storing, func(ctx C, id ID) (E, bool, error) {
		if hit, ok := ctx.LookupCached(id); ok {
			return hit.Clone(), true, nil
		}
		var zero E
		return zero, false, nil
	})
}
