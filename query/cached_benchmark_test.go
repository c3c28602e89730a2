package query_test

import (
	"testing"

	"github.com/sghaida/capwire/fault"
	"github.com/sghaida/capwire/query"
)

/*
   Shared fixtures (NOT counted in benchmarks)
*/

func newBenchCached() (query.Querier[cachedCtx, string, person], cachedCtx) {
	inner, _ := scriptedQuerier(map[string]person{"alice": {name: "Alice"}}, nil)
	return query.Cached(inner), newCachedCtx()
}

/*
   Benchmarks
*/

func BenchmarkCached_Hit(b *testing.B) {
	cached, ctx := newBenchCached()
	if _, err := cached.Run(ctx, "alice"); err != nil { // prime the entry
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = cached.Run(ctx, "alice")
	}
}

func BenchmarkCached_MissWithFailure(b *testing.B) {
	// A failing identity never populates the cache, so every iteration
	// exercises the full delegate-and-propagate path.
	boom := fault.New("query.store", "store.read_failed")
	inner, _ := scriptedQuerier(nil, map[string]error{"bob": boom})
	cached := query.Cached(inner)
	ctx := newCachedCtx()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = cached.Run(ctx, "bob")
	}
}

func BenchmarkUncachedQuerier(b *testing.B) {
	inner, _ := scriptedQuerier(map[string]person{"alice": {name: "Alice"}}, nil)
	ctx := newCachedCtx()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = inner.Run(ctx, "alice")
	}
}
