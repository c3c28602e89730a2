package query_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sghaida/capwire/cache"
	"github.com/sghaida/capwire/component"
	"github.com/sghaida/capwire/fault"
	"github.com/sghaida/capwire/query"
)

// cachedCtx exposes the cache capability over a context-owned mapping.
type cachedCtx struct {
	entries *cache.Map[string, person]
}

func newCachedCtx() cachedCtx {
	return cachedCtx{entries: &cache.Map[string, person]{}}
}

func (c cachedCtx) LookupCached(id string) (person, bool) { return c.entries.Lookup(id) }
func (c cachedCtx) StoreCached(id string, p person)       { c.entries.Store(id, p) }

// scriptedQuerier counts delegations and fails for ids in fail.
func scriptedQuerier(people map[string]person, fail map[string]error) (query.Querier[cachedCtx, string, person], *int) {
	calls := 0
	return component.Func[cachedCtx, string, person](func(_ cachedCtx, id string) (person, error) {
		calls++
		if err, ok := fail[id]; ok {
			return person{}, err
		}
		return people[id], nil
	}), &calls
}

func TestCached_MissDelegatesOnceAndStores(t *testing.T) {
	t.Parallel()

	ctx := newCachedCtx()
	inner, calls := scriptedQuerier(map[string]person{"alice": {name: "Alice"}}, nil)
	cached := query.Cached(inner)

	got, err := cached.Run(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "Alice", got.name)
	assert.Equal(t, 1, *calls)

	stored, ok := ctx.entries.Lookup("alice")
	require.True(t, ok)
	assert.Equal(t, "Alice", stored.name)
}

func TestCached_HitSkipsInnerAndDuplicates(t *testing.T) {
	t.Parallel()

	ctx := newCachedCtx()
	inner, calls := scriptedQuerier(map[string]person{"alice": {name: "Alice", tags: []string{"admin"}}}, nil)
	cached := query.Cached(inner)

	first, err := cached.Run(ctx, "alice")
	require.NoError(t, err)
	require.Equal(t, 1, *calls)

	second, err := cached.Run(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, 1, *calls, "hit must not delegate")
	assert.Equal(t, first, second)

	// The hit is a duplicate: mutating it must not reach the cache.
	second.tags[0] = "mallory"
	third, err := cached.Run(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, []string{"admin"}, third.tags)
}

func TestCached_StoresDuplicateNotAlias(t *testing.T) {
	t.Parallel()

	ctx := newCachedCtx()
	inner, _ := scriptedQuerier(map[string]person{"alice": {name: "Alice", tags: []string{"admin"}}}, nil)
	cached := query.Cached(inner)

	got, err := cached.Run(ctx, "alice")
	require.NoError(t, err)

	// Mutating the returned entity must not reach the stored duplicate.
	got.tags[0] = "mallory"
	stored, ok := ctx.entries.Lookup("alice")
	require.True(t, ok)
	assert.Equal(t, []string{"admin"}, stored.tags)
}

func TestCached_FailureNotCachedAndRetried(t *testing.T) {
	t.Parallel()

	ctx := newCachedCtx()
	boom := fault.New("query.store", "store.read_failed")
	inner, calls := scriptedQuerier(nil, map[string]error{"bob": boom})
	cached := query.Cached(inner)

	_, err := cached.Run(ctx, "bob")
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, *calls)
	assert.Zero(t, ctx.entries.Len(), "failures must not be cached")

	// A retry for the same identity delegates again.
	_, err = cached.Run(ctx, "bob")
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 2, *calls)
}

func TestCached_FailurePropagatesUnchanged(t *testing.T) {
	t.Parallel()

	ctx := newCachedCtx()
	boom := fault.New("query.store", "store.read_failed")
	inner, _ := scriptedQuerier(nil, map[string]error{"bob": boom})
	cached := query.Cached(inner)

	_, err := cached.Run(ctx, "bob")
	f, ok := fault.As(err)
	require.True(t, ok)
	assert.Same(t, boom, f)
}

func TestCached_KeysAreIndependent(t *testing.T) {
	t.Parallel()

	ctx := newCachedCtx()
	inner, calls := scriptedQuerier(map[string]person{
		"alice": {name: "Alice"},
		"bob":   {name: "Bob"},
	}, nil)
	cached := query.Cached(inner)

	_, err := cached.Run(ctx, "alice")
	require.NoError(t, err)
	_, err = cached.Run(ctx, "bob")
	require.NoError(t, err)
	assert.Equal(t, 2, *calls, "each first query delegates")

	_, err = cached.Run(ctx, "alice")
	require.NoError(t, err)
	_, err = cached.Run(ctx, "bob")
	require.NoError(t, err)
	assert.Equal(t, 2, *calls, "each second query hits")
	assert.Equal(t, 2, ctx.entries.Len())
}

func TestCached_ZeroValueEntityIsCacheable(t *testing.T) {
	t.Parallel()

	// A successful query for a zero-valued entity must still cache:
	// presence, not value, decides the hit.
	ctx := newCachedCtx()
	inner, calls := scriptedQuerier(map[string]person{"ghost": {}}, nil)
	cached := query.Cached(inner)

	_, err := cached.Run(ctx, "ghost")
	require.NoError(t, err)
	_, err = cached.Run(ctx, "ghost")
	require.NoError(t, err)
	assert.Equal(t, 1, *calls)
}

func TestCached_PanicsOnNilInner(t *testing.T) {
	t.Parallel()

	assert.PanicsWithValue(t, "query: cached around nil querier", func() {
		query.Cached[cachedCtx, string, person](nil)
	})
}
