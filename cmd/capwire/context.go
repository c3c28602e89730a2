// Context construction for the capwire CLI: the configured blob
// backend, the cache backing, the injector table and the plan bindings.
package main

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/sghaida/capwire/cache"
	"github.com/sghaida/capwire/capability"
	"github.com/sghaida/capwire/clock"
	"github.com/sghaida/capwire/component"
	"github.com/sghaida/capwire/examples"
	"github.com/sghaida/capwire/fault"
	"github.com/sghaida/capwire/greet"
	"github.com/sghaida/capwire/query"
	"github.com/sghaida/capwire/store"
	"github.com/sghaida/capwire/wire"
)

// Capability keys for the CLI's plan.
const (
	keyClock   wire.Key = "clock"
	keyQuerier wire.Key = "person.querier"
	keyCached  wire.Key = "person.querier.cached"
	keyGreeter wire.Key = "greeter"
	keyGated   wire.Key = "greeter.gated"
)

// blobStore is the read/write surface the CLI needs from a backend.
// All store implementations satisfy it.
type blobStore interface {
	ReadBlob(key string) ([]byte, error)
	WriteBlob(key string, payload []byte) error
}

// cacheBacking is the mapping the context's cache capability reads and
// writes. The sync map, the LRU adapter and the no-op backing all
// satisfy it.
type cacheBacking interface {
	Lookup(id string) (examples.Person, bool)
	Store(id string, p examples.Person)
}

// appCtx carries the capabilities the plan's contracts probe for. The
// clock is not among them; it enters the plan as a binding so the CLI
// can pin it with --at.
type appCtx struct {
	blobs   blobStore
	entries cacheBacking
	inj     *fault.Injectors
}

func (c appCtx) ReadBlob(key string) ([]byte, error) { return c.blobs.ReadBlob(key) }

func (c appCtx) LookupCached(id string) (examples.Person, bool) { return c.entries.Lookup(id) }

func (c appCtx) StoreCached(id string, p examples.Person) { c.entries.Store(id, p) }

func (c appCtx) Faults() *fault.Injectors { return c.inj }

// personKey maps an identity to its blob key.
func personKey(id string) string { return "person/" + id }

// newAppContext builds the context from the configuration. The returned
// closer releases backend resources and may be nil.
func newAppContext(cfg config) (appCtx, func() error, error) {
	blobs, closer, err := newBlobStore(cfg)
	if err != nil {
		return appCtx{}, nil, err
	}
	entries, err := newCacheBacking(cfg)
	if err != nil {
		return appCtx{}, nil, err
	}
	return appCtx{blobs: blobs, entries: entries, inj: newInjectors()}, closer, nil
}

func newBlobStore(cfg config) (blobStore, func() error, error) {
	switch cfg.Backend {
	case backendMemory:
		s := store.NewMemory()
		seedDemo(s)
		return s, nil, nil
	case backendFS:
		s, err := store.NewFS(cfg.DataDir)
		if err != nil {
			return nil, nil, err
		}
		return s, nil, nil
	case backendSQLite:
		s, err := store.OpenSQLite(cfg.DBPath)
		if err != nil {
			return nil, nil, err
		}
		return s, s.Close, nil
	}
	return nil, nil, fmt.Errorf("unknown backend %q", cfg.Backend)
}

func newCacheBacking(cfg config) (cacheBacking, error) {
	switch cfg.Cache {
	case cacheNone:
		return discard{}, nil
	case cacheMap:
		return &cache.SyncMap[string, examples.Person]{}, nil
	case cacheLRU:
		inner, err := lru.New[string, examples.Person](cfg.LRUSize)
		if err != nil {
			return nil, fmt.Errorf("lru cache: %w", err)
		}
		return &lruCache{inner: inner}, nil
	}
	return nil, fmt.Errorf("unknown cache %q", cfg.Cache)
}

// discard is the backing for cache "none": stores vanish and lookups
// always miss, so the querier delegates on every call.
type discard struct{}

func (discard) Lookup(string) (examples.Person, bool) { return examples.Person{}, false }

func (discard) Store(string, examples.Person) {}

// lruCache adapts hashicorp's LRU to the backing shape. Entries the LRU
// evicts simply read as absent, which the caching decorator treats as a
// fresh identity.
type lruCache struct {
	inner *lru.Cache[string, examples.Person]
}

func (c *lruCache) Lookup(id string) (examples.Person, bool) { return c.inner.Get(id) }

func (c *lruCache) Store(id string, p examples.Person) { c.inner.Add(id, p) }

// newInjectors registers one injector per narrow error class the plan's
// components declare.
func newInjectors() *fault.Injectors {
	inj := fault.NewInjectors()
	fault.Register(inj, func(e *store.Error) *fault.Fault {
		return fault.Wrap(e, "person.querier", "store.read_failed").WithKV("key", e.Key)
	})
	fault.Register(inj, func(e query.DecodeError) *fault.Fault {
		return fault.Wrap(e, "person.querier", "store.decode_failed").WithKV("key", e.Key)
	})
	fault.Register(inj, func(e greet.ClosedError) *fault.Fault {
		return fault.New("greeter.gated", "greet.closed").WithKV("hour", e.Hour)
	})
	return inj
}

// seedDemo gives the ephemeral backend something to greet, so the
// default configuration works out of the box.
func seedDemo(s *store.Memory) {
	for id, p := range map[string]examples.Person{
		"alice": {FullName: "Alice", Likes: []string{"go", "chess"}},
		"bob":   {FullName: "Bob"},
	} {
		_ = s.WriteBlob(personKey(id), examples.EncodePerson(p)) // memory writes cannot fail
	}
}

// appBindings declares the CLI's composition. With cache "none" the
// caching layer is left out and the greeter requires the querier
// directly; otherwise it requires the cached querier.
func appBindings(cfg config, clk clock.Clock) []wire.Binding[appCtx] {
	bindings := []wire.Binding[appCtx]{
		{
			Capability: keyClock,
			Build: func(*wire.Resolver[appCtx]) (any, error) {
				return clk, nil
			},
		},
		{
			Capability: keyQuerier,
			Needs:      []capability.Contract{capability.BlobContract(), capability.FaultContract()},
			Raises:     []fault.Class{fault.ClassOf[*store.Error](), fault.ClassOf[query.DecodeError]()},
			Build: func(*wire.Resolver[appCtx]) (any, error) {
				q := query.FromStore[appCtx](personKey, examples.DecodePerson)
				return component.Tap(q, func(_ appCtx, id string, _ examples.Person, err error) {
					logger.Debug().Str("id", id).Err(err).Msg("store queried")
				}), nil
			},
		},
	}

	greeterOver := keyQuerier
	if cfg.Cache != cacheNone {
		greeterOver = keyCached
		bindings = append(bindings, wire.Binding[appCtx]{
			Capability: keyCached,
			Requires:   []wire.Key{keyQuerier},
			Needs:      []capability.Contract{capability.CacheContract[string, examples.Person]()},
			Build: func(r *wire.Resolver[appCtx]) (any, error) {
				inner, err := wire.ResolveAs[query.Querier[appCtx, string, examples.Person]](r, keyQuerier)
				if err != nil {
					return nil, err
				}
				return query.Cached(inner), nil
			},
		})
	}

	return append(bindings,
		wire.Binding[appCtx]{
			Capability: keyGreeter,
			Requires:   []wire.Key{greeterOver},
			Build: func(r *wire.Resolver[appCtx]) (any, error) {
				querier, err := wire.ResolveAs[query.Querier[appCtx, string, examples.Person]](r, greeterOver)
				if err != nil {
					return nil, err
				}
				return greet.Queried(querier), nil
			},
		},
		wire.Binding[appCtx]{
			Capability: keyGated,
			Requires:   []wire.Key{keyGreeter, keyClock},
			Raises:     []fault.Class{fault.ClassOf[greet.ClosedError]()},
			Build: func(r *wire.Resolver[appCtx]) (any, error) {
				inner, err := wire.ResolveAs[greet.Greeter[appCtx, string]](r, keyGreeter)
				if err != nil {
					return nil, err
				}
				boundClock, err := wire.ResolveAs[capability.Clocked](r, keyClock)
				if err != nil {
					return nil, err
				}
				return greet.DaytimeWith(inner, boundClock, greet.Window{Open: cfg.OpenHour, Close: cfg.CloseHour}), nil
			},
		},
	)
}
