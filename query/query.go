package query

import (
	"strconv"

	"github.com/sghaida/capwire/capability"
	"github.com/sghaida/capwire/component"
	"github.com/sghaida/capwire/fault"
)

// Querier is the query contract at projections ID, E: a component that
// produces the entity identified by id, or the aggregate fault.
type Querier[C any, ID comparable, E any] = component.Component[C, ID, E]

// FromContext returns the leaf querier that delegates to the context's
// own query capability. It raises nothing itself: the capability already
// returns the aggregate fault.
func FromContext[C capability.Querier[ID, E], ID comparable, E any]() Querier[C, ID, E] {
	return component.Func[C, ID, E](func(ctx C, id ID) (E, error) {
		return ctx.QueryEntity(id)
	})
}

// Decoder turns a raw stored payload into an entity.
type Decoder[E any] func(payload []byte) (E, error)

// DecodeError is the narrow error FromStore raises when a payload does
// not decode. Contexts composing FromStore register an injector for it.
type DecodeError struct {
	Key string // blob key whose payload failed to decode
	Err error  // the decoder's own failure
}

// Error implements the error interface.
func (e DecodeError) Error() string {
	// Example: query: decode blob "alice": unexpected end of JSON input
	return "query: decode blob " + strconv.Quote(e.Key) + ": " + e.Err.Error()
}

// Unwrap exposes the decoder's failure.
func (e DecodeError) Unwrap() error { return e.Err }

// FromStore returns the leaf querier that reads the blob key(id) through
// the context's storage capability and decodes it. Both failure paths
// are absorbed into the aggregate fault at the point of failure: the
// store's own narrow error dynamically (it crosses the ReadBlob
// interface boundary), a decode failure statically as DecodeError.
//
// Nil key or decode is a wiring bug and panics.
func FromStore[C interface {
	capability.Blobs
	fault.Carrier
}, ID comparable, E any](key func(ID) string, decode Decoder[E]) Querier[C, ID, E] {
	if key == nil {
		panic("query: from-store with nil key function")
	}
	if decode == nil {
		panic("query: from-store with nil decoder")
	}
	return component.Func[C, ID, E](func(ctx C, id ID) (E, error) {
		var zero E
		k := key(id)
		payload, err := ctx.ReadBlob(k)
		if err != nil {
			return zero, fault.AbsorbAny(ctx, err)
		}
		entity, err := decode(payload)
		if err != nil {
			return zero, fault.Absorb(ctx, DecodeError{Key: k, Err: err})
		}
		return entity, nil
	})
}
