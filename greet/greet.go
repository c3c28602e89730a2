package greet

import (
	"github.com/sghaida/capwire/capability"
	"github.com/sghaida/capwire/component"
)

// Named constrains the entity types a greeter can address.
type Named interface {
	Name() string
}

// Greeter is the greeting contract: a component turning an identity
// into a greeting line. The line is returned, never printed; what to do
// with it is the caller's business.
type Greeter[C any, ID comparable] = component.Component[C, ID, string]

// Simple returns the greeter over a context that answers queries
// itself. It greets whatever the query capability produces and
// propagates its failures untouched; the capability already returns
// the aggregate fault.
func Simple[C capability.Querier[ID, E], ID comparable, E Named]() Greeter[C, ID] {
	return component.Func[C, ID, string](func(ctx C, id ID) (string, error) {
		entity, err := ctx.QueryEntity(id)
		if err != nil {
			return "", err
		}
		return greeting(entity), nil
	})
}

// Queried returns the greeter over an explicit querier component. Plans
// compose it around whatever querier the binding graph resolved, cached
// or not; the greeter cannot tell and must not care.
//
// Nil querier is a wiring bug and panics.
func Queried[C any, ID comparable, E Named](querier component.Component[C, ID, E]) Greeter[C, ID] {
	if querier == nil {
		panic("greet: queried greeter around nil querier")
	}
	return component.Func[C, ID, string](func(ctx C, id ID) (string, error) {
		entity, err := querier.Run(ctx, id)
		if err != nil {
			return "", err
		}
		return greeting(entity), nil
	})
}

func greeting(entity Named) string { return "Hello, " + entity.Name() }
