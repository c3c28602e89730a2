package fault

import (
	"errors"
	"reflect"
)

// CodeUnclassified marks a Fault wrapping an error no injector covered.
// Reaching it at runtime means a component raised a class it never
// declared; proofs over declared classes cannot produce it.
const CodeUnclassified = "fault.unclassified"

// unclassifiedComponent attributes envelopes produced by the fallback path.
const unclassifiedComponent = "fault"

// typeKey is the comparable identity of a sub-error type. Distinct
// instantiations have distinct dynamic types, so they work as map keys
// with no reflection involved.
type typeKey[E any] struct{}

// Class identifies a narrow sub-error type. Components declare the
// Classes they can raise; resolution checks a context's Injectors table
// Covers each one before any operation runs.
type Class struct {
	name string
	key  any
}

// ClassOf returns the Class for sub-error type E.
// The rendered name is for messages only; identity is type-based.
func ClassOf[E error]() Class {
	return Class{
		name: reflect.TypeFor[E]().String(),
		key:  typeKey[E]{},
	}
}

// String returns the sub-error type name, e.g. "*store.Error".
func (c Class) String() string { return c.name }

type entry struct {
	class Class
	match func(error) (*Fault, bool)
}

// Injectors is a context-owned table of sub-error injections.
//
// It is built once while constructing the context and read-only
// afterwards; it is not safe for concurrent registration.
type Injectors struct {
	byKey map[any]int
	order []entry
}

// NewInjectors returns an empty table.
func NewInjectors() *Injectors {
	return &Injectors{byKey: map[any]int{}}
}

// Register records the injection for sub-error type E and returns the
// table for chaining. Registration is construction-time wiring, so the
// failure modes are panics, not errors: a nil injector and a duplicate
// class both indicate a wiring bug.
func Register[E error](t *Injectors, inj func(E) *Fault) *Injectors {
	if t == nil {
		panic("fault: register on nil Injectors")
	}
	if inj == nil {
		panic("fault: nil injector for " + ClassOf[E]().String())
	}
	k := typeKey[E]{}
	if _, exists := t.byKey[k]; exists {
		panic("fault: duplicate injector for " + ClassOf[E]().String())
	}
	t.byKey[k] = len(t.order)
	t.order = append(t.order, entry{
		class: ClassOf[E](),
		match: func(err error) (*Fault, bool) {
			var e E
			if errors.As(err, &e) {
				return inj(e), true
			}
			return nil, false
		},
	})
	return t
}

// Covers reports whether the table has an injector for class c.
func (t *Injectors) Covers(c Class) bool {
	if t == nil {
		return false
	}
	_, ok := t.byKey[c.key]
	return ok
}

// Classes returns the registered classes in registration order.
func (t *Injectors) Classes() []Class {
	if t == nil || len(t.order) == 0 {
		return nil
	}
	out := make([]Class, len(t.order))
	for i, e := range t.order {
		out[i] = e.class
	}
	return out
}

// Carrier is the contract a context satisfies to absorb narrow errors.
// It is the error-projection capability: the aggregate type is *Fault,
// and the carried table fixes which sub-error types this context absorbs.
type Carrier interface {
	Faults() *Injectors
}

// Absorb converts e into the context's aggregate Fault using the
// injector registered for E. Every fallible step in a composition calls
// Absorb (or AbsorbAny) immediately upon failure, before returning, so
// callers never see a raw sub-error.
//
// If no injector for E is registered (possible only when the raising
// component never declared the class), the error is wrapped into a
// CodeUnclassified envelope rather than dropped.
func Absorb[E error](ctx Carrier, e E) *Fault {
	if t := ctx.Faults(); t != nil {
		if i, ok := t.byKey[typeKey[E]{}]; ok {
			if f, matched := t.order[i].match(e); matched {
				return f
			}
		}
	}
	return Wrap(e, unclassifiedComponent, CodeUnclassified)
}

// AbsorbAny converts err into the aggregate Fault when its concrete type
// is not statically known (it crossed an interface boundary, e.g. a
// storage-read contract). Matching scans the registered injectors in
// registration order using errors.As.
//
// An err that already is (or wraps) a *Fault is returned as-is: absorbing
// twice must not stack envelopes. A nil err maps to nil.
func AbsorbAny(ctx Carrier, err error) *Fault {
	if err == nil {
		return nil
	}
	if f, ok := As(err); ok {
		return f
	}
	if t := ctx.Faults(); t != nil {
		for _, en := range t.order {
			if f, matched := en.match(err); matched {
				return f
			}
		}
	}
	return Wrap(err, unclassifiedComponent, CodeUnclassified)
}
