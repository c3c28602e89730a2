package wire

import "reflect"

// Resolver is handed to a binding's build function. It resolves only
// the capabilities the binding declared in Requires, so a build cannot
// quietly depend on more than Check validated.
type Resolver[C any] struct {
	plan    *Plan[C]
	binding Binding[C]
}

// Context returns the plan's context value.
func (r *Resolver[C]) Context() C { return r.plan.ctx }

// Resolve builds the capability k, or returns the plan's memoized one.
func (r *Resolver[C]) Resolve(k Key) (any, error) {
	if !r.declared(k) {
		return nil, UndeclaredRequirementError{By: r.binding.Capability, Key: k}
	}
	return r.plan.resolve(k)
}

func (r *Resolver[C]) declared(k Key) bool {
	for _, req := range r.binding.Requires {
		if req == k {
			return true
		}
	}
	return false
}

// ResolveAs resolves k and asserts its component type.
func ResolveAs[T any, C any](r *Resolver[C], k Key) (T, error) {
	var zero T
	v, err := r.Resolve(k)
	if err != nil {
		return zero, err
	}
	t, ok := v.(T)
	if !ok {
		return zero, WrongComponentTypeError{Key: k, Want: reflect.TypeFor[T]().String(), Got: typeName(v)}
	}
	return t, nil
}

// Prove validates target's full declared closure, builds it bottom-up,
// and returns it as the contract type T. The returned value is all a
// caller holds: evidence the composition is sound, with the concrete
// composition kept opaque behind T.
func Prove[T any, C any](p *Plan[C], target Key) (T, error) {
	var zero T
	if err := p.Check(target); err != nil {
		return zero, err
	}
	v, err := p.resolve(target)
	if err != nil {
		return zero, err
	}
	t, ok := v.(T)
	if !ok {
		return zero, WrongComponentTypeError{Key: target, Want: reflect.TypeFor[T]().String(), Got: typeName(v)}
	}
	return t, nil
}

// MustProve is Prove for composition roots where a failed proof should
// stop the program. It panics with the proof error.
func MustProve[T any, C any](p *Plan[C], target Key) T {
	t, err := Prove[T, C](p, target)
	if err != nil {
		panic(err)
	}
	return t
}

func typeName(v any) string {
	if v == nil {
		return "<nil>"
	}
	return reflect.TypeOf(v).String()
}
