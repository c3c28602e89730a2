package wire

import (
	"errors"

	"github.com/sghaida/capwire/capability"
	"github.com/sghaida/capwire/fault"
)

// Key identifies one capability in a plan.
//
// Keys are typically defined as package-level constants to avoid typos:
//
//	const (
//	  KeyQuerier wire.Key = "person.querier"
//	  KeyGreeter wire.Key = "greeter"
//	)
type Key string

// Binding declares how one capability is built and everything the build
// is allowed to assume. All three declaration lists are checked before
// any build runs; the build itself is then restricted to them.
type Binding[C any] struct {
	// Capability is the key this binding provides.
	Capability Key

	// Requires lists the capability keys Build may resolve.
	Requires []Key

	// Needs lists contracts the plan's context must satisfy.
	Needs []capability.Contract

	// Raises lists the narrow error classes the built component can
	// raise; the context must carry an injector for each.
	Raises []fault.Class

	// Build constructs the capability. It receives a resolver scoped to
	// this binding's declared requirements.
	Build func(r *Resolver[C]) (any, error)
}

// Plan is a set of bindings over one context value. Construct it with
// NewPlan, validate targets with Check, and build them with Prove.
type Plan[C any] struct {
	ctx      C
	bindings map[Key]Binding[C]
	order    []Key
	built    map[Key]any
}

// NewPlan collects bindings over ctx. Only duplicate capability keys are
// rejected here: a plan may hold broken bindings, and stays provable for
// every target whose closure avoids them. All deeper validation belongs
// to Check, where it can be attributed to a target.
func NewPlan[C any](ctx C, bindings ...Binding[C]) (*Plan[C], error) {
	p := &Plan[C]{
		ctx:      ctx,
		bindings: make(map[Key]Binding[C], len(bindings)),
		built:    make(map[Key]any),
	}
	for _, b := range bindings {
		if _, exists := p.bindings[b.Capability]; exists {
			return nil, DuplicateBindingError{Key: b.Capability}
		}
		p.bindings[b.Capability] = b
		p.order = append(p.order, b.Capability)
	}
	return p, nil
}

// Context returns the context value the plan composes over.
func (p *Plan[C]) Context() C { return p.ctx }

// Keys returns the bound capability keys in declaration order.
func (p *Plan[C]) Keys() []Key {
	out := make([]Key, len(p.order))
	copy(out, p.order)
	return out
}

// Binding returns the binding for k, if bound. The returned value is a
// copy; plans are immutable once constructed.
func (p *Plan[C]) Binding(k Key) (Binding[C], bool) {
	b, ok := p.bindings[k]
	return b, ok
}

// Check validates target's full declared closure without executing any
// build: every required capability is bound and acyclic, every build is
// present, the context satisfies every needed contract, and every
// declared raised class has an injector. The first failure is returned,
// attributed with the path of keys that led to it.
func (p *Plan[C]) Check(target Key) error {
	return p.check(target, nil, make(map[Key]visit))
}

// visit tracks DFS progress per key; the zero value means unvisited.
type visit int

const (
	inStack visit = iota + 1
	settled
)

func (p *Plan[C]) check(k Key, path []Key, state map[Key]visit) error {
	path = append(path, k)
	switch state[k] {
	case inStack:
		return CycleError{Path: clonePath(path)}
	case settled:
		return nil
	}

	b, ok := p.bindings[k]
	if !ok {
		return MissingBindingError{Key: k, Path: clonePath(path)}
	}
	if b.Build == nil {
		return NilBuildError{Key: k, Path: clonePath(path)}
	}
	for _, contract := range b.Needs {
		if err := contract.Verify(p.ctx); err != nil {
			return ContractError{Key: k, Path: clonePath(path), Err: err}
		}
	}
	if len(b.Raises) > 0 {
		carrier, isCarrier := any(p.ctx).(fault.Carrier)
		if !isCarrier {
			return ContractError{Key: k, Path: clonePath(path), Err: capability.FaultContract().Verify(p.ctx)}
		}
		for _, class := range b.Raises {
			if !carrier.Faults().Covers(class) {
				return MissingInjectorError{Key: k, Class: class, Path: clonePath(path)}
			}
		}
	}

	state[k] = inStack
	for _, req := range b.Requires {
		if err := p.check(req, path, state); err != nil {
			return err
		}
	}
	state[k] = settled
	return nil
}

// resolve builds k, memoized per plan. Callers have already run Check,
// so the binding exists and the closure is sound; the only failure left
// is the build's own.
func (p *Plan[C]) resolve(k Key) (any, error) {
	if v, ok := p.built[k]; ok {
		return v, nil
	}
	b := p.bindings[k]
	v, err := b.Build(&Resolver[C]{plan: p, binding: b})
	if err != nil {
		// A failure bubbling up from a deeper build keeps its own
		// attribution; only fresh failures get wrapped here.
		var deeper BuildError
		if errors.As(err, &deeper) {
			return nil, err
		}
		return nil, BuildError{Key: k, Err: err}
	}
	p.built[k] = v
	return v, nil
}

func clonePath(path []Key) []Key {
	out := make([]Key, len(path))
	copy(out, path)
	return out
}
