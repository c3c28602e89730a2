package wire

import (
	"strconv"
	"strings"

	"github.com/sghaida/capwire/fault"
)

// DuplicateBindingError is returned by NewPlan when two bindings claim
// the same capability key.
type DuplicateBindingError struct{ Key Key }

// Error implements the error interface.
func (e DuplicateBindingError) Error() string {
	// Example: wire: duplicate binding for capability "person.querier"
	return "wire: duplicate binding for capability " + strconv.Quote(string(e.Key))
}

// MissingBindingError is returned when a target, or something in its
// declared closure, names a capability no binding provides.
type MissingBindingError struct {
	Key  Key
	Path []Key // capability keys from the proof target to the missing one
}

// Error implements the error interface.
func (e MissingBindingError) Error() string {
	// Example: wire: no binding for capability "clock" (via greeter -> gate -> clock)
	return "wire: no binding for capability " + strconv.Quote(string(e.Key)) + via(e.Path)
}

// CycleError is returned when the declared requirements loop. Path holds
// the walk from the proof target; its last key is the one revisited.
type CycleError struct{ Path []Key }

// Error implements the error interface.
func (e CycleError) Error() string {
	// Example: wire: binding cycle querier -> cache -> querier
	return "wire: binding cycle " + pathString(e.Path)
}

// NilBuildError is returned when a binding in the target's closure has
// no build function.
type NilBuildError struct {
	Key  Key
	Path []Key
}

// Error implements the error interface.
func (e NilBuildError) Error() string {
	// Example: wire: binding "querier" has nil build
	return "wire: binding " + strconv.Quote(string(e.Key)) + " has nil build" + via(e.Path)
}

// ContractError is returned when the plan's context fails a contract a
// binding declared in Needs. The unsatisfied contract is in the wrapped
// capability error.
type ContractError struct {
	Key  Key
	Path []Key
	Err  error
}

// Error implements the error interface.
func (e ContractError) Error() string {
	// Example: wire: binding "gate": capability: context wired.appCtx does not satisfy "capability.Clocked"
	return "wire: binding " + strconv.Quote(string(e.Key)) + ": " + e.Err.Error()
}

// Unwrap exposes the capability error for errors.As.
func (e ContractError) Unwrap() error { return e.Err }

// MissingInjectorError is returned when a binding declares a raised
// error class the context has no injector for.
type MissingInjectorError struct {
	Key   Key
	Class fault.Class
	Path  []Key
}

// Error implements the error interface.
func (e MissingInjectorError) Error() string {
	// Example: wire: binding "gate" raises greet.ClosedError with no injector registered
	return "wire: binding " + strconv.Quote(string(e.Key)) + " raises " + e.Class.String() +
		" with no injector registered" + via(e.Path)
}

// UndeclaredRequirementError is returned when a build resolves a
// capability its binding never declared in Requires.
type UndeclaredRequirementError struct {
	By  Key // the binding doing the resolving
	Key Key // the undeclared capability
}

// Error implements the error interface.
func (e UndeclaredRequirementError) Error() string {
	// Example: wire: binding "greeter" resolves undeclared requirement "clock"
	return "wire: binding " + strconv.Quote(string(e.By)) + " resolves undeclared requirement " +
		strconv.Quote(string(e.Key))
}

// BuildError wraps the failure of a build function and names the
// capability whose build raised it. Deeper build failures are not
// re-wrapped; attribution stays with the failing leaf.
type BuildError struct {
	Key Key
	Err error
}

// Error implements the error interface.
func (e BuildError) Error() string {
	// Example: wire: building capability "querier": open store: no such file
	return "wire: building capability " + strconv.Quote(string(e.Key)) + ": " + e.Err.Error()
}

// Unwrap exposes the build's own failure.
func (e BuildError) Unwrap() error { return e.Err }

// WrongComponentTypeError is returned when a built capability does not
// have the type the resolver or prover asked for.
type WrongComponentTypeError struct {
	Key  Key
	Want string // reflected name of the requested type
	Got  string // reflected name of the built value
}

// Error implements the error interface.
func (e WrongComponentTypeError) Error() string {
	// Example: wire: capability "querier" built wrong type (got *query.Cached, want greet.Greeter)
	return "wire: capability " + strconv.Quote(string(e.Key)) + " built wrong type (got " +
		e.Got + ", want " + e.Want + ")"
}

func pathString(path []Key) string {
	parts := make([]string, len(path))
	for i, k := range path {
		parts[i] = string(k)
	}
	return strings.Join(parts, " -> ")
}

// via renders the traversal path suffix; single-key paths add nothing.
func via(path []Key) string {
	if len(path) < 2 {
		return ""
	}
	return " (via " + pathString(path) + ")"
}
