package capability

import (
	"reflect"
	"strconv"

	"github.com/sghaida/capwire/fault"
)

// Contract is the startup-time descriptor of a capability. Probe reports
// whether a concrete context value provides the capability; DependsOn
// lists contracts that must hold whenever this one does (a composite
// capability such as cached querying depends on both the cache and the
// query contracts).
//
// Descriptors exist so that resolution failures are attributable: a
// failing probe names the contract, not a nil-method panic three frames
// deep.
type Contract struct {
	Name      string
	Probe     func(ctx any) bool
	DependsOn []Contract
}

// UnsatisfiedError reports a context value failing a contract probe.
type UnsatisfiedError struct {
	Contract string // name of the failing contract
	Context  string // rendered dynamic type of the probed context
}

func (e *UnsatisfiedError) Error() string {
	return "capability: context " + e.Context + " does not satisfy " + strconv.Quote(e.Contract)
}

// MalformedContractError reports a descriptor that cannot be verified.
type MalformedContractError struct {
	Contract string
}

func (e *MalformedContractError) Error() string {
	return "capability: contract " + strconv.Quote(e.Contract) + " has no probe"
}

// Verify checks ctx against c's dependencies first, then c's own probe,
// so the reported contract is the most specific unsatisfied one.
func (c Contract) Verify(ctx any) error {
	for _, dep := range c.DependsOn {
		if err := dep.Verify(ctx); err != nil {
			return err
		}
	}
	if c.Probe == nil {
		return &MalformedContractError{Contract: c.Name}
	}
	if !c.Probe(ctx) {
		return &UnsatisfiedError{Contract: c.Name, Context: typeName(ctx)}
	}
	return nil
}

// Satisfies returns a descriptor probing the context for interface T.
// The rendered name is T's type string, projections included.
func Satisfies[T any]() Contract {
	return Contract{
		Name: reflect.TypeFor[T]().String(),
		Probe: func(ctx any) bool {
			_, ok := ctx.(T)
			return ok
		},
	}
}

// ClockContract describes the Clocked capability.
func ClockContract() Contract { return Satisfies[Clocked]() }

// BlobContract describes the Blobs capability.
func BlobContract() Contract { return Satisfies[Blobs]() }

// CacheContract describes the Cacher capability at projections ID, E.
func CacheContract[ID comparable, E any]() Contract { return Satisfies[Cacher[ID, E]]() }

// QueryContract describes the Querier capability at projections ID, E.
func QueryContract[ID comparable, E any]() Contract { return Satisfies[Querier[ID, E]]() }

// FaultContract describes the error-projection capability: the context
// carries an injector table for absorbing narrow errors (fault.Carrier).
func FaultContract() Contract { return Satisfies[fault.Carrier]() }

func typeName(v any) string {
	if v == nil {
		return "<nil>"
	}
	return reflect.TypeOf(v).String()
}
