package fault_test

import (
	"errors"
	"testing"

	"github.com/sghaida/capwire/fault"
)

/*
   Shared fixtures (NOT counted in benchmarks)
*/

var benchCtx = newCarrier()

/*
   Benchmarks
*/

func BenchmarkNew(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = fault.New("query.store", "store.read_failed", fault.WithDetail("missing"))
	}
}

func BenchmarkWrap(b *testing.B) {
	cause := errors.New("boom")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = fault.Wrap(cause, "query.store", "store.read_failed")
	}
}

func BenchmarkAbsorb_Registered(b *testing.B) {
	e := readErr{key: "alice"}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = fault.Absorb(benchCtx, e) // static lookup path
	}
}

func BenchmarkAbsorbAny_Match(b *testing.B) {
	var err error = readErr{key: "alice"}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = fault.AbsorbAny(benchCtx, err) // errors.As scan path
	}
}

func BenchmarkAbsorbAny_AlreadyFault(b *testing.B) {
	var err error = fault.New("c", "code")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = fault.AbsorbAny(benchCtx, err) // pass-through path
	}
}

func BenchmarkAbsorbAny_Fallback(b *testing.B) {
	err := errors.New("mystery")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = fault.AbsorbAny(benchCtx, err) // unclassified envelope path
	}
}
