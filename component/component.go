package component

// Component is one unit of behavior over an opaque environment C:
// it consumes A and produces R or an error. The error's dynamic type is
// the aggregate fault once the component has absorbed its sub-errors
// (see package fault); callers never branch on narrow error types.
type Component[C, A, R any] interface {
	Run(ctx C, arg A) (R, error)
}

// Func adapts a plain function to the Component interface.
type Func[C, A, R any] func(ctx C, arg A) (R, error)

// Run implements Component.
func (f Func[C, A, R]) Run(ctx C, arg A) (R, error) { return f(ctx, arg) }

// Tap returns a pass-through decorator: every call delegates to inner
// unchanged, and observe sees the call and its outcome afterwards.
// observe is a side channel only; it cannot alter the result.
//
// Nil inner or observe is a wiring bug and panics.
func Tap[C, A, R any](inner Component[C, A, R], observe func(ctx C, arg A, res R, err error)) Component[C, A, R] {
	if inner == nil {
		panic("component: tap around nil component")
	}
	if observe == nil {
		panic("component: tap with nil observer")
	}
	return Func[C, A, R](func(ctx C, arg A) (R, error) {
		res, err := inner.Run(ctx, arg)
		observe(ctx, arg, res, err)
		return res, err
	})
}

// Intercept returns an override decorator. decide runs first and returns
// (res, handled, err): a non-nil err fails the call, handled true
// answers it with res, and in both cases inner is never consulted.
// Otherwise the call delegates to inner unchanged.
//
// Nil inner or decide is a wiring bug and panics.
func Intercept[C, A, R any](inner Component[C, A, R], decide func(ctx C, arg A) (R, bool, error)) Component[C, A, R] {
	if inner == nil {
		panic("component: intercept around nil component")
	}
	if decide == nil {
		panic("component: intercept with nil decide")
	}
	return Func[C, A, R](func(ctx C, arg A) (R, error) {
		res, handled, err := decide(ctx, arg)
		if err != nil {
			var zero R
			return zero, err
		}
		if handled {
			return res, nil
		}
		return inner.Run(ctx, arg)
	})
}

// Post returns a transform decorator: inner runs first, successful
// results are rewritten by post, failures pass through untouched.
// post may itself fail, which fails the call.
//
// Nil inner or post is a wiring bug and panics.
func Post[C, A, R any](inner Component[C, A, R], post func(ctx C, arg A, res R) (R, error)) Component[C, A, R] {
	if inner == nil {
		panic("component: post around nil component")
	}
	if post == nil {
		panic("component: post with nil transform")
	}
	return Func[C, A, R](func(ctx C, arg A) (R, error) {
		res, err := inner.Run(ctx, arg)
		if err != nil {
			var zero R
			return zero, err
		}
		return post(ctx, arg, res)
	})
}
