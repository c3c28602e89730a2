package fault

import (
	"errors"
	"fmt"
)

// Fault is the single error type callers of a composed component observe.
//
// Fields:
//   - Component: which component in the composition raised the failure
//     (leaf attribution, e.g. "query.store")
//   - Code:      stable, machine-facing code (e.g. "store.read_failed")
//   - Detail:    human-readable detail, safe to surface
//   - Context:   everything else (keys, hints, timestamps)
//   - cause:     the narrow sub-error, preserved for errors.Is / errors.As
type Fault struct {
	component string
	code      string
	detail    string
	context   map[string]any
	cause     error
}

// ------ standard error interface

func (f *Fault) Error() string {
	if f == nil {
		return "<nil>"
	}
	if f.cause != nil {
		return fmt.Sprintf("%s [%s]: %v", f.code, f.component, f.cause)
	}
	if f.detail != "" {
		return fmt.Sprintf("%s [%s]: %s", f.code, f.component, f.detail)
	}
	return fmt.Sprintf("%s [%s]", f.code, f.component)
}

func (f *Fault) Unwrap() error { return f.cause }

// ------ getters

func (f *Fault) Component() string { return f.component }
func (f *Fault) Code() string      { return f.code }
func (f *Fault) Detail() string    { return f.detail }

// Context returns a defensive copy; the internal map is never exposed.
func (f *Fault) Context() map[string]any { return cloneMap(f.context) }

// ------ constructors

// Option configures a Fault during construction.
type Option func(*Fault)

// WithDetail sets the human-readable detail.
func WithDetail(detail string) Option { return func(f *Fault) { f.detail = detail } }

// WithContext sets the initial context map. The map is defensively cloned.
func WithContext(ctx map[string]any) Option {
	return func(f *Fault) { f.context = cloneMap(ctx) }
}

// WithCause sets the underlying cause returned by Unwrap.
func WithCause(cause error) Option { return func(f *Fault) { f.cause = cause } }

// New creates a Fault raised by component with the given code.
func New(component, code string, opts ...Option) *Fault {
	f := &Fault{component: component, code: code}
	for _, o := range opts {
		o(f)
	}
	return f
}

// Wrap creates a Fault that preserves cause for errors.Is / errors.As.
// A nil cause is replaced with an opaque one so Unwrap never lies about
// a wrapping Fault having no origin.
func Wrap(cause error, component, code string, opts ...Option) *Fault {
	if cause == nil {
		cause = errors.New("unknown")
	}
	f := New(component, code, opts...)
	f.cause = cause
	return f
}

// ------ fluent helpers (chainable, mutate receiver intentionally)

// WithKV sets a single key/value in the fault context and returns the
// same receiver for chaining. The internal map is created on first use.
func (f *Fault) WithKV(k string, v any) *Fault {
	if f == nil {
		return nil
	}
	if f.context == nil {
		f.context = map[string]any{}
	}
	f.context[k] = v
	return f
}

// As extracts the *Fault from err's tree, if any.
func As(err error) (*Fault, bool) {
	var f *Fault
	if errors.As(err, &f) {
		return f, true
	}
	return nil, false
}

func cloneMap(in map[string]any) map[string]any {
	if len(in) == 0 {
		return nil
	}
	out := make(map[string]any, len(in))
	for k, v := range in {
		if mv, ok := v.(map[string]any); ok {
			out[k] = cloneMap(mv)
			continue
		}
		out[k] = v
	}
	return out
}
