package component_test

import (
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sghaida/capwire/component"
)

type env struct{}

var errNegative = errors.New("negative input")

// newBase returns a component rendering non-negative ints, plus a call counter.
func newBase() (component.Component[env, int, string], *int) {
	calls := 0
	return component.Func[env, int, string](func(_ env, n int) (string, error) {
		calls++
		if n < 0 {
			return "", errNegative
		}
		return strconv.Itoa(n), nil
	}), &calls
}

func TestFunc_Run(t *testing.T) {
	t.Parallel()

	base, _ := newBase()
	got, err := base.Run(env{}, 42)
	require.NoError(t, err)
	assert.Equal(t, "42", got)

	_, err = base.Run(env{}, -1)
	assert.ErrorIs(t, err, errNegative)
}

func TestTap_IsTransparent(t *testing.T) {
	t.Parallel()

	base, _ := newBase()
	var seen []int
	tapped := component.Tap(base, func(_ env, arg int, _ string, _ error) {
		seen = append(seen, arg)
	})

	// Same outcome as the undecorated component, for every input.
	for _, n := range []int{0, 7, -3, 1000} {
		plain, plainErr := base.Run(env{}, n)
		got, err := tapped.Run(env{}, n)
		assert.Equal(t, plain, got)
		assert.Equal(t, plainErr, err)
	}
	assert.Equal(t, []int{0, 7, -3, 1000}, seen)
}

func TestTap_ObserverSeesOutcome(t *testing.T) {
	t.Parallel()

	base, _ := newBase()
	var gotRes string
	var gotErr error
	tapped := component.Tap(base, func(_ env, _ int, res string, err error) {
		gotRes, gotErr = res, err
	})

	_, _ = tapped.Run(env{}, 5)
	assert.Equal(t, "5", gotRes)
	assert.NoError(t, gotErr)

	_, _ = tapped.Run(env{}, -5)
	assert.ErrorIs(t, gotErr, errNegative)
}

func TestIntercept(t *testing.T) {
	t.Parallel()

	errGate := errors.New("gate says no")

	tests := []struct {
		name      string
		decide    func(env, int) (string, bool, error)
		arg       int
		want      string
		wantErr   error
		wantInner int
	}{
		{
			name:      "handled answers without consulting inner",
			decide:    func(_ env, _ int) (string, bool, error) { return "handled", true, nil },
			arg:       7,
			want:      "handled",
			wantInner: 0,
		},
		{
			name:      "error fails without consulting inner",
			decide:    func(_ env, _ int) (string, bool, error) { return "", false, errGate },
			arg:       7,
			want:      "",
			wantErr:   errGate,
			wantInner: 0,
		},
		{
			name:      "not handled delegates unchanged",
			decide:    func(_ env, _ int) (string, bool, error) { return "", false, nil },
			arg:       7,
			want:      "7",
			wantInner: 1,
		},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			base, calls := newBase()
			gated := component.Intercept(base, tc.decide)

			got, err := gated.Run(env{}, tc.arg)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tc.want, got)
			assert.Equal(t, tc.wantInner, *calls)
		})
	}
}

func TestPost(t *testing.T) {
	t.Parallel()

	errPost := errors.New("transform failed")

	t.Run("transforms successful results", func(t *testing.T) {
		t.Parallel()

		base, _ := newBase()
		exclaimed := component.Post(base, func(_ env, _ int, res string) (string, error) {
			return res + "!", nil
		})

		got, err := exclaimed.Run(env{}, 3)
		require.NoError(t, err)
		assert.Equal(t, "3!", got)
	})

	t.Run("failures pass through untouched", func(t *testing.T) {
		t.Parallel()

		base, _ := newBase()
		postCalls := 0
		decorated := component.Post(base, func(_ env, _ int, res string) (string, error) {
			postCalls++
			return res, nil
		})

		got, err := decorated.Run(env{}, -1)
		assert.ErrorIs(t, err, errNegative)
		assert.Empty(t, got)
		assert.Zero(t, postCalls)
	})

	t.Run("transform failure fails the call", func(t *testing.T) {
		t.Parallel()

		base, _ := newBase()
		decorated := component.Post(base, func(_ env, _ int, _ string) (string, error) {
			return "", errPost
		})

		got, err := decorated.Run(env{}, 3)
		assert.ErrorIs(t, err, errPost)
		assert.Empty(t, got)
	})
}

func TestNesting_IsAssociative(t *testing.T) {
	t.Parallel()

	suffix := func(_ env, _ int, res string) (string, error) { return res + "!", nil }
	upper := func(_ env, _ int, res string) (string, error) { return strings.ToUpper(res), nil }

	base, _ := newBase()
	nested := component.Post(component.Post(base, suffix), upper)

	fusedBase, _ := newBase()
	fused := component.Post(fusedBase, func(ctx env, arg int, res string) (string, error) {
		mid, err := suffix(ctx, arg, res)
		if err != nil {
			return "", err
		}
		return upper(ctx, arg, mid)
	})

	for _, n := range []int{0, 1, 42, -1, -99} {
		wantRes, wantErr := fused.Run(env{}, n)
		gotRes, gotErr := nested.Run(env{}, n)
		assert.Equal(t, wantRes, gotRes, "input %d", n)
		assert.Equal(t, wantErr, gotErr, "input %d", n)
	}
}

func TestConstructors_PanicOnNil(t *testing.T) {
	t.Parallel()

	base, _ := newBase()
	observe := func(env, int, string, error) {}
	decide := func(env, int) (string, bool, error) { return "", false, nil }
	post := func(_ env, _ int, res string) (string, error) { return res, nil }

	tests := []struct {
		name string
		fn   func()
		want string
	}{
		{
			name: "tap nil inner",
			fn:   func() { component.Tap[env, int, string](nil, observe) },
			want: "component: tap around nil component",
		},
		{
			name: "tap nil observer",
			fn:   func() { component.Tap[env, int, string](base, nil) },
			want: "component: tap with nil observer",
		},
		{
			name: "intercept nil inner",
			fn:   func() { component.Intercept[env, int, string](nil, decide) },
			want: "component: intercept around nil component",
		},
		{
			name: "intercept nil decide",
			fn:   func() { component.Intercept[env, int, string](base, nil) },
			want: "component: intercept with nil decide",
		},
		{
			name: "post nil inner",
			fn:   func() { component.Post[env, int, string](nil, post) },
			want: "component: post around nil component",
		},
		{
			name: "post nil transform",
			fn:   func() { component.Post[env, int, string](base, nil) },
			want: "component: post with nil transform",
		},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.PanicsWithValue(t, tc.want, tc.fn)
		})
	}
}
