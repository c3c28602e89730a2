package clock_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/sghaida/capwire/clock"
)

func TestFixed_AlwaysSameInstant(t *testing.T) {
	t.Parallel()

	at := time.Date(2024, 6, 1, 14, 30, 0, 0, time.UTC)
	c := clock.Fixed(at)

	assert.Equal(t, at, c.Now())
	assert.Equal(t, at, c.Now())
}

func TestFunc_Adapts(t *testing.T) {
	t.Parallel()

	calls := 0
	c := clock.Func(func() time.Time {
		calls++
		return time.Unix(int64(calls), 0)
	})

	assert.Equal(t, time.Unix(1, 0), c.Now())
	assert.Equal(t, time.Unix(2, 0), c.Now())
}

func TestSystem_TracksWallClock(t *testing.T) {
	t.Parallel()

	before := time.Now()
	got := clock.System().Now()
	after := time.Now()

	assert.False(t, got.Before(before))
	assert.False(t, got.After(after))
}
