package quad

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultFuncs(t *testing.T) {
	cases := []struct {
		fn   string
		x    float64
		want float64
		bad  bool
	}{
		{"sin", 0, 0, false},
		{"cos", 0, 1, false},
		{"tan", 0, 0, false},
		{"abs", -2, 2, false},
		{"abs", 2, 2, false},
		{"exp", 0, 1, false},
		{"log", 100, 2, false},
		{"log", 0, 0, true},
		{"log", -1, 0, true},
		{"ln", math.E, 1, false},
		{"ln", 0, 0, true},
		{"sqrt", 9, 3, false},
		{"sqrt", 0, 0, false},
		{"sqrt", -1, 0, true},
	}
	for _, c := range cases {
		fn := globalfuncs[c.fn]
		require.NotNil(t, fn, "no default function %q", c.fn)
		v, err := fn(c.x)
		if c.bad {
			var derr *DomainError
			require.ErrorAs(t, err, &derr, "%s(%v)", c.fn, c.x)
			assert.Equal(t, c.fn, derr.Func)
			assert.Equal(t, c.x, derr.X)
			continue
		}
		require.NoError(t, err, "%s(%v)", c.fn, c.x)
		assert.InDelta(t, c.want, v, 1e-12, "%s(%v)", c.fn, c.x)
	}
}

func TestDefaultConsts(t *testing.T) {
	assert.Equal(t, math.Pi, globalconsts["pi"])
	assert.Equal(t, math.E, globalconsts["e"])
}

func TestMonadic(t *testing.T) {
	fn := Monadic(math.Floor)
	v, err := fn(2.7)
	require.NoError(t, err)
	assert.Equal(t, 2.0, v)
}

func TestDomainErrorMessage(t *testing.T) {
	err := &DomainError{X: -1, Func: "sqrt"}
	assert.Equal(t, "-1 outside domain of sqrt", err.Error())
}
