//go:build go1.18
// +build go1.18

package quad_test

import (
	"math"
	"testing"

	"github.com/integrality/quad"
)

func FuzzEval(f *testing.F) {
	f.Add("x^2", 3.0)
	f.Add("1/x", 0.0)
	f.Add("sqrt(x)", -1.0)
	f.Add("exp(-x^2)", 0.5)
	f.Add("2^x^2", 10.0)
	f.Fuzz(func(t *testing.T, s string, x float64) {
		p, err := quad.ParseString(s)
		if err != nil {
			return
		}
		a, erra := p.Eval(x)
		b, errb := p.Eval(x)
		if (erra == nil) != (errb == nil) {
			t.Fatalf("evaluating %q at %v twice: errors %v and %v", s, x, erra, errb)
		}
		if erra == nil && math.Float64bits(a) != math.Float64bits(b) {
			t.Errorf("evaluating %q at %v twice: values %v and %v", s, x, a, b)
		}
	})
}
