//go:build go1.18
// +build go1.18

package quad_test

import (
	"testing"

	"github.com/integrality/quad"
)

func FuzzParse(f *testing.F) {
	f.Add("x")
	f.Add("x^2")
	f.Add("sin(x)+cos(x)")
	f.Add("2*(x+(1-x)")
	f.Add("1..5")
	f.Add("-x^-2")
	f.Add("1×2")
	f.Fuzz(func(t *testing.T, s string) {
		p, err := quad.ParseString(s)
		if err != nil {
			ie, ok := err.(quad.InputError)
			if !ok {
				t.Fatalf("parsing %q: error %v (%T) carries no position", s, err, err)
			}
			if ie.Pos() < 1 {
				t.Errorf("parsing %q: error position %d", s, ie.Pos())
			}
			return
		}
		if p.Len() == 0 {
			t.Errorf("parsing %q: accepted an empty program", s)
		}
	})
}
