package quad

import (
	"math"
	"strconv"
)

// Func is a unary real function. It reports a DomainError when its argument
// lies outside the function's domain.
type Func func(x float64) (float64, error)

// Monadic wraps a total function of one variable into a Func. The wrapped
// function is expected never to fail.
func Monadic(f func(float64) float64) Func {
	return func(x float64) (float64, error) {
		return f(x), nil
	}
}

// globalfuncs is the default function registry. It is read-only; per-parse
// overrides go through ParseFunc and ParseFuncs.
var globalfuncs = map[string]Func{
	"sin": Monadic(math.Sin),
	"cos": Monadic(math.Cos),
	"tan": Monadic(math.Tan),
	"abs": Monadic(math.Abs),
	"exp": Monadic(math.Exp),
	"log": func(x float64) (float64, error) {
		if x <= 0 {
			return 0, &DomainError{X: x, Func: "log"}
		}
		return math.Log10(x), nil
	},
	"ln": func(x float64) (float64, error) {
		if x <= 0 {
			return 0, &DomainError{X: x, Func: "ln"}
		}
		return math.Log(x), nil
	},
	"sqrt": func(x float64) (float64, error) {
		if x < 0 {
			return 0, &DomainError{X: x, Func: "sqrt"}
		}
		return math.Sqrt(x), nil
	},
}

// globalconsts is the default constant registry.
var globalconsts = map[string]float64{
	"pi": math.Pi,
	"e":  math.E,
}

// DomainError is an error returned when a function is applied to an argument
// outside its domain.
type DomainError struct {
	// X is the out-of-domain argument.
	X float64
	// Func is the name of the function.
	Func string
}

func (err *DomainError) Error() string {
	return strconv.FormatFloat(err.X, 'g', -1, 64) + " outside domain of " + err.Func
}
