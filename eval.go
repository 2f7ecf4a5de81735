package quad

import (
	"math"
	"strconv"
)

// divisorTolerance is the magnitude below which a divisor is treated as
// zero, failing the division instead of producing an infinity.
const divisorTolerance = 1e-15

// Eval executes the program with the variable bound to x and returns the
// single remaining value. It is a pure function of (program, x): a failed
// evaluation does not corrupt the program, and the same program may be
// evaluated at any number of points, concurrently if desired.
func (p *Program) Eval(x float64) (float64, error) {
	stack := make([]float64, 0, p.depth)
	for _, in := range p.code {
		switch in.op {
		case opConst:
			stack = append(stack, in.val)
		case opVar:
			stack = append(stack, x)
		case opNeg:
			if len(stack) < 1 {
				return 0, &OperandError{Op: "-"}
			}
			stack[len(stack)-1] = -stack[len(stack)-1]
		case opApply:
			if len(stack) < 2 {
				return 0, &OperandError{Op: string(in.sym)}
			}
			b := stack[len(stack)-1]
			a := stack[len(stack)-2]
			stack = stack[:len(stack)-1]
			var v float64
			switch in.sym {
			case '+':
				v = a + b
			case '-':
				v = a - b
			case '*':
				v = a * b
			case '/':
				if math.Abs(b) < divisorTolerance {
					return 0, &DivisionError{X: a}
				}
				v = a / b
			case '^':
				v = math.Pow(a, b)
			default:
				panic("quad: invalid operator " + strconv.QuoteRune(in.sym))
			}
			stack[len(stack)-1] = v
		case opCall:
			if len(stack) < 1 {
				return 0, &OperandError{Op: in.name}
			}
			v, err := in.fn(stack[len(stack)-1])
			if err != nil {
				return 0, err
			}
			stack[len(stack)-1] = v
		default:
			panic("quad: invalid instruction " + in.op.String())
		}
	}
	if len(stack) == 0 {
		// Only reachable for a pathological program; Parse never produces
		// one that leaves the stack empty.
		return 0, &NoResultError{}
	}
	return stack[len(stack)-1], nil
}

// OperandError is an error indicating that an instruction found too few
// values on the evaluation stack. Parse rejects programs that could reach
// this state, so it only occurs for hand-built instruction sequences.
type OperandError struct {
	// Op is the operator symbol or function name that lacked operands.
	Op string
}

func (err *OperandError) Error() string {
	return "insufficient operands for " + strconv.Quote(err.Op)
}

// DivisionError is an error indicating a division whose divisor is zero to
// within divisorTolerance.
type DivisionError struct {
	// X is the dividend.
	X float64
}

func (err *DivisionError) Error() string {
	return "division by zero"
}

// NoResultError is an error indicating that a program left no value on the
// evaluation stack, which only an empty instruction sequence can do.
type NoResultError struct{}

func (err *NoResultError) Error() string {
	return "no result computed"
}
