package quad

import (
	"strconv"
	"strings"
)

// Program is a parsed expression in postfix form. Executing its instructions
// against an empty value stack leaves exactly one value; Parse establishes
// this invariant, so evaluation never re-checks it for parsed programs.
type Program struct {
	// code is the instruction sequence in evaluation order.
	code []insn
	// depth is the maximum value-stack depth reached by code.
	depth int
}

// insn is one postfix instruction.
type insn struct {
	op opcode

	// val is the literal for opConst.
	val float64
	// sym is the operator symbol for opApply.
	sym rune
	// name is the function name for opCall.
	name string
	// fn is the bound function for opCall, resolved at parse time.
	fn Func
}

type opcode int8

const (
	opNone  opcode = iota
	opConst        // push val
	opVar          // push x
	opNeg          // pop one, push its negation
	opApply        // pop two, apply sym
	opCall         // pop one, apply fn
)

func (o opcode) String() string {
	switch o {
	case opNone:
		return "None"
	case opConst:
		return "Const"
	case opVar:
		return "Var"
	case opNeg:
		return "Neg"
	case opApply:
		return "Apply"
	case opCall:
		return "Call"
	default:
		return "opcode(" + strconv.Itoa(int(o)) + ")"
	}
}

// Len returns the number of instructions in the program.
func (p *Program) Len() int {
	return len(p.code)
}

// String renders the program as space-separated postfix tokens, e.g. "x^2"
// renders as "x 2 ^" and "-sin(x)" as "x sin ~". Unary negation renders as ~
// to keep it distinct from subtraction.
func (p *Program) String() string {
	var b strings.Builder
	for i, in := range p.code {
		if i > 0 {
			b.WriteByte(' ')
		}
		switch in.op {
		case opConst:
			b.WriteString(strconv.FormatFloat(in.val, 'g', -1, 64))
		case opVar:
			b.WriteByte('x')
		case opNeg:
			b.WriteByte('~')
		case opApply:
			b.WriteRune(in.sym)
		case opCall:
			b.WriteString(in.name)
		default:
			panic("quad: invalid instruction " + in.op.String())
		}
	}
	return b.String()
}
