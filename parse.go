package quad

import (
	"io"
	"strconv"
	"strings"
)

// Grammar (identifiers are case-insensitive):
//
//	expr   := term (('+' | '-') term)*
//	term   := factor (('*' | '/') factor)*
//	factor := number | 'x' | constant | function '(' expr ')' | '(' expr ')' | '-' factor | '+' factor
//
// '^' binds tighter than '*' and '/', which bind tighter than '+' and '-'.
// '^' is right-associative; the other binary operators are left-associative.
// Unary minus binds tighter than '*' and looser than '^', so "-x^2" is
// "-(x^2)" and "-x*2" is "(-x)*2".

// operator describes a precedence level.
type operator struct {
	// prec is the precedence value. Higher is more binding.
	prec int8
	// right indicates right-associativity.
	right bool
}

// binop gets the operator entry for a binary operator symbol.
func binop(sym rune) operator {
	switch sym {
	case '+', '-':
		return operator{2, false}
	case '*', '/':
		return operator{3, false}
	case '^':
		return operator{5, true}
	default:
		panic("quad: no binary operator " + strconv.QuoteRune(sym))
	}
}

// negprec is the precedence of unary minus.
var negprec = operator{4, true}

// pops reports whether an operator already on the stack is emitted before
// cur is pushed.
func (top operator) pops(cur operator) bool {
	if top.prec != cur.prec {
		return top.prec > cur.prec
	}
	return !cur.right
}

type entkind int8

const (
	entOp    entkind = iota // pending binary operator
	entNeg                  // pending unary negation
	entParen                // open parenthesis scope marker
	entFunc                 // pending function, emitted at its close paren
)

// stackent is an entry on the parser's operator stack.
type stackent struct {
	kind entkind
	sym  rune     // entOp
	name string   // entFunc
	fn   Func     // entFunc
	prec operator // entOp, entNeg
	pos  int
	// mark is the program length when an entParen was pushed, used to detect
	// empty parentheses.
	mark int
}

type parser struct {
	p     parsectx
	prog  []insn
	stack []stackent
	// depth simulates the evaluation stack so that malformed token sequences
	// are rejected here rather than at evaluation time.
	depth int
	max   int
	paren int
}

// Parse parses an infix expression into a postfix Program. The given options
// are applied in order.
func Parse(src io.RuneScanner, opts ...ParseOption) (*Program, error) {
	scan := lex(src)
	var p parsectx
	for _, opt := range opts {
		p = opt.parseOption(p)
	}
	p.fill()
	ps := parser{p: p}

	// operand is whether the previous token completed an operand; it decides
	// between unary and binary readings of + and -, and catches adjacent
	// operands with no operator between them.
	operand := false
	// open is whether a function name was just pushed, in which case the
	// next token must be its open parenthesis.
	open := false
	var end lexToken
loop:
	for {
		tok, err := scan.next()
		if err != nil {
			return nil, err
		}
		if open && tok.kind != tokenOpen {
			fn := ps.stack[len(ps.stack)-1]
			return nil, &CallError{Col: fn.pos, Func: fn.name}
		}
		switch tok.kind {
		case tokenNum:
			if operand {
				return nil, &ImbalanceError{Col: tok.pos, Values: 2}
			}
			v, err := strconv.ParseFloat(tok.text, 64)
			if err != nil {
				return nil, &LexError{Text: tok.text, Kind: "number", Col: tok.pos}
			}
			ps.push(insn{op: opConst, val: v})
			operand = true
		case tokenIdent:
			if operand {
				return nil, &ImbalanceError{Col: tok.pos, Values: 2}
			}
			name := strings.ToLower(tok.text)
			switch {
			case name == "x":
				ps.push(insn{op: opVar})
				operand = true
			case ps.p.hasConst(name):
				ps.push(insn{op: opConst, val: ps.p.consts[name]})
				operand = true
			case ps.p.funcs[name] != nil:
				ps.stack = append(ps.stack, stackent{kind: entFunc, name: name, fn: ps.p.funcs[name], pos: tok.pos})
				open = true
			default:
				return nil, &NameError{Col: tok.pos, Name: name}
			}
		case tokenOp:
			sym := rune(tok.text[0])
			if !operand {
				// Unary position.
				switch sym {
				case '-':
					ps.stack = append(ps.stack, stackent{kind: entNeg, prec: negprec, pos: tok.pos})
				case '+':
					// Unary plus is a no-op.
				default:
					return nil, &OperatorError{Col: tok.pos, Operator: tok.text, Unary: true}
				}
				continue
			}
			cur := binop(sym)
			if err := ps.reduce(cur); err != nil {
				return nil, err
			}
			ps.stack = append(ps.stack, stackent{kind: entOp, sym: sym, prec: cur, pos: tok.pos})
			operand = false
		case tokenOpen:
			if operand {
				return nil, &ImbalanceError{Col: tok.pos, Values: 2}
			}
			ps.stack = append(ps.stack, stackent{kind: entParen, pos: tok.pos, mark: len(ps.prog)})
			ps.paren++
			open = false
			operand = false
		case tokenClose:
			ps.paren--
			if ps.paren < 0 {
				return nil, &BracketError{Col: tok.pos, Extra: true}
			}
			if err := ps.close(tok.pos); err != nil {
				return nil, err
			}
			operand = true
		case tokenEOF:
			end = tok
			break loop
		default:
			panic("quad: unknown token: " + tok.String())
		}
	}
	// Emit everything still pending. A leftover scope marker means an open
	// parenthesis was never closed.
	for len(ps.stack) > 0 {
		ent := ps.stack[len(ps.stack)-1]
		ps.stack = ps.stack[:len(ps.stack)-1]
		switch ent.kind {
		case entParen:
			return nil, &BracketError{Col: ent.pos, Extra: false}
		case entFunc:
			return nil, &CallError{Col: ent.pos, Func: ent.name}
		default:
			if err := ps.emit(ent); err != nil {
				return nil, err
			}
		}
	}
	if len(ps.prog) == 0 {
		return nil, &EmptyExpressionError{Col: end.pos, End: ""}
	}
	if ps.depth != 1 {
		return nil, &ImbalanceError{Col: end.pos, Values: ps.depth}
	}
	return &Program{code: ps.prog, depth: ps.max}, nil
}

// ParseString is a shortcut to parse an expression held in a string.
func ParseString(src string, opts ...ParseOption) (*Program, error) {
	return Parse(strings.NewReader(src), opts...)
}

// push appends a value-producing instruction.
func (ps *parser) push(in insn) {
	ps.depth++
	if ps.depth > ps.max {
		ps.max = ps.depth
	}
	ps.prog = append(ps.prog, in)
}

// emit appends the instruction for a pending operator or function stack
// entry, checking that enough operands have been emitted for it.
func (ps *parser) emit(ent stackent) error {
	switch ent.kind {
	case entOp:
		if ps.depth < 2 {
			return &OperatorError{Col: ent.pos, Operator: string(ent.sym)}
		}
		ps.depth--
		ps.prog = append(ps.prog, insn{op: opApply, sym: ent.sym})
	case entNeg:
		if ps.depth < 1 {
			return &OperatorError{Col: ent.pos, Operator: "-", Unary: true}
		}
		ps.prog = append(ps.prog, insn{op: opNeg})
	case entFunc:
		if ps.depth < 1 {
			return &CallError{Col: ent.pos, Func: ent.name}
		}
		ps.prog = append(ps.prog, insn{op: opCall, name: ent.name, fn: ent.fn})
	default:
		panic("quad: emit of scope marker")
	}
	return nil
}

// reduce emits pending operators that bind at least as tightly as cur,
// stopping at scope markers.
func (ps *parser) reduce(cur operator) error {
	for len(ps.stack) > 0 {
		top := ps.stack[len(ps.stack)-1]
		if top.kind != entOp && top.kind != entNeg {
			return nil
		}
		if !top.prec.pops(cur) {
			return nil
		}
		ps.stack = ps.stack[:len(ps.stack)-1]
		if err := ps.emit(top); err != nil {
			return err
		}
	}
	return nil
}

// close emits pending operators down to the matching open parenthesis, pops
// the scope marker, and emits a function bound to the group if one is
// pending beneath it.
func (ps *parser) close(pos int) error {
	for {
		// The running depth count is non-negative here, so a scope marker is
		// guaranteed before the stack runs out.
		ent := ps.stack[len(ps.stack)-1]
		ps.stack = ps.stack[:len(ps.stack)-1]
		if ent.kind == entParen {
			if len(ps.prog) == ent.mark {
				return &EmptyExpressionError{Col: pos, End: ")"}
			}
			break
		}
		if err := ps.emit(ent); err != nil {
			return err
		}
	}
	if len(ps.stack) > 0 && ps.stack[len(ps.stack)-1].kind == entFunc {
		fn := ps.stack[len(ps.stack)-1]
		ps.stack = ps.stack[:len(ps.stack)-1]
		if err := ps.emit(fn); err != nil {
			return err
		}
	}
	return nil
}
