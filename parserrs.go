package quad

import "strconv"

// BracketError is an error indicating unbalanced parentheses in the input.
// It implements InputError.
type BracketError struct {
	// Col is the position of the offending parenthesis.
	Col int
	// Extra is true when a close parenthesis had no matching open, and false
	// when the input ended with an open parenthesis still unclosed.
	Extra bool
}

func (err *BracketError) Error() string {
	if err.Extra {
		return errpos(err.Col, "extra closing parenthesis")
	}
	return errpos(err.Col, "missing closing parenthesis")
}

func (err *BracketError) Pos() int {
	return err.Col
}

// OperatorError is an error indicating an operator with too few operands,
// e.g. "*2" or "2+". It implements InputError.
type OperatorError struct {
	// Col is the position of the operator.
	Col int
	// Operator is the operator that lacked operands.
	Operator string
	// Unary is whether the operator was unary.
	Unary bool
}

func (err *OperatorError) Error() string {
	s := "binary"
	if err.Unary {
		s = "unary"
	}
	return errpos(err.Col, "missing operand for "+s+" operator "+strconv.Quote(err.Operator))
}

func (err *OperatorError) Pos() int {
	return err.Col
}

// CallError is an error indicating a function used without its parenthesized
// argument, e.g. "sin" or "sin+1". It implements InputError.
type CallError struct {
	// Col is the position of the function name.
	Col int
	// Func is the function name.
	Func string
}

func (err *CallError) Error() string {
	return errpos(err.Col, "function "+err.Func+" needs a parenthesized argument")
}

func (err *CallError) Pos() int {
	return err.Col
}

// NameError is an error indicating an identifier that is not the variable,
// a known constant, or a known function. It implements InputError.
type NameError struct {
	// Col is the position of the identifier.
	Col int
	// Name is the identifier, lowercased.
	Name string
}

func (err *NameError) Error() string {
	return errpos(err.Col, "unknown name "+strconv.Quote(err.Name))
}

func (err *NameError) Pos() int {
	return err.Col
}

// EmptyExpressionError is an error indicating an empty expression or an
// empty parenthesized subexpression.
type EmptyExpressionError struct {
	// Col is the position of the token that ended the subexpression.
	Col int
	// End is the token that ended the subexpression, or the empty string at
	// the end of the input.
	End string
}

func (err *EmptyExpressionError) Error() string {
	if err.End == "" {
		if err.Col <= 1 {
			return errpos(err.Col, "no expression")
		}
		return errpos(err.Col, "no expression at end")
	}
	return errpos(err.Col, "no expression up to "+strconv.Quote(err.End))
}

func (err *EmptyExpressionError) Pos() int {
	return err.Col
}

// ImbalanceError is an error indicating a token sequence that leaves more
// than one value on the evaluation stack, e.g. "2 3" or "x(2)". Such input
// is missing an operator between adjacent operands. It implements
// InputError.
type ImbalanceError struct {
	// Col is the position at which the parser detected the imbalance.
	Col int
	// Values is the number of values the program would leave behind.
	Values int
}

func (err *ImbalanceError) Error() string {
	return errpos(err.Col, "expression leaves "+strconv.Itoa(err.Values)+" values; missing operator")
}

func (err *ImbalanceError) Pos() int {
	return err.Col
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting
// from invalid input text implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes up to and
	// including the start of the token that caused the error.
	Pos() int
}

var (
	_ InputError = (*BracketError)(nil)
	_ InputError = (*OperatorError)(nil)
	_ InputError = (*CallError)(nil)
	_ InputError = (*NameError)(nil)
	_ InputError = (*EmptyExpressionError)(nil)
	_ InputError = (*ImbalanceError)(nil)
	_ InputError = (*LexError)(nil)
)
