package notation

import (
	"errors"
	"fmt"

	"github.com/tupyy/coerce/internal/coercion"
)

// EvaluationError is the type of error returned by interpreter when evaluating expressions.
type EvaluationError struct {
	// Expression being evaluated when the error occurred.
	Expr Expr
	// Err is the underlying error, e.g. *coercion.UnsupportedOperationError.
	Err error
}

// Error returns a formatted version of the error, including the expression.
func (e *EvaluationError) Error() string {
	return fmt.Sprintf("expr '%s': %s", e.Expr.String(), e.Err)
}

func (e *EvaluationError) Unwrap() error {
	return e.Err
}

func newEvaluationError(e Expr, err error) error {
	return &EvaluationError{Expr: e, Err: err}
}

// Interpreter evaluates one expression in operand notation, e.g. `"10" + 5`.
type Interpreter struct {
	expr Expr
}

func NewInterpreter(expression string) (*Interpreter, error) {
	expr, err := parse([]byte(expression))
	if err != nil {
		return nil, err
	}

	return &Interpreter{expr}, nil
}

// Expr returns the parsed expression.
func (i *Interpreter) Expr() Expr {
	return i.expr
}

// Evaluate evaluates the expression.
func (i *Interpreter) Evaluate() (coercion.Value, error) {
	return i.expr.Accept(newAst())
}

// Explain evaluates the expression and returns the implicit conversions and
// intermediate results along with the final value.
func (i *Interpreter) Explain() ([]Step, coercion.Value, error) {
	a := newAst()
	v, err := i.expr.Accept(a)

	return a.steps, v, err
}

// ErrNotALiteral is returned by ParseLiteral when the input holds an operator.
var ErrNotALiteral = errors.New("expected a single operand")

// ParseLiteral parses a single operand such as 15, "105", -Infinity or NaN.
func ParseLiteral(src string) (coercion.Value, error) {
	expr, err := parse([]byte(src))
	if err != nil {
		return coercion.Value{}, err
	}

	switch e := expr.(type) {
	case *LiteralExpr:
		return e.Value, nil
	case *NegateExpr:
		return e.Accept(newAst())
	default:
		return coercion.Value{}, fmt.Errorf("%q: %w", src, ErrNotALiteral)
	}
}
