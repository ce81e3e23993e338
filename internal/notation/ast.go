package notation

import (
	"fmt"

	"github.com/tupyy/coerce/internal/coercion"
)

// Step is one intermediate result recorded while evaluating an expression.
type Step struct {
	Expr   string         `json:"expr"`
	Result coercion.Value `json:"result"`
}

type AST struct {
	// steps holds the implicit conversions and sub-results, in evaluation order.
	steps []Step
}

func newAst() *AST {
	return &AST{steps: make([]Step, 0, 4)}
}

func (a *AST) record(expr string, v coercion.Value) {
	a.steps = append(a.steps, Step{Expr: expr, Result: v})
}

func (a *AST) visitLiteralExpr(e *LiteralExpr) (coercion.Value, error) {
	return e.Value, nil
}

func (a *AST) visitNegateExpr(e *NegateExpr) (coercion.Value, error) {
	v, err := e.Operand.Accept(a)
	if err != nil {
		return coercion.Value{}, err
	}

	if v.Kind() != coercion.KindNumber && !v.IsNaN() {
		a.record(fmt.Sprintf("ToNumber(%s)", v), coercion.ToNumber(v))
	}

	res := coercion.Negate(v)
	if _, isLiteral := e.Operand.(*LiteralExpr); !isLiteral || v.Kind() != coercion.KindNumber {
		a.record(e.String(), res)
	}

	return res, nil
}

func (a *AST) visitUnaryExpr(e *UnaryExpr) (coercion.Value, error) {
	right, err := e.Right.Accept(a)
	if err != nil {
		return coercion.Value{}, err
	}

	a.record(fmt.Sprintf("Truthy(%s)", right), coercion.Bool(coercion.Truthy(right)))

	res, err := coercion.Evaluate(coercion.Value{}, e.Op, right)
	if err != nil {
		return coercion.Value{}, newEvaluationError(e, err)
	}
	a.record(e.String(), res)

	return res, nil
}

func (a *AST) visitBinaryExpr(e *BinaryExpr) (coercion.Value, error) {
	left, err := e.Left.Accept(a)
	if err != nil {
		return coercion.Value{}, err
	}

	right, err := e.Right.Accept(a)
	if err != nil {
		return coercion.Value{}, err
	}

	op, err := coercion.ParseOperation(e.Op)
	if err != nil {
		return coercion.Value{}, newEvaluationError(e, err)
	}

	a.recordConversions(left, op, right)

	res, err := coercion.Evaluate(left, op, right)
	if err != nil {
		return coercion.Value{}, newEvaluationError(e, err)
	}
	a.record(e.String(), res)

	return res, nil
}

// recordConversions notes the implicit conversions op applies to its operands.
func (a *AST) recordConversions(left coercion.Value, op coercion.Operation, right coercion.Value) {
	bothStrings := left.Kind() == coercion.KindString && right.Kind() == coercion.KindString
	anyString := left.Kind() == coercion.KindString || right.Kind() == coercion.KindString

	toNumber := func(v coercion.Value) {
		if v.Kind() == coercion.KindString || v.Kind() == coercion.KindBoolean {
			a.record(fmt.Sprintf("ToNumber(%s)", v), coercion.ToNumber(v))
		}
	}
	toString := func(v coercion.Value) {
		if v.Kind() != coercion.KindString {
			a.record(fmt.Sprintf("ToString(%s)", v), coercion.Str(coercion.ToString(v)))
		}
	}
	truthy := func(v coercion.Value) {
		a.record(fmt.Sprintf("Truthy(%s)", v), coercion.Bool(coercion.Truthy(v)))
	}

	switch op {
	case coercion.Add:
		if anyString {
			toString(left)
			toString(right)
			return
		}
		toNumber(left)
		toNumber(right)
	case coercion.Sub, coercion.Mul, coercion.Div:
		toNumber(left)
		toNumber(right)
	case coercion.Gt, coercion.Lt, coercion.Ge, coercion.Le:
		if !bothStrings {
			toNumber(left)
			toNumber(right)
		}
	case coercion.Eq, coercion.Ne:
		if left.Kind() != right.Kind() {
			toNumber(left)
			toNumber(right)
		}
	case coercion.And, coercion.Or:
		truthy(left)
	}
}
