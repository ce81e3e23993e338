package notation

import (
	"fmt"

	"github.com/tupyy/coerce/internal/coercion"
)

type Expr interface {
	String() string
	Accept(a *AST) (coercion.Value, error) // visitor pattern
}

// LiteralExpr is an operand like 10, "10", true or NaN.
type LiteralExpr struct {
	Value coercion.Value
}

func (l *LiteralExpr) String() string {
	return l.Value.String()
}

func (l *LiteralExpr) Accept(a *AST) (coercion.Value, error) {
	return a.visitLiteralExpr(l)
}

// NegateExpr is an operand preceded by a minus sign like -5 or -"10".
type NegateExpr struct {
	Operand Expr
}

func (n *NegateExpr) String() string {
	return "-" + n.Operand.String()
}

func (n *NegateExpr) Accept(a *AST) (coercion.Value, error) {
	return a.visitNegateExpr(n)
}

// UnaryExpr is an expression like !"hello"
type UnaryExpr struct {
	Op    coercion.Operation
	Right Expr
}

func (u *UnaryExpr) String() string {
	return fmt.Sprintf("( %s %s )", u.Op.String(), u.Right.String())
}

func (u *UnaryExpr) Accept(a *AST) (coercion.Value, error) {
	return a.visitUnaryExpr(u)
}

// BinaryExpr is an expression like "10" + 5.
// Op holds the operator as written; an unsupported operator fails at evaluation.
type BinaryExpr struct {
	Left  Expr
	Op    string
	Right Expr
}

func (b *BinaryExpr) String() string {
	return fmt.Sprintf("( %s %s %s )", b.Left.String(), b.Op, b.Right.String())
}

func (b *BinaryExpr) Accept(a *AST) (coercion.Value, error) {
	return a.visitBinaryExpr(b)
}
