// Grammar
//
// expression: operand | operand OPERATOR operand | "!" operand			;
// operand: "-" operand | NUMBER | STRING | "true" | "false" | "NaN" | "Infinity"	;

package notation

import (
	"fmt"

	"github.com/tupyy/coerce/internal/coercion"
)

// ParseError (actually *ParseError) is the type of error returned by parse.
type ParseError struct {
	// Column (0-based byte offset) where the error occurred.
	Position int
	// Error message.
	Message string
}

// Error returns a formatted version of the error, including the column.
func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at column %d: %s", e.Position, e.Message)
}

type parser struct {
	// Lexer instance and current token values
	lexer *lexer
	pos   int    // position of last token (tok)
	tok   Token  // last lexed token
	val   string // string value of last token (or "")
}

func parse(src []byte) (expr Expr, err error) {
	defer func() {
		if r := recover(); r != nil {
			// Convert to ParseError or re-panic
			perr, ok := r.(*ParseError)
			if !ok {
				panic(r)
			}
			err = perr
		}
	}()

	lexer := newLexer(src)
	p := parser{lexer: lexer}
	p.next() // initialize p.tok

	// parse the expression
	expr = p.expression()

	return
}

// Parse an expression
//
// expression: operand | operand OPERATOR operand | "!" operand
//
func (p *parser) expression() Expr {
	if p.matches(EOL) {
		panic(p.errorf("empty expression"))
	}

	if p.matches(NOT) {
		p.next()
		expr := &UnaryExpr{Op: coercion.Not, Right: p.operand()}
		p.consume(EOL, fmt.Sprintf("unexpected %s after expression", p.describe()))
		return expr
	}

	left := p.operand()
	if p.matches(EOL) {
		return left
	}

	if !p.tok.isOperator() {
		panic(p.errorf("expected operator instead of %s", p.describe()))
	}
	if op, err := coercion.ParseOperation(p.val); err == nil && op.IsUnary() {
		panic(p.errorf("'%s' is a prefix operator", p.val))
	}

	op := p.val
	p.next()

	expr := &BinaryExpr{Left: left, Op: op, Right: p.operand()}
	p.consume(EOL, fmt.Sprintf("unexpected %s after expression", p.describe()))

	return expr
}

// Parse an operand
//
// operand: "-" operand | NUMBER | STRING | "true" | "false" | "NaN" | "Infinity"
//
func (p *parser) operand() Expr {
	var value coercion.Value

	switch p.tok {
	case SUB:
		p.next()
		return &NegateExpr{Operand: p.operand()}
	case NUMBER:
		value = coercion.ToNumber(coercion.Str(p.val))
	case STRING:
		value = coercion.Str(p.val)
	case TRUE:
		value = coercion.Bool(true)
	case FALSE:
		value = coercion.Bool(false)
	case NAN:
		value = coercion.NaN()
	case INFINITY:
		value = coercion.ToNumber(coercion.Str("Infinity"))
	default:
		panic(p.errorf("expected operand instead of %s", p.describe()))
	}

	p.next()

	return &LiteralExpr{Value: value}
}

// Parse next token into p.tok (and set p.pos and p.val).
func (p *parser) next() {
	p.pos, p.tok, p.val = p.lexer.Scan()
	if p.tok == ILLEGAL {
		panic(p.errorf("%s", p.val))
	}
}

// Return true iff current token matches one of the given tokens,
// but don't parse next token.
func (p *parser) matches(tokens ...Token) bool {
	for _, tok := range tokens {
		if p.tok == tok {
			return true
		}
	}
	return false
}

func (p *parser) consume(tok Token, msg string) {
	if !p.matches(tok) {
		panic(p.errorf("%s", msg))
	}
	p.next()
}

// describe names the current token for error messages.
func (p *parser) describe() string {
	switch p.tok {
	case EOL:
		return "end of input"
	case STRING:
		return fmt.Sprintf("string %q", p.val)
	case NUMBER:
		return fmt.Sprintf("number %s", p.val)
	default:
		if p.tok.isOperator() {
			return fmt.Sprintf("'%s'", p.val)
		}
		return fmt.Sprintf("'%s'", p.tok)
	}
}

// Format given string and args with Sprintf and return an error
// with that message and the current position.
func (p *parser) errorf(format string, args ...interface{}) error {
	message := fmt.Sprintf(format, args...)
	return &ParseError{p.pos, message}
}
