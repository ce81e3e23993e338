package notation

import (
	"bytes"
	"fmt"

	"github.com/tupyy/coerce/internal/coercion"
)

type lexer struct {
	src     []byte
	ch      byte
	offset  int
	pos     int
	nextPos int
}

func newLexer(src []byte) *lexer {
	l := &lexer{src: src}
	l.next()

	return l
}

// Scan returns the position, token and text of the next token. The text is the
// decoded content for strings, the literal for numbers, the operator for operators
// and an error message for ILLEGAL.
func (l *lexer) Scan() (int, Token, string) {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r' {
		l.next()
	}

	pos := l.pos

	if l.ch == 0 {
		return pos, EOL, ""
	}

	switch {
	case isDigit(l.ch) || (l.ch == '.' && isDigit(l.peek())):
		tok, val := l.number()
		return pos, tok, val
	case isAlpha(l.ch):
		tok, val := l.identifier()
		return pos, tok, val
	case l.ch == '"' || l.ch == '\'':
		tok, val := l.quoted()
		return pos, tok, val
	case isOperatorChar(l.ch):
		tok, val := l.operator()
		return pos, tok, val
	}

	ch := l.ch
	l.next()

	return pos, ILLEGAL, fmt.Sprintf("unexpected char '%c'", ch)
}

func (l *lexer) number() (Token, string) {
	start := l.pos
	prefixed := false
	if l.ch == '0' {
		switch l.peek() {
		case 'x', 'X', 'o', 'O', 'b', 'B':
			prefixed = true
		}
	}

	for isAlpha(l.ch) || isDigit(l.ch) || l.ch == '.' || l.ch == '_' {
		prev := l.ch
		l.next()
		// exponent sign
		if !prefixed && (prev == 'e' || prev == 'E') && (l.ch == '+' || l.ch == '-') {
			l.next()
		}
	}

	text := string(l.src[start:l.pos])
	if coercion.ToNumber(coercion.Str(text)).IsNaN() {
		return ILLEGAL, fmt.Sprintf("invalid number '%s'", text)
	}

	return NUMBER, text
}

func (l *lexer) identifier() (Token, string) {
	start := l.pos
	for isAlpha(l.ch) || isDigit(l.ch) || l.ch == '_' {
		l.next()
	}

	name := string(l.src[start:l.pos])
	tok, ok := keywords[name]
	if !ok {
		return ILLEGAL, fmt.Sprintf("unknown identifier '%s'", name)
	}

	return tok, name
}

func (l *lexer) quoted() (Token, string) {
	quote := l.ch
	l.next()

	chars := make([]byte, 0, 32)
	for {
		switch l.ch {
		case 0:
			return ILLEGAL, "unterminated string"
		case quote:
			l.next()
			return STRING, string(chars)
		case '\\':
			l.next()
			switch l.ch {
			case 0:
				return ILLEGAL, "unterminated string"
			case 'n':
				chars = append(chars, '\n')
			case 't':
				chars = append(chars, '\t')
			case 'r':
				chars = append(chars, '\r')
			default:
				chars = append(chars, l.ch)
			}
		default:
			chars = append(chars, l.ch)
		}
		l.next()
	}
}

func (l *lexer) operator() (Token, string) {
	rest := l.src[l.pos:]
	for _, op := range operators {
		if bytes.HasPrefix(rest, []byte(op.text)) {
			for i := 0; i < len(op.text); i++ {
				l.next()
			}
			return op.tok, op.text
		}
	}

	ch := l.ch
	l.next()

	return OPERATOR, string(ch)
}

// Load the next character into l.ch (or 0 on end of input) and update the position.
func (l *lexer) next() {
	l.pos = l.nextPos
	if l.offset >= len(l.src) {
		// move offset past the end once so l.pos points just after the last character
		if l.ch != 0 {
			l.ch = 0
			l.offset++
			l.nextPos++
		}
		return
	}
	ch := l.src[l.offset]
	l.ch = ch
	l.nextPos++
	l.offset++
}

func (l *lexer) peek() byte {
	if l.offset >= len(l.src) {
		return 0
	}
	return l.src[l.offset]
}

func isAlpha(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isOperatorChar(ch byte) bool {
	switch ch {
	case '+', '-', '*', '/', '&', '|', '!', '<', '>', '=', '%', '^', '~', '?', ':':
		return true
	default:
		return false
	}
}
