package coercion

import (
	"unicode/utf16"
)

// Evaluate applies op to the operands following ECMAScript's implicit coercion rules.
// Malformed numeric text never fails: it becomes NaN. The only error is an
// *UnsupportedOperationError for an operation outside the supported set.
//
// Not is a prefix operator: its operand is right and left is ignored.
func Evaluate(left Value, op Operation, right Value) (Value, error) {
	switch op {
	case Add:
		return evalAdd(left, right), nil
	case Sub, Mul, Div:
		return evalArithmetic(left, op, right), nil
	case And:
		if !Truthy(left) {
			return left, nil
		}
		return right, nil
	case Or:
		if Truthy(left) {
			return left, nil
		}
		return right, nil
	case Not:
		return Bool(!Truthy(right)), nil
	case Gt, Lt, Ge, Le:
		return Bool(evalRelational(left, op, right)), nil
	case Eq:
		return Bool(looseEqual(left, right)), nil
	case Ne:
		return Bool(!looseEqual(left, right)), nil
	case StrictEq:
		return Bool(strictEqual(left, right)), nil
	case StrictNe:
		return Bool(!strictEqual(left, right)), nil
	default:
		return Value{}, &UnsupportedOperationError{Token: op.String()}
	}
}

// EvaluateToken is Evaluate with the operator given as its token, e.g. "!==".
func EvaluateToken(left Value, token string, right Value) (Value, error) {
	op, err := ParseOperation(token)
	if err != nil {
		return Value{}, err
	}
	return Evaluate(left, op, right)
}

// Negate implements unary minus: the operand is converted to a number and negated.
func Negate(v Value) Value {
	n := ToNumber(v)
	if n.IsNaN() {
		return n
	}
	return Number(-n.n)
}

// evalAdd concatenates when either side is a string, otherwise adds numerically.
func evalAdd(left, right Value) Value {
	if left.kind == KindString || right.kind == KindString {
		return Str(ToString(left) + ToString(right))
	}

	l, r := ToNumber(left), ToNumber(right)
	if l.IsNaN() || r.IsNaN() {
		return NaN()
	}
	return Number(l.n + r.n)
}

func evalArithmetic(left Value, op Operation, right Value) Value {
	l, r := ToNumber(left), ToNumber(right)
	if l.IsNaN() || r.IsNaN() {
		return NaN()
	}

	switch op {
	case Sub:
		return Number(l.n - r.n)
	case Mul:
		return Number(l.n * r.n)
	default:
		// IEEE-754: x/0 is ±Infinity and 0/0 is NaN
		return Number(l.n / r.n)
	}
}

// evalRelational compares two strings by UTF-16 code units and anything else
// numerically. A NaN on either side makes every comparison false.
func evalRelational(left Value, op Operation, right Value) bool {
	if left.kind == KindString && right.kind == KindString {
		cmp := compareUTF16(left.s, right.s)
		switch op {
		case Gt:
			return cmp > 0
		case Lt:
			return cmp < 0
		case Ge:
			return cmp >= 0
		default:
			return cmp <= 0
		}
	}

	l, r := ToNumber(left), ToNumber(right)
	if l.IsNaN() || r.IsNaN() {
		return false
	}

	switch op {
	case Gt:
		return l.n > r.n
	case Lt:
		return l.n < r.n
	case Ge:
		return l.n >= r.n
	default:
		return l.n <= r.n
	}
}

func compareUTF16(a, b string) int {
	ua := utf16.Encode([]rune(a))
	ub := utf16.Encode([]rune(b))

	for i := 0; i < len(ua) && i < len(ub); i++ {
		if ua[i] != ub[i] {
			if ua[i] < ub[i] {
				return -1
			}
			return 1
		}
	}

	switch {
	case len(ua) < len(ub):
		return -1
	case len(ua) > len(ub):
		return 1
	default:
		return 0
	}
}

// looseEqual implements ==. Values of the same type compare strictly; a boolean
// becomes 0 or 1 first, then a string compared with a number becomes a number.
func looseEqual(left, right Value) bool {
	if sameType(left, right) {
		return strictEqual(left, right)
	}

	if left.kind == KindBoolean {
		return looseEqual(ToNumber(left), right)
	}
	if right.kind == KindBoolean {
		return looseEqual(left, ToNumber(right))
	}

	// number and string
	return strictEqual(ToNumber(left), ToNumber(right))
}

// strictEqual implements ===: no coercion, NaN is never equal to anything.
func strictEqual(left, right Value) bool {
	if left.kind != right.kind {
		return false
	}

	switch left.kind {
	case KindNumber:
		return left.n == right.n
	case KindString:
		return left.s == right.s
	case KindBoolean:
		return left.b == right.b
	default:
		return false
	}
}

// sameType treats NaN as a number, which is what its type is in ECMAScript.
func sameType(a, b Value) bool {
	numeric := func(v Value) bool { return v.kind == KindNumber || v.kind == KindNaN }
	if numeric(a) && numeric(b) {
		return true
	}
	return a.kind == b.kind
}
