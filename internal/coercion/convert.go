package coercion

import (
	"errors"
	"math"
	"math/big"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

var (
	decimalLiteral = regexp.MustCompile(`^[+-]?(?:[0-9]+\.?[0-9]*|\.[0-9]+)(?:[eE][+-]?[0-9]+)?$`)
	hexLiteral     = regexp.MustCompile(`^0[xX][0-9a-fA-F]+$`)
	octalLiteral   = regexp.MustCompile(`^0[oO][0-7]+$`)
	binaryLiteral  = regexp.MustCompile(`^0[bB][01]+$`)
)

// Truthy reports the boolean interpretation of v used by &&, || and !.
// 0, NaN, "" and false are falsy; everything else is truthy.
func Truthy(v Value) bool {
	switch v.kind {
	case KindNumber:
		return v.n != 0
	case KindString:
		return v.s != ""
	case KindBoolean:
		return v.b
	default:
		return false
	}
}

// ToNumber applies loose numeric conversion. The result is either a Number or NaN.
func ToNumber(v Value) Value {
	switch v.kind {
	case KindNumber, KindNaN:
		return v
	case KindBoolean:
		if v.b {
			return Number(1)
		}
		return Number(0)
	default:
		return Number(parseNumeric(v.s))
	}
}

// parseNumeric converts text the way a string operand is converted in arithmetic:
// surrounding white space is ignored, blank text is 0, anything that is not entirely
// a numeric literal is NaN.
func parseNumeric(s string) float64 {
	s = strings.TrimFunc(s, isSpace)
	if s == "" {
		return 0
	}

	switch s {
	case "Infinity", "+Infinity":
		return math.Inf(1)
	case "-Infinity":
		return math.Inf(-1)
	}

	if decimalLiteral.MatchString(s) {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			// out of range values come back as ±Inf or ±0, which is what we want
			var numErr *strconv.NumError
			if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
				return f
			}
			return math.NaN()
		}
		return f
	}

	base := 0
	switch {
	case hexLiteral.MatchString(s):
		base = 16
	case octalLiteral.MatchString(s):
		base = 8
	case binaryLiteral.MatchString(s):
		base = 2
	default:
		return math.NaN()
	}

	i, ok := new(big.Int).SetString(s[2:], base)
	if !ok {
		return math.NaN()
	}
	f, _ := new(big.Float).SetInt(i).Float64()
	return f
}

// isSpace matches the white space and line terminators trimmed from numeric strings.
func isSpace(r rune) bool {
	if r == '\uFEFF' {
		return true
	}
	return r != '\u0085' && unicode.IsSpace(r)
}

// ToString returns the textual representation used when a value is concatenated.
func ToString(v Value) string {
	switch v.kind {
	case KindNumber:
		return formatNumber(v.n)
	case KindString:
		return v.s
	case KindBoolean:
		if v.b {
			return "true"
		}
		return "false"
	default:
		return "NaN"
	}
}

// formatNumber renders n with the shortest round-tripping digits, using plain
// notation for decimal exponents in (-7, 21] and exponent notation otherwise.
func formatNumber(n float64) string {
	switch {
	case math.IsNaN(n):
		return "NaN"
	case n == 0:
		return "0"
	case math.IsInf(n, 1):
		return "Infinity"
	case math.IsInf(n, -1):
		return "-Infinity"
	}

	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}

	// d.ddddde±XX
	sci := strconv.FormatFloat(n, 'e', -1, 64)
	mantissa, expText, _ := strings.Cut(sci, "e")
	digits := strings.Replace(mantissa, ".", "", 1)
	exp, _ := strconv.Atoi(expText)

	k := len(digits)
	point := exp + 1 // position of the decimal point relative to digits

	var b strings.Builder
	b.WriteString(sign)

	switch {
	case k <= point && point <= 21:
		b.WriteString(digits)
		b.WriteString(strings.Repeat("0", point-k))
	case 0 < point && point <= 21:
		b.WriteString(digits[:point])
		b.WriteByte('.')
		b.WriteString(digits[point:])
	case -6 < point && point <= 0:
		b.WriteString("0.")
		b.WriteString(strings.Repeat("0", -point))
		b.WriteString(digits)
	default:
		b.WriteByte(digits[0])
		if k > 1 {
			b.WriteByte('.')
			b.WriteString(digits[1:])
		}
		b.WriteByte('e')
		if exp >= 0 {
			b.WriteByte('+')
		}
		b.WriteString(strconv.Itoa(exp))
	}

	return b.String()
}

// Identical reports whether a and b are the same value: same kind and same payload,
// with NaN identical to NaN and +0 distinct from -0. It is not an operator; the
// conformance runner and tests use it to compare results.
func Identical(a, b Value) bool {
	if a.kind != b.kind {
		return false
	}

	switch a.kind {
	case KindNumber:
		return a.n == b.n && math.Signbit(a.n) == math.Signbit(b.n)
	case KindString:
		return a.s == b.s
	case KindBoolean:
		return a.b == b.b
	default:
		return true
	}
}
