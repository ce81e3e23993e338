package coercion

import (
	"encoding/json"
	"math"
	"strconv"
)

// Kind is the tag of a Value.
type Kind uint8

const (
	KindNumber Kind = iota
	KindString
	KindBoolean
	// KindNaN marks a result that is not a number. It is a terminal marker, not a
	// Number carrying a NaN payload.
	KindNaN
)

var kindNames = map[Kind]string{
	KindNumber:  "number",
	KindString:  "string",
	KindBoolean: "boolean",
	KindNaN:     "nan",
}

func (k Kind) String() string {
	return kindNames[k]
}

// Value is a tagged operand or result. Values are immutable and passed by value.
type Value struct {
	kind Kind
	n    float64
	s    string
	b    bool
}

// Number creates a numeric value. A NaN float becomes the NaN marker.
func Number(n float64) Value {
	if math.IsNaN(n) {
		return NaN()
	}
	return Value{kind: KindNumber, n: n}
}

// Str creates a string value.
func Str(s string) Value {
	return Value{kind: KindString, s: s}
}

// Bool creates a boolean value.
func Bool(b bool) Value {
	return Value{kind: KindBoolean, b: b}
}

// NaN returns the not-a-number marker.
func NaN() Value {
	return Value{kind: KindNaN}
}

func (v Value) Kind() Kind {
	return v.kind
}

// Float returns the numeric payload. It is NaN for the NaN marker and 0 for
// non-numeric kinds; use ToNumber to coerce.
func (v Value) Float() float64 {
	switch v.kind {
	case KindNumber:
		return v.n
	case KindNaN:
		return math.NaN()
	default:
		return 0
	}
}

// Text returns the string payload, or "" when v is not a string.
func (v Value) Text() string {
	return v.s
}

// Boolean returns the boolean payload, or false when v is not a boolean.
func (v Value) Boolean() bool {
	return v.b
}

func (v Value) IsNaN() bool {
	return v.kind == KindNaN
}

// String renders v as an operand-notation literal: 15, "105", true, NaN.
func (v Value) String() string {
	switch v.kind {
	case KindString:
		return strconv.Quote(v.s)
	default:
		return ToString(v)
	}
}

type jsonValue struct {
	Type  string      `json:"type"`
	Value interface{} `json:"value,omitempty"`
}

// MarshalJSON encodes v as {"type": ..., "value": ...}. Infinities are encoded as
// strings because JSON has no literal for them.
func (v Value) MarshalJSON() ([]byte, error) {
	out := jsonValue{Type: v.kind.String()}

	switch v.kind {
	case KindNumber:
		if math.IsInf(v.n, 0) {
			out.Value = ToString(v)
		} else {
			out.Value = v.n
		}
	case KindString:
		out.Value = v.s
	case KindBoolean:
		out.Value = v.b
	}

	return json.Marshal(out)
}
