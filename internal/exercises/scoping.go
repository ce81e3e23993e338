package exercises

import (
	"fmt"

	"github.com/tupyy/coerce/internal/coercion"
)

// Outcome holds the five values computed by Operate, in the order [A, B, C, D, E].
type Outcome struct {
	A coercion.Value `json:"a"` // a / b, shadows the caller's a
	B coercion.Value `json:"b"` // always 100, shadows the caller's b
	C coercion.Value `json:"c"` // a - b, the caller's new c
	D coercion.Value `json:"d"` // a + b
	E coercion.Value `json:"e"` // a * b

	// PreviousC is the c the caller held before rebinding it to C.
	PreviousC coercion.Value `json:"previousC"`
}

// Values returns the outcome as the ordered list [A, B, C, D, E].
func (o Outcome) Values() []coercion.Value {
	return []coercion.Value{o.A, o.B, o.C, o.D, o.E}
}

// Operate computes D = a + b, E = a * b, C = a - b and A = a / b with the coerced
// operators and sets B to 100. The caller's a and b are untouched; the caller is
// expected to replace its own c with Outcome.C.
func Operate(a, b, c coercion.Value) (Outcome, error) {
	outcome := Outcome{
		B:         coercion.Number(100),
		PreviousC: c,
	}

	steps := []struct {
		op     coercion.Operation
		target *coercion.Value
	}{
		{coercion.Add, &outcome.D},
		{coercion.Mul, &outcome.E},
		{coercion.Sub, &outcome.C},
		{coercion.Div, &outcome.A},
	}

	for _, step := range steps {
		v, err := coercion.Evaluate(a, step.op, b)
		if err != nil {
			return Outcome{}, fmt.Errorf("failed to compute %s %s %s: %w", a, step.op, b, err)
		}
		*step.target = v
	}

	return outcome, nil
}
