package exercises

import (
	"github.com/tupyy/coerce/internal/coercion"
)

const (
	minMark  = 0
	maxMark  = 30
	passMark = 18
)

type Grade int

const (
	GradeFailed Grade = iota
	GradeSufficient
	GradeGood
	GradeVeryGood
)

var gradeNames = map[Grade]string{
	GradeFailed:     "failed",
	GradeSufficient: "sufficient",
	GradeGood:       "good",
	GradeVeryGood:   "very good",
}

func (g Grade) String() string {
	return gradeNames[g]
}

// Passed returns true for every grade but GradeFailed.
func (g Grade) Passed() bool {
	return g != GradeFailed
}

type band struct {
	grade    Grade
	from, to float64
}

// checked in order, the first matching band wins
var bands = []band{
	{GradeSufficient, 18, 22},
	{GradeGood, 23, 26},
	{GradeVeryGood, 27, 30},
}

// ValidateMark keeps the mark as the text that was entered and accepts it when
// mark >= 0 && mark <= 30 holds under coercion. Empty input is therefore valid (as 0)
// and non-numeric text is not.
func ValidateMark(input string) (coercion.Value, bool) {
	mark := coercion.Str(input)
	return mark, within(mark, minMark, maxMark)
}

// Classify returns the grade band of mark. Marks falling between bands, such as 22.5,
// are GradeFailed.
func Classify(mark coercion.Value) Grade {
	for _, b := range bands {
		if within(mark, b.from, b.to) {
			return b.grade
		}
	}
	return GradeFailed
}

// CountMarks counts the marks satisfying mark >= 18 and the rest.
func CountMarks(marks []coercion.Value) (sufficient, insufficient int) {
	for _, mark := range marks {
		if holds(mark, coercion.Ge, coercion.Number(passMark)) {
			sufficient++
		} else {
			insufficient++
		}
	}
	return
}

// within evaluates mark >= from && mark <= to.
func within(mark coercion.Value, from, to float64) bool {
	lower := compare(mark, coercion.Ge, coercion.Number(from))
	upper := compare(mark, coercion.Le, coercion.Number(to))

	result, err := coercion.Evaluate(lower, coercion.And, upper)
	if err != nil {
		return false
	}
	return coercion.Truthy(result)
}

func holds(left coercion.Value, op coercion.Operation, right coercion.Value) bool {
	return coercion.Truthy(compare(left, op, right))
}

func compare(left coercion.Value, op coercion.Operation, right coercion.Value) coercion.Value {
	result, err := coercion.Evaluate(left, op, right)
	if err != nil {
		// relational operators are always supported
		return coercion.Bool(false)
	}
	return result
}
