package exercises_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/tupyy/coerce/internal/coercion"
	"github.com/tupyy/coerce/internal/exercises"
)

var _ = Describe("Operate", func() {
	identical := func(got, want coercion.Value) {
		ExpectWithOffset(1, coercion.Identical(got, want)).To(BeTrue(), "got %s, want %s", got, want)
	}

	It("computes every value from numbers", func() {
		outcome, err := exercises.Operate(coercion.Number(10), coercion.Number(5), coercion.Number(10))
		Expect(err).To(BeNil())

		identical(outcome.A, coercion.Number(2))
		identical(outcome.B, coercion.Number(100))
		identical(outcome.C, coercion.Number(5))
		identical(outcome.D, coercion.Number(15))
		identical(outcome.E, coercion.Number(50))
		identical(outcome.PreviousC, coercion.Number(10))
	})

	It("concatenates the sum when the inputs are prompt text", func() {
		outcome, err := exercises.Operate(coercion.Str("10"), coercion.Str("5"), coercion.Number(10))
		Expect(err).To(BeNil())

		identical(outcome.D, coercion.Str("105"))
		identical(outcome.E, coercion.Number(50))
		identical(outcome.C, coercion.Number(5))
		identical(outcome.A, coercion.Number(2))
	})

	It("leaves the caller's values untouched", func() {
		a, b := coercion.Str("8"), coercion.Str("2")

		_, err := exercises.Operate(a, b, coercion.Number(10))
		Expect(err).To(BeNil())

		identical(a, coercion.Str("8"))
		identical(b, coercion.Str("2"))
	})

	It("returns the values in order", func() {
		outcome, err := exercises.Operate(coercion.Str("hello"), coercion.Number(5), coercion.Number(10))
		Expect(err).To(BeNil())

		values := outcome.Values()
		Expect(values).To(HaveLen(5))
		identical(values[0], coercion.NaN())
		identical(values[1], coercion.Number(100))
		identical(values[2], coercion.NaN())
		identical(values[3], coercion.Str("hello5"))
		identical(values[4], coercion.NaN())
	})
})
