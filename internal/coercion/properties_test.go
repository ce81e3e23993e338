package coercion_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/tupyy/coerce/internal/coercion"
)

var _ = Describe("coercion evaluator", func() {
	var operands []coercion.Value

	BeforeEach(func() {
		operands = []coercion.Value{
			coercion.Number(0),
			coercion.Number(10),
			coercion.Number(-2.5),
			coercion.NaN(),
			coercion.Str(""),
			coercion.Str("10"),
			coercion.Str("hello"),
			coercion.Bool(true),
			coercion.Bool(false),
		}
	})

	DescribeTable("tutorial results",
		func(left coercion.Value, token string, right coercion.Value, expected coercion.Value) {
			res, err := coercion.EvaluateToken(left, token, right)
			Expect(err).To(BeNil())
			Expect(coercion.Identical(res, expected)).To(BeTrue(), "got %s", res)
		},
		Entry("10 + 5", coercion.Number(10), "+", coercion.Number(5), coercion.Number(15)),
		Entry(`"10" + 5`, coercion.Str("10"), "+", coercion.Number(5), coercion.Str("105")),
		Entry(`"10" - 5`, coercion.Str("10"), "-", coercion.Number(5), coercion.Number(5)),
		Entry(`"hello" * 5`, coercion.Str("hello"), "*", coercion.Number(5), coercion.NaN()),
		Entry(`"hello" + 5`, coercion.Str("hello"), "+", coercion.Number(5), coercion.Str("hello5")),
		Entry(`"10" == 10`, coercion.Str("10"), "==", coercion.Number(10), coercion.Bool(true)),
		Entry(`"10" === 10`, coercion.Str("10"), "===", coercion.Number(10), coercion.Bool(false)),
	)

	It("&& returns the left operand when it is falsy and the right one otherwise", func() {
		for _, a := range operands {
			for _, b := range operands {
				res, err := coercion.Evaluate(a, coercion.And, b)
				Expect(err).To(BeNil())

				if coercion.Truthy(a) {
					Expect(coercion.Identical(res, b)).To(BeTrue())
				} else {
					Expect(coercion.Identical(res, a)).To(BeTrue())
				}
			}
		}
	})

	It("|| returns the left operand when it is truthy and the right one otherwise", func() {
		for _, a := range operands {
			for _, b := range operands {
				res, err := coercion.Evaluate(a, coercion.Or, b)
				Expect(err).To(BeNil())

				if coercion.Truthy(a) {
					Expect(coercion.Identical(res, a)).To(BeTrue())
				} else {
					Expect(coercion.Identical(res, b)).To(BeTrue())
				}
			}
		}
	})

	It("never reports NaN equal to anything", func() {
		for _, b := range operands {
			for _, op := range []coercion.Operation{coercion.Eq, coercion.StrictEq} {
				res, err := coercion.Evaluate(coercion.NaN(), op, b)
				Expect(err).To(BeNil())
				Expect(res).To(Equal(coercion.Bool(false)))
			}
		}
	})

	It("keeps != and !== as the negation of == and ===", func() {
		for _, a := range operands {
			for _, b := range operands {
				eq, _ := coercion.Evaluate(a, coercion.Eq, b)
				ne, _ := coercion.Evaluate(a, coercion.Ne, b)
				Expect(ne.Boolean()).To(Equal(!eq.Boolean()))

				seq, _ := coercion.Evaluate(a, coercion.StrictEq, b)
				sne, _ := coercion.Evaluate(a, coercion.StrictNe, b)
				Expect(sne.Boolean()).To(Equal(!seq.Boolean()))
			}
		}
	})

	It("returns a NaN from any arithmetic with an unconvertible string", func() {
		for _, b := range operands {
			for _, op := range []coercion.Operation{coercion.Sub, coercion.Mul, coercion.Div} {
				res, err := coercion.Evaluate(coercion.Str("hello"), op, b)
				Expect(err).To(BeNil())
				Expect(res.IsNaN()).To(BeTrue())
			}
		}
	})
})
