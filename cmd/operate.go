package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/tupyy/coerce/internal/coercion"
	"github.com/tupyy/coerce/internal/exercises"
	"github.com/tupyy/coerce/internal/notation"
)

var literals bool

type operateResult struct {
	Outcome exercises.Outcome `json:"outcome"`
	// caller's bindings after the call
	A coercion.Value `json:"a"`
	B coercion.Value `json:"b"`
	C coercion.Value `json:"c"`
}

var operateCmd = &cobra.Command{
	Use:   "operate <a> <b> [c]",
	Short: "Run the scoping demo on two inputs",
	Long: `operate computes a + b, a * b, a - b and a / b. By default a and b are taken as
text, the way a prompt returns them; --literal parses them as operands instead.
c defaults to 10 and is replaced by a - b.`,
	Args: cobra.RangeArgs(2, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		values := make([]coercion.Value, 0, 3)
		for _, arg := range args {
			v, err := operand(arg)
			if err != nil {
				return err
			}
			values = append(values, v)
		}

		a, b, c := values[0], values[1], coercion.Number(10)
		if len(values) == 3 {
			c = values[2]
		}

		outcome, err := exercises.Operate(a, b, c)
		if err != nil {
			return err
		}
		c = outcome.C

		res := operateResult{Outcome: outcome, A: a, B: b, C: c}

		return render(cmd.OutOrStdout(), res, func(w io.Writer) error {
			fmt.Fprintf(w, "sum: %s\n", outcome.D)
			fmt.Fprintf(w, "difference: %s\n", outcome.C)
			fmt.Fprintf(w, "product: %s\n", outcome.E)
			fmt.Fprintf(w, "quotient: %s\n", outcome.A)
			fmt.Fprintf(w, "returned: %s\n", outcome.Values())
			fmt.Fprintf(w, "a = %s (unchanged)\n", res.A)
			fmt.Fprintf(w, "b = %s (unchanged)\n", res.B)
			_, err := fmt.Fprintf(w, "c = %s (was %s)\n", res.C, outcome.PreviousC)
			return err
		})
	},
}

func init() {
	operateCmd.Flags().BoolVar(&literals, "literal", false, "parse the inputs as operands, e.g. 10 or \"10\"")
}

func operand(arg string) (coercion.Value, error) {
	if !literals {
		return coercion.Str(arg), nil
	}

	v, err := notation.ParseLiteral(arg)
	if err != nil {
		return coercion.Value{}, fmt.Errorf("invalid operand %q: %w", arg, err)
	}
	return v, nil
}
