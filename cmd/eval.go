package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tupyy/coerce/internal/coercion"
	"github.com/tupyy/coerce/internal/notation"
	"go.uber.org/zap"
)

var explain bool

type evalResult struct {
	Expr   string          `json:"expr"`
	Result coercion.Value  `json:"result"`
	Steps  []notation.Step `json:"steps,omitempty"`
}

var evalCmd = &cobra.Command{
	Use:   "eval <expression>",
	Short: "Evaluate one expression",
	Example: `  coerce eval '"hello" * 5'
  coerce eval --explain '"10" - true'
  coerce eval -o json '0 || "fallback"'`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := evaluate(strings.Join(args, " "), explain)
		if err != nil {
			return err
		}

		return render(cmd.OutOrStdout(), res, func(w io.Writer) error {
			for _, step := range res.Steps {
				fmt.Fprintf(w, "%s = %s\n", step.Expr, step.Result)
			}
			_, err := fmt.Fprintln(w, res.Result)
			return err
		})
	},
}

func init() {
	evalCmd.Flags().BoolVar(&explain, "explain", false, "print the implicit conversions and intermediate results")
}

func evaluate(expression string, withSteps bool) (evalResult, error) {
	interpreter, err := notation.NewInterpreter(expression)
	if err != nil {
		return evalResult{}, err
	}

	steps, result, err := interpreter.Explain()
	if err != nil {
		return evalResult{}, err
	}

	zap.S().Debugw("expression evaluated", "expr", interpreter.Expr().String(), "result", result.String(), "kind", result.Kind().String())

	res := evalResult{
		Expr:   interpreter.Expr().String(),
		Result: result,
	}
	if withSteps {
		res.Steps = steps
	}

	return res, nil
}
