package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/tupyy/coerce/internal/coercion"
	"github.com/tupyy/coerce/internal/exercises"
)

type markResult struct {
	Input  string `json:"input"`
	Valid  bool   `json:"valid"`
	Grade  string `json:"grade,omitempty"`
	Passed bool   `json:"passed"`
}

type gradesResult struct {
	Marks        []markResult `json:"marks"`
	Sufficient   int          `json:"sufficient"`
	Insufficient int          `json:"insufficient"`
}

var gradesCmd = &cobra.Command{
	Use:   "grades <mark>...",
	Short: "Validate and classify exam marks entered as text",
	Long: `grades keeps every mark as the text it was entered as and relies on implicit
conversion to check 0 <= mark <= 30 and to find its grade. Invalid marks are
reported and left out of the count.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		res := gradesResult{Marks: make([]markResult, 0, len(args))}

		valid := make([]coercion.Value, 0, len(args))
		for _, input := range args {
			mark, ok := exercises.ValidateMark(input)
			r := markResult{Input: mark.Text(), Valid: ok}
			if ok {
				grade := exercises.Classify(mark)
				r.Grade = grade.String()
				r.Passed = grade.Passed()
				valid = append(valid, mark)
			}
			res.Marks = append(res.Marks, r)
		}
		res.Sufficient, res.Insufficient = exercises.CountMarks(valid)

		return render(cmd.OutOrStdout(), res, func(w io.Writer) error {
			for _, m := range res.Marks {
				if !m.Valid {
					fmt.Fprintf(w, "%q: invalid mark\n", m.Input)
					continue
				}
				fmt.Fprintf(w, "%q: %s\n", m.Input, m.Grade)
			}
			_, err := fmt.Fprintf(w, "sufficient: %d, insufficient: %d\n", res.Sufficient, res.Insufficient)
			return err
		})
	},
}
