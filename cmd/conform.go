package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	config "github.com/tupyy/coerce/configuration"
	"github.com/tupyy/coerce/internal/conformance"
	"go.uber.org/zap"
)

var suites string

var conformCmd = &cobra.Command{
	Use:   "conform",
	Short: "Run the conformance suites",
	Long: `conform runs YAML case suites against the evaluator. Without --suites the
suites built into the binary are used.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		var (
			cases []conformance.LoadedCase
			err   error
		)
		if dir := config.GetSuitesDir(); dir != "" {
			cases, err = conformance.LoadDir(ctx, dir)
		} else {
			cases, err = conformance.Builtin(ctx)
		}
		if err != nil {
			return fmt.Errorf("failed to load suites: %w", err)
		}

		runner := conformance.NewRunner(
			conformance.WithReporter(conformance.NewLogReporter()),
			conformance.WithHostID(config.GetHostID()),
		)

		report, err := runner.RunAll(ctx, cases)
		if err != nil {
			return err
		}

		err = render(cmd.OutOrStdout(), report, func(w io.Writer) error {
			for _, res := range report.Failed() {
				fmt.Fprintf(w, "FAIL %s/%s: %s: %s\n", res.Suite, res.Name, res.Expr, res.Failure)
			}
			_, err := fmt.Fprintln(w, conformance.FormatStats(report.Stats))
			return err
		})
		if err != nil {
			return err
		}

		if report.Stats.Failed > 0 {
			zap.S().Errorw("conformance failed", "run_id", report.RunID, "failed", report.Stats.Failed)
			return fmt.Errorf("%d cases failed", report.Stats.Failed)
		}

		return nil
	},
}

func init() {
	conformCmd.Flags().StringVar(&suites, "suites", "", "directory holding the YAML suites")
}
