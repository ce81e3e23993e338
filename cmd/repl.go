package cmd

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"
	config "github.com/tupyy/coerce/configuration"
	"go.uber.org/zap"
)

var prompt string

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Evaluate expressions interactively",
	Long: `repl reads one expression per line and prints its result.
Type .explain to toggle the conversion trace and .exit or Ctrl-D to quit.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		rl, err := readline.NewEx(&readline.Config{
			Prompt:          config.GetPrompt(),
			InterruptPrompt: "^C",
			EOFPrompt:       ".exit",
			Stdout:          cmd.OutOrStdout(),
			Stderr:          cmd.ErrOrStderr(),
		})
		if err != nil {
			return err
		}
		defer rl.Close()

		return repl(rl, rl.Stdout())
	},
}

func init() {
	replCmd.Flags().StringVar(&prompt, "prompt", "JS>>> ", "prompt shown before each line")
}

type lineReader interface {
	Readline() (string, error)
}

func repl(r lineReader, w io.Writer) error {
	withSteps := false

	for {
		line, err := r.Readline()
		switch {
		case errors.Is(err, readline.ErrInterrupt):
			continue
		case errors.Is(err, io.EOF):
			return nil
		case err != nil:
			return err
		}

		line = strings.TrimSpace(line)
		switch line {
		case "":
			continue
		case ".exit":
			return nil
		case ".explain":
			withSteps = !withSteps
			fmt.Fprintf(w, "explain: %t\n", withSteps)
			continue
		}

		res, err := evaluate(line, withSteps)
		if err != nil {
			zap.S().Debugw("expression failed", "line", line, "error", err)
			fmt.Fprintf(w, "error: %s\n", err)
			continue
		}

		for _, step := range res.Steps {
			fmt.Fprintf(w, "  %s = %s\n", step.Expr, step.Result)
		}
		fmt.Fprintln(w, res.Result)
	}
}
