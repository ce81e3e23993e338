package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	config "github.com/tupyy/coerce/configuration"
	"sigs.k8s.io/yaml"
)

// resetFlags puts every flag back to its default since cobra keeps them between runs.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.PersistentFlags().VisitAll(reset)
	cmd.Flags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs(append(args, "--log-level", "error"))

	err := rootCmd.ExecuteContext(context.TODO())
	return out.String(), err
}

func TestEvalText(t *testing.T) {
	tests := []struct {
		expr     string
		expected string
	}{
		{expr: `"10" + 5`, expected: "\"105\"\n"},
		{expr: `"10" - 5`, expected: "5\n"},
		{expr: `"hello" * 5`, expected: "NaN\n"},
		{expr: `10 === "10"`, expected: "false\n"},
		{expr: `0 || "fallback"`, expected: "\"fallback\"\n"},
	}

	for _, test := range tests {
		t.Run(test.expr, func(t *testing.T) {
			out, err := run(t, "eval", test.expr)
			require.NoError(t, err)
			assert.Equal(t, test.expected, out)
		})
	}
}

func TestEvalExplain(t *testing.T) {
	out, err := run(t, "eval", "--explain", `"10" - true`)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "9", lines[3])
}

func TestEvalJSON(t *testing.T) {
	out, err := run(t, "eval", "-o", "json", `"10" + 5`)
	require.NoError(t, err)

	var res map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, `( "10" + 5 )`, res["expr"])
	assert.Equal(t, map[string]interface{}{"type": "string", "value": "105"}, res["result"])
	assert.NotContains(t, res, "steps")
}

func TestEvalYAML(t *testing.T) {
	out, err := run(t, "eval", "--output", "yaml", "1 / 0")
	require.NoError(t, err)

	var res map[string]interface{}
	require.NoError(t, yaml.Unmarshal([]byte(out), &res))
	assert.Equal(t, map[string]interface{}{"type": "number", "value": "Infinity"}, res["result"])
}

func TestEvalErrors(t *testing.T) {
	_, err := run(t, "eval", "10 % 3")
	assert.EqualError(t, err, "expr '( 10 % 3 )': unsupported operation '%'")

	_, err = run(t, "eval", "(1 + 2)")
	assert.Error(t, err)

	_, err = run(t, "eval", "-o", "xml", "1 + 1")
	assert.Error(t, err)
}

func TestConformBuiltin(t *testing.T) {
	out, err := run(t, "conform")
	require.NoError(t, err)
	assert.Contains(t, out, "0 failed")
}

func TestConformFailingSuite(t *testing.T) {
	dir := t.TempDir()
	suite := `
name: failing
cases:
  - name: wrong sum
    expr: 1 + 1
    expect:
      value: 3
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "failing.yaml"), []byte(suite), 0o600))

	out, err := run(t, "conform", "--suites", dir)
	assert.EqualError(t, err, "1 cases failed")
	assert.Contains(t, out, "FAIL failing/wrong sum: 1 + 1: expected 3, got 2")
	assert.Contains(t, out, "0 passed, 1 failed, 0 skipped (1 total)")
}

func TestGrades(t *testing.T) {
	out, err := run(t, "grades", "25", "abc", "17", "30")
	require.NoError(t, err)

	assert.Equal(t, `"25": good
"abc": invalid mark
"17": failed
"30": very good
sufficient: 2, insufficient: 1
`, out)
}

func TestOperate(t *testing.T) {
	out, err := run(t, "operate", "10", "5")
	require.NoError(t, err)

	assert.Contains(t, out, "sum: \"105\"\n")
	assert.Contains(t, out, "product: 50\n")
	assert.Contains(t, out, "c = 5 (was 10)\n")
	assert.Contains(t, out, "a = \"10\" (unchanged)\n")

	out, err = run(t, "operate", "--literal", "10", "5", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "sum: 15\n")
	assert.Contains(t, out, "c = 5 (was 1)\n")

	_, err = run(t, "operate", "--literal", "ten", "5")
	assert.Error(t, err)
}

type lines struct {
	lines []string
}

func (l *lines) Readline() (string, error) {
	if len(l.lines) == 0 {
		return "", io.EOF
	}
	line := l.lines[0]
	l.lines = l.lines[1:]
	return line, nil
}

type failingReader struct{}

func (failingReader) Readline() (string, error) {
	return "", errors.New("terminal closed")
}

func TestRepl(t *testing.T) {
	var out bytes.Buffer
	in := &lines{lines: []string{
		`"10" + 5`,
		"",
		"10 % 3",
		".explain",
		`"3" * "4"`,
		".exit",
		"1 + 1",
	}}

	require.NoError(t, repl(in, &out))

	assert.True(t, strings.HasPrefix(out.String(), "\"105\"\nerror: expr '( 10 % 3 )': unsupported operation '%'\n"))
	assert.Contains(t, out.String(), "explain: true\n")
	assert.True(t, strings.HasSuffix(out.String(), "12\n"))
	assert.NotContains(t, out.String(), "\n2\n")

	assert.EqualError(t, repl(failingReader{}, io.Discard), "terminal closed")
}

func TestReplPromptFlag(t *testing.T) {
	resetFlags(rootCmd)
	defer resetFlags(rootCmd)

	f := replCmd.Flags().Lookup("prompt")
	require.NotNil(t, f)
	assert.Equal(t, "JS>>> ", f.DefValue)

	require.NoError(t, config.InitConfiguration(replCmd, ""))
	assert.Equal(t, "JS>>> ", config.GetPrompt())

	require.NoError(t, replCmd.Flags().Set("prompt", "js> "))
	require.NoError(t, config.InitConfiguration(replCmd, ""))
	assert.Equal(t, "js> ", config.GetPrompt())
}
