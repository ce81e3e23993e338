package notation

import (
	"strings"
	"testing"
)

func TestTokens(t *testing.T) {
	tests := []struct {
		input  string
		output string
	}{
		{
			input:  `10 + 5`,
			output: "number + number EOL",
		},
		{
			input:  `"10" - 5 * 1.5 / .5`,
			output: "string - number * number / number EOL",
		},
		{
			input:  `&& || ! > < >= <= == != === !==`,
			output: "&& || ! > < >= <= == != === !== EOL",
		},
		{
			input:  `true false NaN Infinity`,
			output: "true false NaN Infinity EOL",
		},
		{
			input:  `'single' "double"`,
			output: "string string EOL",
		},
		{
			input:  `1e3 1E+3 2.5e-2 0x1F 0b101 0o17`,
			output: "number number number number number number EOL",
		},
		{
			input:  `10 % 3 ** 2`,
			output: "number operator number operator number EOL",
		},
		{
			input:  `>>>= >>> >> << ?? ** += -= &&= ||= ??=`,
			output: "operator operator operator operator operator operator operator operator operator operator operator EOL",
		},
		{
			input:  `2*-3 1<=-1`,
			output: "number * - number number <= - number EOL",
		},
		{
			input:  `1!==2`,
			output: "number !== number EOL",
		},
		{
			input:  `12px`,
			output: "illegal EOL",
		},
		{
			input:  `1.2.3`,
			output: "illegal EOL",
		},
		{
			input:  `x`,
			output: "illegal EOL",
		},
		{
			input:  `"open`,
			output: "illegal EOL",
		},
		{
			input:  `@`,
			output: "illegal EOL",
		},
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			l := newLexer([]byte(test.input))

			tokens := []string{}
			for {
				_, tok, _ := l.Scan()
				tokens = append(tokens, tok.String())
				if tok == EOL {
					break
				}
			}

			output := strings.Join(tokens, " ")
			if strings.TrimSpace(output) != test.output {
				t.Errorf("expected %q, got %q", test.output, output)
			}
		})
	}
}

func TestTokenValues(t *testing.T) {
	tests := []struct {
		input string
		tok   Token
		val   string
		pos   int
	}{
		{input: `  "a\"b\n"`, tok: STRING, val: "a\"b\n", pos: 2},
		{input: `'it\'s'`, tok: STRING, val: "it's", pos: 0},
		{input: ` 1e+21`, tok: NUMBER, val: "1e+21", pos: 1},
		{input: `===`, tok: STRICT_EQUALS, val: "===", pos: 0},
		{input: `%`, tok: OPERATOR, val: "%", pos: 0},
		{input: `"héllo"`, tok: STRING, val: "héllo", pos: 0},
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			pos, tok, val := newLexer([]byte(test.input)).Scan()
			if tok != test.tok || val != test.val || pos != test.pos {
				t.Errorf("expected (%d, %s, %q), got (%d, %s, %q)", test.pos, test.tok, test.val, pos, tok, val)
			}
		})
	}
}
