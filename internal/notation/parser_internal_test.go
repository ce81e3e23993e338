package notation

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParser(t *testing.T) {
	exprs := []struct {
		test     string
		expected string
		hasError bool
	}{
		{
			test:     "10 + 5",
			expected: "( 10 + 5 )",
		},
		{
			test:     `"10" + 5`,
			expected: `( "10" + 5 )`,
		},
		{
			test:     `'hello' * 5`,
			expected: `( "hello" * 5 )`,
		},
		{
			test:     "x1 == 2",
			hasError: true,
		},
		{
			test:     "-5 - -5",
			expected: "( -5 - -5 )",
		},
		{
			test:     `-"10"`,
			expected: `-"10"`,
		},
		{
			test:     `!""`,
			expected: `( ! "" )`,
		},
		{
			test:     "!true",
			expected: "( ! true )",
		},
		{
			test:     "NaN !== NaN",
			expected: "( NaN !== NaN )",
		},
		{
			test:     "-Infinity < 0",
			expected: "( -Infinity < 0 )",
		},
		{
			test:     "1e21",
			expected: "1e+21",
		},
		{
			test:     "10 % 3",
			expected: "( 10 % 3 )",
		},
		{
			test:     "",
			hasError: true,
		},
		{
			test:     "10 +",
			hasError: true,
		},
		{
			test:     "+ 10",
			hasError: true,
		},
		{
			test:     "1 + 2 + 3",
			hasError: true,
		},
		{
			test:     "1 2",
			hasError: true,
		},
		{
			test:     "1 ! 2",
			hasError: true,
		},
		{
			test:     "!1 && 2",
			hasError: true,
		},
		{
			test:     "(1 + 2)",
			hasError: true,
		},
		{
			test:     `"unterminated`,
			hasError: true,
		},
	}

	for idx, data := range exprs {
		t.Run(fmt.Sprintf("test%d: %s", idx+1, data.test), func(t *testing.T) {
			expr, err := parse([]byte(data.test))
			if err != nil && !data.hasError {
				t.Errorf("parse error: %v", err)
				return
			}

			if data.hasError {
				assert.NotNil(t, err)
				assert.IsType(t, &ParseError{}, err)
			} else {
				assert.Equal(t, data.expected, expr.String())
			}
		})
	}
}

func TestParseErrorPosition(t *testing.T) {
	_, err := parse([]byte("10 + @"))
	if assert.Error(t, err) {
		perr := err.(*ParseError)
		assert.Equal(t, 5, perr.Position)
		assert.Equal(t, "parse error at column 5: unexpected char '@'", perr.Error())
	}
}
