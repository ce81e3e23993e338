package conformance

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Expected error kinds.
const (
	ErrorUnsupported = "unsupported"
	ErrorParse       = "parse"
)

// Suite represents a complete YAML suite file
type Suite struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Cases       []Case `json:"cases"`
}

// Case is a single expression and its expected outcome
type Case struct {
	Name   string      `json:"name"`
	Expr   string      `json:"expr"`
	Skip   string      `json:"skip,omitempty"` // reason
	Expect Expectation `json:"expect"`
}

// Expectation holds either the expected value or the expected error kind
type Expectation struct {
	Value Literal `json:"value,omitempty"` // operand notation, e.g. '"105"' or NaN
	Error string  `json:"error,omitempty"` // unsupported|parse
}

// Literal is an operand-notation literal. Plain YAML scalars are accepted too, so
// `value: 15` and `value: true` need no quoting. -0, NaN and the infinities must be
// quoted: YAML turns -0 into 0 and .inf is not valid JSON.
type Literal string

func (l *Literal) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*l = Literal(s)
		return nil
	}

	if bytes.Equal(data, []byte("null")) {
		*l = ""
		return nil
	}

	*l = Literal(data)
	return nil
}

// Validate checks that every case can be run.
func (s *Suite) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("suite has no name")
	}

	for i, c := range s.Cases {
		if c.Name == "" {
			return fmt.Errorf("suite %s: case %d has no name", s.Name, i+1)
		}
		if c.Expr == "" {
			return fmt.Errorf("suite %s: case %q has no expr", s.Name, c.Name)
		}

		hasValue := c.Expect.Value != ""
		hasError := c.Expect.Error != ""
		if hasValue == hasError {
			return fmt.Errorf("suite %s: case %q must expect either a value or an error", s.Name, c.Name)
		}
		if hasError && c.Expect.Error != ErrorUnsupported && c.Expect.Error != ErrorParse {
			return fmt.Errorf("suite %s: case %q: unknown error kind %q", s.Name, c.Name, c.Expect.Error)
		}
	}

	return nil
}
