package coercion

import "fmt"

// Operation is an operator supported by Evaluate.
type Operation int

const (
	Add Operation = iota
	Sub
	Mul
	Div

	And
	Or
	Not

	Gt
	Lt
	Ge
	Le

	Eq
	Ne
	StrictEq
	StrictNe

	// sentinel, keep last
	numOperations
)

var operationTokens = map[Operation]string{
	Add:      "+",
	Sub:      "-",
	Mul:      "*",
	Div:      "/",
	And:      "&&",
	Or:       "||",
	Not:      "!",
	Gt:       ">",
	Lt:       "<",
	Ge:       ">=",
	Le:       "<=",
	Eq:       "==",
	Ne:       "!=",
	StrictEq: "===",
	StrictNe: "!==",
}

var tokenOperations = func() map[string]Operation {
	m := make(map[string]Operation, len(operationTokens))
	for op, tok := range operationTokens {
		m[tok] = op
	}
	return m
}()

func (o Operation) String() string {
	if tok, ok := operationTokens[o]; ok {
		return tok
	}
	return fmt.Sprintf("Operation(%d)", int(o))
}

// IsUnary reports whether the operation takes a single operand.
func (o Operation) IsUnary() bool {
	return o == Not
}

// Operations returns all supported operations in declaration order.
func Operations() []Operation {
	ops := make([]Operation, 0, numOperations)
	for op := Add; op < numOperations; op++ {
		ops = append(ops, op)
	}
	return ops
}

// ParseOperation maps an operator token such as "===" to its Operation.
func ParseOperation(token string) (Operation, error) {
	op, ok := tokenOperations[token]
	if !ok {
		return 0, &UnsupportedOperationError{Token: token}
	}
	return op, nil
}

// UnsupportedOperationError is returned for an operator token the evaluator does not know.
type UnsupportedOperationError struct {
	Token string
}

func (e *UnsupportedOperationError) Error() string {
	return fmt.Sprintf("unsupported operation '%s'", e.Token)
}
