package notation

type Token int

const (
	ILLEGAL Token = iota
	EOL

	// operators
	ADD
	SUB
	MUL
	QUO
	LAND
	LOR
	NOT
	GREATER
	LESS
	GTE
	LTE
	EQUALS
	NOT_EQUALS
	STRICT_EQUALS
	STRICT_NOT_EQUALS
	// OPERATOR is an operator character the evaluator does not support, e.g. '%'
	OPERATOR

	// literals
	STRING
	NUMBER
	TRUE
	FALSE
	NAN
	INFINITY
)

var tokenNames = map[Token]string{
	ILLEGAL:           "illegal",
	EOL:               "EOL",
	ADD:               "+",
	SUB:               "-",
	MUL:               "*",
	QUO:               "/",
	LAND:              "&&",
	LOR:               "||",
	NOT:               "!",
	GREATER:           ">",
	LESS:              "<",
	GTE:               ">=",
	LTE:               "<=",
	EQUALS:            "==",
	NOT_EQUALS:        "!=",
	STRICT_EQUALS:     "===",
	STRICT_NOT_EQUALS: "!==",
	OPERATOR:          "operator",
	STRING:            "string",
	NUMBER:            "number",
	TRUE:              "true",
	FALSE:             "false",
	NAN:               "NaN",
	INFINITY:          "Infinity",
}

// operators are matched longest first. Operators outside the supported set are
// kept whole as OPERATOR so evaluation can report them.
var operators = []struct {
	text string
	tok  Token
}{
	{">>>=", OPERATOR},
	{"===", STRICT_EQUALS},
	{"!==", STRICT_NOT_EQUALS},
	{">>>", OPERATOR},
	{"**=", OPERATOR},
	{"<<=", OPERATOR},
	{">>=", OPERATOR},
	{"&&=", OPERATOR},
	{"||=", OPERATOR},
	{"??=", OPERATOR},
	{"&&", LAND},
	{"||", LOR},
	{">=", GTE},
	{"<=", LTE},
	{"==", EQUALS},
	{"!=", NOT_EQUALS},
	{"**", OPERATOR},
	{"<<", OPERATOR},
	{">>", OPERATOR},
	{"??", OPERATOR},
	{"+=", OPERATOR},
	{"-=", OPERATOR},
	{"*=", OPERATOR},
	{"/=", OPERATOR},
	{"%=", OPERATOR},
	{"&=", OPERATOR},
	{"|=", OPERATOR},
	{"^=", OPERATOR},
	{"+", ADD},
	{"-", SUB},
	{"*", MUL},
	{"/", QUO},
	{"!", NOT},
	{">", GREATER},
	{"<", LESS},
}

var keywords = map[string]Token{
	"true":     TRUE,
	"false":    FALSE,
	"NaN":      NAN,
	"Infinity": INFINITY,
}

func (t Token) String() string {
	return tokenNames[t]
}

func (t Token) isOperator() bool {
	return t >= ADD && t <= OPERATOR
}
