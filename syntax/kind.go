package syntax

// Kind tags both tokens and tree nodes.
// Error is shared: a single unknown character lexes to an Error token, and
// the parser wraps unparsable trailing input in an Error node.
type Kind int

const (
	Error Kind = iota

	// Trivia.
	Whitespace
	Comment

	// Literals and identifiers.
	Number
	Ident

	// Keywords.
	LetKw

	// Symbols.
	Plus
	Minus
	Star
	Slash
	Equals
	LParen
	RParen

	// Nodes.
	Root
	VariableDef
	InfixExpr
	PrefixExpr
	ParenExpr
	Literal
	VariableRef
)

var kindNames = [...]string{
	Error:       "Error",
	Whitespace:  "Whitespace",
	Comment:     "Comment",
	Number:      "Number",
	Ident:       "Ident",
	LetKw:       "LetKw",
	Plus:        "Plus",
	Minus:       "Minus",
	Star:        "Star",
	Slash:       "Slash",
	Equals:      "Equals",
	LParen:      "LParen",
	RParen:      "RParen",
	Root:        "Root",
	VariableDef: "VariableDef",
	InfixExpr:   "InfixExpr",
	PrefixExpr:  "PrefixExpr",
	ParenExpr:   "ParenExpr",
	Literal:     "Literal",
	VariableRef: "VariableRef",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "Unknown"
	}

	return kindNames[k]
}

// IsTrivia reports whether tokens of this kind are ignored by the grammar
// but kept in the tree.
func (k Kind) IsTrivia() bool {
	return k == Whitespace || k == Comment
}
