package diffmark

// TokenKind classifies a piece of pattern text for highlighting.
type TokenKind int

// Token kinds.
const (
	TokenText      TokenKind = iota // literal text
	TokenOperator                   // + - * |
	TokenEscape                     // backslash sequence
	TokenSeparator                  // clause separator ;
	TokenError                      // text the grammar cannot place
)

// Token is a highlighted segment of a pattern.
type Token struct {
	Text string
	Kind TokenKind
}

// Highlighter splits a pattern into tokens for display.
type Highlighter interface {
	// Highlight returns tokens whose texts concatenate to pattern.
	Highlight(pattern string) []Token
}
