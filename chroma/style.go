package chroma

import (
	chromalib "github.com/alecthomas/chroma/v2"
	"github.com/fwojciec/diffmark"
)

// KindOf maps a chroma token type produced by Lexer to a diffmark token kind.
func KindOf(tt chromalib.TokenType) diffmark.TokenKind {
	switch tt {
	case chromalib.StringEscape:
		return diffmark.TokenEscape
	case chromalib.Operator:
		return diffmark.TokenOperator
	case chromalib.Punctuation:
		return diffmark.TokenSeparator
	case chromalib.Error:
		return diffmark.TokenError
	default:
		return diffmark.TokenText
	}
}
