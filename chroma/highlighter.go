package chroma

import (
	"errors"

	chromalib "github.com/alecthomas/chroma/v2"
	"github.com/fwojciec/diffmark"
)

// Compile-time interface verification.
var _ diffmark.Highlighter = (*Highlighter)(nil)

// Highlighter splits patterns into display tokens with Lexer. Everything from
// the first grammar violation onwards is marked as an error.
type Highlighter struct{}

// NewHighlighter creates a new chroma-based highlighter.
func NewHighlighter() *Highlighter {
	return &Highlighter{}
}

// Highlight returns tokens whose texts concatenate to pattern. Returns an
// empty slice for an empty pattern.
func (h *Highlighter) Highlight(pattern string) []diffmark.Token {
	if pattern == "" {
		return []diffmark.Token{}
	}

	// Coalesce for better performance with consecutive tokens of the same type
	lexer := chromalib.Coalesce(Lexer)

	// The default options rewrite line endings; patterns must come back byte
	// for byte.
	iterator, err := lexer.Tokenise(&chromalib.TokeniseOptions{State: "root"}, pattern)
	if err != nil {
		return []diffmark.Token{{Text: pattern, Kind: diffmark.TokenError}}
	}

	var tokens []diffmark.Token
	for token := iterator(); token != chromalib.EOF; token = iterator() {
		tokens = append(tokens, diffmark.Token{Text: token.Value, Kind: KindOf(token.Type)})
	}

	var syntaxErr *diffmark.SyntaxError
	if err := diffmark.Validate(pattern); errors.As(err, &syntaxErr) {
		return markErrors(tokens, syntaxErr.Offset)
	}
	return tokens
}

// markErrors turns the text from byte offset onwards into one error token.
func markErrors(tokens []diffmark.Token, offset int) []diffmark.Token {
	var out []diffmark.Token
	pos := 0
	for i, tok := range tokens {
		end := pos + len(tok.Text)
		if end <= offset {
			out = append(out, tok)
			pos = end
			continue
		}
		if offset > pos {
			out = append(out, diffmark.Token{Text: tok.Text[:offset-pos], Kind: tok.Kind})
		}
		rest := tok.Text[max(offset-pos, 0):]
		for _, t := range tokens[i+1:] {
			rest += t.Text
		}
		return append(out, diffmark.Token{Text: rest, Kind: diffmark.TokenError})
	}
	// The offset is at the end of the pattern: flag the final token.
	if n := len(out); n > 0 {
		out[n-1].Kind = diffmark.TokenError
	}
	return out
}
