// Package chroma highlights diffmark patterns using the chroma library.
package chroma

import (
	chromalib "github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
)

// LexerName is the name the pattern lexer is registered under.
const LexerName = "diffmark"

// Lexer tokenizes diffmark patterns. Unescaped operator characters are
// operators wherever they appear; grammar errors are marked separately by the
// Highlighter.
var Lexer = lexers.Register(chromalib.MustNewLexer(
	&chromalib.Config{
		Name:      LexerName,
		Aliases:   []string{"dmk"},
		Filenames: []string{"*.dmk"},
		MimeTypes: []string{"text/x-diffmark"},
	},
	func() chromalib.Rules {
		return chromalib.Rules{
			"root": {
				{Pattern: `\\[\s\S]`, Type: chromalib.StringEscape},
				{Pattern: `\\`, Type: chromalib.Error},
				{Pattern: `;`, Type: chromalib.Punctuation},
				{Pattern: `[+*|-]+`, Type: chromalib.Operator},
				{Pattern: `[^\\;+*|-]+`, Type: chromalib.Text},
			},
		}
	},
))
