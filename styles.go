package diffmark

// ColorPair represents a foreground and background color combination.
// Colors should be hex strings in "#RRGGBB" format (e.g., "#ff0000" for red).
// Empty strings are valid and indicate no color override (use terminal default).
type ColorPair struct {
	Foreground string
	Background string
}

// Styles contains color pairs for all visual elements of a rendered corpus.
type Styles struct {
	Pattern   ColorPair // Encoded line (">> base/pattern/...")
	Word      ColorPair // Reconstructed line (" > base/variant/...")
	Operator  ColorPair // Pattern operators + - * |
	Escape    ColorPair // Backslash sequences
	Separator ColorPair // Clause separator ;
	Error     ColorPair // Malformed pattern text
	Selected  ColorPair // Selected entry in the browser
	Muted     ColorPair // Help and status text
}

// Theme provides styles for rendering.
// Different implementations can provide light/dark variants.
type Theme interface {
	Styles() Styles
}

// ForToken returns the colors used to display a pattern token of kind.
func (s Styles) ForToken(kind TokenKind) ColorPair {
	switch kind {
	case TokenOperator:
		return s.Operator
	case TokenEscape:
		return s.Escape
	case TokenSeparator:
		return s.Separator
	case TokenError:
		return s.Error
	default:
		return s.Pattern
	}
}
