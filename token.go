package diffmark

// Span is the byte range [Start, End) of a token within a string.
type Span struct {
	Start int
	End   int
}

// Tokens returns the spans of the maximal runs of non-space bytes in s.
func Tokens(s string) []Span {
	var spans []Span
	for i := 0; i < len(s); {
		if s[i] == ' ' {
			i++
			continue
		}
		start := i
		for i < len(s) && s[i] != ' ' {
			i++
		}
		spans = append(spans, Span{Start: start, End: i})
	}
	return spans
}

// replaceToken substitutes text for the n-th token of s, counted from the
// start or from the end. Tokens are only addressable from a side that s does
// not pad with spaces; otherwise, or when s has fewer than n tokens, s is
// returned unchanged.
func replaceToken(s string, n int, text string, fromStart bool) string {
	if s == "" || n < 1 {
		return s
	}
	if fromStart && s[0] == ' ' {
		return s
	}
	if !fromStart && s[len(s)-1] == ' ' {
		return s
	}

	spans := Tokens(s)
	if len(spans) < n {
		return s
	}
	target := spans[len(spans)-n]
	if fromStart {
		target = spans[n-1]
	}
	return s[:target.Start] + text + s[target.End:]
}

// tokenOrdinal returns the 1-based position, counted from the start, of the
// token beginning at offset i of s, or 0 if no token starts there.
func tokenOrdinal(s string, i int) int {
	for k, span := range Tokens(s) {
		if span.Start == i {
			return k + 1
		}
	}
	return 0
}
