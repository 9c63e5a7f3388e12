package diffmark

import "strings"

// Escape converts text into a pattern-safe literal.
//
// Control characters become \n, \r and \t, and every operator character
// (\ + - * | ;) is backslash-escaped. A space is kept as is unless it is the
// first character and escapeLeading is set, or the last character and
// escapeTrailing is set; those become \s so they survive clause trimming.
func Escape(text string, escapeLeading, escapeTrailing bool) string {
	var sb strings.Builder
	sb.Grow(len(text) + len(text)/4)
	for i := 0; i < len(text); i++ {
		c := text[i]
		switch c {
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\t':
			sb.WriteString(`\t`)
		case ' ':
			if (i == 0 && escapeLeading) || (i == len(text)-1 && escapeTrailing) {
				sb.WriteString(`\s`)
			} else {
				sb.WriteByte(' ')
			}
		case '\\', '+', '-', '*', '|', ';':
			sb.WriteByte('\\')
			sb.WriteByte(c)
		default:
			sb.WriteByte(c)
		}
	}
	return sb.String()
}

// Unescape converts a pattern literal back into raw text.
// \n, \s, \r and \t map to LF, space, CR and TAB; any other escaped character
// maps to itself. A trailing lone backslash is copied through unchanged.
func Unescape(literal string) string {
	if strings.IndexByte(literal, '\\') < 0 {
		return literal
	}
	var sb strings.Builder
	sb.Grow(len(literal))
	for i := 0; i < len(literal); i++ {
		c := literal[i]
		if c != '\\' || i+1 == len(literal) {
			sb.WriteByte(c)
			continue
		}
		i++
		switch literal[i] {
		case 'n':
			sb.WriteByte('\n')
		case 's':
			sb.WriteByte(' ')
		case 'r':
			sb.WriteByte('\r')
		case 't':
			sb.WriteByte('\t')
		default:
			sb.WriteByte(literal[i])
		}
	}
	return sb.String()
}
