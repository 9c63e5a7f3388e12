package diffmark

import "strings"

// ClauseKind identifies what a clause does to the string it is applied to.
type ClauseKind int

// Clause kinds.
const (
	ClauseLiteral          ClauseKind = iota // "abc": append text
	ClauseAppend                             // "+abc": append text
	ClausePrepend                            // "abc+": prepend text
	ClauseDeleteSuffix                       // "--abc": drop Count bytes from the end, append text
	ClauseDeletePrefix                       // "abc--": drop Count bytes from the start, prepend text
	ClauseDeletePrefixAll                    // "|--": drop Count bytes from the start
	ClauseReplaceFromEnd                     // "**abc": replace the Count-th token from the end
	ClauseReplaceFromStart                   // "abc**": replace the Count-th token from the start
)

var clauseKindNames = [...]string{
	ClauseLiteral:          "literal",
	ClauseAppend:           "append",
	ClausePrepend:          "prepend",
	ClauseDeleteSuffix:     "delete-suffix",
	ClauseDeletePrefix:     "delete-prefix",
	ClauseDeletePrefixAll:  "delete-prefix-all",
	ClauseReplaceFromEnd:   "replace-from-end",
	ClauseReplaceFromStart: "replace-from-start",
}

// String returns the kind's name.
func (k ClauseKind) String() string {
	if k < 0 || int(k) >= len(clauseKindNames) {
		return "unknown"
	}
	return clauseKindNames[k]
}

// Clause is one semicolon-separated step of a pattern.
type Clause struct {
	Kind  ClauseKind
	Count int    // operator run length; zero for text-only kinds
	Text  string // unescaped literal text
}

// Parse validates pattern and splits it into clauses.
func Parse(pattern string) ([]Clause, error) {
	var clauses []Clause
	_, err := scan(pattern, func(raw string, final state) {
		clauses = append(clauses, newClause(trimClause(raw), final))
	})
	if err != nil {
		return nil, err
	}
	return clauses, nil
}

// newClause builds a clause from trimmed clause text and the automaton state
// the text ended in.
func newClause(p string, final state) Clause {
	switch final {
	case stateAppendText:
		return Clause{Kind: ClauseAppend, Text: Unescape(p[1:])}
	case statePrependOp:
		n := trailingRun(p, '+')
		return Clause{Kind: ClausePrepend, Count: n, Text: Unescape(p[:len(p)-n])}
	case stateDeleteSuffixOp, stateDeleteSuffixText:
		n := leadingRun(p, '-')
		return Clause{Kind: ClauseDeleteSuffix, Count: n, Text: Unescape(p[n:])}
	case stateDeletePrefixOp:
		n := trailingRun(p, '-')
		return Clause{Kind: ClauseDeletePrefix, Count: n, Text: Unescape(p[:len(p)-n])}
	case stateBarDashes:
		return Clause{Kind: ClauseDeletePrefixAll, Count: len(p) - 1}
	case stateReplaceEndText:
		n := leadingRun(p, '*')
		return Clause{Kind: ClauseReplaceFromEnd, Count: n, Text: Unescape(p[n:])}
	case stateReplaceStartOp:
		n := trailingRun(p, '*')
		return Clause{Kind: ClauseReplaceFromStart, Count: n, Text: Unescape(p[:len(p)-n])}
	}
	return Clause{Kind: ClauseLiteral, Text: Unescape(p)}
}

// Apply transforms s according to the clause. Counts larger than s truncate.
func (c Clause) Apply(s string) string {
	switch c.Kind {
	case ClausePrepend:
		return c.Text + s
	case ClauseDeleteSuffix:
		return s[:len(s)-min(c.Count, len(s))] + c.Text
	case ClauseDeletePrefix:
		return c.Text + s[min(c.Count, len(s)):]
	case ClauseDeletePrefixAll:
		return s[min(c.Count, len(s)):]
	case ClauseReplaceFromEnd:
		return replaceToken(s, c.Count, c.Text, false)
	case ClauseReplaceFromStart:
		return replaceToken(s, c.Count, c.Text, true)
	}
	return s + c.Text
}

// trimClause removes leading spaces and unescaped trailing spaces. An escaped
// trailing space survives as a single "\ ".
func trimClause(raw string) string {
	p := strings.TrimLeft(raw, " ")
	end := len(p)
	for end > 0 && p[end-1] == ' ' {
		end--
	}
	if end < len(p) && backslashesBefore(p, end)%2 == 1 {
		end++
	}
	return p[:end]
}

// leadingRun counts the bytes equal to c at the start of s.
func leadingRun(s string, c byte) int {
	n := 0
	for n < len(s) && s[n] == c {
		n++
	}
	return n
}

// trailingRun counts the bytes equal to c at the end of s. When the run is
// preceded by an odd number of backslashes its first byte is escaped and is
// not counted.
func trailingRun(s string, c byte) int {
	n := 0
	for n < len(s) && s[len(s)-1-n] == c {
		n++
	}
	if n > 0 && backslashesBefore(s, len(s)-n)%2 == 1 {
		n--
	}
	return n
}

// backslashesBefore counts the consecutive backslashes ending just before s[i].
func backslashesBefore(s string, i int) int {
	n := 0
	for i-1-n >= 0 && s[i-1-n] == '\\' {
		n++
	}
	return n
}
