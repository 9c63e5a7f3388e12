package diffmark

import (
	"errors"
	"fmt"
)

// ErrInvalidPattern is wrapped by every error returned for a pattern that
// violates the grammar.
var ErrInvalidPattern = errors.New("invalid pattern")

// SyntaxReason identifies why a pattern was rejected.
type SyntaxReason string

// Syntax error reasons.
const (
	ReasonTrailingBackslash SyntaxReason = "trailing_backslash"
	ReasonMisplacedEscape   SyntaxReason = "misplaced_escape"
	ReasonMixedOperators    SyntaxReason = "mixed_operators"
	ReasonMisplacedBar      SyntaxReason = "misplaced_bar"
	ReasonSpaceBeforeOp     SyntaxReason = "space_before_operator"
	ReasonTextAfterOp       SyntaxReason = "text_after_operator"
	ReasonEmptyClause       SyntaxReason = "empty_operator_clause"
)

// SyntaxError describes the first grammar violation found in a pattern.
type SyntaxError struct {
	Pattern string
	Offset  int // byte offset of the offending character
	Reason  SyntaxReason
}

// Error implements the error interface.
func (e *SyntaxError) Error() string {
	switch e.Reason {
	case ReasonTrailingBackslash:
		return fmt.Sprintf("%v: %q ends with a lone backslash", ErrInvalidPattern, e.Pattern)
	case ReasonEmptyClause:
		return fmt.Sprintf("%v: %q has an operator clause without text at offset %d",
			ErrInvalidPattern, e.Pattern, e.Offset)
	default:
		return fmt.Sprintf("%v: %q at offset %d: %s", ErrInvalidPattern, e.Pattern, e.Offset, e.Reason)
	}
}

// Unwrap allows errors.Is(err, ErrInvalidPattern).
func (e *SyntaxError) Unwrap() error {
	return ErrInvalidPattern
}

// state is a node of the clause grammar automaton.
type state uint8

// Automaton states. The name says what has been read since the last clause
// separator.
const (
	stateInvalid         state = iota
	stateStart                 // nothing but spaces
	stateLiteral               // "abc"
	stateAppendOp              // "+"
	stateAppendText            // "+abc"
	statePrependOp             // "abc+"
	stateDeleteSuffixOp        // "--"
	stateDeleteSuffixText      // "--abc"
	stateDeletePrefixOp        // "abc--"
	stateReplaceEndOp          // "**"
	stateReplaceEndText        // "**abc"
	stateReplaceStartOp        // "abc**"
	stateBar                   // "|"
	stateBarDashes             // "|--"
	numStates
)

// class is the input alphabet of the automaton. Operators that follow a
// space are distinct symbols because the grammar treats them differently.
type class uint8

const (
	classOther class = iota
	classSpace
	classBackslash
	classPlus
	classMinus
	classMinusAfterSpace
	classStar
	classStarAfterSpace
	classBar
	classSemicolon
	numClasses
)

// transitions is the automaton. Escaped characters are handled separately by
// escapeTransitions since a backslash consumes the byte that follows it.
var transitions = [numStates][numClasses]state{
	stateStart: {
		classOther:           stateLiteral,
		classSpace:           stateStart,
		classPlus:            stateAppendOp,
		classMinus:           stateDeleteSuffixOp,
		classMinusAfterSpace: stateDeleteSuffixOp,
		classStar:            stateReplaceEndOp,
		classStarAfterSpace:  stateReplaceEndOp,
		classBar:             stateBar,
		classSemicolon:       stateStart,
	},
	stateLiteral: {
		classOther:           stateLiteral,
		classSpace:           stateLiteral,
		classPlus:            statePrependOp,
		classMinus:           stateDeletePrefixOp,
		classMinusAfterSpace: stateDeletePrefixOp,
		classStar:            stateReplaceStartOp,
		classSemicolon:       stateStart,
	},
	stateAppendOp: {
		classOther: stateAppendText,
		classSpace: stateAppendText,
	},
	stateAppendText: {
		classOther:     stateAppendText,
		classSpace:     stateAppendText,
		classSemicolon: stateStart,
	},
	statePrependOp: {
		classSpace:     statePrependOp,
		classSemicolon: stateStart,
	},
	stateDeleteSuffixOp: {
		classOther:           stateDeleteSuffixText,
		classSpace:           stateDeleteSuffixText,
		classMinus:           stateDeleteSuffixOp,
		classMinusAfterSpace: stateDeleteSuffixOp,
		classSemicolon:       stateStart,
	},
	stateDeleteSuffixText: {
		classOther:     stateDeleteSuffixText,
		classSpace:     stateDeleteSuffixText,
		classSemicolon: stateStart,
	},
	stateDeletePrefixOp: {
		classSpace:     stateDeletePrefixOp,
		classMinus:     stateDeletePrefixOp,
		classSemicolon: stateStart,
	},
	stateReplaceEndOp: {
		classOther: stateReplaceEndText,
		classSpace: stateReplaceEndText,
		classStar:  stateReplaceEndOp,
	},
	stateReplaceEndText: {
		classOther:     stateReplaceEndText,
		classSpace:     stateReplaceEndText,
		classSemicolon: stateStart,
	},
	stateReplaceStartOp: {
		classSpace:     stateReplaceStartOp,
		classStar:      stateReplaceStartOp,
		classSemicolon: stateStart,
	},
	stateBar: {
		classSpace: stateBar,
		classMinus: stateBarDashes,
	},
	stateBarDashes: {
		classSpace:     stateBarDashes,
		classMinus:     stateBarDashes,
		classSemicolon: stateStart,
	},
}

// escapeTransitions gives the state after a backslash and its escaped byte.
// States missing from the map reject escapes.
var escapeTransitions = map[state]state{
	stateStart:            stateLiteral,
	stateLiteral:          stateLiteral,
	stateAppendOp:         stateAppendText,
	stateAppendText:       stateAppendText,
	stateDeleteSuffixOp:   stateDeleteSuffixText,
	stateDeleteSuffixText: stateDeleteSuffixText,
	stateReplaceEndOp:     stateReplaceEndText,
	stateReplaceEndText:   stateReplaceEndText,
}

// accepting reports whether a clause may end in s.
func (s state) accepting() bool {
	switch s {
	case stateInvalid, stateAppendOp, stateReplaceEndOp, stateBar:
		return false
	}
	return true
}

// classify maps a pattern byte to its input class.
func classify(c byte, afterSpace bool) class {
	switch c {
	case ' ':
		return classSpace
	case '\\':
		return classBackslash
	case '+':
		return classPlus
	case '-':
		if afterSpace {
			return classMinusAfterSpace
		}
		return classMinus
	case '*':
		if afterSpace {
			return classStarAfterSpace
		}
		return classStar
	case '|':
		return classBar
	case ';':
		return classSemicolon
	}
	return classOther
}

// Validate checks pattern against the grammar and returns a *SyntaxError for
// the first violation, or nil.
func Validate(pattern string) error {
	_, err := scan(pattern, nil)
	return err
}

// Valid reports whether pattern is a well-formed pattern.
func Valid(pattern string) bool {
	return Validate(pattern) == nil
}

// scan runs the automaton over pattern. When emit is non-nil it is called
// once per clause with the clause's raw text and final state.
func scan(pattern string, emit func(raw string, final state)) (state, error) {
	s := stateStart
	start := 0
	afterSpace := false
	for i := 0; i < len(pattern); i++ {
		c := pattern[i]
		if c == '\\' {
			if i+1 == len(pattern) {
				return stateInvalid, &SyntaxError{Pattern: pattern, Offset: i, Reason: ReasonTrailingBackslash}
			}
			next, ok := escapeTransitions[s]
			if !ok {
				return stateInvalid, &SyntaxError{Pattern: pattern, Offset: i, Reason: ReasonMisplacedEscape}
			}
			i++
			s = next
			afterSpace = pattern[i] == ' '
			continue
		}

		cl := classify(c, afterSpace)
		if cl == classSemicolon && !s.accepting() {
			return stateInvalid, &SyntaxError{Pattern: pattern, Offset: i, Reason: ReasonEmptyClause}
		}
		next := transitions[s][cl]
		if next == stateInvalid {
			return stateInvalid, &SyntaxError{Pattern: pattern, Offset: i, Reason: rejectReason(s, cl)}
		}
		if cl == classSemicolon && emit != nil {
			emit(pattern[start:i], s)
			start = i + 1
		}
		s = next
		afterSpace = c == ' '
	}
	if !s.accepting() {
		return stateInvalid, &SyntaxError{Pattern: pattern, Offset: len(pattern), Reason: ReasonEmptyClause}
	}
	if emit != nil {
		emit(pattern[start:], s)
	}
	return s, nil
}

// rejectReason explains a missing transition.
func rejectReason(s state, cl class) SyntaxReason {
	switch cl {
	case classBar:
		return ReasonMisplacedBar
	case classMinusAfterSpace, classStarAfterSpace:
		if s == stateLiteral || s == stateDeletePrefixOp || s == stateBar || s == stateBarDashes || s == stateReplaceStartOp {
			return ReasonSpaceBeforeOp
		}
	case classOther:
		return ReasonTextAfterOp
	}
	return ReasonMixedOperators
}
