package diffmark

import "strings"

// Diff returns a pattern that turns before into after, so that
// Mark(before, Diff(before, after)) == after for every pair of strings.
//
// A prefix/suffix heuristic covers the common inflection shapes. When none of
// its branches applies, the longest common substring splits the pair into a
// left and a right edit. Every candidate is checked by applying it; one that
// does not reproduce after gives way to the next strategy, ending with a
// whole-string replacement that always does.
func Diff(before, after string) string {
	switch {
	case before == "":
		return Escape(after, true, true)
	case after == "":
		return run('-', len(before))
	case before == after:
		return ""
	}

	if p, ok := heuristicDiff(before, after); ok && reproduces(before, p, after) {
		return p
	}
	if p := lcsDiff(before, after); reproduces(before, p, after) {
		return p
	}
	return replaceAll(before, after)
}

// reproduces reports whether pattern applied to before yields after.
func reproduces(before, pattern, after string) bool {
	got, err := Mark(before, pattern)
	return err == nil && got == after
}

// replaceAll rewrites the whole string: a single-token replacement when
// before is one token, otherwise a full delete followed by the new text.
func replaceAll(before, after string) string {
	if strings.IndexByte(before, ' ') < 0 {
		return "*" + Escape(after, false, true)
	}
	return run('-', len(before)) + Escape(after, false, true)
}

// shorterThanReplaceAll keeps candidate unless before is a single token and
// replacing that token outright is no longer.
func shorterThanReplaceAll(before, after, candidate string) string {
	if strings.IndexByte(before, ' ') >= 0 {
		return candidate
	}
	whole := "*" + Escape(after, false, true)
	if len(candidate) < len(whole) {
		return candidate
	}
	return whole
}

// heuristicDiff builds a pattern from the shared prefix and suffix of the
// two strings, preferring token-level edits when the change is bounded by
// spaces. It reports false when no branch applies.
func heuristicDiff(before, after string) (string, bool) {
	bl, al := len(before), len(after)
	lm := LongestLeftMatch(before, after)
	rm := LongestRightMatch(before, after)

	// "A B C" -> "A X C" => "X**"
	if spaceAt(before, lm-1) && spaceAt(after, lm-1) &&
		spaceAt(before, bl-rm) && spaceAt(after, al-rm) &&
		indexFrom(before, ' ', lm) == bl-rm {
		mid := substr(after, lm, al-rm-lm)
		return Escape(mid, true, true) + run('*', tokenOrdinal(before, lm)), true
	}

	if spaceAt(before, lm-1) && spaceAt(after, lm-1) {
		switch {
		case indexFrom(before, ' ', lm) < 0 && before[bl-1] != ' ':
			// "A B" -> "A X" => "*X"
			return "*" + Escape(after[lm:], false, true), true
		case bl < al:
			// "A " -> "A X" => "X"
			return Escape(after[lm:], true, true), true
		default:
			// "A B " -> "A X" => "--X"
			return run('-', bl-lm) + Escape(after[lm:], false, true), true
		}
	}

	if spaceAt(before, bl-rm) && spaceAt(after, al-rm) {
		head := after[:al-rm]
		switch {
		case lastIndexFrom(before, ' ', bl-rm-1) < 0:
			// "A B" -> "X B" => "X*"
			return Escape(head, true, true) + "*", true
		case bl < al:
			// " B" -> "X B" => "X+"
			return Escape(head, true, false) + "+", true
		case al == rm:
			// " B B" -> " B" => "|--"
			return "|" + run('-', bl-rm), true
		default:
			// " B B" -> "X B" => "X--"
			return Escape(head, true, false) + run('-', bl-rm), true
		}
	}

	var result string
	if bl > al {
		switch {
		case lm > 0 && lm >= rm:
			// "ABC" -> "AD" => "--D"
			result = run('-', bl-lm) + Escape(after[lm:], false, true)
		case rm > 0 && al == rm:
			// "ABC" -> "BC" => "|-"
			result = "|" + run('-', bl-rm)
		case rm > 0:
			// "ABC" -> "DC" => "D--"
			result = Escape(after[:al-rm], true, false) + run('-', bl-rm)
		}
	} else {
		switch {
		case lm > 0 && lm >= rm && bl == lm:
			// "AB" -> "ABC" => "C"
			result = Escape(after[lm:], true, true)
		case lm > 0 && lm >= rm:
			// "AD" -> "ABC" => "-BC"
			result = run('-', bl-lm) + Escape(after[lm:], false, true)
		case rm > 0 && bl == rm:
			// "BC" -> "ABC" => "A+"
			result = Escape(after[:al-rm], true, false) + "+"
		case rm > 0:
			// "DC" -> "ABC" => "AB-"
			result = Escape(after[:al-rm], true, false) + run('-', bl-rm)
		}
	}
	if result == "" {
		return "", false
	}
	return shorterThanReplaceAll(before, after, result), true
}

// lcsDiff splits the pair around their longest common substring into a
// prepend-side clause and an append-side clause. The split is applied once;
// the residual segments are not diffed again.
func lcsDiff(before, after string) string {
	lcs := FindLongestCommonSubstring(before, after)
	if lcs.Length == 0 {
		return replaceAll(before, after)
	}

	endBefore := lcs.StartBefore + lcs.Length
	endAfter := lcs.StartAfter + lcs.Length

	var clauses []string
	var left string
	switch {
	case lcs.StartBefore == 0 && lcs.StartAfter > 0:
		// "....", "AB...." => "AB+"
		left = Escape(after[:lcs.StartAfter], true, false) + "+"
	case lcs.StartAfter == 0 && lcs.StartBefore > 0:
		// "AB....", "...." => "|--"
		left = "|" + run('-', lcs.StartBefore)
	default:
		// "ABC....", "AB...." => "AB---"
		left = Escape(after[:lcs.StartAfter], true, false) + run('-', lcs.StartBefore)
	}
	if left != "" {
		clauses = append(clauses, left)
	}

	var right string
	switch {
	case endBefore == len(before) && endAfter < len(after):
		// "....", "....AB" => "AB"
		right = Escape(after[endAfter:], true, true)
	case endBefore < len(before) && endAfter == len(after):
		// "....AB", "...." => "--"
		right = run('-', len(before)-endBefore)
	default:
		// "....BC", "....ABC" => "--ABC"
		right = run('-', len(before)-endBefore) + Escape(after[endAfter:], false, true)
	}
	if right != "" {
		clauses = append(clauses, right)
	}

	return shorterThanReplaceAll(before, after, strings.Join(clauses, ";"))
}

// spaceAt reports whether s has a space at index i.
func spaceAt(s string, i int) bool {
	return i >= 0 && i < len(s) && s[i] == ' '
}

// indexFrom returns the index of the first c in s at or after from, or -1.
func indexFrom(s string, c byte, from int) int {
	from = max(from, 0)
	if from >= len(s) {
		return -1
	}
	if i := strings.IndexByte(s[from:], c); i >= 0 {
		return from + i
	}
	return -1
}

// lastIndexFrom returns the index of the last c in s at or before from, or
// -1. A negative from still examines index 0.
func lastIndexFrom(s string, c byte, from int) int {
	from = min(max(from, 0), len(s)-1)
	if from < 0 {
		return -1
	}
	return strings.LastIndexByte(s[:from+1], c)
}

// substr returns up to n bytes of s starting at start, clamped to s.
func substr(s string, start, n int) string {
	start = min(max(start, 0), len(s))
	if n <= 0 {
		return ""
	}
	return s[start:min(start+n, len(s))]
}
