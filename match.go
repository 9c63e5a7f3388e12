package diffmark

import "strings"

// LongestLeftMatch returns the length of the prefix shared by a and b.
func LongestLeftMatch(a, b string) int {
	n := min(len(a), len(b))
	i := 0
	for i < n && a[i] == b[i] {
		i++
	}
	return i
}

// LongestRightMatch returns the length of the suffix shared by a and b.
func LongestRightMatch(a, b string) int {
	n := min(len(a), len(b))
	i := 0
	for i < n && a[len(a)-1-i] == b[len(b)-1-i] {
		i++
	}
	return i
}

// CommonSubstring locates a longest common (contiguous) substring of two
// strings.
type CommonSubstring struct {
	StartBefore int // offset of the match in before
	StartAfter  int // offset of the match in after
	Length      int // zero when the strings share no byte
}

// FindLongestCommonSubstring searches every substring of the longer input in
// the shorter one. Ties go to the first match found: the leftmost start in the
// longer string and the leftmost occurrence in the shorter one.
//
// The scan is cubic in the worst case, which is fine for word-sized inputs;
// callers with long documents should bound their input length.
func FindLongestCommonSubstring(before, after string) CommonSubstring {
	var lcs CommonSubstring
	if before == "" || after == "" {
		return lcs
	}

	short, long := after, before
	if len(before) < len(after) {
		short, long = before, after
	}

	var shortStart, longStart int
	for i := 0; i < len(long); i++ {
		for j := i + lcs.Length + 1; j <= len(long); j++ {
			idx := strings.Index(short, long[i:j])
			if idx < 0 {
				// Extending a missing substring cannot produce a match.
				break
			}
			shortStart, longStart = idx, i
			lcs.Length = j - i
		}
	}

	if len(before) < len(after) {
		lcs.StartBefore, lcs.StartAfter = shortStart, longStart
	} else {
		lcs.StartBefore, lcs.StartAfter = longStart, shortStart
	}
	return lcs
}
