package diffmark

// Mark reconstructs a string by applying pattern to base. Clauses are folded
// left to right, each one transforming the result of the previous.
//
// Mark fails only when pattern is not well formed; the returned error is a
// *SyntaxError wrapping ErrInvalidPattern. Counts that exceed the length of
// the string being transformed truncate rather than fail.
func Mark(base, pattern string) (string, error) {
	clauses, err := Parse(pattern)
	if err != nil {
		return "", err
	}
	result := base
	for _, c := range clauses {
		result = c.Apply(result)
	}
	return result, nil
}
