package diffmark_test

import (
	"testing"

	"github.com/fwojciec/diffmark"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		pattern string
		want    diffmark.Clause
	}{
		{"ground", diffmark.Clause{Kind: diffmark.ClauseLiteral, Text: "ground"}},
		{"+ cards", diffmark.Clause{Kind: diffmark.ClauseAppend, Text: " cards"}},
		{"play +", diffmark.Clause{Kind: diffmark.ClausePrepend, Count: 1, Text: "play "}},
		{"--ear", diffmark.Clause{Kind: diffmark.ClauseDeleteSuffix, Count: 2, Text: "ear"}},
		{"---", diffmark.Clause{Kind: diffmark.ClauseDeleteSuffix, Count: 3}},
		{"dee--", diffmark.Clause{Kind: diffmark.ClauseDeletePrefix, Count: 2, Text: "dee"}},
		{"|---", diffmark.Clause{Kind: diffmark.ClauseDeletePrefixAll, Count: 3}},
		{"**X", diffmark.Clause{Kind: diffmark.ClauseReplaceFromEnd, Count: 2, Text: "X"}},
		{"X***", diffmark.Clause{Kind: diffmark.ClauseReplaceFromStart, Count: 3, Text: "X"}},
		{`a\--`, diffmark.Clause{Kind: diffmark.ClauseDeletePrefix, Count: 1, Text: "a-"}},
		{`a\\--`, diffmark.Clause{Kind: diffmark.ClauseDeletePrefix, Count: 2, Text: `a\`}},
		{`a\-`, diffmark.Clause{Kind: diffmark.ClauseLiteral, Text: "a-"}},
		{`  x\ `, diffmark.Clause{Kind: diffmark.ClauseLiteral, Text: "x "}},
		{"  x  ", diffmark.Clause{Kind: diffmark.ClauseLiteral, Text: "x"}},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			t.Parallel()

			got, err := diffmark.Parse(tt.pattern)

			require.NoError(t, err)
			require.Len(t, got, 1)
			assert.Equal(t, tt.want, got[0])
		})
	}
}

func TestParse_SplitsOnUnescapedSemicolons(t *testing.T) {
	t.Parallel()

	got, err := diffmark.Parse(`a\;b ; -- ;|-`)

	require.NoError(t, err)
	assert.Equal(t, []diffmark.Clause{
		{Kind: diffmark.ClauseLiteral, Text: "a;b"},
		{Kind: diffmark.ClauseDeleteSuffix, Count: 2},
		{Kind: diffmark.ClauseDeletePrefixAll, Count: 1},
	}, got)
}

func TestParse_EscapedBackslashBeforeSeparator(t *testing.T) {
	t.Parallel()

	got, err := diffmark.Parse(`a\\;b`)

	require.NoError(t, err)
	assert.Equal(t, []diffmark.Clause{
		{Kind: diffmark.ClauseLiteral, Text: `a\`},
		{Kind: diffmark.ClauseLiteral, Text: "b"},
	}, got)
}

func TestParse_InvalidPattern(t *testing.T) {
	t.Parallel()

	got, err := diffmark.Parse("+a+")

	assert.ErrorIs(t, err, diffmark.ErrInvalidPattern)
	assert.Nil(t, got)
}

func TestClause_ApplyTruncatesLargeCounts(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "x", diffmark.Clause{Kind: diffmark.ClauseDeleteSuffix, Count: 10, Text: "x"}.Apply("abc"))
	assert.Equal(t, "x", diffmark.Clause{Kind: diffmark.ClauseDeletePrefix, Count: 10, Text: "x"}.Apply("abc"))
	assert.Empty(t, diffmark.Clause{Kind: diffmark.ClauseDeletePrefixAll, Count: 10}.Apply("abc"))
}

func TestClauseKind_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "literal", diffmark.ClauseLiteral.String())
	assert.Equal(t, "delete-prefix-all", diffmark.ClauseDeletePrefixAll.String())
	assert.Equal(t, "replace-from-start", diffmark.ClauseReplaceFromStart.String())
	assert.Equal(t, "unknown", diffmark.ClauseKind(42).String())
}
