package diffmark_test

import (
	"math/rand/v2"
	"testing"

	"github.com/fwojciec/diffmark"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiff(t *testing.T) {
	t.Parallel()

	tests := []struct {
		before string
		after  string
		want   string
	}{
		{"", "abc", "abc"},
		{"abc", "", "---"},
		{"same", "same", ""},
		{"A B C", "A X C", "X**"},
		{"A B C D", "A B X D", "X***"},
		{"A B", "A X", "*X"},
		{"A B", "A X X", "*X X"},
		{"A B", "X B", "X*"},
		{"A B", "X X B", "X X*"},
		{"A B", "X  B", `X\s*`},
		{"A B C", "A C", "---C"},
		{"play", "playground", "ground"},
		{"ABC", "AB", "-"},
		{"ABC", "AD", "*AD"},
		{"ABCD", "ABX", "--X"},
		{"ABC", "BC", "|-"},
		{"ABCDEFG", "XCDEFG", "X--"},
		{"BC", "ABC", "A+"},
		{"AD", "ABC", "-BC"},
		{"DC", "ABC", "AB-"},
		{"play", "lay", "|-"},
		{"yes", "year", "-ar"},
		{"go", "went", "*went"},
		{"abcdef", "xbcdy", "*xbcdy"},
	}

	for _, tt := range tests {
		t.Run(tt.before+"->"+tt.after, func(t *testing.T) {
			t.Parallel()

			got := diffmark.Diff(tt.before, tt.after)

			assert.Equal(t, tt.want, got)
			marked, err := diffmark.Mark(tt.before, got)
			require.NoError(t, err)
			assert.Equal(t, tt.after, marked)
		})
	}
}

func TestDiff_EscapesOperatorText(t *testing.T) {
	t.Parallel()

	for _, after := range []string{"+x", "a;b", "x-", " lead", "trail ", `back\`, "line\nbreak", "**"} {
		t.Run(after, func(t *testing.T) {
			t.Parallel()

			got := diffmark.Diff("", after)

			require.NoError(t, diffmark.Validate(got))
			marked, err := diffmark.Mark("", got)
			require.NoError(t, err)
			assert.Equal(t, after, marked)
		})
	}
}

func TestDiff_RoundTrip(t *testing.T) {
	t.Parallel()

	const alphabet = "ab ab -+*|;\\\n"
	rng := rand.New(rand.NewPCG(7, 11))
	randString := func() string {
		b := make([]byte, rng.IntN(9))
		for i := range b {
			b[i] = alphabet[rng.IntN(len(alphabet))]
		}
		return string(b)
	}

	for range 5000 {
		before, after := randString(), randString()

		p := diffmark.Diff(before, after)

		require.NoError(t, diffmark.Validate(p), "diff(%q, %q) = %q", before, after, p)
		got, err := diffmark.Mark(before, p)
		require.NoError(t, err)
		require.Equal(t, after, got, "diff(%q, %q) = %q", before, after, p)
	}
}

func TestDiff_Identity(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"", "a", "A B C", " padded ", `\;`} {
		assert.Empty(t, diffmark.Diff(s, s))
		got, err := diffmark.Mark(s, "")
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}
}
