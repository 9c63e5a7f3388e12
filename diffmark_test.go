package diffmark_test

import (
	"testing"

	"github.com/fwojciec/diffmark"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntry_Size(t *testing.T) {
	t.Parallel()

	t.Run("counts base and separated variants", func(t *testing.T) {
		t.Parallel()

		e := diffmark.Entry{Base: "play", Variants: []string{"played", "playing"}}

		assert.Equal(t, len("play/played/playing"), e.Size())
	})

	t.Run("base only", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, 4, diffmark.Entry{Base: "play"}.Size())
	})
}

func TestEncodedEntry_Size(t *testing.T) {
	t.Parallel()

	e := diffmark.EncodedEntry{Base: "play", Patterns: []string{"ed", "ing"}}

	assert.Equal(t, len("play/ed/ing"), e.Size())
}

func TestEncodeEntry(t *testing.T) {
	t.Parallel()

	t.Run("computes one pattern per variant", func(t *testing.T) {
		t.Parallel()

		e := diffmark.Entry{Base: "play", Variants: []string{"played", "playing", "play"}}

		encoded := diffmark.EncodeEntry(e)

		assert.Equal(t, "play", encoded.Base)
		assert.Equal(t, []string{"ed", "ing", ""}, encoded.Patterns)
	})

	t.Run("base without variants", func(t *testing.T) {
		t.Parallel()

		encoded := diffmark.EncodeEntry(diffmark.Entry{Base: "alone"})

		assert.Equal(t, "alone", encoded.Base)
		assert.Empty(t, encoded.Patterns)
	})
}

func TestEncodedEntry_Decode(t *testing.T) {
	t.Parallel()

	t.Run("reconstructs variants", func(t *testing.T) {
		t.Parallel()

		encoded := diffmark.EncodedEntry{Base: "yes", Patterns: []string{"--ear", "+, sir"}}

		entry, err := encoded.Decode()

		require.NoError(t, err)
		assert.Equal(t, diffmark.Entry{Base: "yes", Variants: []string{"year", "yes, sir"}}, entry)
	})

	t.Run("reports the failing pattern", func(t *testing.T) {
		t.Parallel()

		encoded := diffmark.EncodedEntry{Base: "yes", Patterns: []string{"--ear", "+"}}

		_, err := encoded.Decode()

		require.Error(t, err)
		var entryErr *diffmark.EntryError
		require.ErrorAs(t, err, &entryErr)
		assert.Equal(t, 1, entryErr.Index)
		assert.Equal(t, "yes", entryErr.Base)
		assert.ErrorIs(t, err, diffmark.ErrInvalidPattern)
		assert.Contains(t, err.Error(), "pattern 1")
	})

	t.Run("round trips an encoded corpus", func(t *testing.T) {
		t.Parallel()

		entries := []diffmark.Entry{
			{Base: "be", Variants: []string{"am", "is", "are", "was", "were", "been", "being"}},
			{Base: "mouse", Variants: []string{"mice", "mouses", "Mouse"}},
			{Base: "child", Variants: []string{"children", "childhood", "grandchild"}},
			{Base: "go", Variants: []string{"went", "gone", "goes", "going"}},
			{Base: "New York", Variants: []string{"New Yorker", "New York City", "York"}},
			{Base: "take off", Variants: []string{"took off", "taken off", "takes off", "taking off"}},
		}

		for _, e := range entries {
			decoded, err := diffmark.EncodeEntry(e).Decode()
			require.NoError(t, err)
			assert.Equal(t, e, decoded)
		}
	})
}
