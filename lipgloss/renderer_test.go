package lipgloss_test

import (
	"bytes"
	"io"
	"strings"
	"testing"

	lg "github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/diffmark"
	"github.com/fwojciec/diffmark/chroma"
	"github.com/fwojciec/diffmark/lipgloss"
	"github.com/fwojciec/diffmark/mock"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func asciiRenderer() *lg.Renderer {
	return lg.NewRenderer(io.Discard, termenv.WithProfile(termenv.Ascii))
}

func trueColorRenderer() *lg.Renderer {
	r := lg.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.TrueColor)
	return r
}

func TestRenderer_Render(t *testing.T) {
	t.Parallel()

	t.Run("prints stored and reconstructed lines", func(t *testing.T) {
		t.Parallel()

		r := lipgloss.NewRenderer(lipgloss.DarkTheme(), chroma.NewHighlighter(),
			lipgloss.WithLipglossRenderer(asciiRenderer()))
		entries := []diffmark.EncodedEntry{
			{Base: "play", Patterns: []string{"ed", "ing"}},
			{Base: "yes", Patterns: []string{"-ar", "+, sir"}},
		}
		var buf bytes.Buffer

		require.NoError(t, r.Render(&buf, entries))

		assert.Equal(t, ">> play/ed/ing\n"+
			" > play/played/playing\n"+
			">> yes/-ar/+, sir\n"+
			" > yes/year/yes, sir\n", buf.String())
	})

	t.Run("colors operators", func(t *testing.T) {
		t.Parallel()

		r := lipgloss.NewRenderer(lipgloss.DarkTheme(), chroma.NewHighlighter(),
			lipgloss.WithLipglossRenderer(trueColorRenderer()))
		var buf bytes.Buffer

		require.NoError(t, r.Render(&buf, []diffmark.EncodedEntry{{Base: "yes", Patterns: []string{"-ar"}}}))

		// #f9e2af is the dark theme's operator color.
		assert.Contains(t, buf.String(), "\x1b[38;2;249;226;175m-")
	})

	t.Run("asks the highlighter for every pattern", func(t *testing.T) {
		t.Parallel()

		var seen []string
		h := &mock.Highlighter{
			HighlightFn: func(pattern string) []diffmark.Token {
				seen = append(seen, pattern)
				return []diffmark.Token{{Text: strings.ToUpper(pattern)}}
			},
		}
		r := lipgloss.NewRenderer(lipgloss.LightTheme(), h, lipgloss.WithLipglossRenderer(asciiRenderer()))
		var buf bytes.Buffer

		require.NoError(t, r.Render(&buf, []diffmark.EncodedEntry{{Base: "play", Patterns: []string{"ed", "ing"}}}))

		assert.Equal(t, []string{"ed", "ing"}, seen)
		assert.Contains(t, buf.String(), ">> play/ED/ING\n")
	})

	t.Run("reports malformed patterns after writing everything", func(t *testing.T) {
		t.Parallel()

		r := lipgloss.NewRenderer(lipgloss.DarkTheme(), chroma.NewHighlighter(),
			lipgloss.WithLipglossRenderer(asciiRenderer()))
		entries := []diffmark.EncodedEntry{
			{Base: "bad", Patterns: []string{"+"}},
			{Base: "play", Patterns: []string{"ed"}},
		}
		var buf bytes.Buffer

		err := r.Render(&buf, entries)

		assert.ErrorIs(t, err, diffmark.ErrInvalidPattern)
		assert.Contains(t, buf.String(), " ! entry \"bad\" pattern 0")
		assert.Contains(t, buf.String(), " > play/played\n")
	})
}
