package bubbletea_test

import (
	"bytes"
	"errors"
	"io"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/exp/teatest"
	"github.com/fwojciec/diffmark"
	"github.com/fwojciec/diffmark/bubbletea"
	"github.com/fwojciec/diffmark/mock"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Compile-time check that Viewer implements diffmark.Viewer.
var _ diffmark.Viewer = (*bubbletea.Viewer)(nil)

var testEntries = []diffmark.EncodedEntry{
	{Base: "play", Patterns: []string{"ed", "ing"}},
	{Base: "yes", Patterns: []string{"-ar", "+, sir"}},
	{Base: "say", Patterns: []string{"*said"}},
}

func asciiRenderer() *lipgloss.Renderer {
	return lipgloss.NewRenderer(io.Discard, termenv.WithProfile(termenv.Ascii))
}

func newSizedModel(t *testing.T, entries []diffmark.EncodedEntry, opts ...bubbletea.ModelOption) bubbletea.Model {
	t.Helper()
	opts = append([]bubbletea.ModelOption{bubbletea.WithRenderer(asciiRenderer())}, opts...)
	m := bubbletea.NewModel(entries, opts...)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return updated.(bubbletea.Model)
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(m bubbletea.Model, msgs ...tea.KeyMsg) bubbletea.Model {
	for _, msg := range msgs {
		updated, _ := m.Update(msg)
		m = updated.(bubbletea.Model)
	}
	return m
}

func selectedBase(t *testing.T, m bubbletea.Model) string {
	t.Helper()
	e, ok := m.Selected()
	require.True(t, ok)
	return e.Base
}

func TestModel_Init(t *testing.T) {
	t.Parallel()

	m := bubbletea.NewModel(testEntries)

	assert.Nil(t, m.Init(), "Init should return nil command")
}

func TestModel_ViewBeforeReady(t *testing.T) {
	t.Parallel()

	m := bubbletea.NewModel(testEntries)

	assert.Contains(t, m.View(), "Loading", "View should show loading state before WindowSizeMsg")
}

func TestModel_ViewAfterReady(t *testing.T) {
	t.Parallel()

	view := newSizedModel(t, testEntries).View()

	assert.Contains(t, view, "3 entries")
	assert.Contains(t, view, "> play")
	assert.Contains(t, view, "  yes")
	assert.Contains(t, view, "ed   played")
	assert.Contains(t, view, "ing  playing")
	assert.Contains(t, view, "1/3")
}

func TestModel_Navigation(t *testing.T) {
	t.Parallel()

	t.Run("moves down and up", func(t *testing.T) {
		t.Parallel()

		m := press(newSizedModel(t, testEntries), runes("j"))
		assert.Equal(t, "yes", selectedBase(t, m))
		assert.Contains(t, m.View(), "year")

		m = press(m, runes("k"))
		assert.Equal(t, "play", selectedBase(t, m))
	})

	t.Run("clamps at both ends", func(t *testing.T) {
		t.Parallel()

		m := press(newSizedModel(t, testEntries), runes("j"), runes("j"), runes("j"), runes("j"))
		assert.Equal(t, "say", selectedBase(t, m))

		m = press(m, runes("k"), runes("k"), runes("k"), runes("k"))
		assert.Equal(t, "play", selectedBase(t, m))
	})

	t.Run("jumps to bottom and top", func(t *testing.T) {
		t.Parallel()

		m := press(newSizedModel(t, testEntries), runes("G"))
		assert.Equal(t, "say", selectedBase(t, m))

		m = press(m, runes("g"))
		assert.Equal(t, "play", selectedBase(t, m))
	})
}

func TestModel_Filter(t *testing.T) {
	t.Parallel()

	t.Run("narrows entries while typing", func(t *testing.T) {
		t.Parallel()

		m := press(newSizedModel(t, testEntries), runes("/"), runes("y"), runes("s"))

		assert.Equal(t, []diffmark.EncodedEntry{testEntries[1]}, m.Visible())
		assert.Equal(t, "yes", selectedBase(t, m))
	})

	t.Run("ranks fuzzy matches", func(t *testing.T) {
		t.Parallel()

		m := press(newSizedModel(t, testEntries), runes("/"), runes("ay"))

		assert.ElementsMatch(t, []diffmark.EncodedEntry{testEntries[0], testEntries[2]}, m.Visible())
	})

	t.Run("enter keeps the filter and resumes browsing", func(t *testing.T) {
		t.Parallel()

		m := press(newSizedModel(t, testEntries), runes("/"), runes("ay"), tea.KeyMsg{Type: tea.KeyEnter}, runes("j"))

		assert.Len(t, m.Visible(), 2)
		assert.Contains(t, m.View(), "2/2")
	})

	t.Run("esc clears the filter", func(t *testing.T) {
		t.Parallel()

		m := press(newSizedModel(t, testEntries), runes("/"), runes("ys"), tea.KeyMsg{Type: tea.KeyEsc})

		assert.Equal(t, testEntries, m.Visible())
		assert.Contains(t, m.View(), "3 entries")
	})

	t.Run("quit key is typed while filtering", func(t *testing.T) {
		t.Parallel()

		m := press(newSizedModel(t, testEntries), runes("/"), runes("q"))

		assert.Empty(t, m.Visible())
		assert.Contains(t, m.View(), "no matching entries")
	})

	t.Run("no matches", func(t *testing.T) {
		t.Parallel()

		m := press(newSizedModel(t, testEntries), runes("/"), runes("zzz"))

		_, ok := m.Selected()
		assert.False(t, ok)
		assert.Contains(t, m.View(), "no matching entries")
		assert.Contains(t, m.View(), "0/0")
	})
}

func TestModel_Copy(t *testing.T) {
	t.Parallel()

	t.Run("copies the selected patterns", func(t *testing.T) {
		t.Parallel()

		var copied string
		cb := &mock.Clipboard{CopyFn: func(content string) error {
			copied = content
			return nil
		}}
		m := newSizedModel(t, testEntries, bubbletea.WithClipboard(cb))

		updated, cmd := m.Update(runes("y"))
		require.NotNil(t, cmd)
		updated, _ = updated.Update(cmd())
		m = updated.(bubbletea.Model)

		assert.Equal(t, "ed/ing", copied)
		assert.Equal(t, "copied ed/ing", m.Status())
		assert.Contains(t, m.View(), "copied ed/ing")
	})

	t.Run("reports clipboard errors", func(t *testing.T) {
		t.Parallel()

		cb := &mock.Clipboard{CopyFn: func(string) error { return errors.New("boom") }}
		m := newSizedModel(t, testEntries, bubbletea.WithClipboard(cb))

		updated, cmd := m.Update(runes("y"))
		require.NotNil(t, cmd)
		updated, _ = updated.Update(cmd())

		assert.Equal(t, "copy failed: boom", updated.(bubbletea.Model).Status())
	})

	t.Run("without a clipboard does nothing", func(t *testing.T) {
		t.Parallel()

		_, cmd := newSizedModel(t, testEntries).Update(runes("y"))

		assert.Nil(t, cmd)
	})
}

func TestModel_HighlightsPatterns(t *testing.T) {
	t.Parallel()

	var seen []string
	h := &mock.Highlighter{HighlightFn: func(p string) []diffmark.Token {
		seen = append(seen, p)
		return []diffmark.Token{{Text: p, Kind: diffmark.TokenOperator}}
	}}

	newSizedModel(t, testEntries, bubbletea.WithHighlighter(h), bubbletea.WithTheme(testTheme{})).View()

	assert.Contains(t, seen, "ed")
	assert.Contains(t, seen, "ing")
}

func TestModel_ShowsMalformedPatterns(t *testing.T) {
	t.Parallel()

	entries := []diffmark.EncodedEntry{{Base: "play", Patterns: []string{"+"}}}

	view := newSizedModel(t, entries).View()

	assert.Contains(t, view, "invalid pattern")
}

func TestModel_QuitOnQ(t *testing.T) {
	t.Parallel()

	_, cmd := newSizedModel(t, testEntries).Update(runes("q"))

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestModel_Program(t *testing.T) {
	t.Parallel()

	m := bubbletea.NewModel(testEntries, bubbletea.WithRenderer(asciiRenderer()))
	tm := teatest.NewTestModel(t, m, teatest.WithInitialTermSize(80, 24))

	teatest.WaitFor(t, tm.Output(), func(out []byte) bool {
		return bytes.Contains(out, []byte("playing"))
	}, teatest.WithDuration(3*time.Second))

	tm.Send(runes("j"))
	teatest.WaitFor(t, tm.Output(), func(out []byte) bool {
		return bytes.Contains(out, []byte("year"))
	}, teatest.WithDuration(3*time.Second))

	tm.Send(runes("q"))
	tm.WaitFinished(t, teatest.WithFinalTimeout(3*time.Second))

	final, ok := tm.FinalModel(t).(bubbletea.Model)
	require.True(t, ok)
	assert.Equal(t, "yes", selectedBase(t, final))
}

type testTheme struct{}

func (testTheme) Styles() diffmark.Styles {
	return diffmark.Styles{Operator: diffmark.ColorPair{Foreground: "#ff0000"}}
}
