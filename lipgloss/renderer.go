package lipgloss

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/diffmark"
)

// Compile-time interface verification.
var _ diffmark.Renderer = (*Renderer)(nil)

// Renderer prints each encoded entry as two lines: the stored form
//
//	>> play/ed/ing
//
// with its patterns highlighted, followed by the reconstructed words
//
//	 > play/played/playing
type Renderer struct {
	styles      diffmark.Styles
	highlighter diffmark.Highlighter
	renderer    *lipgloss.Renderer
}

// RendererOption configures a Renderer.
type RendererOption func(*Renderer)

// WithLipglossRenderer sets the lipgloss renderer used to build styles.
// Tests pass one with a fixed color profile.
func WithLipglossRenderer(r *lipgloss.Renderer) RendererOption {
	return func(x *Renderer) {
		x.renderer = r
	}
}

// NewRenderer creates a Renderer for theme. Patterns are split into tokens by
// highlighter.
func NewRenderer(theme diffmark.Theme, highlighter diffmark.Highlighter, opts ...RendererOption) *Renderer {
	r := &Renderer{
		styles:      theme.Styles(),
		highlighter: highlighter,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render writes entries to w. An entry whose patterns cannot be applied is
// printed with the offending pattern marked, and its error is returned after
// the remaining entries have been written.
func (r *Renderer) Render(w io.Writer, entries []diffmark.EncodedEntry) error {
	patternStyle := StyleFromColorPair(r.styles.Pattern, r.renderer)
	wordStyle := StyleFromColorPair(r.styles.Word, r.renderer)
	errorStyle := StyleFromColorPair(r.styles.Error, r.renderer)

	var firstErr error
	for _, e := range entries {
		var sb strings.Builder
		sb.WriteString(patternStyle.Render(">> " + e.Base))
		for _, p := range e.Patterns {
			sb.WriteString(patternStyle.Render(diffmark.Separator))
			sb.WriteString(r.highlight(p))
		}
		sb.WriteByte('\n')

		decoded, err := e.Decode()
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			sb.WriteString(errorStyle.Render(" ! " + err.Error()))
		} else {
			sb.WriteString(wordStyle.Render(" > " + strings.Join(append([]string{e.Base}, decoded.Variants...), diffmark.Separator)))
		}
		sb.WriteByte('\n')

		if _, err := io.WriteString(w, sb.String()); err != nil {
			return err
		}
	}
	if firstErr != nil {
		return fmt.Errorf("render: %w", firstErr)
	}
	return nil
}

// highlight styles the tokens of one pattern.
func (r *Renderer) highlight(pattern string) string {
	var sb strings.Builder
	for _, tok := range r.highlighter.Highlight(pattern) {
		sb.WriteString(StyleFromColorPair(r.styles.ForToken(tok.Kind), r.renderer).Render(tok.Text))
	}
	return sb.String()
}

// StyleFromColorPair creates a lipgloss style from a ColorPair.
// If renderer is nil, the default lipgloss renderer is used.
func StyleFromColorPair(cp diffmark.ColorPair, renderer *lipgloss.Renderer) lipgloss.Style {
	var style lipgloss.Style
	if renderer != nil {
		style = renderer.NewStyle()
	} else {
		style = lipgloss.NewStyle()
	}
	if cp.Foreground != "" {
		style = style.Foreground(lipgloss.Color(cp.Foreground))
	}
	if cp.Background != "" {
		style = style.Background(lipgloss.Color(cp.Background))
	}
	return style
}
