package mock

import (
	"context"
	"io"

	"github.com/fwojciec/diffmark"
)

// Compile-time interface verification.
var (
	_ diffmark.Viewer      = (*Viewer)(nil)
	_ diffmark.Renderer    = (*Renderer)(nil)
	_ diffmark.Highlighter = (*Highlighter)(nil)
	_ diffmark.Clipboard   = (*Clipboard)(nil)
)

// Viewer is a mock implementation of diffmark.Viewer.
type Viewer struct {
	ViewFn func(ctx context.Context, entries []diffmark.EncodedEntry) error
}

func (v *Viewer) View(ctx context.Context, entries []diffmark.EncodedEntry) error {
	return v.ViewFn(ctx, entries)
}

// Renderer is a mock implementation of diffmark.Renderer.
type Renderer struct {
	RenderFn func(w io.Writer, entries []diffmark.EncodedEntry) error
}

func (r *Renderer) Render(w io.Writer, entries []diffmark.EncodedEntry) error {
	return r.RenderFn(w, entries)
}

// Highlighter is a mock implementation of diffmark.Highlighter.
type Highlighter struct {
	HighlightFn func(pattern string) []diffmark.Token
}

func (h *Highlighter) Highlight(pattern string) []diffmark.Token {
	return h.HighlightFn(pattern)
}

// Clipboard is a mock implementation of diffmark.Clipboard.
type Clipboard struct {
	CopyFn func(content string) error
}

func (c *Clipboard) Copy(content string) error {
	return c.CopyFn(content)
}
