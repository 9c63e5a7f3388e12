// Package bubbletea provides an interactive corpus browser using the Bubble
// Tea framework.
package bubbletea

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/diffmark"
	"github.com/sahilm/fuzzy"
)

// chromeLines counts the rows that are not list or detail: the header, the
// divider and the status bar.
const chromeLines = 3

// copiedMsg reports the result of a clipboard copy.
type copiedMsg struct {
	content string
	err     error
}

// Model is the Bubble Tea model for browsing an encoded corpus.
type Model struct {
	// Data
	entries []diffmark.EncodedEntry
	bases   []string
	visible []int // indices into entries in display order
	cursor  int   // position within visible

	// UI Components
	filter    textinput.Model
	filtering bool
	detail    viewport.Model
	help      help.Model

	// State
	ready  bool
	status string

	// Rendering
	width, height int
	styles        diffmark.Styles
	renderer      *lipgloss.Renderer
	highlighter   diffmark.Highlighter

	clipboard diffmark.Clipboard
	keymap    KeyMap
}

// ModelOption configures a Model.
type ModelOption func(*Model)

// WithTheme sets the colors used by the browser.
func WithTheme(t diffmark.Theme) ModelOption {
	return func(m *Model) {
		m.styles = t.Styles()
	}
}

// WithRenderer sets the lipgloss renderer for styling output.
// This is primarily useful for testing with a specific color profile.
func WithRenderer(r *lipgloss.Renderer) ModelOption {
	return func(m *Model) {
		m.renderer = r
	}
}

// WithHighlighter sets the highlighter used for patterns. Without one,
// patterns are shown as plain text.
func WithHighlighter(h diffmark.Highlighter) ModelOption {
	return func(m *Model) {
		m.highlighter = h
	}
}

// WithClipboard enables copying patterns with the Copy binding.
func WithClipboard(c diffmark.Clipboard) ModelOption {
	return func(m *Model) {
		m.clipboard = c
	}
}

// NewModel creates a new Model with the given entries.
func NewModel(entries []diffmark.EncodedEntry, opts ...ModelOption) Model {
	bases := make([]string, len(entries))
	visible := make([]int, len(entries))
	for i, e := range entries {
		bases[i] = e.Base
		visible[i] = i
	}

	ti := textinput.New()
	ti.Prompt = "/"
	ti.Placeholder = "filter base words"

	m := Model{
		entries: entries,
		bases:   bases,
		visible: visible,
		filter:  ti,
		help:    help.New(),
		keymap:  DefaultKeyMap(),
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// Selected returns the entry under the cursor. It reports false when no
// entry is visible.
func (m Model) Selected() (diffmark.EncodedEntry, bool) {
	if len(m.visible) == 0 {
		return diffmark.EncodedEntry{}, false
	}
	return m.entries[m.visible[m.cursor]], true
}

// Visible returns the entries that pass the current filter, in display order.
func (m Model) Visible() []diffmark.EncodedEntry {
	out := make([]diffmark.EncodedEntry, len(m.visible))
	for i, idx := range m.visible {
		out[i] = m.entries[idx]
	}
	return out
}

// Status returns the last status message.
func (m Model) Status() string {
	return m.status
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.filtering {
			return m.handleFilterKeys(msg)
		}
		return m.handleBrowseKeys(msg)

	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)

	case copiedMsg:
		if msg.err != nil {
			m.status = "copy failed: " + msg.err.Error()
		} else {
			m.status = "copied " + msg.content
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.detail, cmd = m.detail.Update(msg)
	return m, cmd
}

func (m Model) handleBrowseKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keymap.Down):
		m.moveCursor(1)
	case key.Matches(msg, m.keymap.Up):
		m.moveCursor(-1)
	case key.Matches(msg, m.keymap.HalfPageDown):
		m.moveCursor(max(m.listHeight()/2, 1))
	case key.Matches(msg, m.keymap.HalfPageUp):
		m.moveCursor(-max(m.listHeight()/2, 1))
	case key.Matches(msg, m.keymap.GotoTop):
		m.moveCursor(-len(m.visible))
	case key.Matches(msg, m.keymap.GotoBottom):
		m.moveCursor(len(m.visible))
	case key.Matches(msg, m.keymap.Filter):
		m.filtering = true
		m.status = ""
		return m, m.filter.Focus()
	case key.Matches(msg, m.keymap.ClearFilter):
		m.filter.SetValue("")
		m.applyFilter()
	case key.Matches(msg, m.keymap.Copy):
		return m, m.copySelected()
	}
	return m, nil
}

func (m Model) handleFilterKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyCtrlC:
		return m, tea.Quit
	case key.Matches(msg, m.keymap.ClearFilter):
		m.filtering = false
		m.filter.Blur()
		m.filter.SetValue("")
		m.applyFilter()
		return m, nil
	case key.Matches(msg, m.keymap.AcceptFilter):
		m.filtering = false
		m.filter.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	m.applyFilter()
	return m, cmd
}

func (m Model) handleWindowSize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.filter.Width = max(msg.Width-2, 1)
	m.help.Width = msg.Width

	detailHeight := max(m.height-chromeLines-m.listHeight(), 1)
	if !m.ready {
		m.detail = viewport.New(msg.Width, detailHeight)
		m.ready = true
	} else {
		m.detail.Width = msg.Width
		m.detail.Height = detailHeight
	}
	m.refreshDetail()
	return m, nil
}

// copySelected returns a command that copies the selected entry's patterns.
func (m Model) copySelected() tea.Cmd {
	e, ok := m.Selected()
	if !ok || m.clipboard == nil {
		return nil
	}
	content := strings.Join(e.Patterns, diffmark.Separator)
	cb := m.clipboard
	return func() tea.Msg {
		return copiedMsg{content: content, err: cb.Copy(content)}
	}
}

// moveCursor moves the cursor by delta, clamped to the visible entries.
func (m *Model) moveCursor(delta int) {
	if len(m.visible) == 0 {
		return
	}
	m.cursor = min(max(m.cursor+delta, 0), len(m.visible)-1)
	m.refreshDetail()
}

// applyFilter recomputes the visible entries from the filter text. An empty
// filter shows every entry in corpus order; otherwise matches are ranked by
// fuzzy score.
func (m *Model) applyFilter() {
	query := m.filter.Value()
	visible := make([]int, 0, len(m.entries))
	if query == "" {
		for i := range m.entries {
			visible = append(visible, i)
		}
	} else {
		for _, match := range fuzzy.Find(query, m.bases) {
			visible = append(visible, match.Index)
		}
	}
	m.visible = visible
	m.cursor = 0
	m.refreshDetail()
}

// listHeight is the number of rows given to the entry list.
func (m Model) listHeight() int {
	return max((m.height-chromeLines)/2, 1)
}

func (m *Model) refreshDetail() {
	if !m.ready {
		return
	}
	m.detail.SetContent(m.renderDetail())
	m.detail.GotoTop()
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	var s strings.Builder
	s.WriteString(m.renderHeader())
	s.WriteString("\n")
	s.WriteString(m.renderList())
	s.WriteString(m.style(m.styles.Muted).Render(strings.Repeat("─", max(m.width, 1))))
	s.WriteString("\n")
	s.WriteString(m.detail.View())
	s.WriteString("\n")
	s.WriteString(m.renderStatusBar())
	return s.String()
}

func (m Model) renderHeader() string {
	if m.filtering || m.filter.Value() != "" {
		return m.filter.View()
	}
	return m.style(m.styles.Muted).Render(fmt.Sprintf("%d entries", len(m.entries)))
}

func (m Model) renderList() string {
	height := m.listHeight()
	start := max(m.cursor-height+1, 0)

	var s strings.Builder
	for row := range height {
		i := start + row
		if i >= len(m.visible) {
			s.WriteString("\n")
			continue
		}
		base := m.entries[m.visible[i]].Base
		if i == m.cursor {
			s.WriteString(m.style(m.styles.Selected).Render("> " + base))
		} else {
			s.WriteString("  " + base)
		}
		s.WriteString("\n")
	}
	return s.String()
}

// renderDetail shows each pattern of the selected entry next to the word it
// reconstructs.
func (m Model) renderDetail() string {
	e, ok := m.Selected()
	if !ok {
		return m.style(m.styles.Muted).Render("no matching entries")
	}

	width := 0
	for _, p := range e.Patterns {
		width = max(width, len(p))
	}

	var s strings.Builder
	s.WriteString(m.style(m.styles.Word).Bold(true).Render(e.Base))
	s.WriteString("\n")
	for _, p := range e.Patterns {
		s.WriteString("  ")
		s.WriteString(m.highlight(p))
		s.WriteString(strings.Repeat(" ", width-len(p)+2))
		word, err := diffmark.Mark(e.Base, p)
		if err != nil {
			s.WriteString(m.style(m.styles.Error).Render(err.Error()))
		} else {
			s.WriteString(m.style(m.styles.Word).Render(word))
		}
		s.WriteString("\n")
	}
	return s.String()
}

func (m Model) highlight(pattern string) string {
	if m.highlighter == nil {
		return m.style(m.styles.Pattern).Render(pattern)
	}
	var s strings.Builder
	for _, tok := range m.highlighter.Highlight(pattern) {
		s.WriteString(m.style(m.styles.ForToken(tok.Kind)).Render(tok.Text))
	}
	return s.String()
}

func (m Model) renderStatusBar() string {
	if m.status != "" {
		return m.style(m.styles.Muted).Render(m.status)
	}
	position := fmt.Sprintf("%d/%d  ", min(m.cursor+1, len(m.visible)), len(m.visible))
	return m.style(m.styles.Muted).Render(position) + m.help.ShortHelpView(m.keymap.ShortHelp())
}

// style creates a lipgloss style from a ColorPair using the model's renderer.
func (m Model) style(cp diffmark.ColorPair) lipgloss.Style {
	var style lipgloss.Style
	if m.renderer != nil {
		style = m.renderer.NewStyle()
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

// Compile-time interface verification.
var _ diffmark.Viewer = (*Viewer)(nil)

// Viewer implements diffmark.Viewer using a Bubble Tea TUI.
type Viewer struct {
	opts []ModelOption
}

// NewViewer creates a new Viewer. The options are applied to every model it
// creates.
func NewViewer(opts ...ModelOption) *Viewer {
	return &Viewer{opts: opts}
}

// View displays the entries and blocks until the user exits or ctx is
// cancelled.
func (v *Viewer) View(ctx context.Context, entries []diffmark.EncodedEntry) error {
	m := NewModel(entries, v.opts...)
	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)
	_, err := p.Run()
	return err
}
