package editor

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/vellum/buffer"
)

// Model is a Bubble Tea component that edits a single buffer. It can run as
// the root model of a program or be embedded in a larger one.
//
// The zero value is not usable; construct with New.
type Model struct {
	// KeyMap is consulted on every key event. Hosts may rebind or disable
	// individual bindings after New.
	KeyMap KeyMap

	// Style controls rendering. Replace wholesale or per field.
	Style Style

	cfg Config
	buf *buffer.Buffer

	path         string
	savedVersion uint64

	width  int
	height int

	focused  bool
	showHelp bool
	status   string

	help help.Model
}

func New(cfg Config) Model {
	m := Model{
		KeyMap:  DefaultKeyMap(),
		Style:   DefaultStyle(),
		cfg:     cfg,
		buf:     buffer.New(cfg.Text),
		path:    cfg.FileName,
		focused: true,
		help:    help.New(),
	}
	m.savedVersion = m.buf.Version()
	return m
}

// Buffer exposes the underlying document. Hosts may mutate it directly; the
// next View picks the change up.
func (m Model) Buffer() *buffer.Buffer { return m.buf }

func (m Model) Init() tea.Cmd { return nil }

// FileName returns the path Save writes to, empty for a scratch document.
func (m Model) FileName() string { return m.path }

// Dirty reports whether the buffer has mutations that Save has not written.
func (m Model) Dirty() bool { return m.buf.Version() != m.savedVersion }

func (m Model) SetSize(width, height int) Model {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	m.width = width
	m.height = height
	m.help.Width = width
	m.syncView()
	return m
}

func (m Model) Focus() Model {
	m.focused = true
	return m
}

func (m Model) Blur() Model {
	m.focused = false
	return m
}

func (m Model) Focused() bool { return m.focused }

// contentHeight is the number of rows left for document text after the
// status line and the optional help row.
func (m Model) contentHeight() int {
	h := m.height - 1
	if m.showHelp {
		h--
	}
	if h < 0 {
		h = 0
	}
	return h
}

// syncView reassigns the buffer's viewport geometry from the current window
// size and keeps the cursor inside it. Called after anything that can move
// the cursor or change the layout.
func (m *Model) syncView() {
	gutter := m.gutterWidth()
	cw := m.width - gutter
	if cw < 0 {
		cw = 0
	}
	m.buf.MoveTo(gutter, 0)
	m.buf.Resize(cw, m.contentHeight())
	m.buf.Scroll()
}
