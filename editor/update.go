package editor

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/vellum/buffer"
	"github.com/iw2rmb/vellum/internal/logger"
)

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case tea.KeyMsg:
		prevVersion, prevCursor := m.buf.Version(), m.buf.Cursor()
		next, cmd := m.updateKey(msg)
		next.emitChange(prevVersion, prevCursor)
		return next, cmd
	case tea.MouseMsg:
		prevVersion, prevCursor := m.buf.Version(), m.buf.Cursor()
		next := m.updateMouse(msg)
		next.emitChange(prevVersion, prevCursor)
		return next, nil
	}
	return m, nil
}

func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if !m.focused {
		return m, nil
	}

	// Paste events insert literal text and never trigger shortcuts.
	if msg.Type == tea.KeyRunes && msg.Paste && len(msg.Runes) > 0 {
		m.status = ""
		m.buf.InsertText(string(msg.Runes))
		m.syncView()
		return m, nil
	}

	m.status = ""

	switch {
	case key.Matches(msg, m.KeyMap.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.KeyMap.Save):
		m = m.save()

	case key.Matches(msg, m.KeyMap.Help):
		m.showHelp = !m.showHelp

	case key.Matches(msg, m.KeyMap.Left):
		m.buf.Move(buffer.Move{Dir: buffer.DirLeft, Count: 1})
	case key.Matches(msg, m.KeyMap.Right):
		m.buf.Move(buffer.Move{Dir: buffer.DirRight, Count: 1})
	case key.Matches(msg, m.KeyMap.Up):
		m.buf.Move(buffer.Move{Dir: buffer.DirUp, Count: 1})
	case key.Matches(msg, m.KeyMap.Down):
		m.buf.Move(buffer.Move{Dir: buffer.DirDown, Count: 1})

	case key.Matches(msg, m.KeyMap.Home):
		m.buf.Move(buffer.Move{Dir: buffer.DirHome})
	case key.Matches(msg, m.KeyMap.End):
		m.buf.Move(buffer.Move{Dir: buffer.DirEnd})

	case key.Matches(msg, m.KeyMap.PageUp):
		m.pageMove(buffer.DirUp)
	case key.Matches(msg, m.KeyMap.PageDown):
		m.pageMove(buffer.DirDown)

	case key.Matches(msg, m.KeyMap.Backspace):
		m.buf.DeleteBackward()
	case key.Matches(msg, m.KeyMap.Delete):
		m.buf.DeleteForward()
	case key.Matches(msg, m.KeyMap.Enter):
		m.buf.InsertNewline()

	default:
		switch msg.Type {
		case tea.KeyTab:
			m.buf.InsertRune('\t')
		case tea.KeySpace:
			// A typed space arrives as its own key type, never in a rune batch.
			if !msg.Alt {
				m.buf.InsertRune(' ')
			}
		case tea.KeyRunes:
			if len(msg.Runes) > 0 && !msg.Alt {
				m.buf.InsertText(string(msg.Runes))
			}
		}
	}

	m.syncView()
	return m, nil
}

// pageMove scrolls by a viewport height of lines.
func (m Model) pageMove(dir buffer.Dir) {
	page := m.contentHeight()
	if page < 1 {
		page = 1
	}
	m.moveClamped(dir, page)
}

// moveClamped moves the cursor up to n lines, trimming the count near the
// document edges so a large step still reaches the first or last line
// instead of no-opping.
func (m Model) moveClamped(dir buffer.Dir, n int) {
	line := m.buf.CurrentLine()
	if dir == buffer.DirUp {
		if line < n {
			n = line
		}
	} else {
		if rest := m.buf.LineCount() - 1 - line; rest < n {
			n = rest
		}
	}
	if n > 0 {
		m.buf.Move(buffer.Move{Dir: dir, Count: n})
	}
}

func (m Model) save() Model {
	if m.path == "" {
		m.status = "no file name"
		return m
	}
	if err := SaveFile(m.path, m.buf.Text()); err != nil {
		logger.Error("save failed", "path", m.path, "err", err)
		m.status = fmt.Sprintf("save failed: %v", err)
		return m
	}
	m.savedVersion = m.buf.Version()
	logger.Info("saved file", "path", m.path, "bytes", len(m.buf.Text()))
	m.status = fmt.Sprintf("saved %s", m.path)
	return m
}
