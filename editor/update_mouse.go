package editor

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/vellum/buffer"
)

// wheelLines is how far one wheel tick moves the cursor.
const wheelLines = 3

// updateMouse handles pointer input: a left click places the cursor at the
// clicked cell and wheel ticks move it vertically. The viewport follows the
// cursor, so wheel scrolling pulls the view along rather than detaching
// from it.
//
// Coordinates are window cells with the editor rendered at the origin;
// hosts that place the editor elsewhere must translate before forwarding.
func (m Model) updateMouse(msg tea.MouseMsg) Model {
	if !m.focused || msg.Action != tea.MouseActionPress {
		return m
	}

	switch msg.Button {
	case tea.MouseButtonLeft:
		if !m.inContentArea(msg.X, msg.Y) {
			return m
		}
		m.status = ""
		m.buf.SetCursor(m.screenToDoc(msg.X, msg.Y))
	case tea.MouseButtonWheelUp:
		m.moveClamped(buffer.DirUp, wheelLines)
	case tea.MouseButtonWheelDown:
		m.moveClamped(buffer.DirDown, wheelLines)
	default:
		return m
	}

	m.syncView()
	return m
}

func (m Model) inContentArea(x, y int) bool {
	return x >= 0 && x < m.width && y >= 0 && y < m.contentHeight()
}
