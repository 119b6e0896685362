package editor

import "strings"

func (m Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}

	rows := m.contentRows()
	if m.showHelp {
		rows = append(rows, m.helpRow())
	}
	rows = append(rows, m.statusRow())
	return strings.Join(rows, "\n")
}

func (m Model) contentRows() []string {
	width, height := m.buf.Size()
	offsetX, offsetY := m.buf.Offsets()
	gutter := m.gutterWidth()
	curLine := m.buf.CurrentLine()
	cursorX, cursorY := m.buf.CursorXY()

	rows := make([]string, 0, height)
	for r := 0; r < height; r++ {
		li := offsetY + r
		var sb strings.Builder

		if gutter > 0 {
			sb.WriteString(m.gutterCell(li, gutter, curLine))
		}

		if li < m.buf.LineCount() {
			visible := windowRunes(displayRunes(m.buf.Line(li)), offsetX, width)
			if m.focused && r == cursorY {
				sb.WriteString(m.renderCursorRow(visible, cursorX-gutter))
			} else if len(visible) > 0 {
				sb.WriteString(m.Style.Text.Render(string(visible)))
			}
		}

		rows = append(rows, sb.String())
	}
	return rows
}

// renderCursorRow renders the cursor's row with the cell at cx shown in the
// cursor style. A cursor past the end of the text gets a 1-cell placeholder
// space, matching the convention that the cursor may sit one past the last
// rune.
func (m Model) renderCursorRow(visible []rune, cx int) string {
	if cx < 0 || cx > len(visible) {
		if len(visible) == 0 {
			return ""
		}
		return m.Style.Text.Render(string(visible))
	}

	var sb strings.Builder
	if cx > 0 {
		sb.WriteString(m.Style.Text.Render(string(visible[:cx])))
	}
	cell := " "
	if cx < len(visible) {
		cell = string(visible[cx])
	}
	sb.WriteString(m.Style.Cursor.Render(cell))
	if cx+1 < len(visible) {
		sb.WriteString(m.Style.Text.Render(string(visible[cx+1:])))
	}
	return sb.String()
}

func (m Model) helpRow() string {
	return m.Style.Help.Render(m.help.View(m.KeyMap))
}

// displayRunes maps document runes to single-cell display runes. Tabs render
// as one blank cell so column arithmetic matches the screen.
func displayRunes(rs []rune) []rune {
	out := rs
	copied := false
	for i, r := range rs {
		if r == '\t' {
			if !copied {
				out = append([]rune(nil), rs...)
				copied = true
			}
			out[i] = ' '
		}
	}
	return out
}

func windowRunes(rs []rune, off, width int) []rune {
	if width <= 0 || off >= len(rs) {
		return nil
	}
	rs = rs[off:]
	if len(rs) > width {
		rs = rs[:width]
	}
	return rs
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
