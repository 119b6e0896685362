package editor

import (
	"fmt"
	"strings"
)

// gutterWidth is the number of cells the line number gutter occupies,
// including its one-cell right margin, or 0 when line numbers are off. The
// buffer's viewport origin sits just right of it.
func (m Model) gutterWidth() int {
	if !m.cfg.ShowLineNums {
		return 0
	}
	return gutterDigits(m.buf.LineCount()) + 1
}

// gutterCell renders the gutter for one content row: the right-aligned
// 1-based line number, highlighted on the cursor row while focused, or
// blank padding for rows past the last line.
func (m Model) gutterCell(li, width, curLine int) string {
	if li >= m.buf.LineCount() {
		return m.Style.Gutter.Render(strings.Repeat(" ", width))
	}

	numStyle := m.Style.LineNum
	if m.focused && li == curLine {
		numStyle = m.Style.LineNumActive
	}
	return numStyle.Render(fmt.Sprintf("%*d", width-1, li+1)) + m.Style.Gutter.Render(" ")
}

func gutterDigits(n int) int {
	d := 1
	for n >= 10 {
		n /= 10
		d++
	}
	return d
}
