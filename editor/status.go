package editor

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

// statusRow renders the bottom bar: file name, dirty marker, transient
// message, and the 1-based cursor position, padded to the full width.
func (m Model) statusRow() string {
	name := m.path
	if name == "" {
		name = "[No Name]"
	}
	marker := ""
	if m.Dirty() {
		marker = " [+]"
	}
	msg := ""
	if m.status != "" {
		msg = "  " + m.status
	}
	line, col := m.buf.Position()
	pos := fmt.Sprintf("%d:%d ", line+1, col+1)

	avail := m.width - runewidth.StringWidth(" "+marker+msg+pos)
	if avail < 1 {
		avail = 1
	}
	name = runewidth.Truncate(name, avail, "…")

	pad := m.width - runewidth.StringWidth(" "+name+marker+msg+pos)
	if pad < 0 {
		msg = runewidth.Truncate(msg, maxInt(runewidth.StringWidth(msg)+pad, 0), "…")
		pad = maxInt(m.width-runewidth.StringWidth(" "+name+marker+msg+pos), 0)
	}

	bar := m.Style.StatusBar
	row := bar.Render(" ") +
		m.Style.FileName.Inherit(bar).Render(name) +
		bar.Render(marker+msg+strings.Repeat(" ", pad)+pos)
	// A width too small for the position block clips instead of overflowing.
	return ansi.Truncate(row, m.width, "")
}
