package editor

// screenToDoc maps a screen cell to the buffer offset a click there places
// the cursor at. Coordinates are in the same frame CursorXY reports in.
//
// Rows outside the document clamp to the nearest line. Gutter cells map to
// column 0, and cells past the end of a line clamp to its last valid cursor
// column: the newline cell on terminated lines, one past the last rune on
// the final line.
func (m Model) screenToDoc(x, y int) int {
	originX, originY := m.buf.Origin()
	offsetX, offsetY := m.buf.Offsets()

	line := offsetY + y - originY
	if line < 0 {
		line = 0
	}
	if last := m.buf.LineCount() - 1; line > last {
		line = last
	}

	col := 0
	if x >= originX {
		col = offsetX + x - originX
	}
	if max := len(m.buf.Line(line)); col > max {
		col = max
	}

	return m.buf.Span(line).Start + col
}
