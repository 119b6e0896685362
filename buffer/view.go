package buffer

// CursorXY returns the screen cell of the cursor: the viewport origin plus
// the cursor's document position minus the scroll offsets. The result can
// fall outside the viewport when the cursor moved since the last Scroll.
func (b *Buffer) CursorXY() (x, y int) {
	line := b.lineAt(b.cursor)
	x = b.originX + (b.cursor - b.lines[line].Start) - b.offsetX
	y = b.originY + line - b.offsetY
	return x, y
}

// Scroll adjusts the offsets by the smallest amount that brings the cursor
// back inside the viewport. Offsets never drop below zero. An axis with a
// non-positive extent is left alone.
func (b *Buffer) Scroll() {
	line := b.lineAt(b.cursor)
	rx := (b.cursor - b.lines[line].Start) - b.offsetX
	ry := line - b.offsetY

	if b.width > 0 {
		if rx < 0 {
			b.offsetX = maxInt(b.offsetX+rx, 0)
		} else if rx >= b.width {
			b.offsetX += rx - b.width + 1
		}
	}
	if b.height > 0 {
		if ry < 0 {
			b.offsetY = maxInt(b.offsetY+ry, 0)
		} else if ry >= b.height {
			b.offsetY += ry - b.height + 1
		}
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
