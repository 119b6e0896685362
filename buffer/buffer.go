package buffer

// Buffer is the document state: the flat rune sequence, its line index, the
// cursor, and the viewport geometry the host assigned to it.
type Buffer struct {
	data  []rune
	lines []LineSpan

	cursor    int
	stickyCol int
	stickySet bool

	offsetX int
	offsetY int

	originX int
	originY int
	width   int
	height  int

	version uint64
}

// New builds a buffer over text with the cursor at offset 0 and zero
// geometry. Callers size and place the viewport with Resize and MoveTo.
// Text is expected to use bare \n line endings.
func New(text string) *Buffer {
	b := &Buffer{data: []rune(text)}
	b.recompute()
	return b
}

func (b *Buffer) Text() string { return string(b.data) }

// Len returns the length of the document in runes.
func (b *Buffer) Len() int { return len(b.data) }

func (b *Buffer) LineCount() int { return len(b.lines) }

// Line returns the runes of line i without its terminating newline, or nil
// when i is out of range. The slice aliases the buffer; callers must not
// modify it.
func (b *Buffer) Line(i int) []rune {
	if i < 0 || i >= len(b.lines) {
		return nil
	}
	runes := b.lineRunes(i)
	if n := len(runes); n > 0 && runes[n-1] == '\n' {
		return runes[:n-1]
	}
	return runes
}

// Span returns the line index entry for line i. Out-of-range i yields the
// zero span.
func (b *Buffer) Span(i int) LineSpan {
	if i < 0 || i >= len(b.lines) {
		return LineSpan{}
	}
	return b.lines[i]
}

func (b *Buffer) Cursor() int { return b.cursor }

// SetCursor places the cursor at offset p, clamped into [0, Len()]. Direct
// placement forgets any remembered column.
func (b *Buffer) SetCursor(p int) {
	b.cursor = clampInt(p, 0, len(b.data))
	b.stickySet = false
}

// Position returns the cursor as a (line, column) pair, both 0-based. The
// column counts runes from the start of the line.
func (b *Buffer) Position() (line, col int) {
	line = b.lineAt(b.cursor)
	return line, b.cursor - b.lines[line].Start
}

// Version counts text mutations. Hosts compare versions to detect unsaved
// changes; cursor and viewport motion do not advance it.
func (b *Buffer) Version() uint64 { return b.version }

// Resize sets the viewport extent in cells. Non-positive extents are kept
// as given; Scroll and CursorXY treat such an axis as unconstrained.
func (b *Buffer) Resize(width, height int) {
	b.width = width
	b.height = height
}

// MoveTo places the viewport origin at screen cell (x, y).
func (b *Buffer) MoveTo(x, y int) {
	b.originX = x
	b.originY = y
}

func (b *Buffer) Size() (width, height int) { return b.width, b.height }

func (b *Buffer) Origin() (x, y int) { return b.originX, b.originY }

// Offsets returns the scroll state: how many columns and lines are hidden
// left of and above the viewport.
func (b *Buffer) Offsets() (offsetX, offsetY int) { return b.offsetX, b.offsetY }

// CurrentLine returns the index of the line containing the cursor. A cursor
// at the very end of the document belongs to the last line.
func (b *Buffer) CurrentLine() int { return b.lineAt(b.cursor) }

func (b *Buffer) lineAt(p int) int {
	for i, s := range b.lines {
		if p <= s.End {
			return i
		}
	}
	return len(b.lines) - 1
}

// lineRunes returns line i's runes including any terminating newline.
// Degenerate spans yield an empty slice.
func (b *Buffer) lineRunes(i int) []rune {
	s := b.lines[i]
	lo := clampInt(s.Start, 0, len(b.data))
	hi := clampInt(s.End+1, lo, len(b.data))
	return b.data[lo:hi]
}

func (b *Buffer) recompute() {
	b.lines = Recompute(b.data)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
