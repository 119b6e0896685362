package buffer

type Dir int

const (
	DirLeft Dir = iota
	DirRight
	DirUp
	DirDown
	DirHome // start of line
	DirEnd  // end of line
)

// Move is a cursor motion command. Count is the distance in runes for
// DirLeft/DirRight and in lines for DirUp/DirDown; DirHome and DirEnd
// ignore it. A Count below 1 moves nothing.
type Move struct {
	Dir   Dir
	Count int
}

// Move applies m to the cursor.
//
// Horizontal motion clamps at the document boundaries and always forgets
// the remembered column. Vertical motion targets the same column on the
// destination line; when that line is shorter, the cursor lands on its last
// cell and the wanted column is remembered until the next horizontal motion
// or edit. A vertical move whose destination line falls outside the
// document is a no-op.
func (b *Buffer) Move(m Move) {
	switch m.Dir {
	case DirLeft, DirRight:
		if m.Count < 1 {
			return
		}
		b.moveHorizontal(m.Dir, m.Count)
	case DirUp, DirDown:
		if m.Count < 1 {
			return
		}
		b.moveVertical(m.Dir, m.Count)
	case DirHome:
		b.moveLineStart()
	case DirEnd:
		b.moveLineEnd()
	}
}

func (b *Buffer) moveHorizontal(dir Dir, n int) {
	if dir == DirLeft {
		n = -n
	}
	b.cursor = clampInt(b.cursor+n, 0, len(b.data))
	b.stickySet = false
}

func (b *Buffer) moveVertical(dir Dir, n int) {
	cur := b.lineAt(b.cursor)
	target := cur - n
	if dir == DirDown {
		target = cur + n
	}
	if target < 0 || target >= len(b.lines) {
		return
	}

	desired := b.cursor - b.lines[cur].Start
	if b.stickySet {
		desired = b.stickyCol
	}

	if fit := b.maxColFit(target); desired > fit {
		b.stickyCol = desired
		b.stickySet = true
		desired = b.lastCol(target)
	}
	b.cursor = b.lines[target].Start + desired
}

// maxColFit returns the largest column the cursor may occupy on line i: the
// newline cell on terminated lines, one past the last rune on the final
// line.
func (b *Buffer) maxColFit(i int) int {
	s := b.lines[i]
	if i == len(b.lines)-1 {
		return len(b.data) - s.Start
	}
	return s.End - s.Start
}

// lastCol returns the column of line i's last cell, 0 when the line is
// empty.
func (b *Buffer) lastCol(i int) int {
	n := len(b.lineRunes(i)) - 1
	if n < 0 {
		return 0
	}
	return n
}

func (b *Buffer) moveLineStart() {
	b.cursor = b.lines[b.lineAt(b.cursor)].Start
	b.stickySet = false
}

func (b *Buffer) moveLineEnd() {
	i := b.lineAt(b.cursor)
	b.cursor = b.lines[i].Start + b.maxColFit(i)
	b.stickySet = false
}
