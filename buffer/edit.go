package buffer

import "strings"

// InsertRune inserts a single rune at the cursor and advances past it.
func (b *Buffer) InsertRune(r rune) {
	b.insert([]rune{r})
}

// InsertText inserts text at the cursor. Carriage returns are stripped so
// pasted CRLF input cannot leave \r cells in the document.
func (b *Buffer) InsertText(s string) {
	if strings.ContainsRune(s, '\r') {
		s = strings.ReplaceAll(s, "\r", "")
	}
	b.insert([]rune(s))
}

// InsertNewline inserts a line break at the cursor.
func (b *Buffer) InsertNewline() {
	b.InsertRune('\n')
}

// DeleteBackward applies backspace semantics: it removes the rune before the
// cursor. At offset 0 it is a no-op. Removing a newline joins the line with
// its predecessor.
func (b *Buffer) DeleteBackward() {
	if b.cursor == 0 {
		return
	}
	b.cursor--
	b.data = append(b.data[:b.cursor], b.data[b.cursor+1:]...)
	b.edited()
}

// DeleteForward applies delete-key semantics: it removes the rune under the
// cursor without moving it. At the end of the document it is a no-op.
func (b *Buffer) DeleteForward() {
	if b.cursor >= len(b.data) {
		return
	}
	b.data = append(b.data[:b.cursor], b.data[b.cursor+1:]...)
	b.edited()
}

func (b *Buffer) insert(rs []rune) {
	if len(rs) == 0 {
		return
	}
	next := make([]rune, 0, len(b.data)+len(rs))
	next = append(next, b.data[:b.cursor]...)
	next = append(next, rs...)
	next = append(next, b.data[b.cursor:]...)
	b.data = next
	b.cursor += len(rs)
	b.edited()
}

// edited refreshes derived state after a text mutation: the line index is
// rebuilt, the remembered column dropped, and the version advanced.
func (b *Buffer) edited() {
	b.recompute()
	b.stickySet = false
	b.version++
}
