package editor

import "github.com/iw2rmb/vellum/buffer"

// ChangeEvent describes the buffer state after an observable change: a text
// mutation or a cursor move. Hosts receive it through Config.OnChange.
type ChangeEvent struct {
	Version uint64
	Cursor  int
	Line    int
	Col     int

	// Text is the full document; hosts that need deltas can diff against
	// their previous event.
	Text string
}

func buildChangeEvent(b *buffer.Buffer) ChangeEvent {
	line, col := b.Position()
	return ChangeEvent{
		Version: b.Version(),
		Cursor:  b.Cursor(),
		Line:    line,
		Col:     col,
		Text:    b.Text(),
	}
}

// emitChange fires the OnChange callback when the buffer moved on from the
// given prior state. Boundary no-ops fire nothing.
func (m Model) emitChange(prevVersion uint64, prevCursor int) {
	if m.cfg.OnChange == nil {
		return
	}
	if m.buf.Version() == prevVersion && m.buf.Cursor() == prevCursor {
		return
	}
	m.cfg.OnChange(buildChangeEvent(m.buf))
}
