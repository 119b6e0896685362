package editor

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestOnChange_FiresOnMutationsAndSkipsNoOps(t *testing.T) {
	var events []ChangeEvent
	m := New(Config{
		Text: "ab",
		OnChange: func(ev ChangeEvent) {
			events = append(events, ev)
		},
	})
	m = m.SetSize(20, 5)
	if len(events) != 0 {
		t.Fatalf("events after construction: got %d, want 0", len(events))
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	if len(events) != 1 {
		t.Fatalf("events after move: got %d, want 1", len(events))
	}
	if got := events[0].Cursor; got != 1 {
		t.Fatalf("event cursor after move: got %d, want 1", got)
	}
	if events[0].Line != 0 || events[0].Col != 1 {
		t.Fatalf("event position: got (%d,%d), want (0,1)", events[0].Line, events[0].Col)
	}
	if got := events[0].Text; got != "ab" {
		t.Fatalf("event text after move: got %q, want %q", got, "ab")
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight}) // to end of document
	if len(events) != 2 {
		t.Fatalf("events after move to end: got %d, want 2", len(events))
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight}) // no-op at the boundary
	if len(events) != 2 {
		t.Fatalf("events after no-op move: got %d, want 2", len(events))
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("X")})
	if len(events) != 3 {
		t.Fatalf("events after insert: got %d, want 3", len(events))
	}
	if got := events[2].Text; got != "abX" {
		t.Fatalf("event text after insert: got %q, want %q", got, "abX")
	}
	if got := events[2].Version; got != 1 {
		t.Fatalf("event version after insert: got %d, want 1", got)
	}
}

func TestOnChange_BoundaryDeletesFireNothing(t *testing.T) {
	count := 0
	m := New(Config{
		Text:     "",
		OnChange: func(ChangeEvent) { count++ },
	})
	m = m.SetSize(20, 5)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDelete})
	if count != 0 {
		t.Fatalf("events after boundary deletes: got %d, want 0", count)
	}
}

func TestOnChange_MouseClickFires(t *testing.T) {
	var events []ChangeEvent
	m := New(Config{
		Text:     "ab\ncd",
		OnChange: func(ev ChangeEvent) { events = append(events, ev) },
	})
	m = m.SetSize(20, 5)

	m, _ = m.Update(tea.MouseMsg{
		X: 1, Y: 1,
		Action: tea.MouseActionPress,
		Button: tea.MouseButtonLeft,
	})
	if len(events) != 1 {
		t.Fatalf("events after click: got %d, want 1", len(events))
	}
	if got := events[0].Cursor; got != 4 {
		t.Fatalf("event cursor after click: got %d, want 4", got)
	}

	// Clicking the cell the cursor already occupies changes nothing.
	m, _ = m.Update(tea.MouseMsg{
		X: 1, Y: 1,
		Action: tea.MouseActionPress,
		Button: tea.MouseButtonLeft,
	})
	if len(events) != 1 {
		t.Fatalf("events after same-cell click: got %d, want 1", len(events))
	}
}
