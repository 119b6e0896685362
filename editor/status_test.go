package editor

import (
	"io"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

func TestStatusRow_ShowsNoNameAndPosition(t *testing.T) {
	m := New(Config{Text: "ab\ncd"})
	m.Style = Style{}
	m = m.SetSize(30, 3)
	m.Buffer().SetCursor(4)

	row := m.statusRow()
	if !strings.Contains(row, "[No Name]") {
		t.Fatalf("status row %q missing placeholder name", row)
	}
	if !strings.Contains(row, "2:2 ") {
		t.Fatalf("status row %q missing 1-based position 2:2", row)
	}
}

func TestStatusRow_PadsToFullWidth(t *testing.T) {
	m := New(Config{Text: "x", FileName: "notes.txt"})
	m.Style = Style{}

	for _, width := range []int{20, 35, 62} {
		m = m.SetSize(width, 3)
		if got := lipgloss.Width(m.statusRow()); got != width {
			t.Fatalf("status row width=%d, want %d", got, width)
		}
	}
}

func TestStatusRow_DirtyMarker(t *testing.T) {
	m := New(Config{Text: "x", FileName: "notes.txt"})
	m.Style = Style{}
	m = m.SetSize(40, 3)

	if strings.Contains(m.statusRow(), "[+]") {
		t.Fatalf("clean buffer shows dirty marker: %q", m.statusRow())
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("y")})
	if !strings.Contains(m.statusRow(), "[+]") {
		t.Fatalf("dirty buffer missing marker: %q", m.statusRow())
	}
}

func TestStatusRow_TransientMessage(t *testing.T) {
	m := New(Config{Text: "x"})
	m.Style = Style{}
	m = m.SetSize(40, 3)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	if !strings.Contains(m.statusRow(), "no file name") {
		t.Fatalf("status row %q missing save message", m.statusRow())
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	if strings.Contains(m.statusRow(), "no file name") {
		t.Fatalf("status row kept stale message: %q", m.statusRow())
	}
}

func TestStatusRow_TruncatesLongNames(t *testing.T) {
	m := New(Config{Text: "x", FileName: strings.Repeat("long", 20) + ".txt"})
	m.Style = Style{}
	m = m.SetSize(24, 3)

	row := m.statusRow()
	if got := lipgloss.Width(row); got != 24 {
		t.Fatalf("status row width=%d, want 24", got)
	}
	if !strings.Contains(row, "…") {
		t.Fatalf("long name not truncated: %q", row)
	}
}

func TestStatusRow_TinyWidthsNeverOverflow(t *testing.T) {
	m := New(Config{Text: "x", FileName: "notes.txt"})
	m.Style = Style{}

	// Below the width of the fixed blocks the row clips to the viewport.
	for width := 1; width <= 8; width++ {
		m = m.SetSize(width, 3)
		if got := lipgloss.Width(m.statusRow()); got != width {
			t.Fatalf("width %d: status row width=%d", width, got)
		}
	}

	// Clipping stays width-correct when the bar carries color codes.
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.TrueColor)
	r.SetHasDarkBackground(true)
	m.Style.StatusBar = r.NewStyle().Background(lipgloss.Color("#1D2021"))
	m.Style.FileName = r.NewStyle().Bold(true)
	m = m.SetSize(5, 3)
	if got := lipgloss.Width(m.statusRow()); got != 5 {
		t.Fatalf("styled status row width=%d, want 5", got)
	}
}
