package buffer

import "testing"

func TestBuffer_CursorXY_IncludesOriginAndOffsets(t *testing.T) {
	b := New("hello\nworld")
	b.MoveTo(4, 1)

	b.SetCursor(8)
	if x, y := b.CursorXY(); x != 6 || y != 2 {
		t.Fatalf("cursor xy=(%d,%d), want (6,2)", x, y)
	}

	b.offsetX = 1
	b.offsetY = 1
	if x, y := b.CursorXY(); x != 5 || y != 1 {
		t.Fatalf("cursor xy=(%d,%d), want (5,1)", x, y)
	}
}

func TestBuffer_CursorXY_EmptyDocumentSitsAtOrigin(t *testing.T) {
	b := New("")
	b.MoveTo(3, 2)

	if x, y := b.CursorXY(); x != 3 || y != 2 {
		t.Fatalf("cursor xy=(%d,%d), want (3,2)", x, y)
	}
}

func TestBuffer_Scroll_FollowsCursorVertically(t *testing.T) {
	b := New("a\nb\nc\nd")
	b.Resize(5, 2)

	b.SetCursor(6)
	b.Scroll()
	if _, oy := b.Offsets(); oy != 2 {
		t.Fatalf("offsetY=%d, want 2", oy)
	}
	if _, y := b.CursorXY(); y != 1 {
		t.Fatalf("cursor y=%d, want bottom row 1", y)
	}

	b.SetCursor(0)
	b.Scroll()
	if _, oy := b.Offsets(); oy != 0 {
		t.Fatalf("offsetY=%d, want 0", oy)
	}
}

func TestBuffer_Scroll_FollowsCursorHorizontally(t *testing.T) {
	b := New("abcdefghij")
	b.Resize(5, 1)

	b.SetCursor(7)
	b.Scroll()
	if ox, _ := b.Offsets(); ox != 3 {
		t.Fatalf("offsetX=%d, want 3", ox)
	}
	if x, _ := b.CursorXY(); x != 4 {
		t.Fatalf("cursor x=%d, want right edge 4", x)
	}

	b.SetCursor(1)
	b.Scroll()
	if ox, _ := b.Offsets(); ox != 1 {
		t.Fatalf("offsetX=%d, want 1", ox)
	}
	if x, _ := b.CursorXY(); x != 0 {
		t.Fatalf("cursor x=%d, want left edge 0", x)
	}
}

func TestBuffer_Scroll_ZeroExtentLeavesOffsets(t *testing.T) {
	b := New("abcdef\nghijkl")
	b.SetCursor(10)

	b.Scroll()
	if ox, oy := b.Offsets(); ox != 0 || oy != 0 {
		t.Fatalf("offsets=(%d,%d), want (0,0)", ox, oy)
	}
}

func TestBuffer_Scroll_SingleAxisViewport(t *testing.T) {
	// Width only: x follows the cursor, y is left alone.
	b := New("abcdefgh")
	b.Resize(4, 0)
	b.SetCursor(7)
	b.Scroll()
	if ox, oy := b.Offsets(); ox != 4 || oy != 0 {
		t.Fatalf("offsets=(%d,%d), want (4,0)", ox, oy)
	}
	if x, _ := b.CursorXY(); x != 3 {
		t.Fatalf("cursor x=%d, want right edge 3", x)
	}

	// Height only: the mirror case.
	b = New("a\nb\nc\nd\ne")
	b.Resize(0, 2)
	b.SetCursor(8)
	b.Scroll()
	if ox, oy := b.Offsets(); ox != 0 || oy != 3 {
		t.Fatalf("offsets=(%d,%d), want (0,3)", ox, oy)
	}
	if _, y := b.CursorXY(); y != 1 {
		t.Fatalf("cursor y=%d, want bottom row 1", y)
	}
}

func TestBuffer_Scroll_OffsetsNeverNegative(t *testing.T) {
	b := New("ab")
	b.Resize(5, 5)
	b.offsetX = 9
	b.offsetY = 9

	b.Scroll()
	if ox, oy := b.Offsets(); ox != 0 || oy != 0 {
		t.Fatalf("offsets=(%d,%d), want clamped to (0,0)", ox, oy)
	}
}

func TestBuffer_Scroll_CursorAlwaysInsideViewport(t *testing.T) {
	b := New("short\na much longer line here\nx\nanother line\n\nlast")
	b.MoveTo(2, 1)
	b.Resize(4, 2)

	for p := 0; p <= b.Len(); p++ {
		b.SetCursor(p)
		b.Scroll()
		x, y := b.CursorXY()
		if x < 2 || x >= 2+4 {
			t.Fatalf("offset %d: cursor x=%d outside [2,6)", p, x)
		}
		if y < 1 || y >= 1+2 {
			t.Fatalf("offset %d: cursor y=%d outside [1,3)", p, y)
		}
	}
}
