package editor

import (
	"strings"
	"testing"
)

func manyLines(n int) string {
	lines := make([]string, n)
	for i := range lines {
		lines[i] = "line"
	}
	return strings.Join(lines, "\n")
}

func TestCursorIsOffscreenInitially(t *testing.T) {
	b := buildBuffer(manyLines(50))
	w := NewWindowCtx(b, 20, 5)
	// The window starts anchored at offset 0; a cursor on line 40 is well
	// past 5 visible rows.
	lineOffset := 0
	for i := 0; i < 40; i++ {
		lineOffset += 5 // len("line\n")
	}
	if !CursorIsOffscreen(b, &w, lineOffset) {
		t.Fatalf("cursor on line 40 should be offscreen in a 5-row window anchored at 0")
	}
}

func TestRecenterBringsCursorOnscreen(t *testing.T) {
	b := buildBuffer(manyLines(50))
	w := NewWindowCtx(b, 20, 5)
	lineOffset := 40 * 5
	RecenterCursorIfOffscreen(b, &w, lineOffset)
	if CursorIsOffscreen(b, &w, lineOffset) {
		t.Fatalf("cursor should be onscreen after recentering")
	}
}

func TestRecenterIsNoopWhenAlreadyVisible(t *testing.T) {
	b := buildBuffer(manyLines(10))
	w := NewWindowCtx(b, 20, 5)
	before := b.MarkOffset(w.FirstVisibleMark)
	RecenterCursorIfOffscreen(b, &w, 2) // near the top, already visible
	after := b.MarkOffset(w.FirstVisibleMark)
	if before != after {
		t.Fatalf("recenter should not move the viewport when cursor is already visible: before=%d after=%d", before, after)
	}
}

func TestScrollToRowPlacesCursorAtRequestedRow(t *testing.T) {
	b := buildBuffer(manyLines(50))
	w := NewWindowCtx(b, 20, 10)
	cursorOffset := 40 * 5
	ScrollToRow(b, &w, cursorOffset, 3)
	first := b.MarkOffset(w.FirstVisibleMark)
	f := NewFrame(w.Width, w.Height)
	res := RenderIntoFrame(f, b, first, 0, cursorOffset)
	if !res.CursorFound {
		t.Fatalf("cursor should be found after ScrollToRow")
	}
	if res.CursorRow != 3 {
		t.Fatalf("cursor landed on row %d, want 3", res.CursorRow)
	}
}
