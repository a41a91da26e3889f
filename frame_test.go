package editor

import "testing"

func rowString(f *Frame, row int) string {
	buf := make([]byte, f.Width)
	for c := 0; c < f.Width; c++ {
		buf[c] = f.Get(row, c).Ch
	}
	return string(buf)
}

func TestRenderSimpleLine(t *testing.T) {
	b := buildBuffer("hello")
	f := NewFrame(10, 3)
	RenderIntoFrame(f, b, 0, 0, 0)
	if got := rowString(f, 0); got[:5] != "hello" {
		t.Fatalf("row 0 = %q, want prefix hello", got)
	}
}

func TestRenderNewlineStartsNewRow(t *testing.T) {
	b := buildBuffer("ab\ncd")
	f := NewFrame(10, 3)
	RenderIntoFrame(f, b, 0, 0, 0)
	if got := rowString(f, 0); got[:2] != "ab" {
		t.Fatalf("row 0 = %q, want prefix ab", got)
	}
	if got := rowString(f, 1); got[:2] != "cd" {
		t.Fatalf("row 1 = %q, want prefix cd", got)
	}
}

func TestRenderControlCharacter(t *testing.T) {
	b := buildBuffer("a\x01b")
	f := NewFrame(10, 1)
	RenderIntoFrame(f, b, 0, 0, 0)
	row := rowString(f, 0)
	if row[0] != 'a' || row[1] != '^' || row[2] != 'A' || row[3] != 'b' {
		t.Fatalf("row = %q, want a^Ab prefix", row)
	}
}

func TestRenderTabExpandsToNextStop(t *testing.T) {
	b := buildBuffer("a\tb")
	f := NewFrame(12, 1)
	RenderIntoFrame(f, b, 0, 0, 0)
	row := rowString(f, 0)
	if row[0] != 'a' {
		t.Fatalf("row[0] = %q, want 'a'", row[0])
	}
	if row[8] != 'b' {
		t.Fatalf("tab should advance to column 8, row = %q", row)
	}
}

func TestRenderSoftWrap(t *testing.T) {
	b := buildBuffer("abcdefgh")
	f := NewFrame(4, 3)
	RenderIntoFrame(f, b, 0, 0, 0)
	if got := rowString(f, 0); got != "abcd" {
		t.Fatalf("row 0 = %q, want abcd", got)
	}
	if got := rowString(f, 1); got != "efgh" {
		t.Fatalf("row 1 = %q, want efgh", got)
	}
}

func TestRenderFindsCursor(t *testing.T) {
	b := buildBuffer("hello\nworld")
	f := NewFrame(10, 3)
	res := RenderIntoFrame(f, b, 0, 0, 8) // 'r' in "world"
	if !res.CursorFound {
		t.Fatalf("cursor not found")
	}
	if res.CursorRow != 1 || res.CursorCol != 2 {
		t.Fatalf("cursor at (%d,%d), want (1,2)", res.CursorRow, res.CursorCol)
	}
}

func TestRenderRunsOffBottom(t *testing.T) {
	b := buildBuffer("a\nb\nc\nd\ne")
	f := NewFrame(5, 2)
	res := RenderIntoFrame(f, b, 0, 0, 8)
	if !res.RanOffBottom {
		t.Fatalf("expected RanOffBottom for a buffer taller than the frame")
	}
	if res.CursorFound {
		t.Fatalf("cursor below the frame should not be found")
	}
}

func TestTooSmallToRender(t *testing.T) {
	f := &Frame{Width: 0, Height: 0}
	if !f.TooSmallToRender() {
		t.Fatalf("0x0 frame should be too small to render")
	}
}
