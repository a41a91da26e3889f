package editor

import "testing"

func TestBufferInsertAndCursor(t *testing.T) {
	b := NewBuffer(1, "scratch", 0)
	InsertChars(b, toBufferString("hello"))
	if got := b.Cursor(); got != 5 {
		t.Fatalf("cursor = %d, want 5", got)
	}
	if got := b.ContentString(); got != "hello" {
		t.Fatalf("content = %q, want %q", got, "hello")
	}
}

func TestBufferMoveGapPreservesContent(t *testing.T) {
	b := NewBuffer(1, "scratch", 0)
	InsertChars(b, toBufferString("hello world"))
	b.SetCursor(5)
	if got := b.ContentString(); got != "hello world" {
		t.Fatalf("content after moving cursor = %q", got)
	}
	if got := b.Cursor(); got != 5 {
		t.Fatalf("cursor = %d, want 5", got)
	}
	b.SetCursor(0)
	if got := b.ContentString(); got != "hello world" {
		t.Fatalf("content after moving cursor to 0 = %q", got)
	}
	b.SetCursor(11)
	if got := b.ContentString(); got != "hello world" {
		t.Fatalf("content after moving cursor to end = %q", got)
	}
}

func TestBufferStatsIncremental(t *testing.T) {
	b := NewBuffer(1, "scratch", 0)
	InsertChars(b, toBufferString("ab\ncd\nef"))
	whole := ComputeStats(b.CopySubstr(0, b.Size()))
	combined := Append(b.StatsBefore(), b.StatsAfter())
	if combined != whole {
		t.Fatalf("incremental stats mismatch: got %+v want %+v", combined, whole)
	}

	b.SetCursor(3)
	whole = ComputeStats(b.CopySubstr(0, b.Size()))
	combined = Append(b.StatsBefore(), b.StatsAfter())
	if combined != whole {
		t.Fatalf("incremental stats mismatch after move: got %+v want %+v", combined, whole)
	}
}

func TestStrongMarkTracksEdits(t *testing.T) {
	b := NewBuffer(1, "scratch", 0)
	InsertChars(b, toBufferString("hello world"))
	m := b.NewMark(6) // points at 'w'
	b.SetCursor(0)
	InsertChars(b, toBufferString("XX"))
	if got := b.MarkOffset(m); got != 8 {
		t.Fatalf("mark offset after insert before it = %d, want 8", got)
	}
	if got := b.Get(b.MarkOffset(m)); byte(got) != 'w' {
		t.Fatalf("mark no longer points at 'w': got %q", byte(got))
	}
	b.ReleaseMark(m)
}

func TestWeakMarkGoesStaleOnEdit(t *testing.T) {
	b := NewBuffer(1, "scratch", 0)
	InsertChars(b, toBufferString("hello"))
	wm := b.NewWeakMark(2)
	if _, fresh := b.WeakMarkOffset(wm); !fresh {
		t.Fatalf("weak mark should be fresh before any further edit")
	}
	InsertChars(b, toBufferString("!"))
	if _, fresh := b.WeakMarkOffset(wm); fresh {
		t.Fatalf("weak mark should be stale after an edit")
	}
}

func TestBufferNameDisambiguation(t *testing.T) {
	s := NewState()
	b1 := s.NewEmptyBuffer("foo.txt")
	b2 := s.NewEmptyBuffer("foo.txt")
	if b1.Name() != "foo.txt" {
		t.Fatalf("first buffer name = %q, want foo.txt", b1.Name())
	}
	if b2.Name() == "foo.txt" || b2.Name() == "" {
		t.Fatalf("second buffer name not disambiguated: %q", b2.Name())
	}
}

func TestModifiedFlag(t *testing.T) {
	b := NewBuffer(1, "scratch", 0)
	if b.Modified() {
		t.Fatalf("fresh buffer should not be modified")
	}
	InsertChars(b, toBufferString("x"))
	if !b.Modified() {
		t.Fatalf("buffer with an edit should be modified")
	}
	b.MarkUnmodified()
	if b.Modified() {
		t.Fatalf("buffer should be unmodified right after MarkUnmodified")
	}
}

func TestCursorDistanceToBeginningOfLine(t *testing.T) {
	b := NewBuffer(1, "scratch", 0)
	InsertChars(b, toBufferString("abc\ndef"))
	if got := b.CursorDistanceToBeginningOfLine(); got != 3 {
		t.Fatalf("distance = %d, want 3", got)
	}
	b.SetCursor(4)
	if got := b.CursorDistanceToBeginningOfLine(); got != 0 {
		t.Fatalf("distance right after newline = %d, want 0", got)
	}
}
