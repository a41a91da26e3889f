package editor

import "testing"

func TestUndoWalksBackIntoMountainAfterDisplacedRedo(t *testing.T) {
	s := NewState()
	b := NewBuffer(1, "scratch", 0)
	InsertCharsNonCoalescing(b, toBufferString("hello"))
	Undo(s, b)
	if got := b.ContentString(); got != "" {
		t.Fatalf("content after undo = %q, want empty", got)
	}
	// There is no separate redo: a further Undo walks into the mountain
	// that the first Undo's reverse atom sits in once it's displaced, and
	// re-applies "hello" forward.
	InsertCharsNonCoalescing(b, toBufferString("bye"))
	if got := b.ContentString(); got != "bye" {
		t.Fatalf("content = %q, want bye", got)
	}
	Undo(s, b)
	if got := b.ContentString(); got != "" {
		t.Fatalf("content after undoing bye = %q, want empty", got)
	}
	Undo(s, b)
	if got := b.ContentString(); got != "hello" {
		t.Fatalf("content after undoing into the mountain = %q, want hello", got)
	}
}

func TestCoalescingInsertChar(t *testing.T) {
	s := NewState()
	b := NewBuffer(1, "scratch", 0)
	InsertChars(b, toBufferString("h"))
	InsertChars(b, toBufferString("e"))
	InsertChars(b, toBufferString("l"))
	InsertChars(b, toBufferString("l"))
	InsertChars(b, toBufferString("o"))
	if got := b.ContentString(); got != "hello" {
		t.Fatalf("content = %q, want hello", got)
	}
	Undo(s, b)
	if got := b.ContentString(); got != "" {
		t.Fatalf("one undo of coalesced typing should remove everything: got %q", got)
	}
}

func TestCoalescenceBreakStartsNewUndoStep(t *testing.T) {
	s := NewState()
	b := NewBuffer(1, "scratch", 0)
	InsertChars(b, toBufferString("ab"))
	b.history.AddCoalescenceBreak()
	InsertChars(b, toBufferString("cd"))
	Undo(s, b)
	if got := b.ContentString(); got != "ab" {
		t.Fatalf("after one undo past a coalescence break, content = %q, want ab", got)
	}
	Undo(s, b)
	if got := b.ContentString(); got != "" {
		t.Fatalf("after second undo, content = %q, want empty", got)
	}
}

func TestCoalescingDeleteLeft(t *testing.T) {
	s := NewState()
	b := NewBuffer(1, "scratch", 0)
	InsertCharsNonCoalescing(b, toBufferString("hello"))
	DeleteLeft(b, 1)
	DeleteLeft(b, 1)
	DeleteLeft(b, 1)
	if got := b.ContentString(); got != "he" {
		t.Fatalf("content = %q, want he", got)
	}
	Undo(s, b)
	if got := b.ContentString(); got != "hello" {
		t.Fatalf("one undo of coalesced backspaces should restore everything: got %q", got)
	}
}

func TestCoalescingDeleteRight(t *testing.T) {
	s := NewState()
	b := NewBuffer(1, "scratch", 0)
	InsertCharsNonCoalescing(b, toBufferString("hello"))
	b.SetCursor(0)
	DeleteRight(b, 1)
	DeleteRight(b, 1)
	if got := b.ContentString(); got != "llo" {
		t.Fatalf("content = %q, want llo", got)
	}
	Undo(s, b)
	if got := b.ContentString(); got != "hello" {
		t.Fatalf("one undo of coalesced deletes should restore everything: got %q", got)
	}
}

// TestMountainPreservesDisplacedRedo pins SPEC_FULL.md §4.G and its
// Testable Property #4: inserting "aaa", "bbb", undoing "bbb", then typing
// "ccc" folds the displaced "bbb" redo into a Mountain branch rather than
// discarding it. Undoing past "ccc" and then past the mountain marker does
// not leave the buffer unchanged -- it actually walks into the branch and
// reapplies "bbb" forward, since a Mountain's atoms are undone by calling
// atomicUndo on them same as any other atom, and atomicUndo always mutates
// the buffer.
func TestMountainPreservesDisplacedRedo(t *testing.T) {
	s := NewState()
	b := NewBuffer(1, "scratch", 0)
	InsertCharsNonCoalescing(b, toBufferString("aaa"))
	InsertCharsNonCoalescing(b, toBufferString("bbb"))
	Undo(s, b) // back to "aaa", "bbb" insert now sits in future

	// A brand new edit here would, in a naive engine, discard the "bbb"
	// redo. This engine instead folds it into a Mountain branch.
	InsertCharsNonCoalescing(b, toBufferString("ccc"))
	if got := b.ContentString(); got != "aaaccc" {
		t.Fatalf("content = %q, want aaaccc", got)
	}

	Undo(s, b) // undo "ccc"
	if got := b.ContentString(); got != "aaa" {
		t.Fatalf("content after undoing ccc = %q, want aaa", got)
	}
	Undo(s, b) // undo into the mountain: reapplies the displaced "bbb" forward
	if got := b.ContentString(); got != "aaabbb" {
		t.Fatalf("content after undoing into the mountain = %q, want aaabbb", got)
	}
	Undo(s, b) // undo that reapplied "bbb" again
	if got := b.ContentString(); got != "aaa" {
		t.Fatalf("content after undoing the reapplied bbb = %q, want aaa", got)
	}
}

func TestUndoOnEmptyHistoryIsNoop(t *testing.T) {
	s := NewState()
	b := NewBuffer(1, "scratch", 0)
	Undo(s, b)
	if got := b.ContentString(); got != "" {
		t.Fatalf("content = %q, want empty", got)
	}
}

func TestUndoOnEmptyHistorySetsErrorMessage(t *testing.T) {
	s := NewState()
	b := NewBuffer(1, "scratch", 0)
	Undo(s, b)
	if got := s.ErrorMessage(); got != "No further undo information" {
		t.Fatalf("error message = %q, want the no-further-undo message", got)
	}
}
