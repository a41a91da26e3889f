package editor

// InsertChars inserts content at the cursor and records a coalescent
// insert-char undo item: typing consecutive characters merges into one
// undo step, per AddCoalescentEdit's coalesceInsertChar rule.
func InsertChars(b *Buffer, content []Byte) {
	offset := b.Cursor()
	b.insertAt(offset, content)
	b.history.AddCoalescentEdit(AtomicUndoItem{
		Offset:          offset,
		InsertedContent: append([]Byte{}, content...),
		Coalescible:     coalesceInsertChar,
	})
}

// InsertCharsNonCoalescing inserts content at the cursor as its own undo
// step -- used for pastes, yanks, and prompt input where merging with an
// adjacent keystroke would be surprising.
func InsertCharsNonCoalescing(b *Buffer, content []Byte) {
	offset := b.Cursor()
	b.insertAt(offset, content)
	b.history.AddEdit(AtomicUndoItem{
		Offset:          offset,
		InsertedContent: append([]Byte{}, content...),
	})
}

// DeleteLeft deletes the n bytes immediately before the cursor (Backspace),
// recording a coalescent delete-left undo item.
func DeleteLeft(b *Buffer, n int) {
	cur := b.Cursor()
	lo := cur - n
	runtimeCheck(lo >= 0, "DeleteLeft: cannot delete %d bytes before offset %d", n, cur)
	removed := b.deleteRange(lo, cur)
	b.history.AddCoalescentEdit(AtomicUndoItem{
		Offset:         lo,
		RemovedContent: removed,
		Coalescible:    coalesceDeleteLeft,
	})
}

// DeleteRight deletes the n bytes immediately after the cursor (Delete),
// recording a coalescent delete-right undo item.
func DeleteRight(b *Buffer, n int) {
	cur := b.Cursor()
	hi := cur + n
	runtimeCheck(hi <= b.Size(), "DeleteRight: cannot delete %d bytes after offset %d", n, cur)
	removed := b.deleteRange(cur, hi)
	b.history.AddCoalescentEdit(AtomicUndoItem{
		Offset:         cur,
		RemovedContent: removed,
		Coalescible:    coalesceDeleteRight,
	})
}

// DeleteRange deletes [lo, hi) as a single non-coalescing undo step, used
// for region deletes (kill-region) rather than character-at-a-time edits.
func DeleteRange(b *Buffer, lo, hi int) []Byte {
	removed := b.deleteRange(lo, hi)
	b.history.AddEdit(AtomicUndoItem{
		Offset:         lo,
		RemovedContent: removed,
	})
	return removed
}

// ReplaceAll clears the buffer and inserts content as a single undo step,
// used when loading a file into an already-open (possibly non-empty)
// buffer, e.g. reverting.
func ReplaceAll(b *Buffer, content []Byte) {
	old := b.deleteRange(0, b.Size())
	b.insertAt(0, content)
	b.history.AddEdit(AtomicUndoItem{
		Offset:          0,
		RemovedContent:  old,
		InsertedContent: append([]Byte{}, content...),
	})
}

// Undo pops and reverses the most recent undo item on b, moving the
// cursor to wherever the reversed edit leaves it. If there is nothing left
// to undo, it surfaces the named user-visible error instead of silently
// doing nothing -- continuing to press undo after that point walks into
// any displaced redo branch instead (see UndoHistory.PerformUndo); there
// is no separate redo command.
func Undo(s *State, b *Buffer) {
	if !b.history.PerformUndo(b) {
		s.SetErrorMessage("No further undo information")
	}
}
