package editor

// KillLine deletes from the cursor to the end of its line (or, if the
// cursor is already at the end of the line, deletes the newline itself),
// appending the killed text onto the kill ring when the previous action
// was also a kill.
func KillLine(b *Buffer, k *KillRing) {
	cur := b.Cursor()
	end := lineEndOffset(b, cur)
	hi := end
	if hi == cur && hi < b.Size() {
		hi++ // nothing left on this line: kill the newline too
	}
	if hi == cur {
		k.BreakKillStreak()
		return
	}
	removed := DeleteRange(b, cur, hi)
	k.RecordYank(removed, KillRight)
}

// KillRegion deletes the region between the cursor and markID, placing the
// removed text on the kill ring. If the mark and cursor coincide, nothing
// is deleted and nothing is recorded onto the ring -- a no-op region kill
// must not clobber an existing clipboard with an empty yank.
func KillRegion(b *Buffer, k *KillRing, markID MarkID) {
	cur := b.Cursor()
	mark := b.MarkOffset(markID)
	if cur == mark {
		return
	}
	lo, hi := cur, mark
	if lo > hi {
		lo, hi = hi, lo
	}
	removed := DeleteRange(b, lo, hi)
	b.SetCursor(lo)
	k.RecordYank(removed, KillNone)
}

// CopyRegion copies the region between the cursor and markID onto the
// kill ring without deleting it (M-w).
func CopyRegion(b *Buffer, k *KillRing, markID MarkID) {
	cur := b.Cursor()
	mark := b.MarkOffset(markID)
	lo, hi := cur, mark
	if lo > hi {
		lo, hi = hi, lo
	}
	if lo == hi {
		return
	}
	k.RecordCopy(b.CopySubstr(lo, hi))
}

// DeleteBackwardWord deletes the word immediately before the cursor
// (M-Backspace), as a single undo step (not coalescing -- word deletes are
// chunky enough that merging them with adjacent single-char deletes would
// be surprising).
func DeleteBackwardWord(b *Buffer, k *KillRing) {
	cur := b.Cursor()
	n := BackwardWordDistance(b, cur)
	if n == 0 {
		return
	}
	removed := DeleteRange(b, cur-n, cur)
	k.RecordYank(removed, KillLeft)
}

// DeleteForwardWord deletes the word immediately after the cursor (M-d).
func DeleteForwardWord(b *Buffer, k *KillRing) {
	cur := b.Cursor()
	n := ForwardWordDistance(b, cur)
	if n == 0 {
		return
	}
	removed := DeleteRange(b, cur, cur+n)
	k.RecordYank(removed, KillRight)
}

// YankFromClipboard inserts the kill ring's current content at the
// cursor (C-y), as its own undo step.
func YankFromClipboard(b *Buffer, k *KillRing) {
	content := k.DoYank()
	InsertCharsNonCoalescing(b, content)
}

// AltYankFromClipboard replaces the text inserted by the immediately
// preceding yank with the next older clip in the paste cycle (M-y),
// wrapping back to the newest clip after the oldest (StepPasteNumber).
// Callers must track the offsets of the previous yank (start, end)
// themselves -- typically the cursor position before and after the
// YankFromClipboard or prior AltYankFromClipboard call. The replacement is
// recorded as a single undo step.
func AltYankFromClipboard(b *Buffer, k *KillRing, prevYankStart, prevYankEnd int) {
	content := k.StepPasteNumber()
	removed := b.deleteRange(prevYankStart, prevYankEnd)
	b.insertAt(prevYankStart, content)
	b.history.AddEdit(AtomicUndoItem{
		Offset:          prevYankStart,
		RemovedContent:  removed,
		InsertedContent: append([]Byte{}, content...),
	})
}

// CancelAction breaks any in-progress coalescing run and kill streak --
// called for C-g, the universal "abandon whatever multi-step thing is
// happening" key.
func CancelAction(b *Buffer, k *KillRing) {
	b.history.AddCoalescenceBreak()
	k.BreakKillStreak()
}
