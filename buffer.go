package editor

// Buffer is a split-sequence byte container: all content before the cursor
// lives in before (in forward order), all content after the cursor lives in
// after (in *reverse* order, so that appending to either side of the cursor
// is an append to the end of a slice). Each side keeps an incrementally
// maintained RegionStats so that cursor/line/column queries never rescan
// the whole buffer.
//
// A Buffer also owns a markTable (so positions other than the cursor can
// survive edits) and enough bookkeeping to answer "is this buffer modified"
// and "what file is it married to" for the prompt layer.
type Buffer struct {
	before      []Byte
	after       []Byte // reverse order: after[len(after)-1] is the byte right after the cursor
	beforeStats RegionStats
	afterStats  RegionStats

	marks markTable

	// cursorMark is a strong mark kept in lockstep with len(before); it
	// exists so other marks (e.g. a saved "point" for a region) can be
	// compared against the cursor's offset using the same mark machinery,
	// without the Buffer needing a separate notion of "the current offset
	// as a mark."
	cursorMark MarkID

	marriedFile         string
	nonModifiedUndoNode UndoNodeNumber
	history             UndoHistory

	nameStr    string
	nameNumber int
	id         int
}

// NewBuffer constructs an empty, unmodified buffer with the given display
// name components. nameNumber disambiguates buffers opened from files with
// the same base name (e.g. "foo.txt<2>"); 0 means "no disambiguation
// needed."
func NewBuffer(id int, nameStr string, nameNumber int) *Buffer {
	b := &Buffer{
		marks:       newMarkTable(),
		nameStr:     nameStr,
		nameNumber:  nameNumber,
		id:          id,
		history:     newUndoHistory(),
		beforeStats: emptyStats,
		afterStats:  emptyStats,
	}
	b.cursorMark = b.marks.NewMark(0)
	return b
}

// NewBufferFromBytes constructs a buffer with the cursor at the end of the
// given initial content, as when opening a file.
func NewBufferFromBytes(id int, nameStr string, nameNumber int, content []Byte) *Buffer {
	b := NewBuffer(id, nameStr, nameNumber)
	b.before = append(b.before, content...)
	b.beforeStats = ComputeStats(b.before)
	b.marks.SetMarkOffset(b.cursorMark, len(b.before))
	return b
}

// Size returns the total number of bytes in the buffer.
func (b *Buffer) Size() int {
	return len(b.before) + len(b.after)
}

// Cursor returns the cursor's current byte offset.
func (b *Buffer) Cursor() int {
	return len(b.before)
}

// ID returns the buffer's stable identity, used to key it in State's
// buffer registry independent of its display name.
func (b *Buffer) ID() int {
	return b.id
}

// Name returns the buffer's display name, e.g. "foo.txt" or "foo.txt<2>".
func (b *Buffer) Name() string {
	if b.nameNumber == 0 {
		return b.nameStr
	}
	return b.nameStr + suffixForNumber(b.nameNumber)
}

func suffixForNumber(n int) string {
	digits := [20]byte{}
	i := len(digits)
	for n > 0 {
		i--
		digits[i] = byte('0' + n%10)
		n /= 10
	}
	return "<" + string(digits[i:]) + ">"
}

// MarriedFile returns the filesystem path this buffer is saved to/from, or
// "" if the buffer has never been saved and has no file association.
func (b *Buffer) MarriedFile() string {
	return b.marriedFile
}

// SetMarriedFile associates the buffer with a filesystem path, as when
// opening or first saving a file.
func (b *Buffer) SetMarriedFile(path string) {
	b.marriedFile = path
}

// Modified reports whether the buffer has unsaved changes: true unless the
// undo history is sitting exactly on the node recorded at the last save.
func (b *Buffer) Modified() bool {
	return b.history.CurrentNode() != b.nonModifiedUndoNode
}

// MarkUnmodified records the undo history's current position as "saved,"
// so Modified reports false until the next edit.
func (b *Buffer) MarkUnmodified() {
	b.nonModifiedUndoNode = b.history.CurrentNode()
}

// moveGapTo slides the cursor to offset by transferring bytes between
// before and after, keeping both RegionStats incrementally correct. It is
// the only place that mutates both slices' boundary; every cursor-moving
// operation funnels through it.
func (b *Buffer) moveGapTo(offset int) {
	runtimeCheck(offset >= 0 && offset <= b.Size(), "moveGapTo: offset %d out of range", offset)
	cur := b.Cursor()
	switch {
	case offset < cur:
		n := cur - offset
		moved := b.before[offset:cur]
		kept := b.before[:offset]
		b.beforeStats = SubtractRight(b.beforeStats, kept, moved)
		movedStats := ComputeStats(moved)
		// moved is in forward order; after is reverse order, so append it
		// reversed.
		for i := len(moved) - 1; i >= 0; i-- {
			b.after = append(b.after, moved[i])
		}
		b.afterStats = Append(movedStats, b.afterStats)
		b.before = b.before[:offset]
		_ = n
	case offset > cur:
		n := offset - cur
		start := len(b.after) - n
		moved := make([]Byte, n)
		for i := 0; i < n; i++ {
			moved[i] = b.after[len(b.after)-1-i]
		}
		movedStats := ComputeStats(moved)
		// kept is only needed when removing moved leaves zero newlines on
		// the after side -- the ambiguous case SubtractLeft rescans -- so
		// it's built lazily to avoid an O(remaining after-content) copy on
		// every ordinary cursor step.
		var kept []Byte
		if b.afterStats.Newlines == movedStats.Newlines {
			kept = make([]Byte, start)
			for i := 0; i < start; i++ {
				kept[i] = b.after[start-1-i]
			}
		}
		b.afterStats = SubtractLeft(b.afterStats, moved, kept)
		b.before = append(b.before, moved...)
		b.beforeStats = Append(b.beforeStats, movedStats)
		b.after = b.after[:start]
	}
	b.marks.SetMarkOffset(b.cursorMark, offset)
}

// SetCursor moves the cursor to offset without altering content. A cursor
// move ends any in-progress coalescing run (AddNopEdit), so typing after a
// move starts a fresh undo step.
func (b *Buffer) SetCursor(offset int) {
	b.moveGapTo(offset)
	b.history.AddNopEdit()
}

// Get returns the byte at offset.
func (b *Buffer) Get(offset int) Byte {
	runtimeCheck(offset >= 0 && offset < b.Size(), "Get: offset %d out of range", offset)
	if offset < len(b.before) {
		return b.before[offset]
	}
	return b.after[len(b.after)-1-(offset-len(b.before))]
}

// CopySubstr returns a copy of the bytes in [lo, hi).
func (b *Buffer) CopySubstr(lo, hi int) []Byte {
	runtimeCheck(0 <= lo && lo <= hi && hi <= b.Size(), "CopySubstr: invalid range [%d,%d)", lo, hi)
	ret := make([]Byte, hi-lo)
	for i := lo; i < hi; i++ {
		ret[i-lo] = b.Get(i)
	}
	return ret
}

// CopyToString returns the bytes in [lo, hi) as a Go string, for
// presentation (status line, save-to-file) purposes.
func (b *Buffer) CopyToString(lo, hi int) string {
	return fromBufferString(b.CopySubstr(lo, hi))
}

// ContentString returns the entire buffer's content as a Go string, used
// when writing a buffer out to disk.
func (b *Buffer) ContentString() string {
	return b.CopyToString(0, b.Size())
}

// StatsBefore and StatsAfter expose the incrementally maintained stats for
// the two sides of the cursor, e.g. for cheap "how many lines before the
// cursor" queries used by movement and scrolling.
func (b *Buffer) StatsBefore() RegionStats { return b.beforeStats }
func (b *Buffer) StatsAfter() RegionStats  { return b.afterStats }

// NewMark allocates a strong mark at the given offset.
func (b *Buffer) NewMark(offset int) MarkID {
	return b.marks.NewMark(offset)
}

// ReleaseMark frees a strong mark.
func (b *Buffer) ReleaseMark(id MarkID) {
	runtimeCheck(id != b.cursorMark, "ReleaseMark: cannot release the cursor mark")
	b.marks.ReleaseMark(id)
}

// MarkOffset reads a strong mark's current offset.
func (b *Buffer) MarkOffset(id MarkID) int {
	return b.marks.MarkOffset(id)
}

// SetMarkOffset relocates a strong mark.
func (b *Buffer) SetMarkOffset(id MarkID, offset int) {
	runtimeCheck(id != b.cursorMark, "SetMarkOffset: cannot relocate the cursor mark directly; use SetCursor")
	b.marks.SetMarkOffset(id, offset)
}

// NewWeakMark snapshots a weak mark at the given offset.
func (b *Buffer) NewWeakMark(offset int) WeakMarkID {
	return b.marks.NewWeakMark(offset)
}

// WeakMarkOffset reads a weak mark.
func (b *Buffer) WeakMarkOffset(id WeakMarkID) (offset int, fresh bool) {
	return b.marks.WeakMarkOffset(id)
}

// insertAt inserts content at offset, moving the cursor there first, and
// updates every mark (including the cursor mark, which ends up after the
// inserted text). It does not touch undo history -- callers go through
// edit.go's InsertChars/InsertCharsRight, which do.
func (b *Buffer) insertAt(offset int, content []Byte) {
	b.moveGapTo(offset)
	st := ComputeStats(content)
	b.before = append(b.before, content...)
	b.beforeStats = Append(b.beforeStats, st)
	b.marks.noteInsert(offset, len(content))
}

// deleteRange removes [lo, hi) and updates marks; does not touch undo
// history.
func (b *Buffer) deleteRange(lo, hi int) []Byte {
	runtimeCheck(0 <= lo && lo <= hi && hi <= b.Size(), "deleteRange: invalid range [%d,%d)", lo, hi)
	removed := b.CopySubstr(lo, hi)
	b.moveGapTo(hi)
	n := hi - lo
	kept := b.before[:lo]
	b.beforeStats = SubtractRight(b.beforeStats, kept, removed)
	b.before = b.before[:len(b.before)-n]
	b.marks.noteDelete(lo, hi)
	b.marks.SetMarkOffset(b.cursorMark, lo)
	return removed
}

// CursorDistanceToBeginningOfLine returns how many bytes precede the
// cursor on its current (possibly wrapped-irrelevant, logical) line --
// i.e. the distance back to the nearest preceding '\n' or the start of the
// buffer, whichever is closer.
func (b *Buffer) CursorDistanceToBeginningOfLine() int {
	cur := b.Cursor()
	for i := cur - 1; i >= 0; i-- {
		if byte(b.Get(i)) == '\n' {
			return cur - i - 1
		}
	}
	return cur
}
