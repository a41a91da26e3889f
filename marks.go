package editor

// MarkID identifies a strong mark: a buffer position that stays valid
// across edits (it is adjusted as text is inserted/deleted around it) until
// the holder explicitly releases it with Buffer.ReleaseMark. Strong marks
// are used for things that must never silently go stale: the cursor, the
// mark-ring's "point" for a region, a buffer's first-visible-row anchor.
type MarkID int

// WeakMarkID identifies a weak mark: a buffer position snapshot that is
// checked for staleness on every read via a version counter, rather than
// being kept up to date by every edit. Weak marks are cheap to create and
// forget (no matching release call is required) and are used where an
// occasionally-stale answer is fine, e.g. "where was point when this
// asynchronous job started."
type WeakMarkID struct {
	index   int
	version int
}

// markEntry is one live strong-mark slot.
type markEntry struct {
	offset int
	inUse  bool
}

// weakMarkEntry snapshots an offset plus the buffer-global edit version at
// the time it was taken.
type weakMarkEntry struct {
	offset  int
	version int
}

// markTable owns both the strong-mark slots (adjusted by every edit) and
// the monotonically increasing edit version used to judge weak marks
// stale. It never hands out raw offsets for long-lived storage -- callers
// that need a position to survive edits take a mark instead, per
// SPEC_FULL.md §9's "never store raw offsets on heap nodes" design note.
type markTable struct {
	strong  []markEntry
	weak    []weakMarkEntry
	version int
}

func newMarkTable() markTable {
	return markTable{version: 0}
}

// NewMark allocates a strong mark at offset, reusing a released slot when
// one is available.
func (t *markTable) NewMark(offset int) MarkID {
	for i := range t.strong {
		if !t.strong[i].inUse {
			t.strong[i] = markEntry{offset: offset, inUse: true}
			return MarkID(i)
		}
	}
	t.strong = append(t.strong, markEntry{offset: offset, inUse: true})
	return MarkID(len(t.strong) - 1)
}

// ReleaseMark frees a strong mark's slot for reuse. Using the MarkID again
// afterward is a bug in the caller and trips a runtime check.
func (t *markTable) ReleaseMark(id MarkID) {
	runtimeCheck(int(id) >= 0 && int(id) < len(t.strong) && t.strong[id].inUse,
		"ReleaseMark: %d is not a live mark", id)
	t.strong[id].inUse = false
}

// MarkOffset reads a strong mark's current offset.
func (t *markTable) MarkOffset(id MarkID) int {
	runtimeCheck(int(id) >= 0 && int(id) < len(t.strong) && t.strong[id].inUse,
		"MarkOffset: %d is not a live mark", id)
	return t.strong[id].offset
}

// SetMarkOffset forcibly relocates a strong mark, e.g. to implement
// "set mark at point."
func (t *markTable) SetMarkOffset(id MarkID, offset int) {
	runtimeCheck(int(id) >= 0 && int(id) < len(t.strong) && t.strong[id].inUse,
		"SetMarkOffset: %d is not a live mark", id)
	t.strong[id].offset = offset
}

// NewWeakMark snapshots offset against the table's current edit version.
func (t *markTable) NewWeakMark(offset int) WeakMarkID {
	t.weak = append(t.weak, weakMarkEntry{offset: offset, version: t.version})
	return WeakMarkID{index: len(t.weak) - 1, version: t.version}
}

// WeakMarkOffset returns the mark's offset and whether it is still fresh
// (the table hasn't been edited since the mark was taken). A stale weak
// mark's offset is the value frozen at creation time -- callers must check
// the bool before trusting it as a live position.
func (t *markTable) WeakMarkOffset(id WeakMarkID) (offset int, fresh bool) {
	runtimeCheck(id.index >= 0 && id.index < len(t.weak), "WeakMarkOffset: invalid index")
	e := t.weak[id.index]
	return e.offset, e.version == t.version && id.version == t.version
}

// noteInsert adjusts every strong mark for an insertion of n bytes at
// offset, and bumps the edit version (staling every outstanding weak
// mark). Marks exactly at offset are pushed forward -- text inserted "at"
// a mark is treated as inserted before it, consistent with the cursor
// mark always ending up after freshly typed text.
func (t *markTable) noteInsert(offset, n int) {
	for i := range t.strong {
		if t.strong[i].inUse && t.strong[i].offset >= offset {
			t.strong[i].offset += n
		}
	}
	t.version++
}

// noteDelete adjusts every strong mark for a deletion of the half-open
// range [lo, hi). Marks inside the deleted range collapse to lo; marks
// past it shift left by the deleted width.
func (t *markTable) noteDelete(lo, hi int) {
	n := hi - lo
	for i := range t.strong {
		if !t.strong[i].inUse {
			continue
		}
		o := t.strong[i].offset
		switch {
		case o >= hi:
			t.strong[i].offset = o - n
		case o > lo:
			t.strong[i].offset = lo
		}
	}
	t.version++
}
