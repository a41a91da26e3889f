package editor

// ForwardWordDistance returns how many bytes to advance from offset to
// reach the end of the next word: it skips any run of non-solid bytes,
// then a run of solid bytes (see IsSolid), stopping at the buffer's end if
// it runs out first.
func ForwardWordDistance(b *Buffer, offset int) int {
	size := b.Size()
	i := offset
	for i < size && !IsSolid(b.Get(i)) {
		i++
	}
	for i < size && IsSolid(b.Get(i)) {
		i++
	}
	return i - offset
}

// BackwardWordDistance returns how many bytes to retreat from offset to
// reach the start of the previous word, mirroring ForwardWordDistance.
func BackwardWordDistance(b *Buffer, offset int) int {
	i := offset
	for i > 0 && !IsSolid(b.Get(i-1)) {
		i--
	}
	for i > 0 && IsSolid(b.Get(i-1)) {
		i--
	}
	return offset - i
}

// lineStartOffset returns the offset of the first byte of the line
// containing offset (the byte right after the nearest preceding '\n', or 0).
func lineStartOffset(b *Buffer, offset int) int {
	for i := offset - 1; i >= 0; i-- {
		if byte(b.Get(i)) == '\n' {
			return i + 1
		}
	}
	return 0
}

// lineEndOffset returns the offset of the '\n' terminating the line
// containing offset, or b.Size() if offset's line is the buffer's last.
func lineEndOffset(b *Buffer, offset int) int {
	size := b.Size()
	for i := offset; i < size; i++ {
		if byte(b.Get(i)) == '\n' {
			return i
		}
	}
	return size
}

// columnOf returns offset's display column on its own line: the visual
// width (tabs expanded, control bytes rendered as two cells) of the bytes
// between the line's start and offset.
func columnOf(b *Buffer, offset int) int {
	start := lineStartOffset(b, offset)
	col := 0
	for i := start; i < offset; i++ {
		RenderByte(b.Get(i), &col)
	}
	return col
}

// ensureVirtualColumnInitialized sets w.VirtualColumn from offset's current
// column if no vertical-motion run is already in progress, mirroring
// original_source/buffer.hpp's ensure_virtual_column_initialized: the first
// of a sequence of MoveUp/MoveDown calls seeds the target column from the
// cursor; later calls in the same run keep using that target even as the
// cursor's own column wanders over short lines.
func ensureVirtualColumnInitialized(b *Buffer, w *WindowCtx, offset int) {
	if !w.HasVirtualColumn {
		w.VirtualColumn = CurrentColumn(b, offset)
		w.HasVirtualColumn = true
	}
}

// windowCols returns w's column count, clamped to at least 1 so the modulo
// arithmetic in MoveUp/MoveDown never divides by zero in a too-small or
// not-yet-sized window.
func windowCols(w *WindowCtx) int {
	if w.Width < 1 {
		return 1
	}
	return w.Width
}

// MoveUp returns the offset one soft-wrapped visual row above offset,
// simulating w's soft-wrap rendering rather than stepping by logical line
// (SPEC_FULL.md §4.D) -- a long logical line wrapped across several rows
// moves the cursor to the row directly above, not to the previous logical
// line, and only a buffer's very first visual row has nothing above it.
// It targets w.VirtualColumn mod window_cols within that row, initializing
// VirtualColumn from offset's current column if this is the first
// vertical motion since the last horizontal one. Ported from
// original_source/movement.cpp's move_up: render forward from the start of
// the logical line before offset's (or the buffer's start, if offset's is
// the first), tracking a "proposed cursor" for each visual row, and land
// on the one proposed for the row just before offset's own. ok is false
// only if that simulation never finds a previous row at all.
func MoveUp(b *Buffer, w *WindowCtx, offset int) (result int, ok bool) {
	ensureVirtualColumnInitialized(b, w, offset)
	cols := windowCols(w)
	targetColumn := w.VirtualColumn % cols

	curStart := lineStartOffset(b, offset)
	bol := 0
	if curStart != 0 {
		bol = lineStartOffset(b, curStart-1)
	}

	lineCol := 0
	col := 0
	prevRowProposal := -1
	curRowProposal := bol
	for i := bol; i < offset; i++ {
		r := RenderByte(b.Get(i), &lineCol)
		if r.Count == eol {
			prevRowProposal = curRowProposal
			col = 0
			curRowProposal = i + 1
			continue
		}
		col += r.Count
		if col >= cols {
			col -= cols
			prevRowProposal = curRowProposal
			if col >= cols {
				// Window too narrow to fit even one glyph start on the
				// wrapped portion of this row (e.g. a tab in a 3-column
				// window): fall back to the last byte that begins before
				// the row we're looking for.
				prevRowProposal = i
				for col >= cols {
					col -= cols
				}
			}
			curRowProposal = i + 1
		} else if col <= targetColumn {
			curRowProposal = i + 1
		}
	}

	if prevRowProposal == -1 {
		return offset, false
	}
	return prevRowProposal, true
}

// MoveDown mirrors MoveUp, walking forward from offset instead. ok is
// false if offset's visual row is already the buffer's last -- no
// newline and no wrap point ahead for the rest of the simulation to find --
// and result is then b.Size(), the end of the buffer.
func MoveDown(b *Buffer, w *WindowCtx, offset int) (result int, ok bool) {
	ensureVirtualColumnInitialized(b, w, offset)
	cols := windowCols(w)
	targetColumn := w.VirtualColumn % cols

	lineCol := CurrentColumn(b, offset)
	col := lineCol % cols

	size := b.Size()
	candidate := -1
	for i := offset; i < size; i++ {
		r := RenderByte(b.Get(i), &lineCol)
		if r.Count == eol {
			if candidate != -1 {
				break
			}
			col = 0
			candidate = i + 1
			continue
		}
		col += r.Count
		if col >= cols {
			if candidate != -1 {
				break
			}
			for col >= cols {
				col -= cols
			}
			candidate = i + 1
		} else if candidate != -1 && col <= targetColumn {
			candidate = i + 1
		}
	}
	if candidate == -1 {
		return size, false
	}
	return candidate, true
}

// MoveHome returns the offset of the start of offset's line.
func MoveHome(b *Buffer, offset int) int {
	return lineStartOffset(b, offset)
}

// MoveEnd returns the offset of the end of offset's line.
func MoveEnd(b *Buffer, offset int) int {
	return lineEndOffset(b, offset)
}
