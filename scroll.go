package editor

// WindowCtx is the scroll-control state for one buffer's view onto the
// terminal: the visible dimensions, a strong mark (so edits elsewhere in
// the buffer keep it pointing at the right content) for the first visible
// byte, and the persisted virtual column a run of vertical motion targets
// (SPEC_FULL.md's Window context). VirtualColumn is only meaningful when
// HasVirtualColumn is set -- MoveUp/MoveDown initialize it lazily from the
// cursor's own column on the first vertical move of a run, the way
// original_source/buffer.hpp's std::optional<size_t> virtual_column does.
type WindowCtx struct {
	Width, Height    int
	FirstVisibleMark MarkID

	VirtualColumn    int
	HasVirtualColumn bool
}

// ResetVirtualColumn clears the persisted virtual column. Every horizontal
// motion and every insertion/deletion calls this, so the next vertical
// move re-seeds its target column from wherever the cursor actually ended
// up rather than an earlier, now-irrelevant one.
func (w *WindowCtx) ResetVirtualColumn() {
	w.HasVirtualColumn = false
}

// NewWindowCtx creates a window context anchored at offset 0.
func NewWindowCtx(b *Buffer, width, height int) WindowCtx {
	return WindowCtx{Width: width, Height: height, FirstVisibleMark: b.NewMark(0)}
}

// scratchFrame is sized tall enough that a single probe render can see
// past either edge of the real viewport in one pass -- double height plus
// one row of slack, mirroring term_ui.cpp's oversized probe buffer.
func scratchFrame(w *WindowCtx) *Frame {
	h := w.Height*2 + 1
	if h < 1 {
		h = 1
	}
	return NewFrame(w.Width, h)
}

// CursorIsOffscreen reports whether cursorOffset would render outside the
// currently visible rows, using a scratch-frame probe render as the
// oracle rather than separately tracking row bookkeeping (SPEC_FULL.md §9).
func CursorIsOffscreen(b *Buffer, w *WindowCtx, cursorOffset int) bool {
	first := b.MarkOffset(w.FirstVisibleMark)
	f := NewFrame(w.Width, w.Height)
	res := RenderIntoFrame(f, b, first, 0, cursorOffset)
	if !res.CursorFound {
		return true
	}
	return res.CursorRow < 0 || res.CursorRow >= w.Height
}

// ScrollToRow adjusts w's first-visible mark so that cursorOffset renders
// on terminal row targetRow (0-based), using the two-phase walk from
// original_source/term_ui.cpp's scroll_to_row: first walk the candidate
// first-visible offset backward line-by-line (using a tall scratch frame
// as an oracle) until a probe render places the cursor at or below
// targetRow, then -- since soft-wrap can overshoot -- walk forward until
// it's found exactly at targetRow.
func ScrollToRow(b *Buffer, w *WindowCtx, cursorOffset int, targetRow int) {
	candidate := lineStartOffset(b, cursorOffset)

	// Phase 1: walk backward by whole lines until a probe places the
	// cursor at or below targetRow, or we hit the start of the buffer.
	for candidate > 0 {
		f := scratchFrame(w)
		res := RenderIntoFrame(f, b, candidate, 0, cursorOffset)
		if res.CursorFound && res.CursorRow >= targetRow {
			break
		}
		prevLineEnd := candidate - 1
		candidate = lineStartOffset(b, prevLineEnd)
	}

	// Phase 2: walk forward (advancing the candidate by whatever the probe
	// says the first row consumed) until the cursor lands exactly on
	// targetRow, compensating for soft-wrap overshoot from phase 1.
	for {
		f := scratchFrame(w)
		res := RenderIntoFrame(f, b, candidate, 0, cursorOffset)
		if !res.CursorFound || res.CursorRow <= targetRow {
			break
		}
		next := nextVisualRowStart(b, candidate, w.Width)
		if next == candidate {
			break
		}
		candidate = next
	}

	b.SetMarkOffset(w.FirstVisibleMark, candidate)
}

// nextVisualRowStart returns the buffer offset at which the visual row
// starting at offset (soft-wrapped at width columns) ends, i.e. where the
// next visual row begins.
func nextVisualRowStart(b *Buffer, offset int, width int) int {
	size := b.Size()
	col := 0
	i := offset
	for i < size {
		if byte(b.Get(i)) == '\n' {
			return i + 1
		}
		before := col
		r := RenderByte(b.Get(i), &col)
		_ = before
		i++
		if col >= width {
			return i
		}
		if r.Count == 0 {
			break
		}
	}
	return i
}

// ScrollToMid centers cursorOffset vertically in the viewport: equivalent
// to ScrollToRow at row Height/2, which is exactly how
// original_source/term_ui.cpp's scroll_to_mid is defined.
func ScrollToMid(b *Buffer, w *WindowCtx, cursorOffset int) {
	ScrollToRow(b, w, cursorOffset, w.Height/2)
}

// RecenterCursorIfOffscreen calls ScrollToMid only if the cursor isn't
// already visible, avoiding needless scroll-position churn on every
// keystroke -- the common case (typing in the middle of a visible screen)
// should never move the viewport.
func RecenterCursorIfOffscreen(b *Buffer, w *WindowCtx, cursorOffset int) {
	if CursorIsOffscreen(b, w, cursorOffset) {
		ScrollToMid(b, w, cursorOffset)
	}
}
