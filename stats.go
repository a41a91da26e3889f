package editor

// RegionStats summarizes a run of buffer bytes well enough to answer
// rendering/movement queries (how many lines does this region span, how
// wide is its last partial line, where's the first tab on that last line)
// without rescanning the bytes. It forms an associative monoid under
// Append: Append(Append(a, b), c) == Append(a, Append(b, c)), and
// ComputeStats(x ++ y) == Append(ComputeStats(x), ComputeStats(y)).
//
// LastLineWidth and FirstTabWidth are measured in display columns, not
// byte offsets -- both account for tab expansion and the two-cell control
// character rendering via RenderByte. FirstTabWidth is the column of the
// first tab character on the region's last (possibly partial) line, or -1
// if that line has no tab.
type RegionStats struct {
	Newlines      int
	LastLineWidth int
	FirstTabWidth int
}

// emptyStats is the identity element of the Append monoid.
var emptyStats = RegionStats{Newlines: 0, LastLineWidth: 0, FirstTabWidth: -1}

// Append combines the stats of a region followed immediately by another.
//
// When right has no newline, its bytes continue left's last line. right's
// own FirstTabWidth was measured as though right started at column 0, but
// it actually starts at column left.LastLineWidth -- and since a tab
// always advances to the next multiple of TabWidth, shifting its start
// column changes only that tab's own width, never anything rendered after
// it (§4.B). So the combined width always absorbs the delta between the
// tab's recomputed width and its standalone one, regardless of whether
// left happens to have an earlier tab of its own to report instead.
func Append(left, right RegionStats) RegionStats {
	if right.Newlines == 0 {
		width := left.LastLineWidth + right.LastLineWidth
		ft := left.FirstTabWidth
		if right.FirstTabWidth != -1 {
			oldTabWidth := TabWidth - right.FirstTabWidth%TabWidth
			newT := left.LastLineWidth + right.FirstTabWidth
			newTabWidth := TabWidth - newT%TabWidth
			width += newTabWidth - oldTabWidth
			if ft == -1 {
				ft = newT
			}
		}
		return RegionStats{
			Newlines:      left.Newlines,
			LastLineWidth: width,
			FirstTabWidth: ft,
		}
	}
	return RegionStats{
		Newlines:      left.Newlines + right.Newlines,
		LastLineWidth: right.LastLineWidth,
		FirstTabWidth: right.FirstTabWidth,
	}
}

// ComputeStats scans a region of bytes from scratch and produces its
// RegionStats. Used to build up the incremental per-side stats that Buffer
// maintains, and by tests to cross-check the incremental Append/Subtract
// arithmetic.
func ComputeStats(bs []Byte) RegionStats {
	st := emptyStats
	col := 0
	for _, b := range bs {
		if byte(b) == '\n' {
			st.Newlines++
			st.LastLineWidth = 0
			st.FirstTabWidth = -1
			col = 0
			continue
		}
		if byte(b) == '\t' && st.FirstTabWidth == -1 {
			st.FirstTabWidth = col
		}
		r := RenderByte(b, &col)
		st.LastLineWidth += r.Count
	}
	return st
}

// lastLineStats rescans data backward to its final newline (or the start)
// and measures just that last line's width and first-tab column. Used as
// the rescan fallback SubtractLeft/SubtractRight fall back to when a tab's
// width can't be recovered from aggregate stats alone -- the same bounded
// rescan original_source/region_stats.cpp's subtract_stats_right and
// subtract_stats_left perform for the same reason, rather than attempting
// a pure algebraic inversion that the monoid doesn't actually support in
// general.
func lastLineStats(data []Byte) (width, firstTab int) {
	i := len(data)
	for i > 0 && byte(data[i-1]) != '\n' {
		i--
	}
	firstTab = -1
	col := 0
	for _, b := range data[i:] {
		if byte(b) == '\t' && firstTab == -1 {
			firstTab = col
		}
		r := RenderByte(b, &col)
		_ = r
	}
	return col, firstTab
}

// SubtractRight computes the stats of kept, the prefix of a region left
// behind once removed (its suffix) is taken away: whole ==
// Append(result, ComputeStats(removed)). removed's own rendered width
// doesn't depend on where it starts as long as it contains no tab, so that
// case subtracts directly out of whole. A removed tab or newline makes the
// arithmetic ambiguous -- recovering kept's own last-line width and
// first-tab column from whole and removed's stats alone would require
// knowing whether whole's reported tab column came from kept or from
// removed, which aggregate stats don't retain -- so this rescans kept's
// own final line instead, exactly the bounded fallback
// subtract_stats_right performs.
func SubtractRight(whole RegionStats, kept, removed []Byte) RegionStats {
	removedNewlines := 0
	ambiguous := false
	width := 0
	for _, b := range removed {
		if byte(b) == '\n' {
			removedNewlines++
			ambiguous = true
		}
		if byte(b) == '\t' {
			ambiguous = true
		}
		r := RenderByte(b, &width)
		_ = r
	}
	logicCheck(whole.Newlines >= removedNewlines, "SubtractRight: removed has more newlines than whole")
	if !ambiguous {
		return RegionStats{
			Newlines:      whole.Newlines,
			LastLineWidth: whole.LastLineWidth - width,
			FirstTabWidth: whole.FirstTabWidth,
		}
	}
	lastWidth, firstTab := lastLineStats(kept)
	return RegionStats{
		Newlines:      whole.Newlines - removedNewlines,
		LastLineWidth: lastWidth,
		FirstTabWidth: firstTab,
	}
}

// SubtractLeft computes the stats of kept, the suffix of a region left
// behind once removed (its prefix) is taken away: whole ==
// Append(ComputeStats(removed), result). If kept still contains a newline
// of its own, its last line is entirely self-contained -- unaffected by
// whatever preceded it -- so whole's LastLineWidth/FirstTabWidth (which
// Append always takes from the right side once it has a newline) already
// describe it exactly. Once removing the prefix leaves kept with no
// newline at all, kept became a single line whose own tabs may need to be
// re-anchored against a start column removed no longer provides context
// for, so this rescans kept directly rather than guessing, the same as
// subtract_stats_left's full rescan in that case.
func SubtractLeft(whole RegionStats, removed, kept []Byte) RegionStats {
	removedNewlines := 0
	for _, b := range removed {
		if byte(b) == '\n' {
			removedNewlines++
		}
	}
	newNewlines := whole.Newlines - removedNewlines
	logicCheck(newNewlines >= 0, "SubtractLeft: removed has more newlines than whole")
	if newNewlines == 0 {
		width, firstTab := 0, -1
		for _, b := range kept {
			if byte(b) == '\t' && firstTab == -1 {
				firstTab = width
			}
			r := RenderByte(b, &width)
			_ = r
		}
		return RegionStats{Newlines: 0, LastLineWidth: width, FirstTabWidth: firstTab}
	}
	return RegionStats{
		Newlines:      newNewlines,
		LastLineWidth: whole.LastLineWidth,
		FirstTabWidth: whole.FirstTabWidth,
	}
}
