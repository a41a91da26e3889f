// Package statusline formats buffer names, save confirmations, and error
// text for the single-line status bar. Unlike the core editor package,
// this text may come straight from the filesystem (a path with non-ASCII
// characters) or hold a Go error's message, so it is measured and clipped
// by display width rather than by byte count -- the one place in this
// module where Unicode-aware width measurement is in scope.
package statusline

import "github.com/mattn/go-runewidth"

// Truncate clips s to at most width display columns, appending an
// ellipsis ("...") when it had to cut something off so a long path or
// error doesn't silently look complete. width must be at least 4 to fit
// the ellipsis; smaller widths just hard-truncate with no ellipsis.
func Truncate(s string, width int) string {
	if runewidth.StringWidth(s) <= width {
		return s
	}
	if width < 4 {
		return runewidth.Truncate(s, width, "")
	}
	return runewidth.Truncate(s, width, "...")
}

// Pad right-pads s with spaces until it occupies exactly width display
// columns, used to clear stale trailing characters when the status line
// shrinks (e.g. a long error message replaced by a short one).
func Pad(s string, width int) string {
	w := runewidth.StringWidth(s)
	if w >= width {
		return s
	}
	buf := make([]byte, 0, len(s)+(width-w))
	buf = append(buf, s...)
	for i := w; i < width; i++ {
		buf = append(buf, ' ')
	}
	return string(buf)
}

// FormatBufferName renders a buffer's display name clipped to width,
// marking it with a trailing "*" if modified -- the conventional
// Emacs-style unsaved-changes indicator.
func FormatBufferName(name string, modified bool, width int) string {
	if modified {
		name += "*"
	}
	return Truncate(name, width)
}
