package statusline

import (
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"
)

func TestTruncateShortStringUnchanged(t *testing.T) {
	if got := Truncate("hello", 10); got != "hello" {
		t.Errorf("Truncate = %q, want %q", got, "hello")
	}
}

func TestTruncateLongStringGetsEllipsis(t *testing.T) {
	got := Truncate("a very long buffer name indeed", 10)
	if runewidth.StringWidth(got) != 10 {
		t.Errorf("Truncate result width = %d, want 10 (%q)", runewidth.StringWidth(got), got)
	}
	if got[len(got)-3:] != "..." {
		t.Errorf("Truncate(%q) = %q, want trailing ellipsis", "a very long buffer name indeed", got)
	}
}

func TestTruncateNarrowWidthSkipsEllipsis(t *testing.T) {
	got := Truncate("abcdefgh", 2)
	if strings.Contains(got, ".") {
		t.Errorf("Truncate with width<4 should not append ellipsis, got %q", got)
	}
	if runewidth.StringWidth(got) > 2 {
		t.Errorf("Truncate(%q, 2) width = %d, want <= 2", got, runewidth.StringWidth(got))
	}
}

func TestPadFillsToWidth(t *testing.T) {
	got := Pad("hi", 5)
	if runewidth.StringWidth(got) != 5 {
		t.Errorf("Pad width = %d, want 5 (%q)", runewidth.StringWidth(got), got)
	}
	if got != "hi   " {
		t.Errorf("Pad(\"hi\", 5) = %q, want %q", got, "hi   ")
	}
}

func TestPadNoOpWhenAlreadyWide(t *testing.T) {
	if got := Pad("hello", 3); got != "hello" {
		t.Errorf("Pad should not truncate, got %q", got)
	}
}

func TestFormatBufferNameMarksModified(t *testing.T) {
	if got := FormatBufferName("scratch", true, 20); got != "scratch*" {
		t.Errorf("FormatBufferName(modified) = %q, want %q", got, "scratch*")
	}
	if got := FormatBufferName("scratch", false, 20); got != "scratch" {
		t.Errorf("FormatBufferName(unmodified) = %q, want %q", got, "scratch")
	}
}
