package term

import (
	"os"
	"testing"
)

// pipeReader returns the read end of an os.Pipe preloaded with data, for
// feeding decodeEscape/decodeByte bytes the way a real tty would deliver
// them one read() at a time.
func pipeReader(t *testing.T, data []byte) *os.File {
	t.Helper()
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("os.Pipe: %v", err)
	}
	if _, err := w.Write(data); err != nil {
		t.Fatalf("write: %v", err)
	}
	w.Close()
	t.Cleanup(func() { r.Close() })
	return r
}

func TestDecodeByte(t *testing.T) {
	cases := []struct {
		name string
		in   byte
		want Keypress
	}{
		{"backspace", 0x7f, Keypress{Special: KeyBackspace}},
		{"cr", '\r', Keypress{Special: KeyEnter}},
		{"lf", '\n', Keypress{Special: KeyEnter}},
		{"tab", '\t', Keypress{Special: KeyTab}},
		{"ctrl-a", 1, Keypress{Rune: 1, Ctrl: true}},
		{"plain-a", 'a', Keypress{Rune: 'a'}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			in := pipeReader(t, nil)
			got, err := decodeByte(in, c.in)
			if err != nil {
				t.Fatalf("decodeByte: %v", err)
			}
			if got != c.want {
				t.Errorf("decodeByte(%#x) = %+v, want %+v", c.in, got, c.want)
			}
		})
	}
}

func TestDecodeEscapeArrowsAndHomeEnd(t *testing.T) {
	cases := []struct {
		name string
		rest []byte
		want SpecialKey
	}{
		{"up", []byte("[A"), KeyUp},
		{"down", []byte("[B"), KeyDown},
		{"right", []byte("[C"), KeyRight},
		{"left", []byte("[D"), KeyLeft},
		{"home-bracket", []byte("[H"), KeyHome},
		{"end-bracket", []byte("[F"), KeyEnd},
		{"up-O", []byte("OA"), KeyUp},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			in := pipeReader(t, c.rest)
			got, err := decodeEscape(in)
			if err != nil {
				t.Fatalf("decodeEscape: %v", err)
			}
			if got.Special != c.want {
				t.Errorf("decodeEscape(ESC %q) = %+v, want Special %v", c.rest, got, c.want)
			}
		})
	}
}

func TestDecodeEscapeTildeSequences(t *testing.T) {
	cases := []struct {
		name string
		rest []byte
		want SpecialKey
	}{
		{"delete", []byte("[3~"), KeyDelete},
		{"pageup", []byte("[5~"), KeyPageUp},
		{"pagedown", []byte("[6~"), KeyPageDown},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			in := pipeReader(t, c.rest)
			got, err := decodeEscape(in)
			if err != nil {
				t.Fatalf("decodeEscape: %v", err)
			}
			if got.Special != c.want {
				t.Errorf("decodeEscape(ESC %q) = %+v, want Special %v", c.rest, got, c.want)
			}
		})
	}
}

func TestDecodeEscapeBareEscIsEscape(t *testing.T) {
	in := pipeReader(t, nil)
	got, err := decodeEscape(in)
	if err != nil {
		t.Fatalf("decodeEscape: %v", err)
	}
	if got.Special != KeyEscape {
		t.Errorf("bare ESC decoded as %+v, want KeyEscape", got)
	}
}

func TestDecodeEscapeAltModifiedRune(t *testing.T) {
	in := pipeReader(t, []byte("f"))
	got, err := decodeEscape(in)
	if err != nil {
		t.Fatalf("decodeEscape: %v", err)
	}
	want := Keypress{Rune: 'f', Alt: true}
	if got != want {
		t.Errorf("decodeEscape(ESC f) = %+v, want %+v", got, want)
	}
}
