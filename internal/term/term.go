// Package term bootstraps the real terminal: raw mode, SIGWINCH-driven
// resize notification, and decoding of raw input bytes into the editor's
// Keypress contract. Nothing in package editor depends on this package --
// per the module's scope, raw terminal I/O and key decoding sit entirely
// outside the core, reachable only through cmd/qwertillion's wiring.
package term

import (
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// SpecialKey enumerates the non-printable keys the decoder recognizes
// beyond a plain byte/rune: the navigation and editing keys of the
// keyboard contract described in SPEC_FULL.md §6, plus KeyEscape. The
// function keys, Insert, CapsLock, PauseBreak, PrintScreen and ScrollLock
// listed there are not decoded.
type SpecialKey int

const (
	KeyNone SpecialKey = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyDelete
	KeyBackspace
	KeyEnter
	KeyTab
	KeyEscape
)

// Keypress is a single decoded input event: either a plain byte (Rune,
// with Special == KeyNone) or one of the named special keys, plus
// modifier flags. Ctrl-modified printable ASCII arrives pre-folded into
// its control-code byte (e.g. Ctrl-A is byte 1) by the terminal itself,
// matching how Unix ttys have always delivered it -- Ctrl is reported
// separately only when decoding a multi-byte escape sequence that
// encodes it explicitly (rare; most terminals don't).
type Keypress struct {
	Rune    byte
	Special SpecialKey
	Alt     bool
	Ctrl    bool
}

// Terminal owns the raw-mode lifecycle and the raw input stream.
type Terminal struct {
	fd       int
	oldState *term.State
	in       *os.File
	resize   chan struct{}
}

// Open puts the controlling terminal into raw mode and starts watching
// for SIGWINCH. Callers must call Close (typically via defer) to restore
// the terminal's original mode on exit -- including on the panic-recovery
// path in cmd/qwertillion, so a crash never leaves the user's shell in
// raw mode.
func Open() (*Terminal, error) {
	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return nil, err
	}
	t := &Terminal{fd: fd, oldState: oldState, in: os.Stdin, resize: make(chan struct{}, 1)}
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGWINCH)
	go func() {
		for range sig {
			select {
			case t.resize <- struct{}{}:
			default:
			}
		}
	}()
	return t, nil
}

// Close restores the terminal's original mode.
func (t *Terminal) Close() error {
	return term.Restore(t.fd, t.oldState)
}

// Size returns the terminal's current width and height in character
// cells.
func (t *Terminal) Size() (width, height int, err error) {
	ws, err := unix.IoctlGetWinsize(t.fd, unix.TIOCGWINSZ)
	if err != nil {
		return 0, 0, err
	}
	return int(ws.Col), int(ws.Row), nil
}

// Resized returns a channel that receives a value each time the terminal
// is resized (SIGWINCH), coalesced so a burst of resize events during
// window-drag only wakes the reader once per drain.
func (t *Terminal) Resized() <-chan struct{} {
	return t.resize
}

// ReadKeypress blocks for the next decoded keypress from the terminal.
func (t *Terminal) ReadKeypress() (Keypress, error) {
	var buf [1]byte
	if _, err := t.in.Read(buf[:]); err != nil {
		return Keypress{}, err
	}
	return decodeByte(t.in, buf[0])
}

// decodeByte turns the first byte of an input event into a Keypress,
// reading further bytes from in if b begins a multi-byte escape sequence
// (arrow keys, Home/End, Page Up/Down, Delete all arrive as ESC [ ...
// sequences on every terminal this module targets).
func decodeByte(in *os.File, b byte) (Keypress, error) {
	switch b {
	case 0x1b:
		return decodeEscape(in)
	case 0x7f:
		return Keypress{Special: KeyBackspace}, nil
	case '\r', '\n':
		return Keypress{Special: KeyEnter}, nil
	case '\t':
		return Keypress{Special: KeyTab}, nil
	}
	if b < 0x20 {
		return Keypress{Rune: b, Ctrl: true}, nil
	}
	return Keypress{Rune: b}, nil
}

// decodeEscape reads the remainder of an ESC-prefixed sequence. A bare ESC
// with nothing following (or an unrecognized sequence) is reported as
// KeyEscape with no further bytes consumed beyond what was read.
func decodeEscape(in *os.File) (Keypress, error) {
	var b1 [1]byte
	n, err := in.Read(b1[:])
	if err != nil || n == 0 {
		return Keypress{Special: KeyEscape}, nil
	}
	if b1[0] == '[' || b1[0] == 'O' {
		var b2 [1]byte
		if _, err := in.Read(b2[:]); err != nil {
			return Keypress{Special: KeyEscape}, nil
		}
		switch b2[0] {
		case 'A':
			return Keypress{Special: KeyUp}, nil
		case 'B':
			return Keypress{Special: KeyDown}, nil
		case 'C':
			return Keypress{Special: KeyRight}, nil
		case 'D':
			return Keypress{Special: KeyLeft}, nil
		case 'H':
			return Keypress{Special: KeyHome}, nil
		case 'F':
			return Keypress{Special: KeyEnd}, nil
		case '3', '5', '6':
			// Delete / Page Up / Page Down send a trailing '~'; consume it.
			var b3 [1]byte
			in.Read(b3[:])
			switch b2[0] {
			case '3':
				return Keypress{Special: KeyDelete}, nil
			case '5':
				return Keypress{Special: KeyPageUp}, nil
			case '6':
				return Keypress{Special: KeyPageDown}, nil
			}
		}
		return Keypress{Special: KeyEscape}, nil
	}
	// ESC followed directly by a printable byte is the Meta/Alt-modified
	// form most terminals use in place of a true 8th-bit meta key.
	return Keypress{Rune: b1[0], Alt: true}, nil
}
