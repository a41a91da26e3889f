package editor

import (
	"os"
	"path/filepath"
)

// PromptKind discriminates the shapes a Prompt can take, for status-line
// rendering (a yes/no confirm draws differently from a free-text path
// prompt) -- the continuation closures themselves carry the actual
// behavior, so this is purely descriptive.
type PromptKind int

const (
	PromptFileOpen PromptKind = iota
	PromptFileSave
	PromptConfirmCloseBuffer
	PromptConfirmExit
	PromptBufferSwitch
)

// Prompt is the modal input state machine described in SPEC_FULL.md §4.J: a
// label to show the user, a minibuffer to hold the text typed so far, and a
// continuation closure invoked with the final text when the user presses
// Enter. Pressing C-g (CancelAction) abandons a prompt without invoking its
// continuation at all -- State.CancelPrompt handles that, not the closure.
//
// The minibuffer is a real *Buffer, not a bare byte slice -- so the same
// InsertCharsNonCoalescing/DeleteLeft primitives the main editor uses also
// drive prompt input, giving a prompt its own undo history for free rather
// than reimplementing a parallel, weaker text-editing surface.
type Prompt struct {
	Kind    PromptKind
	Label   string
	miniBuf *Buffer
	Confirm func(s *State, text string) // invoked with the final typed text on Enter
}

func newPrompt(kind PromptKind, label string, confirm func(s *State, text string)) *Prompt {
	return &Prompt{Kind: kind, Label: label, miniBuf: NewBuffer(0, "minibuffer", 0), Confirm: confirm}
}

// InsertText inserts s into the prompt's minibuffer at its cursor, as a
// non-coalescing edit, matching YankFromClipboard/file-load insertion
// rather than keystroke-coalescing self-insert.
func (p *Prompt) InsertText(s string) {
	InsertCharsNonCoalescing(p.miniBuf, toBufferString(s))
}

// DeleteLeft removes one byte to the left of the prompt's cursor.
func (p *Prompt) DeleteLeft() {
	if p.miniBuf.Cursor() == 0 {
		return
	}
	DeleteLeft(p.miniBuf, 1)
}

// Buffer returns the prompt's underlying minibuffer, for rendering its
// cursor position in the status line.
func (p *Prompt) Buffer() *Buffer {
	return p.miniBuf
}

// String returns the prompt's current input as a Go string.
func (p *Prompt) String() string {
	return p.miniBuf.ContentString()
}

// FileOpenPrompt constructs a prompt that opens the named file into a new
// buffer (or switches to it, if already open) when confirmed. Mirrors
// original_source/editing.cpp's file_open_prompt / open_file_action. Empty
// text opens nothing and sets the error "No filename given".
func FileOpenPrompt(startDir string) *Prompt {
	return newPrompt(PromptFileOpen, "Find file: ", func(s *State, text string) {
		if text == "" {
			s.SetErrorMessage("No filename given")
			return
		}
		path := text
		if !filepath.IsAbs(path) {
			path = filepath.Join(startDir, path)
		}
		s.OpenFile(path)
	})
}

// FileSavePrompt constructs a prompt that saves buf to the typed path when
// confirmed, offering buf's current married file (or working directory)
// as a starting point. Mirrors file_save_prompt / save_file_action. On a
// successful save buf is renamed after the file; empty text saves nothing
// and sets the error "No filename given".
func FileSavePrompt(buf *Buffer, defaultDir string) *Prompt {
	label := "Write file: "
	p := newPrompt(PromptFileSave, label, func(s *State, text string) {
		if text == "" {
			s.SetErrorMessage("No filename given")
			return
		}
		path := text
		if !filepath.IsAbs(path) {
			path = filepath.Join(defaultDir, path)
		}
		err := SaveBufferToFile(buf, path)
		if err != nil {
			s.SetErrorMessage("could not save " + path + ": " + err.Error())
			return
		}
		buf.SetMarriedFile(path)
		if base := baseName(path); base != buf.nameStr {
			buf.nameNumber = s.disambiguateName(base)
			buf.nameStr = base
		}
		s.SetErrorMessage("wrote " + path)
	})
	if buf.MarriedFile() != "" {
		p.InsertText(buf.MarriedFile())
	}
	return p
}

// ConfirmCloseBufferPrompt asks the user to type "yes" or "no" before
// closing a modified buffer without saving, per SPEC_FULL.md §4.J's
// "requires literal yes/no" rule (no single-keystroke y/n shortcut).
func ConfirmCloseBufferPrompt(bufID int) *Prompt {
	return newPrompt(PromptConfirmCloseBuffer, "Buffer modified; close without saving? (yes/no) ", func(s *State, text string) {
		if text == "yes" {
			s.ForceCloseBuffer(bufID)
		} else if text != "no" {
			s.SetErrorMessage("Please type yes or no")
			s.prompt = ConfirmCloseBufferPrompt(bufID)
		}
	})
}

// ConfirmExitPrompt asks the user to type "yes" or "no" before exiting
// with unsaved buffers. Mirrors exit_without_save_prompt.
func ConfirmExitPrompt() *Prompt {
	return newPrompt(PromptConfirmExit, "Modified buffers exist; exit without saving? (yes/no) ", func(s *State, text string) {
		if text == "yes" {
			s.ExitRequested = true
		} else if text != "no" {
			s.SetErrorMessage("Please type yes or no")
			s.prompt = ConfirmExitPrompt()
		}
	})
}

// BufferSwitchPrompt asks for a buffer name (or a numeric index, see
// ApplyNumberToBuf) and switches the current window to it.
func BufferSwitchPrompt() *Prompt {
	return newPrompt(PromptBufferSwitch, "Switch to buffer: ", func(s *State, text string) {
		if !s.SwitchToBufferNamed(text) {
			s.SetErrorMessage("no such buffer: " + text)
		}
	})
}

// ApplyNumberToBuf interprets text as a 1-based index into bufs (the order
// buffers were opened in) and returns the matching buffer, or nil if text
// isn't a valid index. This lets buffer-switch accept either a name or a
// small integer shortcut; the disambiguating numbers in buffer names are
// assigned separately, by State.disambiguateName.
func ApplyNumberToBuf(bufs []*Buffer, text string) *Buffer {
	if len(text) == 0 {
		return nil
	}
	n := 0
	for _, ch := range []byte(text) {
		if ch < '0' || ch > '9' {
			return nil
		}
		n = n*10 + int(ch-'0')
	}
	if n < 1 || n > len(bufs) {
		return nil
	}
	return bufs[n-1]
}

// SaveBufferToFile writes buf's content to path using write-temp-then-
// rename, so a crash or a full disk during the write never leaves path
// half-written or truncated -- a deliberate improvement over the original
// implementation's direct truncate-and-write, per SPEC_FULL.md §6's save
// contract.
func SaveBufferToFile(buf *Buffer, path string) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".qwertillion-save-*")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()
	_, writeErr := tmp.WriteString(buf.ContentString())
	closeErr := tmp.Close()
	if writeErr != nil {
		os.Remove(tmpPath)
		return writeErr
	}
	if closeErr != nil {
		os.Remove(tmpPath)
		return closeErr
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return err
	}
	buf.MarkUnmodified()
	return nil
}
