package editor

import "os"

// Popup is a transient, dismissible informational overlay (e.g. "7
// matches" after a search, or a multi-line error detail) -- distinct from
// the single-line ErrorMessage, which persists on the status line until
// replaced by the next message.
type Popup struct {
	Lines []string
}

// State is the top-level editor state: every open buffer, which window is
// focused on which buffer, any in-progress prompt, the shared kill ring,
// and the single-line status/error message. Raw terminal I/O, key
// decoding, and the read/dispatch/render loop are deliberately outside
// this type -- see SPEC_FULL.md §1's Non-goals and cmd/qwertillion for the
// thin wiring layer that drives it.
type State struct {
	buffers    []*Buffer
	currentBuf int // index into buffers of the focused buffer; -1 if buffers is empty

	windows map[int]*WindowCtx // per-buffer scroll state, keyed by Buffer.ID()

	clipboard *KillRing
	prompt    *Prompt
	popup     *Popup

	errorMessage string

	nextBufID int

	ExitRequested bool
}

// NewState creates an empty editor state with no open buffers.
func NewState() *State {
	return &State{
		currentBuf: -1,
		windows:    make(map[int]*WindowCtx),
		clipboard:  NewKillRing(),
		nextBufID:  1,
	}
}

// CurrentBuffer returns the focused buffer, or nil if none are open.
func (s *State) CurrentBuffer() *Buffer {
	if s.currentBuf < 0 {
		return nil
	}
	return s.buffers[s.currentBuf]
}

// Buffers returns every open buffer, in the order they were opened.
func (s *State) Buffers() []*Buffer {
	return s.buffers
}

// Clipboard returns the shared kill ring.
func (s *State) Clipboard() *KillRing {
	return s.clipboard
}

// Prompt returns the in-progress prompt, or nil.
func (s *State) Prompt() *Prompt {
	return s.prompt
}

// Popup returns the active popup, or nil.
func (s *State) Popup() *Popup {
	return s.popup
}

// DismissPopup clears the active popup, if any.
func (s *State) DismissPopup() {
	s.popup = nil
}

// ShowPopup displays an informational overlay.
func (s *State) ShowPopup(lines []string) {
	s.popup = &Popup{Lines: lines}
}

// ErrorMessage returns the current status/error message.
func (s *State) ErrorMessage() string {
	return s.errorMessage
}

// SetErrorMessage replaces the status/error message shown to the user.
func (s *State) SetErrorMessage(msg string) {
	s.errorMessage = msg
}

// disambiguateName picks a nameNumber: the least n >= 0 not already used
// by an open buffer with the same base name (so the first such buffer gets
// 0, no suffix), letting two files named the same thing in different
// directories get distinguishable buffer names.
func (s *State) disambiguateName(base string) int {
	for n := 0; ; n++ {
		used := false
		for _, b := range s.buffers {
			if b.nameStr == base && b.nameNumber == n {
				used = true
				break
			}
		}
		if !used {
			return n
		}
	}
}

// NewEmptyBuffer opens a new empty buffer named name (disambiguated
// against open buffers with the same name) and focuses it.
func (s *State) NewEmptyBuffer(name string) *Buffer {
	num := s.disambiguateName(name)
	b := NewBuffer(s.nextBufID, name, num)
	s.nextBufID++
	s.buffers = append(s.buffers, b)
	s.currentBuf = len(s.buffers) - 1
	s.windows[b.ID()] = nil
	return b
}

// findBufferByFile returns the already-open buffer married to path, if
// any -- opening the same file twice should focus the existing buffer
// rather than create a second one silently out of sync with it.
func (s *State) findBufferByFile(path string) *Buffer {
	for _, b := range s.buffers {
		if b.MarriedFile() == path {
			return b
		}
	}
	return nil
}

// OpenFile loads path into a buffer, reusing an already-open buffer for
// the same path if one exists, and focuses it. Mirrors
// original_source/editing.cpp's open_file_into_detached_buffer plus the
// already-open short-circuit in open_file_action. A nonexistent path
// becomes an empty buffer married to that path, the way opening a new
// file by name does in Emacs.
func (s *State) OpenFile(path string) *Buffer {
	if existing := s.findBufferByFile(path); existing != nil {
		s.focusBuffer(existing)
		return existing
	}
	content, err := os.ReadFile(path)
	var bytes []Byte
	if err == nil {
		bytes = toBufferString(string(content))
	} else if !os.IsNotExist(err) {
		s.SetErrorMessage("could not read " + path + ": " + err.Error())
	}
	base := baseName(path)
	num := s.disambiguateName(base)
	b := NewBufferFromBytes(s.nextBufID, base, num, bytes)
	s.nextBufID++
	b.SetMarriedFile(path)
	b.MarkUnmodified()
	s.buffers = append(s.buffers, b)
	s.currentBuf = len(s.buffers) - 1
	s.windows[b.ID()] = nil
	return b
}

// baseName returns the final path component without using path/filepath,
// since this needs to work identically regardless of the host OS's path
// separator conventions for buffer *display* naming (unlike the actual
// filesystem operations in prompt.go, which do use filepath).
func baseName(path string) string {
	i := len(path)
	for i > 0 && path[i-1] != '/' {
		i--
	}
	return path[i:]
}

func (s *State) focusBuffer(b *Buffer) {
	for i, cand := range s.buffers {
		if cand == b {
			s.currentBuf = i
			return
		}
	}
}

// SwitchToBufferNamed focuses the buffer whose display name matches name
// exactly, or -- if name parses as a number -- the buffer at that 1-based
// position in open order. Reports false if nothing matched.
func (s *State) SwitchToBufferNamed(name string) bool {
	for _, b := range s.buffers {
		if b.Name() == name {
			s.focusBuffer(b)
			return true
		}
	}
	if b := ApplyNumberToBuf(s.buffers, name); b != nil {
		s.focusBuffer(b)
		return true
	}
	return false
}

// RequestCloseBuffer closes bufID if unmodified, or opens a confirmation
// prompt if it has unsaved changes. Mirrors editing.cpp's buffer-close
// path, which never silently discards edits.
func (s *State) RequestCloseBuffer(bufID int) {
	b := s.bufferByID(bufID)
	if b == nil {
		return
	}
	if !b.Modified() {
		s.ForceCloseBuffer(bufID)
		return
	}
	s.prompt = ConfirmCloseBufferPrompt(bufID)
}

// ForceCloseBuffer closes bufID unconditionally, discarding any unsaved
// changes. Focus moves to the buffer that takes the closed one's place,
// wrapping to the first buffer when the closed one was last; closing the
// only buffer opens a fresh "*scratch*" buffer.
func (s *State) ForceCloseBuffer(bufID int) {
	idx := -1
	for i, b := range s.buffers {
		if b.ID() == bufID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return
	}
	delete(s.windows, bufID)
	s.buffers = append(s.buffers[:idx], s.buffers[idx+1:]...)
	switch {
	case len(s.buffers) == 0:
		s.NewEmptyBuffer("*scratch*")
	case s.currentBuf > idx:
		s.currentBuf--
	case s.currentBuf >= len(s.buffers):
		s.currentBuf = 0
	}
}

func (s *State) bufferByID(id int) *Buffer {
	for _, b := range s.buffers {
		if b.ID() == id {
			return b
		}
	}
	return nil
}

// ModifiedBuffers returns every open buffer with unsaved changes, used by
// RequestExit to decide whether confirmation is needed. Mirrors
// editing.cpp's modified_buffers.
func (s *State) ModifiedBuffers() []*Buffer {
	var ret []*Buffer
	for _, b := range s.buffers {
		if b.Modified() {
			ret = append(ret, b)
		}
	}
	return ret
}

// RequestExit sets ExitRequested directly if no buffers have unsaved
// changes, or opens a confirmation prompt otherwise. Mirrors
// exit_without_save_prompt / exit_cleanly.
func (s *State) RequestExit() {
	if len(s.ModifiedBuffers()) == 0 {
		s.ExitRequested = true
		return
	}
	s.prompt = ConfirmExitPrompt()
}

// BeginPrompt installs p as the in-progress prompt, replacing any prior
// one.
func (s *State) BeginPrompt(p *Prompt) {
	s.prompt = p
}

// CancelPrompt abandons the in-progress prompt (C-g) without invoking its
// continuation, and ends the focused buffer's coalescing run and kill
// streak (CancelAction).
func (s *State) CancelPrompt() {
	s.prompt = nil
	if b := s.CurrentBuffer(); b != nil {
		CancelAction(b, s.clipboard)
	}
}

// ConfirmPrompt invokes the in-progress prompt's continuation with its
// current text and clears it, unless the continuation itself installs a
// new prompt (e.g. to re-ask after invalid yes/no input).
func (s *State) ConfirmPrompt() {
	p := s.prompt
	if p == nil {
		return
	}
	s.prompt = nil
	p.Confirm(s, p.String())
}

// WindowFor returns the scroll-control window context for buf, creating
// one sized width x height on first use.
func (s *State) WindowFor(buf *Buffer, width, height int) *WindowCtx {
	w := s.windows[buf.ID()]
	if w == nil {
		nw := NewWindowCtx(buf, width, height)
		s.windows[buf.ID()] = &nw
		return &nw
	}
	w.Width, w.Height = width, height
	return w
}
