package main

import (
	tea "github.com/charmbracelet/bubbletea"

	editor "github.com/srh/qwertillion"
)

// yankSpan remembers the offsets of the most recent C-y/M-y insertion, so
// a following M-y can replace it in place rather than appending a second
// copy -- see editor.AltYankFromClipboard's doc comment.
type yankSpan struct {
	start, end int
	active     bool
}

// model is the Bubble Tea program model: the editor's state, the current
// terminal dimensions, a fixed keymap (no dispatch table -- see
// SPEC_FULL.md §1's non-goals), and the bookkeeping a minimal Emacs-style
// keymap needs that package editor deliberately doesn't track itself
// (mark-for-region, yank-pop span, pending C-x prefix).
type model struct {
	state  *editor.State
	width  int
	height int

	regionMark   editor.MarkID
	haveRegion   bool
	lastYank     yankSpan
	pendingCtrlX bool
}

func newModel(s *editor.State) *model {
	return &model{state: s}
}

func (m *model) Init() tea.Cmd {
	return nil
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case tea.KeyMsg:
		m.handleKey(msg)
		if m.state.ExitRequested {
			return m, tea.Quit
		}
		return m, nil
	}
	return m, nil
}

func (m *model) View() string {
	buf := m.state.CurrentBuffer()
	editorHeight := m.height - 1
	if editorHeight < 1 {
		editorHeight = 1
	}
	if buf == nil {
		return statusLine(m.state, m.width)
	}

	w := m.state.WindowFor(buf, m.width, editorHeight)
	editor.RecenterCursorIfOffscreen(buf, w, buf.Cursor())
	first := buf.MarkOffset(w.FirstVisibleMark)

	f := editor.NewFrame(m.width, editorHeight)
	res := editor.RenderIntoFrame(f, buf, first, 0, buf.Cursor())
	if res.CursorFound {
		cell := f.Get(res.CursorRow, res.CursorCol)
		cell.Style |= editor.StyleCursor
		f.Set(res.CursorRow, res.CursorCol, cell)
	}

	return renderFrame(f) + "\n" + statusLine(m.state, m.width)
}

func (m *model) handleKey(k tea.KeyMsg) {
	buf := m.state.CurrentBuffer()
	m.state.SetErrorMessage("")

	// Only C-y and M-y keep a yank in progress, and only kills, copies and
	// yanks keep a kill streak going; any other key ends both.
	altRune := func(r rune) bool { return k.Alt && k.Type == tea.KeyRunes && len(k.Runes) == 1 && k.Runes[0] == r }
	isYank := k.Type == tea.KeyCtrlY || altRune('y')
	isKill := k.Type == tea.KeyCtrlK || k.Type == tea.KeyCtrlW || altRune('w')
	if !isYank {
		m.lastYank = yankSpan{}
	}
	if !isYank && !isKill {
		m.state.Clipboard().BreakKillStreak()
	}

	if m.state.Prompt() != nil {
		m.handlePromptKey(k)
		return
	}

	if m.pendingCtrlX {
		m.pendingCtrlX = false
		m.handleCtrlXKey(k, buf)
		return
	}

	switch k.Type {
	case tea.KeyCtrlX:
		m.pendingCtrlX = true
		return
	case tea.KeyCtrlG:
		if buf != nil {
			editor.CancelAction(buf, m.state.Clipboard())
		}
		m.haveRegion = false
		m.lastYank = yankSpan{}
		return
	}

	if buf == nil {
		return
	}

	editorHeight := m.height - 1
	if editorHeight < 1 {
		editorHeight = 1
	}
	w := m.state.WindowFor(buf, m.width, editorHeight)

	// Alt-modified rune keys are meta-commands (M-f, M-b, M-w, M-y) rather
	// than self-insert, arriving as a plain KeyRunes event with Alt set --
	// bubbletea reports Meta/Alt this way rather than as distinct key
	// types. Checked before the main switch so it takes priority over
	// self-insertion.
	if k.Alt && k.Type == tea.KeyRunes && len(k.Runes) == 1 {
		switch k.Runes[0] {
		case 'f':
			buf.SetCursor(buf.Cursor() + editor.ForwardWordDistance(buf, buf.Cursor()))
			w.ResetVirtualColumn()
			return
		case 'b':
			buf.SetCursor(buf.Cursor() - editor.BackwardWordDistance(buf, buf.Cursor()))
			w.ResetVirtualColumn()
			return
		case 'w':
			if m.haveRegion {
				editor.CopyRegion(buf, m.state.Clipboard(), m.regionMark)
			}
			return
		case 'y':
			if m.lastYank.active {
				editor.AltYankFromClipboard(buf, m.state.Clipboard(), m.lastYank.start, m.lastYank.end)
				m.lastYank.end = buf.Cursor()
			}
			w.ResetVirtualColumn()
			return
		}
	}

	switch k.Type {
	case tea.KeyRunes:
		editor.InsertChars(buf, toEditorBytes(string(k.Runes)))
		m.lastYank = yankSpan{}
		w.ResetVirtualColumn()
	case tea.KeySpace:
		editor.InsertChars(buf, toEditorBytes(" "))
		m.lastYank = yankSpan{}
		w.ResetVirtualColumn()
	case tea.KeyEnter:
		editor.InsertChars(buf, toEditorBytes("\n"))
		m.lastYank = yankSpan{}
		w.ResetVirtualColumn()
	case tea.KeyTab:
		editor.InsertChars(buf, toEditorBytes("\t"))
		m.lastYank = yankSpan{}
		w.ResetVirtualColumn()
	case tea.KeyBackspace:
		if buf.Cursor() > 0 {
			editor.DeleteLeft(buf, 1)
		}
		m.lastYank = yankSpan{}
		w.ResetVirtualColumn()
	case tea.KeyDelete:
		if buf.Cursor() < buf.Size() {
			editor.DeleteRight(buf, 1)
		}
		m.lastYank = yankSpan{}
		w.ResetVirtualColumn()
	case tea.KeyLeft, tea.KeyCtrlB:
		if buf.Cursor() > 0 {
			buf.SetCursor(buf.Cursor() - 1)
		}
		w.ResetVirtualColumn()
	case tea.KeyRight, tea.KeyCtrlF:
		if buf.Cursor() < buf.Size() {
			buf.SetCursor(buf.Cursor() + 1)
		}
		w.ResetVirtualColumn()
	case tea.KeyUp:
		if o, ok := editor.MoveUp(buf, w, buf.Cursor()); ok {
			buf.SetCursor(o)
		}
	case tea.KeyDown:
		o, _ := editor.MoveDown(buf, w, buf.Cursor())
		buf.SetCursor(o)
	case tea.KeyCtrlA:
		buf.SetCursor(editor.MoveHome(buf, buf.Cursor()))
		w.ResetVirtualColumn()
	case tea.KeyCtrlE:
		buf.SetCursor(editor.MoveEnd(buf, buf.Cursor()))
		w.ResetVirtualColumn()
	case tea.KeyCtrlK:
		editor.KillLine(buf, m.state.Clipboard())
		w.ResetVirtualColumn()
	case tea.KeyCtrlAt:
		m.regionMark = buf.NewMark(buf.Cursor())
		m.haveRegion = true
	case tea.KeyCtrlW:
		if m.haveRegion {
			editor.KillRegion(buf, m.state.Clipboard(), m.regionMark)
			buf.ReleaseMark(m.regionMark)
			m.haveRegion = false
		}
		w.ResetVirtualColumn()
	case tea.KeyCtrlY:
		before := buf.Cursor()
		editor.YankFromClipboard(buf, m.state.Clipboard())
		m.lastYank = yankSpan{start: before, end: buf.Cursor(), active: m.state.Clipboard().IsYankInProgress()}
		w.ResetVirtualColumn()
	case tea.KeyCtrlUnderscore:
		editor.Undo(m.state, buf)
		m.lastYank = yankSpan{}
		w.ResetVirtualColumn()
	}
}

func (m *model) handleCtrlXKey(k tea.KeyMsg, buf *editor.Buffer) {
	switch k.Type {
	case tea.KeyCtrlS:
		if buf != nil {
			m.state.BeginPrompt(editor.FileSavePrompt(buf, "."))
		}
	case tea.KeyCtrlF:
		m.state.BeginPrompt(editor.FileOpenPrompt("."))
	case tea.KeyCtrlC:
		m.state.RequestExit()
	case tea.KeyRunes:
		if len(k.Runes) == 1 && k.Runes[0] == 'b' {
			m.state.BeginPrompt(editor.BufferSwitchPrompt())
		}
		if len(k.Runes) == 1 && k.Runes[0] == 'k' && buf != nil {
			m.state.RequestCloseBuffer(buf.ID())
		}
	}
}

func (m *model) handlePromptKey(k tea.KeyMsg) {
	p := m.state.Prompt()
	switch k.Type {
	case tea.KeyEnter:
		m.state.ConfirmPrompt()
	case tea.KeyCtrlG:
		m.state.CancelPrompt()
	case tea.KeyBackspace:
		p.DeleteLeft()
	case tea.KeyRunes:
		p.InsertText(string(k.Runes))
	case tea.KeySpace:
		p.InsertText(" ")
	}
}

func toEditorBytes(s string) []editor.Byte {
	bs := make([]editor.Byte, len(s))
	for i := 0; i < len(s); i++ {
		bs[i] = editor.Byte(s[i])
	}
	return bs
}
