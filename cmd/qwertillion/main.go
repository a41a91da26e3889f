// Command qwertillion is a terminal text editor built on the editor
// package's core (buffers, undo, kill-ring, rendering, scrolling) plus a
// thin Bubble Tea event loop and a fixed keymap. Per SPEC_FULL.md §1, the
// event loop and key dispatch live only here -- nothing in package editor
// knows about terminal escape sequences or a particular UI framework.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	editor "github.com/srh/qwertillion"
	"github.com/srh/qwertillion/internal/statusline"
	"github.com/srh/qwertillion/internal/term"
)

const version = "Qwertillion 0.1.0"

const usage = `usage: qwertillion [options] [file...]

Options:
  -h, --help       show this help message and exit
  -v, --version    show version information and exit
  --               treat all remaining arguments as filenames

With no files, qwertillion starts with a single empty scratch buffer.
`

// commandLineArgs is the parsed result of the CLI contract in
// SPEC_FULL.md §6, mirroring original_source/main.cpp's parse_command_line:
// a handful of flags recognized anywhere before a literal "--", plus a list
// of files to open.
type commandLineArgs struct {
	help    bool
	version bool
	files   []string
}

// parseCommandLine implements the CLI contract: -h/--help and -v/--version
// are recognized anywhere before a literal "--", after which every
// remaining argument (including ones that look like flags) is a filename.
func parseCommandLine(args []string) (commandLineArgs, error) {
	var out commandLineArgs
	filesOnly := false
	for _, a := range args {
		if filesOnly {
			out.files = append(out.files, a)
			continue
		}
		switch a {
		case "--":
			filesOnly = true
		case "-h", "--help":
			out.help = true
		case "-v", "--version":
			out.version = true
		default:
			if strings.HasPrefix(a, "-") && a != "-" {
				return out, fmt.Errorf("unrecognized option: %s", a)
			}
			out.files = append(out.files, a)
		}
	}
	return out, nil
}

func main() {
	args, err := parseCommandLine(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}
	if args.help {
		fmt.Print(usage)
		os.Exit(0)
	}
	if args.version {
		fmt.Println(version)
		os.Exit(0)
	}

	defer func() {
		if r := recover(); r != nil {
			if rc, ok := r.(editor.RuntimeCheckFailure); ok {
				fmt.Fprintln(os.Stderr, "qwertillion: internal invariant failed:", rc.Error())
				os.Exit(1)
			}
			panic(r)
		}
	}()

	s := editor.NewState()
	if len(args.files) == 0 {
		s.NewEmptyBuffer("*scratch*")
	} else {
		for _, f := range args.files {
			abs, err := filepath.Abs(f)
			if err != nil {
				abs = f
			}
			s.OpenFile(abs)
		}
	}

	m := newModel(s)
	if w, h, ok := probeInitialSize(); ok {
		m.width, m.height = w, h
	}
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "qwertillion:", err)
		os.Exit(1)
	}
}

// probeInitialSize opens the controlling terminal just long enough to read
// its true size, so the first frame Bubble Tea renders is already sized
// correctly instead of waiting for its own WindowSizeMsg to arrive. Bubble
// Tea owns raw-mode and resize handling for the rest of the run; this probe
// only brackets a single synchronous read at startup.
func probeInitialSize() (width, height int, ok bool) {
	t, err := term.Open()
	if err != nil {
		return 0, 0, false
	}
	defer t.Close()
	w, h, err := t.Size()
	if err != nil {
		return 0, 0, false
	}
	return w, h, true
}

// cellStyle renders a single StyleMask combination, built once and reused
// rather than constructing a fresh lipgloss.Style per cell every frame.
var (
	plainStyle  = lipgloss.NewStyle()
	boldStyle   = lipgloss.NewStyle().Bold(true)
	cursorStyle = lipgloss.NewStyle().Reverse(true)
)

func styleFor(mask editor.StyleMask) lipgloss.Style {
	switch {
	case mask&editor.StyleCursor != 0:
		return cursorStyle
	case mask&editor.StyleBold != 0:
		return boldStyle
	default:
		return plainStyle
	}
}

func renderFrame(f *editor.Frame) string {
	var b strings.Builder
	for row := 0; row < f.Height; row++ {
		for col := 0; col < f.Width; col++ {
			cell := f.Get(row, col)
			ch := cell.Ch
			if ch == 0 {
				ch = ' '
			}
			b.WriteString(styleFor(cell.Style).Render(string(ch)))
		}
		if row != f.Height-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func statusLine(s *editor.State, width int) string {
	if p := s.Prompt(); p != nil {
		return statusline.Truncate(p.Label+p.String(), width)
	}
	buf := s.CurrentBuffer()
	if buf == nil {
		return statusline.Pad("no buffers open", width)
	}
	name := statusline.FormatBufferName(buf.Name(), buf.Modified(), width/2)
	msg := s.ErrorMessage()
	line := name
	if msg != "" {
		line = name + "  " + msg
	}
	return statusline.Pad(statusline.Truncate(line, width), width)
}
