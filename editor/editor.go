// Package editor implements a modal terminal text editor: a line buffer with
// tab-expanded rendering, per-row syntax highlighting, a NORMAL/INSERT/COMMAND
// input state machine and an ANSI renderer.
package editor

import (
	"fmt"
	"io"
	"os"
)

// Config Constants
const (
	VIN_VERSION = "1.0.0"
	TAB_STOP    = 4

	// Longest status/command bar message; longer messages are truncated.
	STATUS_MAX_LEN = 79
)

// mode is the editor's input mode. Each variant carries only the data that
// mode needs, so state like command text cannot exist outside COMMAND mode.
type mode interface {
	name() string
}

// normalMode has a pending-keys accumulator for multi-key sequences. No
// multi-key commands are bound; only backspace-to-clear is handled.
type normalMode struct {
	pending []byte
}

type insertMode struct{}

// commandMode accumulates the text typed after ':'.
type commandMode struct {
	buf []byte
}

func (*normalMode) name() string  { return "NORMAL" }
func (*insertMode) name() string  { return "INSERT" }
func (*commandMode) name() string { return "COMMAND" }

// Editor is the entire editor state. Everything is accessed from the single
// control loop; the resize watcher only touches the screen dimensions and
// the resizePending flag.
type Editor struct {
	cx, cy     int // cursor position in raw text coordinates
	rx         int // cursor column in rendered coordinates, derived
	view       viewport
	screenRows int
	screenCols int
	buf        Buffer
	filename   string
	statusMsg  string
	mode       mode
	terminal   *Terminal

	resizePending int32

	// Terminal collaborators: read one raw byte with a short timeout,
	// write a byte sequence to the terminal.
	readByte func() (byte, bool, error)
	out      io.Writer
}

// NewEditor creates an Editor wired to the process terminal.
func NewEditor() *Editor {
	return &Editor{
		mode:     &normalMode{},
		terminal: &Terminal{},
		readByte: stdinReadByte,
		out:      os.Stdout,
	}
}

// Init queries the window size and reserves the bottom two lines for the
// status and command bars.
func (e *Editor) Init() error {
	rows, cols, err := getWindowSize()
	if err != nil {
		return fmt.Errorf("getting window size: %w", err)
	}
	e.screenRows = rows - 2
	e.screenCols = cols
	return nil
}

// Die restores the terminal, prints an error message and exits the program.
func (e *Editor) Die(format string, args ...any) {
	e.RestoreTerminal()
	io.WriteString(e.out, CLEAR_SCREEN)
	io.WriteString(e.out, CURSOR_HOME)
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

// Quit restores the terminal and terminates with success status.
func (e *Editor) Quit() {
	e.RestoreTerminal()
	io.WriteString(e.out, CLEAR_SCREEN)
	io.WriteString(e.out, CURSOR_HOME)
	os.Exit(0)
}

// SetStatusMessage formats a transient message for the command bar,
// truncated to STATUS_MAX_LEN.
func (e *Editor) SetStatusMessage(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if len(msg) > STATUS_MAX_LEN {
		msg = msg[:STATUS_MAX_LEN]
	}
	e.statusMsg = msg
}
