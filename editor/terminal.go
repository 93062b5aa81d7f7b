package editor

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync/atomic"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// Terminal holds the state needed to undo raw mode.
type Terminal struct {
	originalState *term.State
}

// EnableRawMode puts the terminal into raw (non-canonical, non-echoing)
// input mode, switches to the alternate screen and gives reads a ~100ms
// timeout so the loop can observe a resize between keys.
func (e *Editor) EnableRawMode() error {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return errors.New("not running in a terminal")
	}

	state, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("enabling terminal raw mode: %w", err)
	}
	e.terminal.originalState = state

	if err := setReadTimeout(fd); err != nil {
		term.Restore(fd, state)
		e.terminal.originalState = nil
		return fmt.Errorf("setting input timeout: %w", err)
	}

	io.WriteString(e.out, ENTER_ALT_SCREEN)
	return nil
}

// setReadTimeout switches the terminal to VMIN=0, VTIME=1 so each read
// returns after at most a tenth of a second when no byte is pending.
func setReadTimeout(fd int) error {
	t, err := unix.IoctlGetTermios(fd, unix.TCGETS)
	if err != nil {
		return err
	}
	t.Cc[unix.VMIN] = 0
	t.Cc[unix.VTIME] = 1
	return unix.IoctlSetTermios(fd, unix.TCSETS, t)
}

// RestoreTerminal leaves the alternate screen and restores the original
// terminal state. Safe to call more than once.
func (e *Editor) RestoreTerminal() {
	if e.terminal != nil && e.terminal.originalState != nil {
		io.WriteString(e.out, LEAVE_ALT_SCREEN)
		term.Restore(int(os.Stdin.Fd()), e.terminal.originalState)
		e.terminal.originalState = nil
	}
}

func getWindowSize() (int, int, error) {
	cols, rows, err := term.GetSize(int(os.Stdout.Fd()))
	return rows, cols, err
}

// updateWindowSize refreshes the cached screen dimensions, keeping the two
// bottom lines reserved for the status and command bars.
func (e *Editor) updateWindowSize() {
	rows, cols, err := getWindowSize()
	if err != nil {
		return
	}
	e.screenRows = rows - 2
	if e.screenRows < 1 {
		e.screenRows = 1
	}
	e.screenCols = cols
}

// WatchResize arranges for window size changes to be picked up between loop
// iterations. The watcher only touches the screen dimensions and the
// resizePending flag; the key-read loop does the actual repaint, so a
// resize can never tear a buffer mutation.
func (e *Editor) WatchResize() {
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, unix.SIGWINCH)
	go func() {
		for range sig {
			e.updateWindowSize()
			atomic.StoreInt32(&e.resizePending, 1)
		}
	}()
}
