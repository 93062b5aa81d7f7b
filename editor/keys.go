package editor

import (
	"os"
	"sync/atomic"

	"golang.org/x/sys/unix"
)

// Key aliases
const (
	ENTER_KEY  = '\r'
	ESCAPE_KEY = '\x1b'
	BACKSPACE  = 127 // ASCII backspace
)

// Special keys decoded from escape sequences. Values start above the byte
// range so they can never collide with plain input.
const (
	ARROW_LEFT = iota + 1000
	ARROW_RIGHT
	ARROW_UP
	ARROW_DOWN
	DELETE_KEY
	HOME_KEY
	END_KEY
	PAGE_UP
	PAGE_DOWN
)

// Convert a character to its control key equivalent
func withControlKey(c int) int {
	return c & 0x1f
}

// Check if the byte is a control character
func isControl(c byte) bool {
	return c < 32 || c == 127
}

// stdinReadByte reads one raw byte from the terminal. With the input timeout
// set (VMIN=0, VTIME=1) a read can legitimately return nothing; the second
// return value reports whether a byte arrived before the timeout.
func stdinReadByte() (byte, bool, error) {
	var buf [1]byte
	n, err := unix.Read(int(os.Stdin.Fd()), buf[:])
	if err == unix.EINTR || err == unix.EAGAIN {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	if n != 1 {
		return 0, false, nil
	}
	return buf[0], true, nil
}

// readKey blocks until a full key arrives and decodes escape sequences into
// the special key aliases. Timeouts between keys give the loop a chance to
// notice a pending resize and repaint before waiting again.
func (e *Editor) readKey() (int, error) {
	var c byte
	for {
		if atomic.SwapInt32(&e.resizePending, 0) != 0 {
			e.RefreshScreen()
		}
		b, ok, err := e.readByte()
		if err != nil {
			return 0, err
		}
		if ok {
			c = b
			break
		}
	}

	if c != ESCAPE_KEY {
		return int(c), nil
	}

	// A lone escape is a key of its own; only a complete recognized
	// sequence maps to something else.
	seq0, ok, err := e.readByte()
	if err != nil || !ok {
		return ESCAPE_KEY, nil
	}
	seq1, ok, err := e.readByte()
	if err != nil || !ok {
		return ESCAPE_KEY, nil
	}

	switch seq0 {
	case '[':
		if seq1 >= '0' && seq1 <= '9' {
			seq2, ok, err := e.readByte()
			if err != nil || !ok {
				return ESCAPE_KEY, nil
			}
			if seq2 == '~' {
				switch seq1 {
				case '1', '7':
					return HOME_KEY, nil
				case '3':
					return DELETE_KEY, nil
				case '4', '8':
					return END_KEY, nil
				case '5':
					return PAGE_UP, nil
				case '6':
					return PAGE_DOWN, nil
				}
			}
		} else {
			switch seq1 {
			case 'A':
				return ARROW_UP, nil
			case 'B':
				return ARROW_DOWN, nil
			case 'C':
				return ARROW_RIGHT, nil
			case 'D':
				return ARROW_LEFT, nil
			case 'H':
				return HOME_KEY, nil
			case 'F':
				return END_KEY, nil
			}
		}
	case 'O':
		switch seq1 {
		case 'H':
			return HOME_KEY, nil
		case 'F':
			return END_KEY, nil
		}
	}
	return ESCAPE_KEY, nil // Unknown escape sequence degrades to a bare escape
}
