package editor

/*** editor operations ***/

// insertChar inserts a byte at the cursor and advances one column, creating
// the one-past-the-end row first when the cursor sits below the last line.
func (e *Editor) insertChar(c byte) {
	if e.cy == e.buf.numRows() {
		e.buf.insertRow(e.buf.numRows(), nil)
	}
	e.buf.insertChar(e.cy, e.cx, c)
	e.cx++
}

// insertNewline splits the current line at the cursor and moves the cursor
// to column zero of the new line.
func (e *Editor) insertNewline() {
	if e.cx == 0 {
		e.buf.insertRow(e.cy, nil)
	} else {
		e.buf.splitLine(e.cy, e.cx)
	}
	e.cy++
	e.cx = 0
}

// deleteChar removes the byte before the cursor. At column zero the line is
// merged into the previous one and the cursor lands on the join point.
func (e *Editor) deleteChar() {
	if e.cy == e.buf.numRows() {
		return
	}
	if e.cx == 0 && e.cy == 0 {
		return
	}
	if e.cx == 0 {
		e.cx = e.buf.joinWithPrevious(e.cy)
		e.cy--
	} else {
		e.buf.deleteCharBefore(e.cy, e.cx)
		e.cx--
	}
}

/*** cursor motion ***/

// moveCursor moves one step in the direction given by an arrow key alias.
// Left at column zero wraps to the end of the previous row; right at the end
// of a row steps to the start of the next one. Vertical motion clamps the
// row to [0, numRows] where numRows is the one-past-the-end position, and
// any move snaps the column back to the length of the row it lands on.
func (e *Editor) moveCursor(key int) {
	notOnLast := e.cy < e.buf.numRows()

	switch key {
	case ARROW_LEFT:
		if e.cx > 0 {
			e.cx--
		} else if e.cy > 0 {
			e.cy--
			e.cx = len(e.buf.rows[e.cy].raw)
		}
	case ARROW_RIGHT:
		if notOnLast && e.cx < len(e.buf.rows[e.cy].raw) {
			e.cx++
		} else if notOnLast && e.cx == len(e.buf.rows[e.cy].raw) {
			e.cy++
			e.cx = 0
		}
	case ARROW_UP:
		if e.cy > 0 {
			e.cy--
		}
	case ARROW_DOWN:
		if e.cy < e.buf.numRows() {
			e.cy++
		}
	}

	rowLen := 0
	if e.cy < e.buf.numRows() {
		rowLen = len(e.buf.rows[e.cy].raw)
	}
	if e.cx > rowLen {
		e.cx = rowLen
	}
}

// movePage jumps the cursor to the top or bottom of the viewport, then
// repeats a single-step vertical move screenRows times. The repeated steps,
// not a direct offset jump, are what produce the clamping at the buffer
// edges.
func (e *Editor) movePage(key int) {
	if key == PAGE_UP {
		e.cy = e.view.rowOffset
	} else {
		e.cy = e.view.rowOffset + e.screenRows - 1
		if e.cy > e.buf.numRows() {
			e.cy = e.buf.numRows()
		}
	}

	dir := ARROW_UP
	if key == PAGE_DOWN {
		dir = ARROW_DOWN
	}
	for i := 0; i < e.screenRows; i++ {
		e.moveCursor(dir)
	}
}

// moveLineStart and moveLineEnd implement Home/End (and 0/$ in NORMAL mode).
func (e *Editor) moveLineStart() {
	e.cx = 0
}

func (e *Editor) moveLineEnd() {
	if e.cy < e.buf.numRows() {
		e.cx = len(e.buf.rows[e.cy].raw)
	}
}

/*** keypress dispatch ***/

// ProcessKeypress reads one key and dispatches it against the current mode.
func (e *Editor) ProcessKeypress() {
	key, err := e.readKey()
	if err != nil {
		e.Die("reading keyboard input: %v", err)
	}
	e.handleKey(key)
}

func (e *Editor) handleKey(key int) {
	switch m := e.mode.(type) {
	case *insertMode:
		e.handleInsertKey(key)
	case *normalMode:
		e.handleNormalKey(m, key)
	case *commandMode:
		e.handleCommandKey(m, key)
	}
}

func (e *Editor) handleInsertKey(key int) {
	switch key {
	case ESCAPE_KEY:
		e.mode = &normalMode{}

	case ENTER_KEY:
		e.insertNewline()

	case HOME_KEY:
		e.moveLineStart()

	case END_KEY:
		e.moveLineEnd()

	case BACKSPACE, withControlKey('h'), DELETE_KEY:
		// Forward delete is a right move plus the backward-delete primitive.
		if key == DELETE_KEY {
			e.moveCursor(ARROW_RIGHT)
		}
		e.deleteChar()

	case PAGE_UP, PAGE_DOWN:
		e.movePage(key)

	case ARROW_LEFT, ARROW_RIGHT, ARROW_UP, ARROW_DOWN:
		e.moveCursor(key)

	case withControlKey('l'):
		// Ignored

	default:
		if key < 128 && !isControl(byte(key)) {
			e.insertChar(byte(key))
		}
	}
}

func (e *Editor) handleNormalKey(m *normalMode, key int) {
	if len(m.pending) > 0 {
		// No multi-key commands are bound; only clearing is handled.
		if key == BACKSPACE {
			m.pending = m.pending[:len(m.pending)-1]
		}
		return
	}

	switch key {
	case 'i':
		e.mode = &insertMode{}

	case ':':
		e.mode = &commandMode{}
		e.SetStatusMessage("")

	case ESCAPE_KEY:
		// Already in NORMAL

	case ENTER_KEY:
		e.moveCursor(ARROW_DOWN)
		e.moveLineStart()

	case HOME_KEY, '0':
		e.moveLineStart()

	case END_KEY, '$':
		e.moveLineEnd()

	case BACKSPACE, withControlKey('h'):
		e.moveCursor(ARROW_LEFT)

	case PAGE_UP, PAGE_DOWN:
		e.movePage(key)

	case ARROW_LEFT, ARROW_RIGHT, ARROW_UP, ARROW_DOWN:
		e.moveCursor(key)

	case 'h':
		e.moveCursor(ARROW_LEFT)
	case 'j':
		e.moveCursor(ARROW_DOWN)
	case 'k':
		e.moveCursor(ARROW_UP)
	case 'l':
		e.moveCursor(ARROW_RIGHT)

	case 'G':
		for e.cy != e.buf.numRows() {
			e.moveCursor(ARROW_DOWN)
		}
	}
	// Everything else is ignored in NORMAL mode.
}

func (e *Editor) handleCommandKey(m *commandMode, key int) {
	switch key {
	case ENTER_KEY:
		e.mode = &normalMode{}
		e.executeCommand(string(m.buf))

	case ESCAPE_KEY:
		e.mode = &normalMode{}
		e.SetStatusMessage("")

	case BACKSPACE:
		if len(m.buf) > 0 {
			m.buf = m.buf[:len(m.buf)-1]
		} else {
			e.mode = &normalMode{}
			e.SetStatusMessage("")
		}

	default:
		if key < 128 && !isControl(byte(key)) {
			m.buf = append(m.buf, byte(key))
		}
	}
}

/*** command mini-language ***/

// executeCommand runs an accumulated ':' command.
func (e *Editor) executeCommand(cmd string) {
	switch cmd {
	case "w":
		e.Save()
	case "q":
		if e.buf.dirty {
			e.SetStatusMessage("File has unsaved changes. Use :q! to force quit")
			return
		}
		e.Quit()
	case "q!":
		e.Quit()
	default:
		e.SetStatusMessage("Unsupported command: %s", cmd)
	}
}
