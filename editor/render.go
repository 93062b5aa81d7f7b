package editor

import "fmt"

/*** append buffer ***/

// appendBuffer batches one refresh worth of terminal output into a single
// write, avoiding per-cell flicker.
type appendBuffer struct {
	b []byte
}

func (ab *appendBuffer) append(s string) {
	ab.b = append(ab.b, s...)
}

func (ab *appendBuffer) appendByte(c byte) {
	ab.b = append(ab.b, c)
}

func (ab *appendBuffer) appendf(format string, args ...any) {
	ab.b = fmt.Appendf(ab.b, format, args...)
}

/*** output ***/

// drawRows writes the visible slice of every buffer row, switching the
// foreground color only when the highlight class changes between cells.
func (e *Editor) drawRows(ab *appendBuffer) {
	for y := 0; y < e.screenRows; y++ {
		filerow := y + e.view.rowOffset
		if filerow >= e.buf.numRows() {
			if e.buf.numRows() == 0 && y == e.screenRows/3 {
				e.drawWelcome(ab)
			} else {
				ab.append("~")
			}
		} else {
			e.drawRow(ab, &e.buf.rows[filerow])
		}
		ab.append(CLEAR_LINE)
		ab.append("\r\n")
	}
}

func (e *Editor) drawRow(ab *appendBuffer, r *row) {
	start := e.view.colOffset
	length := len(r.rendered) - start
	if length < 0 {
		length = 0
	}
	if length > e.screenCols {
		length = e.screenCols
	}

	currentColor := -1
	for j := 0; j < length; j++ {
		c := r.rendered[start+j]
		h := r.hl[start+j]
		if h == HL_NORMAL {
			if currentColor != -1 {
				ab.append(COLOR_DEFAULT_FG)
				currentColor = -1
			}
			ab.appendByte(c)
		} else {
			color := syntaxToColor(h)
			if color != currentColor {
				currentColor = color
				ab.appendf(COLOR_FORMAT, color)
			}
			ab.appendByte(c)
		}
	}
	ab.append(COLOR_DEFAULT_FG)
}

func (e *Editor) drawWelcome(ab *appendBuffer) {
	welcome := "VIN editor -- version " + VIN_VERSION
	if len(welcome) > e.screenCols {
		welcome = welcome[:e.screenCols]
	}
	padding := (e.screenCols - len(welcome)) / 2
	if padding > 0 {
		ab.append("~")
		padding--
	}
	for i := 0; i < padding; i++ {
		ab.append(" ")
	}
	ab.append(welcome)
}

// drawStatusBar writes the inverted status line: truncated filename, line
// count, modified marker and mode on the left, cursor line on the right.
func (e *Editor) drawStatusBar(ab *appendBuffer) {
	ab.append(COLORS_INVERT)

	name := "[No Name]"
	if e.filename != "" {
		name = e.filename
		if len(name) > 20 {
			name = name[:20]
		}
	}
	dirtyFlag := ""
	if e.buf.dirty {
		dirtyFlag = "(modified)"
	}
	status := fmt.Sprintf("%s - %d lines %s [%s] ", name, e.buf.numRows(), dirtyFlag, e.mode.name())
	if len(status) > e.screenCols {
		status = status[:e.screenCols]
	}
	ab.append(status)

	lineNumber := fmt.Sprintf("%d", e.cy)
	for pad := e.screenCols - len(status) - len(lineNumber); pad > 0; pad-- {
		ab.append(" ")
	}
	if len(status)+len(lineNumber) <= e.screenCols {
		ab.append(lineNumber)
	}

	ab.append(COLORS_RESET)
	ab.append("\r\n")
}

// drawCommandBar writes the bottom line: the ':' prompt with the command
// accumulator while in COMMAND mode, the status message otherwise.
func (e *Editor) drawCommandBar(ab *appendBuffer) {
	ab.append(CLEAR_LINE)
	line := e.statusMsg
	if m, ok := e.mode.(*commandMode); ok {
		line = ":" + string(m.buf)
	}
	if len(line) > e.screenCols {
		line = line[:e.screenCols]
	}
	ab.append(line)
}

// RefreshScreen recomputes the viewport and repaints the whole screen in one
// terminal write.
func (e *Editor) RefreshScreen() {
	e.Scroll()

	var ab appendBuffer
	ab.append(CURSOR_HIDE)
	ab.append(CURSOR_HOME)

	e.drawRows(&ab)
	e.drawStatusBar(&ab)
	e.drawCommandBar(&ab)

	ab.appendf(CURSOR_POSITION_FORMAT, e.cy-e.view.rowOffset+1, e.rx-e.view.colOffset+1)
	ab.append(CURSOR_SHOW)

	e.out.Write(ab.b)
}
