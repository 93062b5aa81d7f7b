package editor

// viewport is the top-left corner of the visible window, in buffer row and
// rendered column coordinates.
type viewport struct {
	rowOffset int
	colOffset int
}

// scroll clamps the offsets so the cursor stays inside the visible window.
// Pure clamp, no margins: recomputed from scratch every refresh.
func (v *viewport) scroll(cy, rx, screenRows, screenCols int) {
	if cy < v.rowOffset {
		v.rowOffset = cy
	}
	if cy >= v.rowOffset+screenRows {
		v.rowOffset = cy - screenRows + 1
	}
	if rx < v.colOffset {
		v.colOffset = rx
	}
	if rx >= v.colOffset+screenCols {
		v.colOffset = rx - screenCols + 1
	}
}

// Scroll recomputes the rendered cursor column and clamps the viewport to it.
func (e *Editor) Scroll() {
	e.rx = 0
	if e.cy < e.buf.numRows() {
		e.rx = cxToRx(e.buf.rows[e.cy].raw, e.cx)
	}
	e.view.scroll(e.cy, e.rx, e.screenRows, e.screenCols)
}
