package editor

import "slices"

// Buffer is the ordered sequence of rows plus the dirty flag. Rows have no
// identity beyond their index. Every mutation goes through setRaw, so a
// row's rendered form and highlighting are re-derived before the mutation
// returns, and every mutation marks the buffer dirty.
type Buffer struct {
	rows   []row
	dirty  bool
	syntax *editorSyntax
}

func (b *Buffer) numRows() int {
	return len(b.rows)
}

// rehighlight re-derives every row, used when the syntax selection changes.
func (b *Buffer) rehighlight() {
	for i := range b.rows {
		b.rows[i].setRaw(b.rows[i].raw, b.syntax)
	}
}

// insertRow inserts a new row holding text at the given index. Out-of-range
// indices are a no-op.
func (b *Buffer) insertRow(at int, text []byte) {
	if at < 0 || at > len(b.rows) {
		return
	}
	b.rows = slices.Insert(b.rows, at, row{})
	b.rows[at].setRaw(slices.Clone(text), b.syntax)
	b.dirty = true
}

// deleteRow removes the row at the given index, no-op if out of range.
func (b *Buffer) deleteRow(at int) {
	if at < 0 || at >= len(b.rows) {
		return
	}
	b.rows = slices.Delete(b.rows, at, at+1)
	b.dirty = true
}

// insertChar inserts one byte into a row's raw text, clamping the column to
// the end of the row.
func (b *Buffer) insertChar(at, col int, c byte) {
	if at < 0 || at >= len(b.rows) {
		return
	}
	r := &b.rows[at]
	if col < 0 || col > len(r.raw) {
		col = len(r.raw)
	}
	r.setRaw(slices.Insert(r.raw, col, c), b.syntax)
	b.dirty = true
}

// deleteCharBefore removes the byte immediately before col, no-op at the
// start of the row.
func (b *Buffer) deleteCharBefore(at, col int) {
	if at < 0 || at >= len(b.rows) {
		return
	}
	r := &b.rows[at]
	if col <= 0 || col > len(r.raw) {
		return
	}
	r.setRaw(slices.Delete(r.raw, col-1, col), b.syntax)
	b.dirty = true
}

// appendText concatenates text onto a row, used when a backspace at column
// zero merges a line into the one above.
func (b *Buffer) appendText(at int, text []byte) {
	if at < 0 || at >= len(b.rows) {
		return
	}
	r := &b.rows[at]
	r.setRaw(append(r.raw, text...), b.syntax)
	b.dirty = true
}

// splitLine truncates the row at col and inserts the remainder as a new row
// immediately after it.
func (b *Buffer) splitLine(at, col int) {
	if at < 0 || at >= len(b.rows) {
		return
	}
	r := &b.rows[at]
	if col < 0 {
		col = 0
	}
	if col > len(r.raw) {
		col = len(r.raw)
	}
	rest := slices.Clone(r.raw[col:])
	r.setRaw(r.raw[:col], b.syntax)
	b.insertRow(at+1, rest)
	b.dirty = true
}

// joinWithPrevious appends the row's text onto the row above and deletes it,
// returning the join point (the former length of the row above) so the
// caller can place the cursor there.
func (b *Buffer) joinWithPrevious(at int) int {
	if at <= 0 || at >= len(b.rows) {
		return 0
	}
	joint := len(b.rows[at-1].raw)
	b.appendText(at-1, b.rows[at].raw)
	b.deleteRow(at)
	return joint
}
