package editor

import (
	"io"
)

// newTestEditor builds an Editor detached from the real terminal: output is
// discarded and the screen has a fixed size.
func newTestEditor() *Editor {
	return &Editor{
		mode:       &normalMode{},
		terminal:   &Terminal{},
		screenRows: 24,
		screenCols: 80,
		out:        io.Discard,
	}
}

// feedKeys replaces the editor's byte source with a canned input sequence.
// Once the sequence is exhausted, reads behave like timeouts.
func feedKeys(e *Editor, input string) {
	i := 0
	e.readByte = func() (byte, bool, error) {
		if i >= len(input) {
			return 0, false, nil
		}
		c := input[i]
		i++
		return c, true, nil
	}
}

// loadRows fills the buffer directly, leaving it clean, the way Open does.
func loadRows(e *Editor, lines ...string) {
	e.buf = Buffer{}
	for _, line := range lines {
		e.buf.insertRow(e.buf.numRows(), []byte(line))
	}
	e.buf.dirty = false
}

func rawRows(b *Buffer) []string {
	out := make([]string, len(b.rows))
	for i := range b.rows {
		out[i] = string(b.rows[i].raw)
	}
	return out
}
