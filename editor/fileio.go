package editor

import (
	"bufio"
	"fmt"
	"os"
)

// Open reads a file into the buffer, one row per line with line endings
// stripped, and selects syntax highlighting from the filename. The loaded
// buffer starts clean.
func (e *Editor) Open(filename string) error {
	file, err := os.Open(filename)
	if err != nil {
		return fmt.Errorf("could not open file '%s': %w", filename, err)
	}
	defer file.Close()

	e.filename = filename
	e.buf = Buffer{syntax: selectSyntax(filename)}
	e.cx, e.cy, e.rx = 0, 0, 0
	e.view = viewport{}

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()
		for len(line) > 0 && (line[len(line)-1] == '\n' || line[len(line)-1] == '\r') {
			line = line[:len(line)-1]
		}
		e.buf.insertRow(e.buf.numRows(), []byte(line))
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading file '%s': %w", filename, err)
	}

	e.buf.dirty = false
	return nil
}

// rowsToBytes serializes the buffer, each row followed by a single newline.
func (b *Buffer) rowsToBytes() []byte {
	total := 0
	for i := range b.rows {
		total += len(b.rows[i].raw) + 1
	}
	out := make([]byte, 0, total)
	for i := range b.rows {
		out = append(out, b.rows[i].raw...)
		out = append(out, '\n')
	}
	return out
}

// Save writes the buffer back to its file, truncating first. Failures are
// reported on the status bar and leave the buffer, including the dirty
// flag, untouched. Success reports the byte count and marks the buffer
// clean.
func (e *Editor) Save() {
	if e.filename == "" {
		e.SetStatusMessage("No file name")
		return
	}

	buf := e.buf.rowsToBytes()

	file, err := os.OpenFile(e.filename, os.O_RDWR|os.O_CREATE, 0644)
	if err != nil {
		e.SetStatusMessage("Can't save! I/O error: %v", err)
		return
	}
	defer file.Close()

	if err := file.Truncate(int64(len(buf))); err != nil {
		e.SetStatusMessage("Can't save! I/O error: %v", err)
		return
	}

	n, err := file.Write(buf)
	if err != nil {
		e.SetStatusMessage("Can't save! I/O error: %v", err)
		return
	}
	if n != len(buf) {
		e.SetStatusMessage("Can't save! Partial write: %d/%d bytes", n, len(buf))
		return
	}

	e.SetStatusMessage("%d bytes written to disk", len(buf))
	e.buf.dirty = false
}
