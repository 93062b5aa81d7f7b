package editor

import (
	"slices"
	"testing"
)

func newBuffer(lines ...string) *Buffer {
	b := &Buffer{}
	for _, line := range lines {
		b.insertRow(b.numRows(), []byte(line))
	}
	b.dirty = false
	return b
}

func TestInsertRowDeleteRowRoundTrip(t *testing.T) {
	b := newBuffer("alpha", "beta", "gamma")
	before := rawRows(b)

	b.insertRow(1, []byte("inserted"))
	if got := rawRows(b); !slices.Equal(got, []string{"alpha", "inserted", "beta", "gamma"}) {
		t.Fatalf("after insertRow: %v", got)
	}

	b.deleteRow(1)
	if got := rawRows(b); !slices.Equal(got, before) {
		t.Errorf("insertRow+deleteRow changed the row sequence: %v, want %v", got, before)
	}
}

func TestInsertRowOutOfRangeIsNoop(t *testing.T) {
	b := newBuffer("only")
	b.insertRow(-1, []byte("x"))
	b.insertRow(5, []byte("x"))
	if b.numRows() != 1 || b.dirty {
		t.Errorf("out-of-range insertRow mutated the buffer: rows=%d dirty=%v", b.numRows(), b.dirty)
	}
}

func TestDeleteRowOutOfRangeIsNoop(t *testing.T) {
	b := newBuffer("only")
	b.deleteRow(-1)
	b.deleteRow(1)
	if b.numRows() != 1 || b.dirty {
		t.Errorf("out-of-range deleteRow mutated the buffer: rows=%d dirty=%v", b.numRows(), b.dirty)
	}
}

func TestInsertCharClampsColumn(t *testing.T) {
	b := newBuffer("ab")
	b.insertChar(0, 99, '!')
	if got := string(b.rows[0].raw); got != "ab!" {
		t.Errorf("insertChar clamped = %q, want %q", got, "ab!")
	}
	b.insertChar(0, 0, '>')
	if got := string(b.rows[0].raw); got != ">ab!" {
		t.Errorf("insertChar at 0 = %q, want %q", got, ">ab!")
	}
	if !b.dirty {
		t.Error("insertChar did not set dirty")
	}
}

func TestDeleteCharBeforeStartIsNoop(t *testing.T) {
	b := newBuffer("ab")
	b.deleteCharBefore(0, 0)
	b.deleteCharBefore(0, -1)
	if got := string(b.rows[0].raw); got != "ab" || b.dirty {
		t.Errorf("deleteCharBefore at start mutated row: %q dirty=%v", got, b.dirty)
	}

	b.deleteCharBefore(0, 2)
	if got := string(b.rows[0].raw); got != "a" {
		t.Errorf("deleteCharBefore(0,2) = %q, want %q", got, "a")
	}
}

func TestAppendText(t *testing.T) {
	b := newBuffer("foo")
	b.appendText(0, []byte("bar"))
	if got := string(b.rows[0].raw); got != "foobar" {
		t.Errorf("appendText = %q, want %q", got, "foobar")
	}
	if !b.dirty {
		t.Error("appendText did not set dirty")
	}
}

func TestSplitLineJoinWithPreviousRoundTrip(t *testing.T) {
	b := newBuffer("hello world")

	b.splitLine(0, 5)
	if got := rawRows(b); !slices.Equal(got, []string{"hello", " world"}) {
		t.Fatalf("after splitLine: %v", got)
	}

	joint := b.joinWithPrevious(1)
	if joint != 5 {
		t.Errorf("join point = %d, want 5", joint)
	}
	if got := rawRows(b); !slices.Equal(got, []string{"hello world"}) {
		t.Errorf("split+join did not restore the row: %v", got)
	}
}

func TestSplitLineAtEnds(t *testing.T) {
	b := newBuffer("abc")
	b.splitLine(0, 0)
	if got := rawRows(b); !slices.Equal(got, []string{"", "abc"}) {
		t.Fatalf("splitLine at 0: %v", got)
	}

	b = newBuffer("abc")
	b.splitLine(0, 3)
	if got := rawRows(b); !slices.Equal(got, []string{"abc", ""}) {
		t.Fatalf("splitLine at end: %v", got)
	}
}

func TestMutationsKeepDerivedDataInSync(t *testing.T) {
	b := &Buffer{syntax: &HLDB[0]}
	b.insertRow(0, []byte("int\tx;"))
	b.insertChar(0, 3, ' ')
	b.deleteCharBefore(0, 4)
	b.appendText(0, []byte(" // c"))
	for i := range b.rows {
		r := &b.rows[i]
		if len(r.rendered) != len(r.hl) {
			t.Fatalf("row %d: rendered length %d != highlight length %d", i, len(r.rendered), len(r.hl))
		}
		if string(r.rendered) != string(renderRow(r.raw)) {
			t.Fatalf("row %d: rendered out of sync with raw", i)
		}
	}
}

func TestDirtyClearedOnlyExplicitly(t *testing.T) {
	b := newBuffer("a")
	if b.dirty {
		t.Fatal("fresh buffer is dirty")
	}
	b.insertChar(0, 1, 'b')
	if !b.dirty {
		t.Fatal("mutation did not set dirty")
	}
}
