package editor

import "testing"

func TestRenderRowWithoutTabs(t *testing.T) {
	inputs := []string{"", "hello", "a b c", "int x = 1;"}
	for _, input := range inputs {
		rendered := renderRow([]byte(input))
		if string(rendered) != input {
			t.Errorf("renderRow(%q) = %q, want unchanged", input, rendered)
		}
		for k := 0; k <= len(input); k++ {
			if rx := cxToRx([]byte(input), k); rx != k {
				t.Errorf("cxToRx(%q, %d) = %d, want %d", input, k, rx, k)
			}
		}
	}
}

func TestRenderRowTabExpansion(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"\t", "    "},
		{"\ta", "    a"},
		{"a\tb", "a   b"},
		{"ab\tc", "ab  c"},
		{"abc\td", "abc d"},
		{"abcd\te", "abcd    e"},
		{"\t\t", "        "},
	}
	for _, tt := range tests {
		rendered := renderRow([]byte(tt.raw))
		if string(rendered) != tt.want {
			t.Errorf("renderRow(%q) = %q, want %q", tt.raw, rendered, tt.want)
		}
		if len(rendered) < len(tt.raw) {
			t.Errorf("renderRow(%q) shrank: %d < %d", tt.raw, len(rendered), len(tt.raw))
		}
	}
}

// Every tab must land the next column on a multiple of the tab stop.
func TestRenderRowTabStopAlignment(t *testing.T) {
	raw := []byte("x\tyy\tzzz\t.")
	col := 0
	for _, c := range raw {
		if c == '\t' {
			col += TAB_STOP - col%TAB_STOP
			if col%TAB_STOP != 0 {
				t.Fatalf("tab landed on column %d, not a multiple of %d", col, TAB_STOP)
			}
		} else {
			col++
		}
	}
	if len(renderRow(raw)) != col {
		t.Errorf("rendered length %d, want %d", len(renderRow(raw)), col)
	}
}

func TestCxToRxMatchesRenderRow(t *testing.T) {
	raw := []byte("a\tbc\td")
	for cx := 0; cx <= len(raw); cx++ {
		want := len(renderRow(raw[:cx]))
		if rx := cxToRx(raw, cx); rx != want {
			t.Errorf("cxToRx(%q, %d) = %d, want %d", raw, cx, rx, want)
		}
	}
}

func TestSetRawKeepsDerivedDataInSync(t *testing.T) {
	var r row
	for _, text := range []string{"", "plain", "a\tb", "\t\tx"} {
		r.setRaw([]byte(text), &HLDB[0])
		if len(r.rendered) != len(r.hl) {
			t.Errorf("setRaw(%q): rendered length %d != highlight length %d",
				text, len(r.rendered), len(r.hl))
		}
	}
}
