package editor

// row is one line of the edited file in three parallel representations: the
// raw bytes, the rendered bytes (tabs expanded) and one highlight class per
// rendered byte. setRaw is the only way to change the text, so render and hl
// can never be observed out of sync with raw.
type row struct {
	raw      []byte
	rendered []byte
	hl       []highlight
}

// setRaw replaces the row's text and re-derives the rendered form and its
// highlighting in the same step.
func (r *row) setRaw(raw []byte, syntax *editorSyntax) {
	r.raw = raw
	r.rendered = renderRow(raw)
	r.hl = highlightRow(r.rendered, syntax)
}

// renderRow expands each tab to spaces up to the next TAB_STOP boundary.
// Every other byte maps to exactly one display column.
func renderRow(raw []byte) []byte {
	rendered := make([]byte, 0, len(raw))
	for _, c := range raw {
		if c == '\t' {
			rendered = append(rendered, ' ')
			for len(rendered)%TAB_STOP != 0 {
				rendered = append(rendered, ' ')
			}
		} else {
			rendered = append(rendered, c)
		}
	}
	return rendered
}

// cxToRx converts a cursor position in raw bytes to the rendered column,
// applying the same tab expansion rule as renderRow. The two must agree or
// the drawn cursor drifts from the insertion point.
func cxToRx(raw []byte, cx int) int {
	rx := 0
	for _, c := range raw[:cx] {
		if c == '\t' {
			rx += TAB_STOP - rx%TAB_STOP
		} else {
			rx++
		}
	}
	return rx
}
