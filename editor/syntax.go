package editor

import (
	"bytes"
	"strings"
)

// Lexical highlighting for one row at a time. The scanner carries no state
// across rows, so constructs spanning lines (block comments, multi-line
// strings) are highlighted per-row only. That limitation is part of the
// editor's observable behavior and is kept on purpose.

// highlight classifies one rendered byte. Pure classification; the mapping
// to a terminal color lives in syntaxToColor.
type highlight byte

const (
	HL_NORMAL highlight = iota
	HL_KEYWORD1
	HL_KEYWORD2
	HL_COMMENT
	HL_STRING
	HL_NUMBER
)

// Syntax highlighting flags
const (
	HL_HIGHLIGHT_NUMBERS = 1 << 0
	HL_HIGHLIGHT_STRINGS = 1 << 1
)

// keyword is a keyword together with its highlight class.
type keyword struct {
	Text string
	Kind highlight
}

type editorSyntax struct {
	filetype      string
	filematch     []string
	keywords      []keyword
	commentPrefix string
	flags         int
}

func keywords(kind highlight, words ...string) []keyword {
	kws := make([]keyword, len(words))
	for i, w := range words {
		kws[i] = keyword{Text: w, Kind: kind}
	}
	return kws
}

// HLDB is the table of supported filetypes, matched in order.
var HLDB = []editorSyntax{
	{
		filetype:  "c",
		filematch: []string{".c", ".h", ".cpp"},
		keywords: append(
			keywords(HL_KEYWORD1,
				"switch", "if", "while", "for", "break", "continue", "return",
				"else", "struct", "union", "typedef", "static", "enum", "class",
				"case"),
			keywords(HL_KEYWORD2,
				"int", "long", "double", "float", "char", "unsigned", "signed",
				"void")...),
		commentPrefix: "//",
		flags:         HL_HIGHLIGHT_NUMBERS | HL_HIGHLIGHT_STRINGS,
	},
	{
		filetype:  "go",
		filematch: []string{".go"},
		keywords: append(
			keywords(HL_KEYWORD1,
				"break", "case", "chan", "const", "continue", "default",
				"defer", "else", "fallthrough", "for", "go", "goto", "if",
				"import", "map", "package", "range", "return", "select",
				"struct", "switch", "type", "var"),
			keywords(HL_KEYWORD2, "interface", "func")...),
		commentPrefix: "//",
		flags:         HL_HIGHLIGHT_NUMBERS | HL_HIGHLIGHT_STRINGS,
	},
}

// Check if the byte is a separator (whitespace, null, or punctuation)
func isSeparator(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\v', '\f', 0:
		return true
	}
	return strings.IndexByte(",.()+-/*=~%<>[];", c) != -1
}

// Check if the byte is a digit character
func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// highlightRow assigns a highlight class to every rendered byte in a single
// left-to-right pass. A nil syntax leaves the whole row HL_NORMAL.
func highlightRow(rendered []byte, syntax *editorSyntax) []highlight {
	hl := make([]highlight, len(rendered))
	if syntax == nil {
		return hl
	}

	scs := []byte(syntax.commentPrefix)

	prevSep := true
	var inString byte

	for i := 0; i < len(rendered); {
		c := rendered[i]
		prevHl := HL_NORMAL
		if i > 0 {
			prevHl = hl[i-1]
		}

		if len(scs) > 0 && inString == 0 && bytes.HasPrefix(rendered[i:], scs) {
			for j := i; j < len(rendered); j++ {
				hl[j] = HL_COMMENT
			}
			break
		}

		if syntax.flags&HL_HIGHLIGHT_STRINGS != 0 {
			if inString != 0 {
				hl[i] = HL_STRING
				if c == '\\' && i+1 < len(rendered) {
					hl[i+1] = HL_STRING
					i += 2
					continue
				}
				if c == inString {
					inString = 0
				}
				i++
				prevSep = true
				continue
			}
			if c == '"' || c == '\'' {
				inString = c
				hl[i] = HL_STRING
				i++
				continue
			}
		}

		if syntax.flags&HL_HIGHLIGHT_NUMBERS != 0 {
			if (isDigit(c) && (prevSep || prevHl == HL_NUMBER)) ||
				(c == '.' && prevHl == HL_NUMBER) {
				hl[i] = HL_NUMBER
				i++
				prevSep = false
				continue
			}
		}

		if prevSep {
			if klen := matchKeyword(rendered, i, syntax.keywords, hl); klen > 0 {
				i += klen
			}
			prevSep = false
			continue
		}

		prevSep = isSeparator(c)
		i++
	}

	return hl
}

// matchKeyword tries each configured keyword at position i. A match must be
// followed by a separator (end of row counts, as a NUL would). It fills in
// the matched span and reports the keyword length, or 0 on no match.
func matchKeyword(rendered []byte, i int, keywords []keyword, hl []highlight) int {
	for _, kw := range keywords {
		klen := len(kw.Text)
		if i+klen > len(rendered) {
			continue
		}
		if string(rendered[i:i+klen]) != kw.Text {
			continue
		}
		if i+klen < len(rendered) && !isSeparator(rendered[i+klen]) {
			continue
		}
		for k := 0; k < klen; k++ {
			hl[i+k] = kw.Kind
		}
		return klen
	}
	return 0
}

// syntaxToColor maps a highlight class to an ANSI foreground color code.
func syntaxToColor(h highlight) int {
	switch h {
	case HL_COMMENT:
		return 90
	case HL_KEYWORD1:
		return 94
	case HL_KEYWORD2:
		return 91
	case HL_STRING:
		return 36
	case HL_NUMBER:
		return 36
	default:
		return 37
	}
}

// selectSyntax picks the syntax definition for a filename, first filematch
// hit wins. Patterns starting with a dot compare against the extension,
// anything else matches as a substring. No hit means no highlighting.
func selectSyntax(filename string) *editorSyntax {
	if filename == "" {
		return nil
	}

	var ext string
	if lastDot := strings.LastIndex(filename, "."); lastDot != -1 {
		ext = filename[lastDot:]
	}

	for j := range HLDB {
		s := &HLDB[j]
		for _, pattern := range s.filematch {
			isExt := pattern[0] == '.'
			if (isExt && ext != "" && ext == pattern) ||
				(!isExt && strings.Contains(filename, pattern)) {
				return s
			}
		}
	}
	return nil
}
