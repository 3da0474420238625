package jstream

import "fmt"

// A LineCol describes the line number and column offset of a location in
// source text.
type LineCol struct {
	Line   int // line number, 1-based
	Column int // byte offset of column in line, 0-based
}

func (lc LineCol) String() string { return fmt.Sprintf("%d:%d", lc.Line, lc.Column) }

// position tracks the location of the next input byte across chunks.
type position struct {
	off       int // byte offset in the cumulative input, 0-based
	line, col int // 0-based
}

// lineCol returns the 1-based line and 0-based column of the next byte.
func (p position) lineCol() LineCol { return LineCol{Line: p.line + 1, Column: p.col} }

// advance records that ch has been consumed.
func (p *position) advance(ch byte) {
	p.off++
	if ch == '\n' {
		p.line++
		p.col = 0
	} else {
		p.col++
	}
}
