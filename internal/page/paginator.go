package page

import (
	"errors"
	"unicode/utf8"
)

// ErrInvalidWidth rejects a pagination request whose column width cannot
// hold any text.
var ErrInvalidWidth = errors.New("column width must be at least 1")

// Result is the outcome of a single NextPage call. ConsumedChars is the
// total length of the returned lines, terminators included; nothing left
// in the buffer is counted. SyntheticBreaks is the number of returned
// lines whose terminator was inserted by the column-limit rule rather
// than present in the source.
type Result struct {
	ConsumedChars   int
	SyntheticBreaks int
	Lines           []string
}

// Paginator produces one screenful of display lines per call, wrapping
// overlong source lines at the column boundary and carrying leftover
// fragments across calls through its LineBuffer.
type Paginator struct {
	src *StreamSource
	buf *LineBuffer
}

// NewPaginator binds a paginator to its stream and pending-line buffer.
// The paginator is the only reader of both for the session's lifetime.
func NewPaginator(src *StreamSource, buf *LineBuffer) *Paginator {
	return &Paginator{src: src, buf: buf}
}

// NextPage returns at most rows display lines of at most cols columns.
// Completed fragments held over from the previous call are returned
// first; fresh characters are then read and wrapped. Lines completed
// after the viewport fills are pushed onto the buffer for the next call.
func (p *Paginator) NextPage(rows, cols int) (Result, error) {
	if cols < 1 {
		return Result{}, ErrInvalidWidth
	}
	if rows < 0 {
		rows = 0
	}

	var res Result
	var acc []rune

	for rows > 0 && !p.buf.IsEmpty() {
		frag := p.buf.PopFront()
		if fragmentComplete(frag.Text, cols) {
			p.place(&res, frag, &rows)
			continue
		}
		// Short unterminated remainder: seed the in-progress line and
		// let the read phase finish it.
		acc = []rune(frag.Text)
		break
	}

	if rows > 0 {
		// cols*rows is the most the remaining rows could possibly
		// display, so the read never outruns the viewport.
		chars, err := p.src.ReadUpTo(cols * rows)
		if err != nil {
			return Result{}, err
		}
		for _, ch := range chars {
			// A full line splits only once another character arrives;
			// the loop also clears oversized seeds left behind by a
			// shrunken viewport.
			for len(acc) >= cols {
				acc = p.splitFull(&res, acc, cols, &rows)
			}
			acc = append(acc, ch)
			if ch == '\n' || ch == '\r' {
				p.place(&res, Fragment{Text: string(acc)}, &rows)
				acc = acc[:0]
			}
		}
		// Leftover characters form a line with no terminator: either the
		// true end of the stream, or a line cut short by the read bound.
		// A full-width leftover is complete at the width boundary and is
		// not a synthetic break.
		for len(acc) > cols {
			acc = p.splitFull(&res, acc, cols, &rows)
		}
		if len(acc) > 0 {
			p.place(&res, Fragment{Text: string(acc)}, &rows)
		}
	}

	return res, nil
}

// splitFull removes one display line from the front of a full
// accumulator. The character that filled the width moves to the next
// line, so nothing is lost or duplicated across the boundary. A
// one-column viewport cannot hold content plus a carried character;
// there each character is its own line, complete at the boundary.
func (p *Paginator) splitFull(res *Result, acc []rune, cols int, rows *int) []rune {
	if cols == 1 {
		p.place(res, Fragment{Text: string(acc[:1])}, rows)
		return acc[1:]
	}
	line := string(acc[:cols-1]) + "\n"
	p.place(res, Fragment{Text: line, Synthetic: true}, rows)
	return acc[cols-1:]
}

// place routes a finished fragment to the result while rows remain, or
// onto the buffer once the viewport is full.
func (p *Paginator) place(res *Result, frag Fragment, rows *int) {
	if *rows > 0 {
		res.Lines = append(res.Lines, frag.Text)
		res.ConsumedChars += len(frag.Text)
		if frag.Synthetic {
			res.SyntheticBreaks++
		}
		*rows--
		return
	}
	p.buf.PushBack(frag)
}

// fragmentComplete reports whether a buffered fragment is already a full
// display line: terminated, or spanning exactly the column width.
func fragmentComplete(text string, cols int) bool {
	if text == "" {
		return false
	}
	last, _ := utf8.DecodeLastRuneInString(text)
	if last == '\n' || last == '\r' {
		return true
	}
	return utf8.RuneCountInString(text) == cols
}
