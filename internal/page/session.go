package page

import "io"

// PageView is what the UI needs to draw after one advance: the display
// lines, the completion percentage and whether the session has ended.
type PageView struct {
	Lines   []string
	Percent float64
	Done    bool
}

// Session owns all mutable pagination state for one run over one stream:
// the source, the pending-line buffer, the paginator and the progress
// tracker. Calls must be strictly sequential; a Session is not safe for
// concurrent use.
type Session struct {
	src     *StreamSource
	buf     *LineBuffer
	pager   *Paginator
	tracker *ProgressTracker
}

// NewSession starts a session over an open stream whose total size the
// caller obtained up front.
func NewSession(r io.Reader, size int) *Session {
	src := NewStreamSource(r)
	buf := NewLineBuffer()
	return &Session{
		src:     src,
		buf:     buf,
		pager:   NewPaginator(src, buf),
		tracker: NewProgressTracker(size),
	}
}

// Advance produces the next screenful for a rows-by-cols viewport.
func (s *Session) Advance(rows, cols int) (PageView, error) {
	res, err := s.pager.NextPage(rows, cols)
	if err != nil {
		return PageView{}, err
	}
	s.tracker.Observe(res)
	return PageView{
		Lines:   res.Lines,
		Percent: s.tracker.Percentage(),
		Done:    s.Exhausted(),
	}, nil
}

// Exhausted reports whether the buffer is empty and the stream has
// ended, which together mark the session complete.
func (s *Session) Exhausted() bool {
	return s.buf.IsEmpty() && s.src.Exhausted()
}

// Percent returns the current completion percentage.
func (s *Session) Percent() float64 {
	return s.tracker.Percentage()
}
