package page

// Fragment is a piece of text produced by pagination but not yet handed
// to the caller: either a completed line that overflowed the viewport or
// the dangling remainder of a line still in progress.
type Fragment struct {
	Text      string
	Synthetic bool
}

// LineBuffer is a FIFO queue of pending fragments. Every fragment except
// possibly the last is complete: it ends in a terminator or spans the
// full column width.
type LineBuffer struct {
	fragments []Fragment
}

// NewLineBuffer returns an empty buffer.
func NewLineBuffer() *LineBuffer {
	return &LineBuffer{}
}

// PushBack appends a fragment to the end of the queue.
func (b *LineBuffer) PushBack(frag Fragment) {
	b.fragments = append(b.fragments, frag)
}

// PopFront removes and returns the oldest fragment. It must not be
// called on an empty buffer.
func (b *LineBuffer) PopFront() Fragment {
	frag := b.fragments[0]
	b.fragments = b.fragments[1:]
	return frag
}

// IsEmpty reports whether the buffer holds no fragments.
func (b *LineBuffer) IsEmpty() bool {
	return len(b.fragments) == 0
}

// Len returns the number of pending fragments.
func (b *LineBuffer) Len() int {
	return len(b.fragments)
}
