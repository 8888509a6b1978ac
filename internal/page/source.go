package page

import (
	"bufio"
	"errors"
	"fmt"
	"io"
)

// StreamSource performs bounded character reads over an open text stream.
// It never seeks and never rereads; once end of stream has been observed
// every further read returns no characters.
type StreamSource struct {
	reader *bufio.Reader
	eof    bool
}

// NewStreamSource wraps an already-open readable stream.
func NewStreamSource(r io.Reader) *StreamSource {
	return &StreamSource{reader: bufio.NewReader(r)}
}

// ReadUpTo returns up to max characters from the stream. A short result
// means the stream has no more data. Read failures are fatal to the
// session and are returned unwrapped of any retry semantics.
func (s *StreamSource) ReadUpTo(max int) ([]rune, error) {
	if s.eof || max <= 0 {
		return nil, nil
	}
	chars := make([]rune, 0, max)
	for len(chars) < max {
		ru, _, err := s.reader.ReadRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				s.eof = true
				return chars, nil
			}
			return nil, fmt.Errorf("read stream: %w", err)
		}
		chars = append(chars, ru)
	}
	return chars, nil
}

// Exhausted reports whether end of stream has been observed.
func (s *StreamSource) Exhausted() bool {
	return s.eof
}
