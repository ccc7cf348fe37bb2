package itemsource

import "io"

// ReaderSource is a Source[byte] over an external random-access
// reader (an io.ReaderAt — e.g. an *os.File), grounded on the
// teacher's io.ReadSeeker-backed PdfParser (core/parser.go) but
// generalized to ReaderAt so repeated reads never need to re-seek a
// shared cursor, and to support Backward scanning, which the teacher's
// forward-only bufio.Reader cannot do.
//
// length is the known total size of the underlying data and bounds
// both directions: forward reads stop at length, backward reads never
// go below 0, per spec.md §4.3 ("End-of-stream is reached when the
// next requested byte would step outside [0, length)").
type ReaderSource struct {
	r         io.ReaderAt
	length    int64
	origin    int64
	cursor    int64
	direction Direction
}

// NewReaderSource creates a Source[byte] pulling from r, which holds
// length total bytes, starting at byte offset start and walking in
// direction dir.
func NewReaderSource(r io.ReaderAt, length, start int64, dir Direction) *ReaderSource {
	return &ReaderSource{r: r, length: length, origin: start, cursor: start, direction: dir}
}

// DummyItem returns the zero byte, per spec.md §4.3.
func (s *ReaderSource) DummyItem() byte {
	return 0
}

// NextItems returns up to requested bytes read from the underlying
// reader. Internal I/O failures (other than the clean io.EOF a
// ReaderAt may return for a short final read) are treated as
// exhaustion: the core does not have a side channel for propagating
// arbitrary read errors through Source, so a Source wrapping a reader
// that can fail for reasons other than EOF should be checked by the
// caller via its own error-returning accessor before driving a
// Provider from it.
func (s *ReaderSource) NextItems(requested int) []byte {
	if requested <= 0 {
		return nil
	}

	if s.direction == Forward {
		avail := s.length - s.cursor
		if avail <= 0 {
			return nil
		}
		n := int64(requested)
		if n > avail {
			n = avail
		}
		buf := make([]byte, n)
		read, err := s.r.ReadAt(buf, s.cursor)
		if read <= 0 {
			_ = err
			return nil
		}
		buf = buf[:read]
		s.cursor += int64(read)
		return buf
	}

	if s.cursor < 0 || s.cursor >= s.length {
		return nil
	}
	avail := s.cursor + 1
	n := int64(requested)
	if n > avail {
		n = avail
	}
	// The backing range is [cursor-n+1, cursor]; read it forward then
	// reverse it so the first byte delivered is the one at cursor.
	start := s.cursor - n + 1
	buf := make([]byte, n)
	read, err := s.r.ReadAt(buf, start)
	if read <= 0 {
		_ = err
		return nil
	}
	buf = buf[:read]
	reverse(buf)
	s.cursor -= int64(read)
	return buf
}

// CurrentIndex maps consumed to the logical byte offset, per spec.md
// §4.1: origin + consumed for Forward, origin - consumed for Backward.
func (s *ReaderSource) CurrentIndex(consumed int) int64 {
	if s.direction == Forward {
		return s.origin + int64(consumed)
	}
	return s.origin - int64(consumed)
}

func reverse(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}
