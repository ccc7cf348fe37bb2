package itemsource

// ByteSliceSource is an in-memory Source[byte] over an owned byte
// slice, grounded on the teacher's bytes.Reader-backed parsing
// (core/parser_test.go's makeReaderForText), generalized to support
// both scan directions per spec.md §4.3.
type ByteSliceSource struct {
	data      []byte
	origin    int64 // offset this source was constructed with
	cursor    int64 // next offset NextItems will read from
	direction Direction
}

// NewByteSliceSource creates a Source[byte] over data, starting at
// byte offset start and walking in direction dir. For Forward, bytes
// [start, len(data)) are available; for Backward, bytes
// [0, start] are available, delivered start, start-1, ...
func NewByteSliceSource(data []byte, start int64, dir Direction) *ByteSliceSource {
	return &ByteSliceSource{data: data, origin: start, cursor: start, direction: dir}
}

// DummyItem returns the zero byte, per spec.md §4.3.
func (s *ByteSliceSource) DummyItem() byte {
	return 0
}

// NextItems returns up to requested bytes, reading in the configured
// direction from the live cursor. Returns fewer than requested (or
// nil) only at end-of-stream.
func (s *ByteSliceSource) NextItems(requested int) []byte {
	if requested <= 0 {
		return nil
	}

	if s.direction == Forward {
		avail := int64(len(s.data)) - s.cursor
		if avail <= 0 {
			return nil
		}
		n := int64(requested)
		if n > avail {
			n = avail
		}
		out := make([]byte, n)
		copy(out, s.data[s.cursor:s.cursor+n])
		s.cursor += n
		return out
	}

	// Backward: the next byte is at s.cursor, then s.cursor-1, ...
	if s.cursor < 0 || s.cursor >= int64(len(s.data)) {
		return nil
	}
	avail := s.cursor + 1
	n := int64(requested)
	if n > avail {
		n = avail
	}
	out := make([]byte, n)
	for i := int64(0); i < n; i++ {
		out[i] = s.data[s.cursor-i]
	}
	s.cursor -= n
	return out
}

// CurrentIndex maps consumed to the logical byte offset the item at
// that consumption count came from: origin + consumed for Forward,
// origin - consumed for Backward, per spec.md §4.1.
func (s *ByteSliceSource) CurrentIndex(consumed int) int64 {
	if s.direction == Forward {
		return s.origin + int64(consumed)
	}
	return s.origin - int64(consumed)
}
