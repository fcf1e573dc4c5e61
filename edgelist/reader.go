package edgelist

import (
	"fmt"
	"io"
)

// ReaderStream is a Stream over seekable edge-list text. Every Replay seeks
// back to offset 0 and parses the source again, so memory stays O(1) in the
// number of edges. The underlying content must not change between passes.
type ReaderStream struct {
	rs     io.ReadSeeker
	opts   Options
	passes int
	stats  Stats
}

// NewReaderStream wraps rs. Option violations surface on the first Replay.
func NewReaderStream(rs io.ReadSeeker, opts ...Option) *ReaderStream {
	return &ReaderStream{rs: rs, opts: resolve(opts)}
}

// Replay implements Stream.
func (s *ReaderStream) Replay(fn func(Edge) error) error {
	if s.opts.err != nil {
		return s.opts.err
	}
	if _, err := s.rs.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("edgelist: rewind: %w", err)
	}
	s.passes++
	st, err := scan(s.rs, &s.opts, s.passes > 1, fn)
	s.stats = st
	return err
}

// Stats reports the counters of the most recent pass.
func (s *ReaderStream) Stats() Stats { return s.stats }

// Passes reports how many times Replay has started a pass.
func (s *ReaderStream) Passes() int { return s.passes }

// Buffer parses r once and returns its edges in memory, for sources that
// cannot seek (pipes, network bodies).
func Buffer(r io.Reader, opts ...Option) (Edges, Stats, error) {
	o := resolve(opts)
	if o.err != nil {
		return nil, Stats{}, o.err
	}
	var es Edges
	st, err := scan(r, &o, false, func(e Edge) error {
		es = append(es, e)
		return nil
	})
	if err != nil {
		return nil, st, err
	}
	return es, st, nil
}
