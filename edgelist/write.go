package edgelist

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// Write encodes s as edge-list text, one "u v" line per edge, preceded by
// the given header lines each prefixed with DefaultCommentPrefix and a space.
// The output parses back to the same edge sequence under either strictness.
func Write(w io.Writer, s Stream, header ...string) error {
	bw := bufio.NewWriter(w)
	for _, h := range header {
		if _, err := fmt.Fprintf(bw, "%s %s\n", DefaultCommentPrefix, h); err != nil {
			return err
		}
	}

	buf := make([]byte, 0, 24)
	err := s.Replay(func(e Edge) error {
		buf = strconv.AppendInt(buf[:0], int64(e.U), 10)
		buf = append(buf, ' ')
		buf = strconv.AppendInt(buf, int64(e.V), 10)
		buf = append(buf, '\n')
		_, err := bw.Write(buf)
		return err
	})
	if err != nil {
		return fmt.Errorf("edgelist: write: %w", err)
	}
	return bw.Flush()
}
