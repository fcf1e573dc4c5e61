package edgelist

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// maxLineBytes bounds a single input line; edge lines are a few dozen bytes.
const maxLineBytes = 1 << 20

type lineKind int

const (
	lineData lineKind = iota
	lineComment
	lineBlank
)

// parseLine classifies one line and, for data lines, decodes "u v".
func parseLine(line string, o *Options) (Edge, lineKind, error) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return Edge{}, lineBlank, nil
	}
	if strings.HasPrefix(trimmed, o.CommentPrefix) {
		return Edge{}, lineComment, nil
	}

	fields := strings.Fields(trimmed)
	if len(fields) < 2 {
		return Edge{}, lineData, fmt.Errorf("%w: want 2 fields, got %d", ErrMalformedLine, len(fields))
	}
	if o.Strictness == Strict && len(fields) > 2 {
		return Edge{}, lineData, fmt.Errorf("%w: want 2 fields, got %d", ErrMalformedLine, len(fields))
	}

	u, err := parseID(fields[0])
	if err != nil {
		return Edge{}, lineData, err
	}
	v, err := parseID(fields[1])
	if err != nil {
		return Edge{}, lineData, err
	}
	return Edge{U: u, V: v}, lineData, nil
}

func parseID(field string) (int32, error) {
	n, err := strconv.ParseInt(field, 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, fmt.Errorf("%w: %q", ErrIDOverflow, field)
		}
		return 0, fmt.Errorf("%w: %q is not an integer", ErrMalformedLine, field)
	}
	switch {
	case n < 0:
		return 0, fmt.Errorf("%w: %d", ErrNegativeID, n)
	case n > math.MaxInt32:
		return 0, fmt.Errorf("%w: %d", ErrIDOverflow, n)
	}
	return int32(n), nil
}

// scan runs one full parsing pass over r, calling fn per accepted edge.
// quiet suppresses malformed-line warnings on passes after the first.
func scan(r io.Reader, o *Options, quiet bool, fn func(Edge) error) (Stats, error) {
	var st Stats
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	for sc.Scan() {
		st.Lines++
		e, kind, err := parseLine(sc.Text(), o)
		switch kind {
		case lineBlank:
			st.Blank++
			continue
		case lineComment:
			st.Comments++
			continue
		}
		if err != nil {
			if o.Strictness == Strict {
				return st, fmt.Errorf("line %d: %w", st.Lines, err)
			}
			st.Malformed++
			if !quiet {
				o.Logger.Warn("skipping malformed edge line", "line", st.Lines, "err", err)
			}
			continue
		}
		st.Edges++
		if err := fn(e); err != nil {
			return st, err
		}
	}
	if err := sc.Err(); err != nil {
		return st, fmt.Errorf("edgelist: read line %d: %w", st.Lines+1, err)
	}
	return st, nil
}
