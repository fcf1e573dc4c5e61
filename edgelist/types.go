package edgelist

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
)

// Sentinel errors for edge-list parsing.
var (
	// ErrMalformedLine is returned for a data line that is not "u v".
	ErrMalformedLine = errors.New("edgelist: malformed edge line")

	// ErrNegativeID is returned when a node id is below zero.
	ErrNegativeID = errors.New("edgelist: negative node id")

	// ErrIDOverflow is returned when a node id does not fit in int32.
	ErrIDOverflow = errors.New("edgelist: node id overflows int32")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("edgelist: invalid option supplied")
)

// DefaultCommentPrefix marks comment lines in SNAP-style edge lists.
const DefaultCommentPrefix = "#"

// Edge is a directed edge U → V.
type Edge struct {
	U, V int32
}

// Stream supplies edges in a fixed order.
//
// Replay calls fn once per edge, in source order. Implementations MUST yield
// the identical sequence on every call; consumers such as csr.Build rely on
// this to size, count and fill their arrays in separate passes and do not
// re-verify it. An error returned by fn stops the pass and is returned as is.
type Stream interface {
	Replay(fn func(Edge) error) error
}

// Edges is an in-memory Stream.
type Edges []Edge

// Replay implements Stream.
func (es Edges) Replay(fn func(Edge) error) error {
	for _, e := range es {
		if err := fn(e); err != nil {
			return err
		}
	}
	return nil
}

// Stats counts what one parsing pass saw.
type Stats struct {
	Lines     int // physical lines read
	Edges     int // data lines accepted as edges
	Comments  int
	Blank     int
	Malformed int // lenient mode only; strict mode stops at the first one
}

// Strictness selects how malformed data lines are handled.
type Strictness int

const (
	// Lenient skips malformed lines and counts them.
	Lenient Strictness = iota
	// Strict fails the pass on the first malformed line.
	Strict
)

// String returns the config spelling of s.
func (s Strictness) String() string {
	switch s {
	case Lenient:
		return "lenient"
	case Strict:
		return "strict"
	default:
		return fmt.Sprintf("Strictness(%d)", int(s))
	}
}

// ParseStrictness maps "lenient" / "strict" (case-insensitive) to a Strictness.
// The empty string selects Lenient.
func ParseStrictness(s string) (Strictness, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "lenient":
		return Lenient, nil
	case "strict":
		return Strict, nil
	default:
		return Lenient, fmt.Errorf("%w: unknown strictness %q", ErrOptionViolation, s)
	}
}

// Option configures parsing via functional arguments.
// Invalid values are recorded and surfaced as ErrOptionViolation on use.
type Option func(*Options)

// Options holds the parsing policy.
type Options struct {
	// Strictness selects the malformed-line policy.
	Strictness Strictness

	// CommentPrefix marks comment lines; must be non-empty.
	CommentPrefix string

	// Logger receives one warning per skipped malformed line (first pass only).
	Logger *slog.Logger

	err error
}

// DefaultOptions returns lenient parsing with the "#" comment prefix and a
// discarding logger.
func DefaultOptions() Options {
	return Options{
		Strictness:    Lenient,
		CommentPrefix: DefaultCommentPrefix,
		Logger:        slog.New(slog.DiscardHandler),
	}
}

// WithStrictness sets the malformed-line policy.
func WithStrictness(s Strictness) Option {
	return func(o *Options) {
		switch s {
		case Lenient, Strict:
			o.Strictness = s
		default:
			o.err = fmt.Errorf("%w: unknown strictness %d", ErrOptionViolation, int(s))
		}
	}
}

// WithCommentPrefix overrides the comment marker.
func WithCommentPrefix(prefix string) Option {
	return func(o *Options) {
		if strings.TrimSpace(prefix) == "" {
			o.err = fmt.Errorf("%w: comment prefix cannot be blank", ErrOptionViolation)
			return
		}
		o.CommentPrefix = prefix
	}
}

// WithLogger sets the logger for malformed-line warnings. nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

func resolve(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
