// Package edgelist supplies directed edges (u, v) to the CSR builder from a
// replayable source.
//
// What
//
//   - Stream is a capability contract: Replay walks the whole edge sequence
//     and may be called any number of times, yielding the identical sequence
//     on every call. The CSR builder replays its input three times.
//   - Edges is an in-memory Stream; ReaderStream re-parses a seekable text
//     source on every pass; Buffer turns a one-shot io.Reader into Edges.
//
// Text format
//
//	# comment line (first non-blank character starts the comment prefix)
//	0 1
//	1 2
//
// Every other non-blank line holds two whitespace-separated non-negative
// decimal ids "u v" denoting the directed edge u → v.
//
// Malformed lines
//
// The behaviour for lines that do not parse is a policy, not a fixed rule:
//
//   - Lenient (default) skips the line, counts it in Stats.Malformed and logs
//     a warning; extra trailing fields on a good line are ignored.
//   - Strict aborts the pass with an error wrapping ErrMalformedLine,
//     ErrNegativeID or ErrIDOverflow, annotated with the 1-based line number.
//
// Errors
//
//   - ErrMalformedLine    line is not "u v" (strict) or has too few fields.
//   - ErrNegativeID       u or v is negative.
//   - ErrIDOverflow       u or v does not fit in int32.
//   - ErrOptionViolation  an Option received a meaningless value.
package edgelist
