// SPDX-License-Identifier: MIT
// Package: csrgraph/csr
//
// errors.go - sentinel errors for the csr package.
//
// Error policy:
//   • Only sentinel variables are exposed; branch with errors.Is.
//   • Context is attached at the failure site with %w wrapping.
//   • No function in this package returns a partially built Graph together
//     with an error; on failure the *Graph is always nil.

package csr

import "errors"

// ErrGraphNil indicates a nil *Graph was passed where a graph is required.
var ErrGraphNil = errors.New("csr: graph is nil")

// ErrStreamNil indicates Build was given a nil edge stream.
var ErrStreamNil = errors.New("csr: edge stream is nil")

// ErrCapacity indicates the graph does not fit the int32 CSR layout or the
// configured WithMaxNodes / WithMaxEdges limits. It is returned before any
// large array is allocated and stands in for out-of-memory during construction.
var ErrCapacity = errors.New("csr: graph exceeds capacity")

// ErrReplayMismatch indicates the edge stream yielded a different sequence on
// a later pass than on the sizing pass. Only mismatches that would corrupt
// the arrays are detected; identical replay remains the caller's precondition.
var ErrReplayMismatch = errors.New("csr: edge stream replay mismatch")

// ErrInvalidCSR indicates row_ptr / col_ind arrays that break a CSR invariant
// (bad lengths, row_ptr[0] != 0, decreasing offsets, neighbor out of range).
var ErrInvalidCSR = errors.New("csr: invalid CSR arrays")

// ErrSnapshotTruncated indicates a binary snapshot shorter than its header claims.
var ErrSnapshotTruncated = errors.New("csr: snapshot truncated")
