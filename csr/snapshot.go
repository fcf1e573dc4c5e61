// SPDX-License-Identifier: MIT
// Package: csrgraph/csr
//
// snapshot.go - the binary CSR interchange format.
//
// Layout (native byte order, every word int32):
//
//	num_nodes
//	num_edges
//	row_ptr[num_nodes + 1]
//	col_ind[num_edges]
//
// The format carries no magic number or version; a file is only meaningful on
// a machine with the writer's byte order. Bytes after col_ind are ignored.

package csr

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
)

// byteOrder is the snapshot byte order.
var byteOrder = binary.NativeEndian

const wordSize = 4

// SnapshotSize returns the encoded size in bytes of a graph with n nodes and m edges.
func SnapshotSize(n, m int) int64 {
	return wordSize * (2 + int64(n) + 1 + int64(m))
}

// WriteSnapshot encodes g to w.
func WriteSnapshot(w io.Writer, g *Graph) error {
	if g == nil {
		return ErrGraphNil
	}
	header := [2]int32{int32(g.NumNodes()), int32(g.NumEdges())}
	if err := binary.Write(w, byteOrder, header[:]); err != nil {
		return fmt.Errorf("csr: write header: %w", err)
	}
	if err := binary.Write(w, byteOrder, g.rowPtr); err != nil {
		return fmt.Errorf("csr: write row_ptr: %w", err)
	}
	if err := binary.Write(w, byteOrder, g.colInd); err != nil {
		return fmt.Errorf("csr: write col_ind: %w", err)
	}
	return nil
}

// ReadSnapshot decodes a graph from r and validates it.
//
// ReadSnapshot trusts the header counts when allocating; use LoadFile for
// files, which checks the counts against the file size first.
func ReadSnapshot(r io.Reader) (*Graph, error) {
	n, m, err := readHeader(r)
	if err != nil {
		return nil, err
	}
	return readBody(r, n, m)
}

func readHeader(r io.Reader) (n, m int, err error) {
	var header [2]int32
	if err := binary.Read(r, byteOrder, header[:]); err != nil {
		return 0, 0, truncated("header", err)
	}
	if header[0] < 0 || header[1] < 0 {
		return 0, 0, fmt.Errorf("%w: negative header counts (%d nodes, %d edges)",
			ErrInvalidCSR, header[0], header[1])
	}
	return int(header[0]), int(header[1]), nil
}

func readBody(r io.Reader, n, m int) (*Graph, error) {
	rowPtr := make([]int32, n+1)
	if err := binary.Read(r, byteOrder, rowPtr); err != nil {
		return nil, truncated("row_ptr", err)
	}
	colInd := make([]int32, m)
	if err := binary.Read(r, byteOrder, colInd); err != nil {
		return nil, truncated("col_ind", err)
	}
	return New(rowPtr, colInd)
}

func truncated(section string, err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("%w: reading %s", ErrSnapshotTruncated, section)
	}
	return fmt.Errorf("csr: read %s: %w", section, err)
}

// LoadFile reads a snapshot from path. The header is checked against the
// file size before the arrays are allocated.
func LoadFile(path string) (*Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("csr: open %s: %w", path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("csr: stat %s: %w", path, err)
	}

	br := bufio.NewReader(f)
	n, m, err := readHeader(br)
	if err != nil {
		return nil, fmt.Errorf("csr: %s: %w", path, err)
	}
	if want := SnapshotSize(n, m); info.Size() < want {
		return nil, fmt.Errorf("csr: %s: %w: header needs %d bytes, file has %d",
			path, ErrSnapshotTruncated, want, info.Size())
	}

	g, err := readBody(br, n, m)
	if err != nil {
		return nil, fmt.Errorf("csr: %s: %w", path, err)
	}
	return g, nil
}

// SaveFile writes g to path, creating or truncating it.
func SaveFile(path string, g *Graph) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("csr: create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("csr: close %s: %w", path, cerr)
		}
	}()

	bw := bufio.NewWriter(f)
	if err := WriteSnapshot(bw, g); err != nil {
		return err
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("csr: flush %s: %w", path, err)
	}
	return nil
}
