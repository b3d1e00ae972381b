// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/kmp

package kmp

import (
	"strconv"
	"unsafe"

	"github.com/cespare/xxhash/v2"
)

// Stream is the resumable state of a KMP search over text supplied one byte
// (or one chunk) at a time. It owns a private copy of the pattern and its
// failure table, so the caller's pattern buffer may be reused or freed after
// NewStream.
//
// Fed the same text in order, a Stream reports exactly the positions FindAll
// returns for that text. A Stream must not be advanced by more than one
// goroutine at a time; independent Streams are fully isolated and may run
// concurrently.
type Stream struct {
	pattern []byte
	failure []int
	cursor  int // index of the last pattern byte matched, -1 if none
	fprint  uint64
}

// NewStream builds the search state for pattern: copies the pattern,
// computes its failure table and sets the cursor to "nothing matched".
// Returns ErrEmptyPattern if pattern is empty.
func NewStream(pattern []byte) (*Stream, error) {
	if len(pattern) == 0 {
		return nil, ErrEmptyPattern
	}

	s := &Stream{
		pattern: append([]byte(nil), pattern...),
		failure: make([]int, len(pattern)),
		cursor:  -1,
		fprint:  xxhash.Sum64(pattern),
	}
	buildFailureInto(s.pattern, s.failure)

	return s, nil
}

// Step consumes the next text byte. textIndex is the position of sym within
// the logical text; the Stream keeps no position of its own, so callers
// count however they like. When sym completes an occurrence, Step reports
// its start offset textIndex-len(pattern)+1 and falls back through the
// failure table so overlapping occurrences are still found.
func (s *Stream) Step(sym byte, textIndex int) (pos int, matched bool) {
	i := s.cursor

	for i > -1 && s.pattern[i+1] != sym {
		i = s.failure[i]
	}

	if s.pattern[i+1] == sym {
		i++
	}

	if i == len(s.pattern)-1 {
		pos, matched = textIndex-len(s.pattern)+1, true
		i = s.failure[i]
	}

	s.cursor = i

	return pos, matched
}

// Feed steps the Stream over a whole chunk whose first byte sits at absolute
// text index baseIndex, returning the start offsets of every occurrence
// completed inside the chunk. A partial match straddling two chunks is
// carried in the cursor, so consecutive chunks need no overlap region.
func (s *Stream) Feed(chunk []byte, baseIndex int) []int {
	var matches []int

	for k, b := range chunk {
		if pos, ok := s.Step(b, baseIndex+k); ok {
			matches = append(matches, pos)
		}
	}

	return matches
}

// Reset rewinds the cursor so the Stream can scan a new text with the same
// pattern without rebuilding the failure table.
func (s *Stream) Reset() {
	s.cursor = -1
}

// Footprint reports the memory retained by the Stream: pattern copy, failure
// table and fixed bookkeeping. Informational only; the exact count varies
// with platform word size.
func (s *Stream) Footprint() int {
	return len(s.pattern) + len(s.failure)*(strconv.IntSize/8) + int(unsafe.Sizeof(*s))
}

// Fingerprint returns the xxhash64 of the pattern, fixed at construction.
// Lets hosts managing many live Streams tell them apart in diagnostics
// without retaining the patterns themselves.
func (s *Stream) Fingerprint() uint64 {
	return s.fprint
}

// Release drops the pattern copy and failure table. The Stream must not be
// stepped afterwards; doing so is a caller bug and panics. Release is
// idempotent.
func (s *Stream) Release() {
	s.pattern = nil
	s.failure = nil
	s.cursor = -1
}
