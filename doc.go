// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/kmp

/*
Package kmp implements exact substring search with the Knuth-Morris-Pratt
algorithm, in batch and streaming form.

Matching is exact byte equality over the raw bytes; overlapping occurrences
are all reported. The precomputed failure table guarantees that no text byte
is ever examined twice, so every entry point runs in O(text+pattern) time.
The empty pattern is rejected with ErrEmptyPattern everywhere.

# Batch

FindAll returns the start offset of every occurrence at once:

	positions, err := kmp.FindAll(text, []byte("needle"))
	positions, err := kmp.FindAllString("banana", "a") // [1 3 5]

# Streaming

A Stream consumes text one byte (or one chunk) at a time and reports matches
as they complete, without re-reading earlier bytes or holding the text. The
caller supplies the absolute text index alongside each byte; the Stream keeps
no position of its own:

	s, err := kmp.NewStream([]byte("abab"))
	defer s.Release()
	for j, b := range text {
		if pos, ok := s.Step(b, j); ok {
			// occurrence starts at pos
		}
	}

Feed does the same for a whole chunk; a partial match straddling two chunks
is carried in the stream state, so chunks need no overlap. Fed the same text
in order, a Stream reports exactly what FindAll returns.

# Readers

FindAllFromReader scans an io.Reader through a fixed buffer without ever
holding the full text (options may be nil, default 64 KiB buffer):

	positions, err := kmp.FindAllFromReader(r, pattern, nil)
	positions, err := kmp.FindAllFromReader(r, pattern, &kmp.ScanOptions{MaxInputSize: 1 << 20})
*/
package kmp
