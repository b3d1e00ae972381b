// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/kmp

package kmp

import "io"

// FindAllFromReader scans r for pattern and returns the start offsets of
// every occurrence, counting from the first byte read. The text is never
// accumulated: bytes pass through a fixed buffer into a streaming state, so
// memory use stays O(pattern + BufferSize) however long the input is.
//
// opts may be nil (DefaultScanOptions). If opts.MaxInputSize > 0 and r
// yields more bytes, the matches completed within the first MaxInputSize
// bytes are returned together with ErrInputTooLarge. A read error other than
// io.EOF is returned alongside the matches found so far.
// Returns ErrEmptyPattern if pattern is empty.
func FindAllFromReader(r io.Reader, pattern []byte, opts *ScanOptions) ([]int, error) {
	if opts == nil {
		opts = DefaultScanOptions()
	}

	bufSize := opts.BufferSize
	if bufSize <= 0 {
		bufSize = defaultScanBufferSize
	}

	stream, err := NewStream(pattern)
	if err != nil {
		return nil, err
	}
	defer stream.Release()

	var matches []int

	buf := make([]byte, bufSize)
	consumed := 0

	for {
		n, readErr := r.Read(buf)
		if n > 0 {
			chunk := buf[:n]
			if opts.MaxInputSize > 0 && consumed+n > opts.MaxInputSize {
				chunk = chunk[:opts.MaxInputSize-consumed]
				matches = append(matches, stream.Feed(chunk, consumed)...)

				return matches, ErrInputTooLarge
			}

			matches = append(matches, stream.Feed(chunk, consumed)...)
			consumed += n
		}

		if readErr == io.EOF {
			return matches, nil
		}

		if readErr != nil {
			return matches, readErr
		}
	}
}
