// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/kmp

package kmp

// BuildFailure computes the KMP failure table for pattern.
//
// The table uses the -1-offset convention: failure[0] is -1, and for k > 0
// failure[k] is the index of the last byte of the longest proper prefix of
// pattern[:k+1] that is also a suffix of it, or -1 if no such prefix exists
// (so a value v stands for an overlap of length v+1). failure[k] < k holds
// for every k. Returns ErrEmptyPattern if pattern is empty.
func BuildFailure(pattern []byte) ([]int, error) {
	if len(pattern) == 0 {
		return nil, ErrEmptyPattern
	}

	failure := make([]int, len(pattern))
	buildFailureInto(pattern, failure)

	return failure, nil
}

// buildFailureInto fills failure[:len(pattern)] for a non-empty pattern.
// Callers own validation and storage; the batch matcher hands in pooled
// scratch, NewStream hands in the table it will retain.
func buildFailureInto(pattern []byte, failure []int) {
	i := -1
	failure[0] = -1

	for j := 1; j < len(pattern); j++ {
		// Fall back through shorter candidate overlaps until the next byte
		// extends one; the fallback chain keeps the whole build linear.
		for i > -1 && pattern[i+1] != pattern[j] {
			i = failure[i]
		}

		if pattern[i+1] == pattern[j] {
			i++
		}

		failure[j] = i
	}
}
