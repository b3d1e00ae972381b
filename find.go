// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/kmp

package kmp

// FindAll returns the start offset of every occurrence of pattern in text,
// in increasing order. Overlapping occurrences are all reported ("aa" in
// "aaa" yields 0 and 1). A text shorter than the pattern yields no matches.
// Returns ErrEmptyPattern if pattern is empty.
//
// The failure table built for the scan comes from an internal pool and is
// returned to it before FindAll returns; nothing references text or pattern
// afterwards.
func FindAll(text, pattern []byte) ([]int, error) {
	if len(pattern) == 0 {
		return nil, ErrEmptyPattern
	}

	scratch := acquireFailureScratch(len(pattern))
	defer releaseFailureScratch(scratch)

	buildFailureInto(pattern, scratch.table)

	return findAllCore(text, pattern, scratch.table), nil
}

// FindAllString is FindAll for string text and pattern.
func FindAllString(text, pattern string) ([]int, error) {
	return FindAll([]byte(text), []byte(pattern))
}

// findAllCore scans text with a prebuilt failure table. Same fallback/extend
// loop as Stream.Step, kept inline here so the batch path stays a single
// pure function over its inputs.
func findAllCore(text, pattern []byte, failure []int) []int {
	var matches []int

	i := -1
	m := len(pattern)

	for j := 0; j < len(text); j++ {
		for i > -1 && pattern[i+1] != text[j] {
			i = failure[i]
		}

		if pattern[i+1] == text[j] {
			i++
		}

		if i == m-1 {
			matches = append(matches, j-m+1)
			// fall back, not restart: overlapping occurrences count
			i = failure[i]
		}
	}

	return matches
}
