// SPDX-License-Identifier: MIT
// Source: github.com/woozymasta/kmp

package kmp

import "errors"

// Sentinel errors for search precondition and limit violations.
var (
	// ErrEmptyPattern is returned when the pattern is empty. The search state
	// machine is undefined for a zero-length pattern, so it is rejected by
	// every entry point rather than given an implementation-defined meaning.
	ErrEmptyPattern = errors.New("empty pattern")
	// ErrInputTooLarge is returned when FindAllFromReader consumes more than
	// MaxInputSize bytes. Matches found before the limit are still returned.
	ErrInputTooLarge = errors.New("input exceeds MaxInputSize")
)
