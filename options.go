// SPDX-License-Identifier: MIT
// Source: github.com/woozymasta/kmp

package kmp

// defaultScanBufferSize is the FindAllFromReader buffer length when
// ScanOptions leaves BufferSize unset.
const defaultScanBufferSize = 64 << 10

// ScanOptions configures reader-based scanning.
// The zero value (or a nil *ScanOptions) means a 64 KiB buffer and no input
// limit; MaxInputSize bounds reads when scanning untrusted or unbounded
// sources.
type ScanOptions struct {
	// BufferSize is the scan buffer length in bytes (<= 0 selects the 64 KiB
	// default). Memory use of a reader scan is O(pattern + BufferSize).
	BufferSize int
	// MaxInputSize limits how many bytes FindAllFromReader may consume
	// (0 = no limit). Exceeding it returns ErrInputTooLarge.
	MaxInputSize int
}

// DefaultScanOptions returns options with the default buffer and no input
// limit.
func DefaultScanOptions() *ScanOptions {
	return &ScanOptions{BufferSize: defaultScanBufferSize}
}
