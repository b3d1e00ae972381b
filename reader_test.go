// SPDX-License-Identifier: MIT
// Source: github.com/woozymasta/kmp

package kmp

import (
	"bytes"
	"errors"
	"io"
	"slices"
	"testing"
	"testing/iotest"
)

func TestFindAllFromReader_MatchesBatchAcrossBufferSizes(t *testing.T) {
	text := []byte("xxabcabdababcababcabdxx")
	pattern := []byte("abcab")

	want, err := FindAll(text, pattern)
	if err != nil {
		t.Fatalf("FindAll failed: %v", err)
	}

	for _, bufSize := range []int{1, 2, 3, 5, 7, 64, len(text) + 1} {
		opts := &ScanOptions{BufferSize: bufSize}

		got, err := FindAllFromReader(bytes.NewReader(text), pattern, opts)
		if err != nil {
			t.Fatalf("FindAllFromReader(BufferSize=%d) failed: %v", bufSize, err)
		}

		if !slices.Equal(got, want) {
			t.Fatalf("BufferSize=%d: matches = %v, want %v", bufSize, got, want)
		}
	}
}

func TestFindAllFromReader_NilOptions(t *testing.T) {
	got, err := FindAllFromReader(bytes.NewReader([]byte("banana")), []byte("a"), nil)
	if err != nil {
		t.Fatalf("FindAllFromReader failed: %v", err)
	}

	if want := []int{1, 3, 5}; !slices.Equal(got, want) {
		t.Fatalf("matches = %v, want %v", got, want)
	}
}

func TestFindAllFromReader_OneByteReads(t *testing.T) {
	text := []byte("aaaa")

	got, err := FindAllFromReader(iotest.OneByteReader(bytes.NewReader(text)), []byte("aa"), nil)
	if err != nil {
		t.Fatalf("FindAllFromReader failed: %v", err)
	}

	if want := []int{0, 1, 2}; !slices.Equal(got, want) {
		t.Fatalf("matches = %v, want %v", got, want)
	}
}

func TestFindAllFromReader_MaxInputSize(t *testing.T) {
	opts := &ScanOptions{MaxInputSize: 3}

	got, err := FindAllFromReader(bytes.NewReader([]byte("aaaa")), []byte("aa"), opts)
	if !errors.Is(err, ErrInputTooLarge) {
		t.Fatalf("expected ErrInputTooLarge, got: %v", err)
	}

	// Matches completed within the first MaxInputSize bytes are kept.
	if want := []int{0, 1}; !slices.Equal(got, want) {
		t.Fatalf("partial matches = %v, want %v", got, want)
	}
}

func TestFindAllFromReader_MaxInputSizeNotExceeded(t *testing.T) {
	opts := &ScanOptions{MaxInputSize: 4}

	got, err := FindAllFromReader(bytes.NewReader([]byte("aaaa")), []byte("aa"), opts)
	if err != nil {
		t.Fatalf("FindAllFromReader failed: %v", err)
	}

	if want := []int{0, 1, 2}; !slices.Equal(got, want) {
		t.Fatalf("matches = %v, want %v", got, want)
	}
}

func TestFindAllFromReader_EmptyPattern(t *testing.T) {
	if _, err := FindAllFromReader(bytes.NewReader([]byte("text")), nil, nil); !errors.Is(err, ErrEmptyPattern) {
		t.Fatalf("expected ErrEmptyPattern, got: %v", err)
	}
}

func TestFindAllFromReader_ReadErrorPropagates(t *testing.T) {
	errBroken := errors.New("broken pipe")
	r := io.MultiReader(bytes.NewReader([]byte("abab")), iotest.ErrReader(errBroken))

	got, err := FindAllFromReader(r, []byte("ab"), nil)
	if !errors.Is(err, errBroken) {
		t.Fatalf("expected read error, got: %v", err)
	}

	// Matches found before the failure are still reported.
	if want := []int{0, 2}; !slices.Equal(got, want) {
		t.Fatalf("matches before error = %v, want %v", got, want)
	}
}
