// Package simd provides the byte-level search primitives used by the fixed
// pattern matchers: single-byte scans (Memchr, Memrchr), substring search
// (Memmem, MemmemLast) and UTF-8 bookkeeping (IsASCII, CountRuneStarts).
//
// Scans are dispatched at package initialization. On CPUs with wide vector
// units the runtime's vectorized bytes.IndexByte is used for long inputs;
// everywhere else, and for short inputs, a pure Go SWAR (SIMD Within A
// Register) implementation processes 8 bytes per step.
package simd

import (
	"bytes"

	"golang.org/x/sys/cpu"
)

// CPU feature detection flags set at package initialization.
var (
	// hasWideVectors reports AVX2 on x86-64 or ASIMD (NEON) on arm64.
	hasWideVectors = cpu.X86.HasAVX2 || cpu.ARM64.HasASIMD
)

// vectorThreshold is the haystack length from which the vectorized path
// amortizes its setup cost.
const vectorThreshold = 32

// Memchr returns the index of the first instance of needle in haystack,
// or -1 if needle is not present in haystack.
//
// Example:
//
//	pos := simd.Memchr([]byte("hello world"), 'o')
//	// pos == 4
func Memchr(haystack []byte, needle byte) int {
	if len(haystack) == 0 {
		return -1
	}
	if hasWideVectors && len(haystack) >= vectorThreshold {
		return bytes.IndexByte(haystack, needle)
	}
	return memchrGeneric(haystack, needle)
}

// Memrchr returns the index of the last instance of needle in haystack,
// or -1 if needle is not present in haystack.
func Memrchr(haystack []byte, needle byte) int {
	return bytes.LastIndexByte(haystack, needle)
}
