package simd

import (
	"encoding/binary"
	"math/bits"
)

// CountRuneStarts returns the number of bytes in data that are not UTF-8
// continuation bytes (10xxxxxx).
//
// For valid UTF-8 this is the number of codepoints that begin inside data;
// for a prefix data[:off] of a valid buffer it is the codepoint index of the
// codepoint beginning at or after off.
//
// Algorithm (SWAR): a continuation byte has bit 7 set and bit 6 clear.
// Shifting the complemented chunk left by one moves each byte's inverted bit
// 6 into its bit 7, so x & (^x << 1) & 0x80..80 flags exactly the
// continuation bytes. Unlike the zero-byte formula there is no borrow, so the
// popcount is exact.
func CountRuneStarts(data []byte) int {
	dataLen := len(data)
	continuation := 0

	idx := 0
	for idx+8 <= dataLen {
		x := binary.LittleEndian.Uint64(data[idx:])
		continuation += bits.OnesCount64(x & (^x << 1) & hi8)
		idx += 8
	}

	for idx < dataLen {
		if data[idx]&0xC0 == 0x80 {
			continuation++
		}
		idx++
	}

	return dataLen - continuation
}
