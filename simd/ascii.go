package simd

import "encoding/binary"

// IsASCII checks if all bytes in the slice are ASCII (< 0x80).
//
// ASCII-only buffers need no codepoint index: byte offsets and codepoint
// offsets coincide.
func IsASCII(data []byte) bool {
	dataLen := len(data)

	idx := 0
	for idx+8 <= dataLen {
		// ASCII bytes have bit 7 clear
		if binary.LittleEndian.Uint64(data[idx:])&hi8 != 0 {
			return false
		}
		idx += 8
	}

	for idx < dataLen {
		if data[idx] >= 0x80 {
			return false
		}
		idx++
	}

	return true
}
