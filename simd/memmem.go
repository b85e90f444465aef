package simd

import "bytes"

// Memmem returns the index of the first instance of needle in haystack,
// or -1 if needle is not present in haystack.
//
// This is equivalent to bytes.Index. The search anchors on the rarest byte of
// the needle (see ByteFrequencies), finds candidates for it with Memchr and
// verifies the full needle at each candidate.
//
// Example:
//
//	pos := simd.Memmem([]byte("aaaaaabaaaa"), []byte("aab"))
//	// pos == 4
func Memmem(haystack, needle []byte) int {
	needleLen := len(needle)
	haystackLen := len(haystack)

	// Empty needle matches at start (mimics bytes.Index behavior)
	if needleLen == 0 {
		return 0
	}
	if haystackLen == 0 || needleLen > haystackLen {
		return -1
	}
	if needleLen == 1 {
		return Memchr(haystack, needle[0])
	}

	rareByte, rareIdx := selectRareByte(needle)

	// Candidates for the rare byte can only start at rareIdx and must leave
	// room for the needle tail.
	searchStart := rareIdx
	searchEnd := haystackLen - (needleLen - 1 - rareIdx)
	for searchStart < searchEnd {
		candidatePos := Memchr(haystack[searchStart:searchEnd], rareByte)
		if candidatePos == -1 {
			return -1
		}
		candidatePos += searchStart

		needleStartPos := candidatePos - rareIdx
		if bytes.Equal(haystack[needleStartPos:needleStartPos+needleLen], needle) {
			return needleStartPos
		}
		searchStart = candidatePos + 1
	}
	return -1
}

// MemmemLast returns the index of the last instance of needle in haystack,
// or -1 if needle is not present in haystack.
//
// This is equivalent to bytes.LastIndex: the returned occurrence is the
// rightmost one even if it overlaps an earlier occurrence.
//
// Example:
//
//	pos := simd.MemmemLast([]byte("aaa"), []byte("aa"))
//	// pos == 1
func MemmemLast(haystack, needle []byte) int {
	needleLen := len(needle)
	haystackLen := len(haystack)

	if needleLen == 0 {
		return haystackLen
	}
	if haystackLen == 0 || needleLen > haystackLen {
		return -1
	}
	if needleLen == 1 {
		return Memrchr(haystack, needle[0])
	}

	rareByte, rareIdx := selectRareByte(needle)

	searchStart := rareIdx
	searchEnd := haystackLen - (needleLen - 1 - rareIdx)
	for searchEnd > searchStart {
		candidatePos := Memrchr(haystack[searchStart:searchEnd], rareByte)
		if candidatePos == -1 {
			return -1
		}
		candidatePos += searchStart

		needleStartPos := candidatePos - rareIdx
		if bytes.Equal(haystack[needleStartPos:needleStartPos+needleLen], needle) {
			return needleStartPos
		}
		searchEnd = candidatePos
	}
	return -1
}
