package bytealg

import "math/bits"

// Bytes is the set of sequence types the comparator accepts.
// Strings and byte slices are compared without conversion.
type Bytes interface {
	~string | ~[]byte
}

// Load64 reads 8 bytes of s starting at i as a little-endian word.
func Load64[T Bytes](s T, i int) uint64 {
	_ = s[i+7] // bounds check hint
	return uint64(s[i]) | uint64(s[i+1])<<8 | uint64(s[i+2])<<16 | uint64(s[i+3])<<24 |
		uint64(s[i+4])<<32 | uint64(s[i+5])<<40 | uint64(s[i+6])<<48 | uint64(s[i+7])<<56
}

// matchFront8 compares one 64-bit word per step and finishes the tail
// byte by byte. The vector kernels use it for their tails.
func matchFront8[T Bytes](a, b T) int {
	n := min(len(a), len(b))
	i := 0
	for ; i+8 <= n; i += 8 {
		if x := Load64(a, i) ^ Load64(b, i); x != 0 {
			return i + bits.TrailingZeros64(x)>>3
		}
	}
	for ; i < n; i++ {
		if a[i] != b[i] {
			return i
		}
	}
	return n
}

// matchBack8 is the mirror of matchFront8. Both inputs are first cut to
// their common length so that index i addresses the same distance from the
// end in a and b. The last byte of a word is its most significant byte, so
// the mismatch closest to the end is found with LeadingZeros64.
func matchBack8[T Bytes](a, b T) int {
	n := min(len(a), len(b))
	a, b = a[len(a)-n:], b[len(b)-n:]
	i := n
	for ; i >= 8; i -= 8 {
		if x := Load64(a, i-8) ^ Load64(b, i-8); x != 0 {
			return n - i + bits.LeadingZeros64(x)>>3
		}
	}
	for ; i > 0; i-- {
		if a[i-1] != b[i-1] {
			return n - i
		}
	}
	return n
}

// matchLenFrontScalar is the byte-at-a-time reference for the front kernels.
func matchLenFrontScalar[T Bytes](a, b T) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return i
		}
	}
	return n
}

// matchLenBackScalar is the byte-at-a-time reference for the back kernels.
func matchLenBackScalar[T Bytes](a, b T) int {
	n := min(len(a), len(b))
	for i := 1; i <= n; i++ {
		if a[len(a)-i] != b[len(b)-i] {
			return i - 1
		}
	}
	return n
}
