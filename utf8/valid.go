package utf8

import (
	"math/bits"
	"unsafe"

	asmutf8 "github.com/segmentio/asm/utf8"

	"github.com/mhr3/xfix/internal/bytealg"
)

func ValidString(s string) bool {
	// speed up the common case
	idx := indexMask(s, 0x80)
	if idx == -1 {
		return true
	}

	return asmutf8.Valid(unsafe.Slice(unsafe.StringData(s[idx:]), len(s)-idx))
}

// Valid is like ValidString for a byte slice.
func Valid(p []byte) bool {
	idx := indexMask(p, 0x80)
	if idx == -1 {
		return true
	}

	return asmutf8.Valid(p[idx:])
}

// indexMask returns the index of the first byte of s that has any bit of
// mask set, or -1.
func indexMask[T bytealg.Bytes](s T, mask byte) int {
	mask64 := uint64(mask) * 0x0101010101010101

	i := 0
	for ; i+8 <= len(s); i += 8 {
		if x := bytealg.Load64(s, i) & mask64; x != 0 {
			return i + bits.TrailingZeros64(x)>>3
		}
	}
	for ; i < len(s); i++ {
		if s[i]&mask != 0 {
			return i
		}
	}
	return -1
}
