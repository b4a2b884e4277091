package utf8

import (
	stdlib "unicode/utf8"

	"github.com/mhr3/xfix/internal/bytealg"
)

// maxShift is how far a boundary can be from any byte offset in valid UTF-8.
const maxShift = stdlib.UTFMax - 1

// ClampPrefix returns the largest offset not greater than n that lies on a
// codepoint boundary of s. Use it to turn a byte-level prefix length into
// one that does not split a multi-byte rune.
//
// s is expected to be valid UTF-8. On invalid input the offset moves by at
// most 3 bytes and the result is still within [0, n].
func ClampPrefix(s string, n int) int {
	return clampPrefix(s, n)
}

// ClampSuffix returns the smallest offset not less than start that lies on a
// codepoint boundary of s. s[ClampSuffix(s, start):] is then the longest
// rune-aligned part of s[start:].
//
// s is expected to be valid UTF-8. On invalid input the offset moves by at
// most 3 bytes and the result is still within [start, len(s)].
func ClampSuffix(s string, start int) int {
	return clampSuffix(s, start)
}

func clampPrefix[T bytealg.Bytes](s T, n int) int {
	if n <= 0 {
		return 0
	}
	if n >= len(s) {
		return len(s)
	}
	for i := 0; i < maxShift && n > 0 && !stdlib.RuneStart(s[n]); i++ {
		n--
	}
	return n
}

func clampSuffix[T bytealg.Bytes](s T, start int) int {
	if start <= 0 {
		return 0
	}
	if start >= len(s) {
		return len(s)
	}
	for i := 0; i < maxShift && start < len(s) && !stdlib.RuneStart(s[start]); i++ {
		start++
	}
	return start
}

// IsBoundary reports whether offset i of s does not fall inside a
// multi-byte rune.
func IsBoundary(s string, i int) bool {
	if i == 0 || i == len(s) {
		return true
	}
	if i < 0 || i > len(s) {
		return false
	}
	return stdlib.RuneStart(s[i])
}
