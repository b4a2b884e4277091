//go:build (!amd64 && !arm64) || noasm

package bytealg

// MatchLenFront returns the number of leading bytes a and b have in common.
func MatchLenFront[T Bytes](a, b T) int {
	return matchFront8(a, b)
}

// MatchLenBack returns the number of trailing bytes a and b have in common.
func MatchLenBack[T Bytes](a, b T) int {
	return matchBack8(a, b)
}

// Kernel names the lane width selected for this CPU.
func Kernel() string {
	return "word/8"
}
