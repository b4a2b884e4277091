//go:build !noasm && arm64

package bytealg

import (
	"unsafe"

	"golang.org/x/sys/cpu"
)

var hasASIMD = cpu.ARM64.HasASIMD

//go:noescape
func matchFrontNEON(a, b unsafe.Pointer, n int) int

//go:noescape
func matchBackNEON(a, b unsafe.Pointer, n int) int

// MatchLenFront returns the number of leading bytes a and b have in common.
// The result is at most min(len(a), len(b)).
func MatchLenFront[T Bytes](a, b T) int {
	if hasASIMD {
		return frontLanes(a, b, 16, matchFrontNEON)
	}
	return matchFront8(a, b)
}

// MatchLenBack returns the number of trailing bytes a and b have in common.
// The result is at most min(len(a), len(b)).
func MatchLenBack[T Bytes](a, b T) int {
	if hasASIMD {
		return backLanes(a, b, 16, matchBackNEON)
	}
	return matchBack8(a, b)
}

// Kernel names the lane width selected for this CPU.
func Kernel() string {
	if hasASIMD {
		return "neon/16"
	}
	return "word/8"
}
