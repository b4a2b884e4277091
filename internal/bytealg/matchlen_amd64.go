//go:build !noasm && amd64

package bytealg

import (
	"unsafe"

	"golang.org/x/sys/cpu"
)

var hasAVX2 = cpu.X86.HasAVX2

//go:noescape
func matchFrontAVX2(a, b unsafe.Pointer, n int) int

//go:noescape
func matchBackAVX2(a, b unsafe.Pointer, n int) int

//go:noescape
func matchFrontSSE2(a, b unsafe.Pointer, n int) int

//go:noescape
func matchBackSSE2(a, b unsafe.Pointer, n int) int

// MatchLenFront returns the number of leading bytes a and b have in common.
// The result is at most min(len(a), len(b)).
func MatchLenFront[T Bytes](a, b T) int {
	if hasAVX2 {
		return frontLanes(a, b, 32, matchFrontAVX2)
	}

	return frontLanes(a, b, 16, matchFrontSSE2)
}

// MatchLenBack returns the number of trailing bytes a and b have in common.
// The result is at most min(len(a), len(b)).
func MatchLenBack[T Bytes](a, b T) int {
	if hasAVX2 {
		return backLanes(a, b, 32, matchBackAVX2)
	}

	return backLanes(a, b, 16, matchBackSSE2)
}

// Kernel names the lane width selected for this CPU.
func Kernel() string {
	if hasAVX2 {
		return "avx2/32"
	}
	return "sse2/16"
}
