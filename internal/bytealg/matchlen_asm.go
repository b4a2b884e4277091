//go:build !noasm && (amd64 || arm64)

package bytealg

import "unsafe"

// laneKernel compares the whole lanes of two n-byte sequences. Front
// kernels return the offset of the first mismatch, back kernels the number
// of equal trailing bytes. Either way the result equals n rounded down to
// the lane width when every lane matches.
type laneKernel func(a, b unsafe.Pointer, n int) int

// dataPtr returns the address of the first byte of *s. String and slice
// headers both start with the data pointer.
func dataPtr[T Bytes](s *T) unsafe.Pointer {
	return *(*unsafe.Pointer)(unsafe.Pointer(s))
}

func frontLanes[T Bytes](a, b T, lane int, k laneKernel) int {
	n := min(len(a), len(b))
	if n < lane {
		return matchFront8(a, b)
	}
	full := n &^ (lane - 1)
	if i := k(dataPtr(&a), dataPtr(&b), n); i < full {
		return i
	}
	return full + matchFront8(a[full:n], b[full:n])
}

func backLanes[T Bytes](a, b T, lane int, k laneKernel) int {
	n := min(len(a), len(b))
	if n < lane {
		return matchBack8(a, b)
	}
	a, b = a[len(a)-n:], b[len(b)-n:]
	full := n &^ (lane - 1)
	if c := k(dataPtr(&a), dataPtr(&b), n); c < full {
		return c
	}
	return full + matchBack8(a[:n-full], b[:n-full])
}
