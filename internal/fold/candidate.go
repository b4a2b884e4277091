// Package fold reduces a collection of sequences to the length of their
// longest common prefix or suffix.
package fold

import "github.com/mhr3/xfix/internal/bytealg"

// Direction selects which end of the sequences is matched.
type Direction uint8

const (
	Prefix Direction = iota
	Suffix
)

func (d Direction) String() string {
	switch d {
	case Prefix:
		return "prefix"
	case Suffix:
		return "suffix"
	}
	return "unknown"
}

// Candidate is the common affix of a set of sequences: Len bytes at the
// start (Prefix) or end (Suffix) of Rep, which is one member of the set.
// Len never exceeds the length of the shortest sequence in the set.
type Candidate[T bytealg.Bytes] struct {
	Rep T
	Len int
}

// Single returns the candidate of a one-element set.
func Single[T bytealg.Bytes](s T) Candidate[T] {
	return Candidate[T]{Rep: s, Len: len(s)}
}

// Affix returns the matched bytes of c.
func (c Candidate[T]) Affix(dir Direction) T {
	if dir == Suffix {
		return c.Rep[len(c.Rep)-c.Len:]
	}
	return c.Rep[:c.Len]
}

// Combine merges the candidates of two disjoint sets into the candidate of
// their union. The resulting length is the same whatever the order of a and
// b, and whatever way the union was split.
func Combine[T bytealg.Bytes](dir Direction, a, b Candidate[T]) Candidate[T] {
	if a.Len == 0 || b.Len == 0 {
		return Candidate[T]{Rep: a.Rep}
	}

	var n int
	if dir == Suffix {
		n = bytealg.MatchLenBack(a.Affix(dir), b.Affix(dir))
	} else {
		n = bytealg.MatchLenFront(a.Affix(dir), b.Affix(dir))
	}
	return Candidate[T]{Rep: a.Rep, Len: n}
}
