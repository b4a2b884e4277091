package xfix

import "github.com/mhr3/xfix/internal/fold"

// CommonPrefix returns a copy of the longest common prefix of strs that
// does not split a rune. ok is false when there is none.
func CommonPrefix[S ~string](strs []S) (S, bool) {
	s, ok := stringAffix(defaultFinder, strs, fold.Prefix)
	return cloneString(s, ok)
}

// CommonSuffix is the suffix counterpart of CommonPrefix.
func CommonSuffix[S ~string](strs []S) (S, bool) {
	s, ok := stringAffix(defaultFinder, strs, fold.Suffix)
	return cloneString(s, ok)
}

func CommonPrefixLen[S ~string](strs []S) (int, bool) {
	return stringAffixLen(defaultFinder, strs, fold.Prefix)
}

func CommonSuffixLen[S ~string](strs []S) (int, bool) {
	return stringAffixLen(defaultFinder, strs, fold.Suffix)
}

// CommonPrefixRaw matches bytes only and may end inside a rune.
func CommonPrefixRaw[B ~[]byte](bufs []B) ([]byte, bool) {
	b, ok := rawAffix(defaultFinder, bufs, fold.Prefix)
	return cloneBytes(b, ok)
}

func CommonSuffixRaw[B ~[]byte](bufs []B) ([]byte, bool) {
	b, ok := rawAffix(defaultFinder, bufs, fold.Suffix)
	return cloneBytes(b, ok)
}

func CommonPrefixRawLen[B ~[]byte](bufs []B) (int, bool) {
	return rawAffixLen(defaultFinder, bufs, fold.Prefix)
}

func CommonSuffixRawLen[B ~[]byte](bufs []B) (int, bool) {
	return rawAffixLen(defaultFinder, bufs, fold.Suffix)
}
