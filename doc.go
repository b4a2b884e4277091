// Package xfix finds the longest common prefix and suffix of a collection
// of strings or byte slices.
//
// # Overview
//
// Every query folds the collection pairwise: two sequences are compared
// lane by lane (32 or 16 bytes per step where the CPU allows it, 8 bytes
// otherwise) and the matched length only ever shrinks as more sequences are
// folded in. Large collections are split in halves and folded on a shared
// worker pool; the result does not depend on the split or the number of
// workers.
//
// String queries never split a multi-byte UTF-8 rune: the byte-level
// result is moved back to the closest rune boundary. Raw queries work on
// bytes only.
//
// # Quick Start
//
//	prefix, ok := xfix.CommonPrefix([]string{"foobar", "fooqux", "foodle"})
//	// prefix == "foo", ok == true
//
//	n, ok := xfix.CommonSuffixRawLen([][]byte{[]byte("xyz.tar.gz"), []byte("abc.gz")})
//	// n == 3, ok == true
//
// # Empty results
//
// All queries report ok == false both for an empty collection and for a
// collection whose members share nothing. When ok is true the returned
// length is at least 1. Callers that need to tell the two cases apart check
// len of the input.
//
// # Preconditions
//
// String queries expect valid UTF-8. Use ValidateStrings at the boundary
// of untrusted input; the query functions do not re-check. Inputs are read
// concurrently during a query and must not be modified until it returns.
package xfix
