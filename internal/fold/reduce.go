package fold

import (
	"sync/atomic"

	"github.com/mhr3/xfix/internal/bytealg"
)

// DefaultThreshold is the sub-collection size at or below which Reduce
// stops splitting and folds sequentially.
const DefaultThreshold = 2048

// zeroCheckInterval is how many sequences a sequential fold combines
// between looks at the shared known-zero flag.
const zeroCheckInterval = 256

// Joiner runs two functions, possibly in parallel, and returns once both
// have completed. *parallel.Pool implements it.
type Joiner interface {
	Join(a, b func())
}

// Config controls how Reduce schedules the fold.
type Config struct {
	// Threshold is the largest sub-collection folded sequentially.
	// Values <= 0 select DefaultThreshold.
	Threshold int

	// Joiner runs the two halves of a split. Nil folds everything on the
	// calling goroutine.
	Joiner Joiner
}

// Reduce folds views into the candidate of the whole collection.
// It returns false only when views is empty; a collection whose members
// share nothing yields a candidate with Len 0.
//
// views is read concurrently and must not be modified during the call.
func Reduce[T bytealg.Bytes](views []T, dir Direction, cfg Config) (Candidate[T], bool) {
	if len(views) == 0 {
		return Candidate[T]{}, false
	}

	r := &reducer[T]{
		dir:       dir,
		threshold: cfg.Threshold,
		joiner:    cfg.Joiner,
	}
	if r.threshold <= 0 {
		r.threshold = DefaultThreshold
	}
	if r.joiner == nil {
		return r.sequential(views), true
	}
	return r.split(views), true
}

type reducer[T bytealg.Bytes] struct {
	dir       Direction
	threshold int
	joiner    Joiner

	// zero is set once any branch finds nothing in common. The final
	// result is then known to be empty and other branches stop comparing.
	zero atomic.Bool
}

// split halves views until the pieces are small enough to fold
// sequentially, then merges the halves with Combine.
func (r *reducer[T]) split(views []T) Candidate[T] {
	if len(views) <= r.threshold {
		return r.sequential(views)
	}

	mid := len(views) / 2
	var left, right Candidate[T]
	r.joiner.Join(
		func() { left = r.split(views[:mid]) },
		func() { right = r.split(views[mid:]) },
	)
	return Combine(r.dir, left, right)
}

// sequential folds views from left to right.
func (r *reducer[T]) sequential(views []T) Candidate[T] {
	if r.zero.Load() {
		return Candidate[T]{Rep: views[0]}
	}

	acc := Single(views[0])
	for i := 1; i < len(views) && acc.Len > 0; i++ {
		if i%zeroCheckInterval == 0 && r.zero.Load() {
			return Candidate[T]{Rep: views[0]}
		}
		acc = Combine(r.dir, acc, Single(views[i]))
	}

	if acc.Len == 0 {
		r.zero.Store(true)
	}
	return acc
}
