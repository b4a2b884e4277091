package xfix

import (
	"bytes"
	"strings"

	"github.com/mhr3/xfix/internal/bytealg"
	"github.com/mhr3/xfix/internal/fold"
	"github.com/mhr3/xfix/internal/parallel"
	"github.com/mhr3/xfix/utf8"
)

// Finder runs common prefix and suffix queries. It is safe for concurrent
// use.
type Finder struct {
	threshold  int
	sequential bool

	// pool is nil when the Finder uses the shared pool.
	pool *parallel.Pool
}

var defaultFinder = &Finder{threshold: DefaultThreshold}

// New creates a Finder. By default it uses the process-wide worker pool.
func New(opts ...Option) (*Finder, error) {
	cfg := &config{threshold: DefaultThreshold}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	f := &Finder{
		threshold:  cfg.threshold,
		sequential: cfg.sequential,
	}
	if cfg.workers > 0 {
		f.pool = parallel.NewPool(cfg.workers)
	}

	Logger().Debug("xfix: finder created",
		"threshold", f.threshold,
		"workers", f.workers(),
		"kernel", bytealg.Kernel())

	return f, nil
}

func (f *Finder) workers() int {
	switch {
	case f.sequential:
		return 1
	case f.pool != nil:
		return f.pool.Workers()
	}
	return parallel.Shared().Workers()
}

func (f *Finder) config() fold.Config {
	cfg := fold.Config{Threshold: f.threshold}
	switch {
	case f.sequential:
	case f.pool != nil:
		cfg.Joiner = f.pool
	default:
		cfg.Joiner = parallel.Shared()
	}
	return cfg
}

// Close stops the workers started by WithWorkers. Later queries run on the
// calling goroutine.
func (f *Finder) Close() {
	if f.pool == nil || !f.pool.IsRunning() {
		return
	}
	queued := f.pool.QueuedWork()
	f.pool.Close()
	Logger().Debug("xfix: finder pool closed",
		"workers", f.pool.Workers(),
		"drained", queued)
}

// Prefix returns a copy of the longest common prefix of strs that does not
// split a rune.
func (f *Finder) Prefix(strs []string) (string, bool) {
	s, ok := stringAffix(f, strs, fold.Prefix)
	return cloneString(s, ok)
}

func (f *Finder) Suffix(strs []string) (string, bool) {
	s, ok := stringAffix(f, strs, fold.Suffix)
	return cloneString(s, ok)
}

// PrefixRef is like Prefix but returns a substring of an input.
func (f *Finder) PrefixRef(strs []string) (string, bool) {
	return stringAffix(f, strs, fold.Prefix)
}

func (f *Finder) SuffixRef(strs []string) (string, bool) {
	return stringAffix(f, strs, fold.Suffix)
}

func (f *Finder) PrefixLen(strs []string) (int, bool) {
	return stringAffixLen(f, strs, fold.Prefix)
}

func (f *Finder) SuffixLen(strs []string) (int, bool) {
	return stringAffixLen(f, strs, fold.Suffix)
}

// Affixes returns the common prefix and suffix of strs, which may overlap.
func (f *Finder) Affixes(strs []string) (prefix, suffix string) {
	prefix, _ = f.Prefix(strs)
	suffix, _ = f.Suffix(strs)
	return prefix, suffix
}

// PrefixBytes returns a copy of the longest common prefix of bufs.
func (f *Finder) PrefixBytes(bufs [][]byte) ([]byte, bool) {
	b, ok := rawAffix(f, bufs, fold.Prefix)
	return cloneBytes(b, ok)
}

func (f *Finder) SuffixBytes(bufs [][]byte) ([]byte, bool) {
	b, ok := rawAffix(f, bufs, fold.Suffix)
	return cloneBytes(b, ok)
}

func (f *Finder) PrefixBytesLen(bufs [][]byte) (int, bool) {
	return rawAffixLen(f, bufs, fold.Prefix)
}

func (f *Finder) SuffixBytesLen(bufs [][]byte) (int, bool) {
	return rawAffixLen(f, bufs, fold.Suffix)
}

// stringAffixLen clamps only the folded result: in valid UTF-8 a rune
// boundary of the matched bytes is a boundary in every member.
func stringAffixLen[S ~string](f *Finder, strs []S, dir fold.Direction) (int, bool) {
	c, ok := fold.Reduce(strs, dir, f.config())
	if !ok || c.Len == 0 {
		return 0, false
	}

	rep := string(c.Rep)
	n := c.Len
	if dir == fold.Suffix {
		n = len(rep) - utf8.ClampSuffix(rep, len(rep)-n)
	} else {
		n = utf8.ClampPrefix(rep, n)
	}
	return n, n > 0
}

func stringAffix[S ~string](f *Finder, strs []S, dir fold.Direction) (S, bool) {
	n, ok := stringAffixLen(f, strs, dir)
	if !ok {
		return "", false
	}
	return fold.Candidate[S]{Rep: strs[0], Len: n}.Affix(dir), true
}

func rawAffixLen[B ~[]byte](f *Finder, bufs []B, dir fold.Direction) (int, bool) {
	c, ok := fold.Reduce(bufs, dir, f.config())
	if !ok || c.Len == 0 {
		return 0, false
	}
	return c.Len, true
}

func rawAffix[B ~[]byte](f *Finder, bufs []B, dir fold.Direction) (B, bool) {
	c, ok := fold.Reduce(bufs, dir, f.config())
	if !ok || c.Len == 0 {
		return nil, false
	}
	return c.Affix(dir), true
}

func cloneString[S ~string](s S, ok bool) (S, bool) {
	if !ok {
		return s, false
	}
	return S(strings.Clone(string(s))), true
}

func cloneBytes[B ~[]byte](b B, ok bool) ([]byte, bool) {
	if !ok {
		return nil, false
	}
	return bytes.Clone(b), true
}
