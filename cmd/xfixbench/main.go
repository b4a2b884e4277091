// Command xfixbench measures common prefix and suffix throughput on large
// generated string collections and checks every result.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"runtime"
	"strconv"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"golang.org/x/sync/errgroup"

	"github.com/mhr3/xfix"
)

const common = "愛 This is the common part of every string 愛"

func main() {
	os.Exit(run(os.Args[1:]))
}

type options struct {
	minPow, maxPow int
	threshold      int
	workers        int
	seed           int64
	checks         int
	raw            bool
	verbose        bool
}

func parseFlags(args []string) (options, error) {
	var (
		o     options
		sizes string
	)

	fs := flag.NewFlagSet("xfixbench", flag.ContinueOnError)
	fs.StringVar(&sizes, "sizes", "14-20", "collection sizes as a range of powers of two, e.g. 14-24")
	fs.IntVar(&o.threshold, "threshold", xfix.DefaultThreshold, "sequential fold threshold")
	fs.IntVar(&o.workers, "workers", 0, "worker count (0 uses the shared pool)")
	fs.Int64Var(&o.seed, "seed", 1, "random seed")
	fs.IntVar(&o.checks, "checks", 64, "number of randomized correctness rounds")
	fs.BoolVar(&o.raw, "raw", false, "query [][]byte instead of []string")
	fs.BoolVar(&o.verbose, "v", false, "debug logging to stderr")
	if err := fs.Parse(args); err != nil {
		return o, err
	}

	lo, hi, found := strings.Cut(sizes, "-")
	if !found {
		hi = lo
	}
	var err error
	if o.minPow, err = strconv.Atoi(lo); err != nil {
		return o, fmt.Errorf("invalid -sizes %q: %w", sizes, err)
	}
	if o.maxPow, err = strconv.Atoi(hi); err != nil {
		return o, fmt.Errorf("invalid -sizes %q: %w", sizes, err)
	}
	if o.minPow < 1 || o.maxPow > 30 || o.minPow > o.maxPow {
		return o, fmt.Errorf("invalid -sizes %q: want 1 <= min <= max <= 30", sizes)
	}
	return o, nil
}

func run(args []string) int {
	o, err := parseFlags(args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	if o.verbose {
		xfix.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	opts := []xfix.Option{xfix.WithThreshold(o.threshold)}
	if o.workers > 0 {
		opts = append(opts, xfix.WithWorkers(o.workers))
	}
	f, err := xfix.New(opts...)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}
	defer f.Close()

	failed := false
	if err := checkRandom(f, o); err != nil {
		fmt.Fprintln(os.Stderr, "FAIL", err)
		failed = true
	}

	for _, dir := range []string{"prefix", "suffix"} {
		strs := generate(1<<o.maxPow, o.seed, dir == "prefix")
		var bufs [][]byte
		if o.raw {
			bufs = make([][]byte, len(strs))
			for i, s := range strs {
				bufs[i] = []byte(s)
			}
		}

		for pow := o.minPow; pow <= o.maxPow; pow++ {
			size := 1 << pow
			start := time.Now()
			n, ok := query(f, dir, strs[:size], bufs)
			elapsed := time.Since(start)

			status := "ok"
			if !ok || n != len(common) {
				status = "FAIL"
				failed = true
			}
			fmt.Printf("%-6s %-4s %10d strings in %10.4fs (%d bytes)\n",
				dir, status, size, elapsed.Seconds(), n)
		}
		fmt.Println()
	}

	if failed {
		return 1
	}
	fmt.Println("SUCCESS")
	return 0
}

func query(f *xfix.Finder, dir string, strs []string, bufs [][]byte) (int, bool) {
	switch {
	case bufs != nil && dir == "prefix":
		return f.PrefixBytesLen(bufs[:len(strs)])
	case bufs != nil:
		return f.SuffixBytesLen(bufs[:len(strs)])
	case dir == "prefix":
		return f.PrefixLen(strs)
	}
	return f.SuffixLen(strs)
}

// generate returns n strings made of a random number and the common part,
// filled in parallel. Each chunk has its own seeded source so the output
// depends only on seed and GOMAXPROCS.
func generate(n int, seed int64, prefix bool) []string {
	strs := make([]string, n)
	chunks := runtime.GOMAXPROCS(0)
	chunkSize := (n + chunks - 1) / chunks

	var wg sync.WaitGroup
	for c := 0; c < chunks; c++ {
		lo, hi := c*chunkSize, min((c+1)*chunkSize, n)
		if lo >= hi {
			break
		}
		wg.Go(func() {
			rng := rand.New(rand.NewSource(seed + int64(lo)))
			for i := lo; i < hi; i++ {
				num := strconv.FormatUint(rng.Uint64(), 10)
				if prefix {
					strs[i] = common + num
				} else {
					strs[i] = num + common
				}
			}
		})
	}
	wg.Wait()
	return strs
}

// checkRandom glues a random 64-byte prefix and suffix onto random strings
// and checks that both are found again. Rounds run in parallel; the first
// failing round is returned.
func checkRandom(f *xfix.Finder, o options) error {
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i := 0; i < o.checks; i++ {
		g.Go(func() error {
			rng := rand.New(rand.NewSource(o.seed + int64(i)))
			prefix := randomString(rng, 64)
			suffix := randomString(rng, 64)

			strs := make([]string, 1<<o.minPow)
			for j := range strs {
				strs[j] = prefix + randomString(rng, 16) + suffix
			}

			if got, _ := f.Prefix(strs); got != prefix {
				return fmt.Errorf("round %d: prefix: got %d bytes, want %d", i, len(got), len(prefix))
			}
			if got, _ := f.Suffix(strs); got != suffix {
				return fmt.Errorf("round %d: suffix: got %d bytes, want %d", i, len(got), len(suffix))
			}
			return nil
		})
	}
	return g.Wait()
}

// randomString returns at least size bytes of random runes.
func randomString(rng *rand.Rand, size int) string {
	var b strings.Builder
	for b.Len() < size {
		r := rune(rng.Int31n(utf8.MaxRune + 1))
		if utf8.ValidRune(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
