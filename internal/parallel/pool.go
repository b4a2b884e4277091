// Package parallel provides the fork-join worker pool used to fold large
// collections.
package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a fixed set of worker goroutines, each with its own queue.
// Workers steal from other queues when their own queue is empty.
//
// Pool is safe for concurrent use.
type Pool struct {
	workers int

	// queues holds one buffered queue per worker.
	queues []chan func()

	// done signals workers to stop.
	done chan struct{}

	wg sync.WaitGroup

	running atomic.Bool

	// next spreads submissions over the queues.
	next atomic.Uint32
}

// NewPool starts a pool with the given number of workers.
// If workers is 0 or negative, GOMAXPROCS is used.
func NewPool(workers int) *Pool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	queueSize := workers * 4
	if queueSize < 8 {
		queueSize = 8
	}

	p := &Pool{
		workers: workers,
		queues:  make([]chan func(), workers),
		done:    make(chan struct{}),
	}
	for i := range workers {
		p.queues[i] = make(chan func(), queueSize)
	}

	p.running.Store(true)

	p.wg.Add(workers)
	for i := range workers {
		go p.worker(i)
	}

	return p
}

var (
	sharedOnce sync.Once
	shared     *Pool
)

// Shared returns the process-wide pool. It is started on first use with
// GOMAXPROCS workers and is never closed.
func Shared() *Pool {
	sharedOnce.Do(func() {
		shared = NewPool(0)
	})
	return shared
}

func (p *Pool) worker(id int) {
	defer p.wg.Done()

	own := p.queues[id]

	for {
		select {
		case <-p.done:
			p.drainQueue(own)
			return

		case work := <-own:
			work()

		default:
			if stolen := p.steal(id); stolen != nil {
				stolen()
				continue
			}
			select {
			case <-p.done:
				p.drainQueue(own)
				return
			case work := <-own:
				work()
			}
		}
	}
}

// drainQueue runs whatever is left in queue.
func (p *Pool) drainQueue(queue chan func()) {
	for {
		select {
		case work := <-queue:
			work()
		default:
			return
		}
	}
}

// steal takes one item from any queue other than skip's.
// Returns nil if all queues are empty.
func (p *Pool) steal(skip int) func() {
	for i := range p.workers {
		if i == skip {
			continue
		}

		select {
		case work := <-p.queues[i]:
			return work
		default:
		}
	}
	return nil
}

// trySubmit queues fn without blocking. It reports false when the chosen
// queue is full or the pool is closed.
func (p *Pool) trySubmit(fn func()) bool {
	if !p.running.Load() {
		return false
	}

	i := int(p.next.Add(1) % uint32(p.workers))
	select {
	case p.queues[i] <- fn:
		return true
	default:
		return false
	}
}

// joinTask is the half of a Join that may run on another worker. Whoever
// claims it first runs it: a worker, or the joining goroutine itself.
type joinTask struct {
	fn      func()
	claimed atomic.Bool
	done    chan struct{}
}

func (t *joinTask) claim() bool {
	return t.claimed.CompareAndSwap(false, true)
}

func (t *joinTask) run() {
	if !t.claim() {
		return
	}
	t.fn()
	close(t.done)
}

// Join runs a and b, possibly in parallel, and returns when both are done.
//
// a always runs on the calling goroutine. b is offered to the pool; if no
// worker has picked it up by the time a returns, the caller runs it too.
// While b runs elsewhere the caller executes other queued work, so nested
// Joins never leave the pool idle waiting on itself.
func (p *Pool) Join(a, b func()) {
	t := &joinTask{fn: b, done: make(chan struct{})}
	if !p.trySubmit(t.run) {
		a()
		b()
		return
	}

	a()

	if t.claim() {
		b()
		return
	}
	p.wait(t.done)
}

// wait blocks until done is closed, running stolen work in the meantime.
func (p *Pool) wait(done <-chan struct{}) {
	for {
		select {
		case <-done:
			return
		default:
		}

		work := p.steal(-1)
		if work == nil {
			<-done
			return
		}
		work()
	}
}

// Close stops the workers after the queued work has run.
// Joins issued after Close run both halves on the caller.
// Close is safe to call multiple times.
func (p *Pool) Close() {
	if !p.running.CompareAndSwap(true, false) {
		return
	}

	close(p.done)
	p.wg.Wait()
}

// Workers returns the number of workers in the pool.
func (p *Pool) Workers() int {
	return p.workers
}

// IsRunning reports whether the pool still accepts work.
func (p *Pool) IsRunning() bool {
	return p.running.Load()
}

// QueuedWork returns the number of items waiting in the queues.
// The value is approximate while the pool is busy.
func (p *Pool) QueuedWork() int {
	total := 0
	for _, q := range p.queues {
		total += len(q)
	}
	return total
}
