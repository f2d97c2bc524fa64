// Package parallel schedules independent tasks, typically the tiles of a
// lattice.Tiling, over a fixed set of goroutines.
package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool runs batches of tasks on a fixed set of worker goroutines.
//
// Each worker owns a queue. Tasks are dealt round-robin, and an idle worker
// steals from the other queues, which balances tiles of uneven cost (border
// slabs of a filter are slower than interior ones).
//
// Pool is safe for concurrent use.
type Pool struct {
	size   int
	queues []chan func()
	quit   chan struct{}
	wg     sync.WaitGroup
	open   atomic.Bool
}

// NewPool starts a pool with the given number of workers.
// If size is 0 or negative, GOMAXPROCS is used.
func NewPool(size int) *Pool {
	if size <= 0 {
		size = runtime.GOMAXPROCS(0)
	}
	depth := max(size*4, 8)

	p := &Pool{
		size:   size,
		queues: make([]chan func(), size),
		quit:   make(chan struct{}),
	}
	for i := range size {
		p.queues[i] = make(chan func(), depth)
	}
	p.open.Store(true)

	p.wg.Add(size)
	for i := range size {
		go p.work(i)
	}
	return p
}

func (p *Pool) work(id int) {
	defer p.wg.Done()
	own := p.queues[id]

	for {
		select {
		case <-p.quit:
			drain(own)
			return
		case task := <-own:
			task()
			continue
		default:
		}

		if task := p.steal(id); task != nil {
			task()
			continue
		}

		select {
		case <-p.quit:
			drain(own)
			return
		case task := <-own:
			task()
		}
	}
}

func drain(queue chan func()) {
	for {
		select {
		case task := <-queue:
			task()
		default:
			return
		}
	}
}

// steal takes a task from another worker's queue, or returns nil.
func (p *Pool) steal(id int) func() {
	for i := 1; i < p.size; i++ {
		select {
		case task := <-p.queues[(id+i)%p.size]:
			return task
		default:
		}
	}
	return nil
}

// Run calls task(i) for every i in [0, n) and waits for all calls to
// return. If a task panics, Run panics with the first recovered value once
// the other tasks are done. On a closed pool, tasks run on the caller's
// goroutine.
func (p *Pool) Run(n int, task func(i int)) {
	if n <= 0 {
		return
	}
	if !p.open.Load() {
		for i := range n {
			task(i)
		}
		return
	}

	var (
		done    sync.WaitGroup
		once    sync.Once
		failure any
	)
	done.Add(n)
	for i := range n {
		wrapped := func() {
			defer done.Done()
			defer func() {
				if r := recover(); r != nil {
					once.Do(func() { failure = r })
				}
			}()
			task(i)
		}
		select {
		case p.queues[i%p.size] <- wrapped:
		case <-p.quit:
			wrapped()
		}
	}
	done.Wait()

	if failure != nil {
		panic(failure)
	}
}

// Close stops the workers after the queued tasks are done.
// Close is safe to call multiple times.
func (p *Pool) Close() {
	if !p.open.CompareAndSwap(true, false) {
		return
	}
	close(p.quit)
	p.wg.Wait()
}

// Size returns the number of workers.
func (p *Pool) Size() int {
	return p.size
}

// Open reports whether the pool still dispatches tasks to its workers.
func (p *Pool) Open() bool {
	return p.open.Load()
}

// Pending returns an approximation of the number of queued tasks.
func (p *Pool) Pending() int {
	total := 0
	for _, q := range p.queues {
		total += len(q)
	}
	return total
}
