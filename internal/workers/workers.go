// Package workers provides the dispatch facility behind the async parse
// path: a weighted-admission pool and a completion handle. There is no
// cancellation; once admitted, a unit of work always runs to completion.
package workers

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/semaphore"
)

// Pool bounds how many units of work run concurrently.
type Pool struct {
	sem *semaphore.Weighted
}

// NewPool creates a pool admitting n concurrent units; n <= 0 uses
// GOMAXPROCS.
func NewPool(n int) *Pool {
	if n <= 0 {
		n = runtime.GOMAXPROCS(0)
	}
	return &Pool{sem: semaphore.NewWeighted(int64(n))}
}

// Pending resolves once its unit of work completes.
type Pending[T any] struct {
	done chan struct{}
	val  T
	err  error
}

// Wait blocks until completion. A non-nil error means the worker
// crashed; there is no partial result in that case.
func (p *Pending[T]) Wait() (T, error) {
	<-p.done
	return p.val, p.err
}

// Go dispatches fn onto the pool and returns its completion handle.
// A panic inside fn is captured and surfaced as the handle's error
// rather than taking the process down with an unrelated stack.
func Go[T any](pool *Pool, fn func() T) *Pending[T] {
	p := &Pending[T]{done: make(chan struct{})}
	go func() {
		defer close(p.done)
		defer func() {
			if r := recover(); r != nil {
				p.err = fmt.Errorf("worker crashed: %v", r)
			}
		}()
		if err := pool.sem.Acquire(context.Background(), 1); err != nil {
			p.err = err
			return
		}
		defer pool.sem.Release(1)
		p.val = fn()
	}()
	return p
}
