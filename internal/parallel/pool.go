// Package parallel runs independent file jobs on a fixed set of goroutines
// and tallies how many of them failed.
package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Job is one unit of work. A non-nil error counts as a failure; the job is
// expected to have logged it.
type Job func() error

// Pool hands jobs to its workers through Do. With a single worker Do runs
// the job inline.
type Pool struct {
	workers int
	queue   chan Job
	wg      sync.WaitGroup

	succeeded atomic.Uint64
	failed    atomic.Uint64
}

// Start launches numWorkers workers. Values below 1 use GOMAXPROCS.
func Start(numWorkers int) *Pool {
	if numWorkers < 1 {
		numWorkers = runtime.GOMAXPROCS(0)
	}
	p := &Pool{workers: numWorkers}
	if numWorkers == 1 {
		return p
	}

	p.queue = make(chan Job, numWorkers)
	p.wg.Add(numWorkers)
	for range numWorkers {
		go func() {
			defer p.wg.Done()
			for job := range p.queue {
				p.run(job)
			}
		}()
	}
	return p
}

// Workers returns the number of workers.
func (p *Pool) Workers() int { return p.workers }

func (p *Pool) run(job Job) {
	if err := job(); err != nil {
		p.failed.Add(1)
		return
	}
	p.succeeded.Add(1)
}

// Do queues job, blocking while every worker is busy. Do must not be
// called after Wait.
func (p *Pool) Do(job Job) {
	if p.queue == nil {
		p.run(job)
		return
	}
	p.queue <- job
}

// Wait closes the queue, waits for queued jobs to finish and returns the
// success and failure counts. A pool is used for one batch.
func (p *Pool) Wait() (succeeded, failed uint64) {
	if p.queue != nil {
		close(p.queue)
		p.wg.Wait()
	}
	return p.succeeded.Load(), p.failed.Load()
}
