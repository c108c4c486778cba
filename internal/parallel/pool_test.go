package parallel

import (
	"errors"
	"runtime"
	"sync/atomic"
	"testing"
)

func TestPoolRunsEveryJob(t *testing.T) {
	for _, workers := range []int{0, 1, 4} {
		pool := Start(workers)
		var count atomic.Int64
		for range 100 {
			pool.Do(func() error {
				count.Add(1)
				return nil
			})
		}
		ok, failed := pool.Wait()
		if got := count.Load(); got != 100 {
			t.Errorf("workers=%d: ran %d jobs, want 100", workers, got)
		}
		if ok != 100 || failed != 0 {
			t.Errorf("workers=%d: Wait = (%d, %d), want (100, 0)", workers, ok, failed)
		}
	}
}

func TestPoolCountsFailures(t *testing.T) {
	pool := Start(3)
	for i := range 10 {
		pool.Do(func() error {
			if i%4 == 0 {
				return errors.New("bad file")
			}
			return nil
		})
	}
	if ok, failed := pool.Wait(); ok != 7 || failed != 3 {
		t.Errorf("Wait = (%d, %d), want (7, 3)", ok, failed)
	}
}

func TestPoolSingleWorkerRunsInline(t *testing.T) {
	pool := Start(1)
	ran := false
	pool.Do(func() error {
		ran = true
		return nil
	})
	if !ran {
		t.Error("single-worker pool did not run the job inline")
	}
	pool.Wait()
}

func TestPoolDefaultWorkers(t *testing.T) {
	pool := Start(0)
	defer pool.Wait()
	if got, want := pool.Workers(), runtime.GOMAXPROCS(0); got != want {
		t.Errorf("Workers = %d, want %d", got, want)
	}
}

func TestPoolWaitWithoutJobs(t *testing.T) {
	if ok, failed := Start(4).Wait(); ok != 0 || failed != 0 {
		t.Errorf("Wait = (%d, %d), want (0, 0)", ok, failed)
	}
}
