package parallel

import (
	"errors"
	"runtime"
	"sync"
)

type (
	JobFunc    func() error
	WorkerFunc func(JobFunc)
	WaitFunc   func() error
)

// Pool runs jobs on a fixed number of goroutines. With a single worker jobs
// run inline on the caller's goroutine. Wait may only be called once; it
// returns every job error joined together.
type Pool struct {
	wg   sync.WaitGroup
	mu   sync.Mutex
	errs []error
	Do   WorkerFunc
	Wait WaitFunc
}

func Start(numWorkers int) *Pool {
	if numWorkers < 1 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	pool := &Pool{}
	pool.Do = func(f JobFunc) {
		pool.record(f())
	}
	pool.Wait = sync.OnceValue(pool.joined)

	if numWorkers > 1 {
		workChan := make(chan JobFunc, numWorkers)

		for range numWorkers {
			pool.wg.Go(func() {
				for f := range workChan {
					pool.record(f())
				}
			})
		}

		pool.Do = func(f JobFunc) {
			workChan <- f
		}
		pool.Wait = sync.OnceValue(func() error {
			close(workChan)
			pool.wg.Wait()
			return pool.joined()
		})
	}

	return pool
}

func (p *Pool) record(err error) {
	if err == nil {
		return
	}
	p.mu.Lock()
	p.errs = append(p.errs, err)
	p.mu.Unlock()
}

func (p *Pool) joined() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return errors.Join(p.errs...)
}
