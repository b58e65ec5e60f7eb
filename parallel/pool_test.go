package parallel

import (
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoolRunsEveryJob(t *testing.T) {
	for _, workers := range []int{0, 1, 4} {
		pool := Start(workers)
		var n atomic.Int64
		for i := range 100 {
			pool.Do(func() error {
				n.Add(int64(i))
				return nil
			})
		}
		require.NoError(t, pool.Wait())
		assert.Equal(t, int64(4950), n.Load(), "workers %d", workers)
	}
}

func TestPoolJoinsErrors(t *testing.T) {
	errA, errB := errors.New("a"), errors.New("b")
	for _, workers := range []int{1, 3} {
		pool := Start(workers)
		pool.Do(func() error { return errA })
		pool.Do(func() error { return nil })
		pool.Do(func() error { return errB })

		err := pool.Wait()
		assert.ErrorIs(t, err, errA, "workers %d", workers)
		assert.ErrorIs(t, err, errB, "workers %d", workers)
		assert.Equal(t, err, pool.Wait())
	}
}
