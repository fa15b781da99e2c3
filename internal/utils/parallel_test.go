package utils

import (
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunParallelKeepsOrder(t *testing.T) {
	boom := errors.New("boom")

	errs := RunParallel(
		func() error { return nil },
		func() error { return boom },
		func() error { return nil },
	)

	assert.Len(t, errs, 3)
	assert.NoError(t, errs[0])
	assert.ErrorIs(t, errs[1], boom)
	assert.NoError(t, errs[2])
}

func TestRunParallelNoTasks(t *testing.T) {
	assert.Empty(t, RunParallel())
}

func TestWorkerPoolRunsEverything(t *testing.T) {
	pool := NewWorkerPool(3)
	var done int64

	for i := 0; i < 50; i++ {
		assert.True(t, pool.Submit(func() { atomic.AddInt64(&done, 1) }))
	}
	pool.Wait()
	assert.Equal(t, int64(50), atomic.LoadInt64(&done))

	pool.Close()
	assert.False(t, pool.Submit(func() { atomic.AddInt64(&done, 1) }))
	assert.Equal(t, int64(50), atomic.LoadInt64(&done))
}

func TestWorkerPoolCloseDrainsQueue(t *testing.T) {
	pool := NewWorkerPool(1)
	var done int64

	for i := 0; i < 2; i++ {
		pool.Submit(func() { atomic.AddInt64(&done, 1) })
	}
	pool.Close()
	pool.Close()

	assert.Equal(t, int64(2), atomic.LoadInt64(&done))
}

func TestWorkerPoolTrySubmitRefusesWhenFull(t *testing.T) {
	pool := NewWorkerPool(1)
	started := make(chan struct{})
	release := make(chan struct{})
	var done int64

	assert.True(t, pool.TrySubmit(func() {
		close(started)
		<-release
		atomic.AddInt64(&done, 1)
	}))
	<-started

	// one worker queues two jobs
	assert.True(t, pool.TrySubmit(func() { atomic.AddInt64(&done, 1) }))
	assert.True(t, pool.TrySubmit(func() { atomic.AddInt64(&done, 1) }))
	assert.False(t, pool.TrySubmit(func() { atomic.AddInt64(&done, 1) }))

	close(release)
	pool.Wait()
	assert.Equal(t, int64(3), atomic.LoadInt64(&done))

	pool.Close()
	assert.False(t, pool.TrySubmit(func() { atomic.AddInt64(&done, 1) }))
}
