package utils

import (
	"sync"
)

// Task is a unit of work run by RunParallel.
type Task func() error

// RunParallel runs every task in its own goroutine and returns their errors in
// task order, nil entries for tasks that succeeded.
func RunParallel(tasks ...Task) []error {
	var wg sync.WaitGroup
	errors := make([]error, len(tasks))

	wg.Add(len(tasks))
	for i, task := range tasks {
		go func(index int, t Task) {
			defer wg.Done()
			errors[index] = t()
		}(i, task)
	}

	wg.Wait()
	return errors
}

// WorkerPool runs submitted jobs on a fixed number of goroutines.
type WorkerPool struct {
	taskChan  chan func()
	wg        sync.WaitGroup
	workers   sync.WaitGroup
	mu        sync.RWMutex
	closed    bool
	closeOnce sync.Once
}

// NewWorkerPool starts maxWorkers workers. Submit blocks once maxWorkers*2 jobs are queued;
// TrySubmit refuses them instead.
func NewWorkerPool(maxWorkers int) *WorkerPool {
	if maxWorkers < 1 {
		maxWorkers = 1
	}
	pool := &WorkerPool{
		taskChan: make(chan func(), maxWorkers*2),
	}

	pool.workers.Add(maxWorkers)
	for i := 0; i < maxWorkers; i++ {
		go pool.worker()
	}

	return pool
}

func (p *WorkerPool) worker() {
	defer p.workers.Done()
	for task := range p.taskChan {
		task()
		p.wg.Done()
	}
}

// Submit queues task. It reports false, without running the task, once the pool is closed.
func (p *WorkerPool) Submit(task func()) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		return false
	}

	p.wg.Add(1)
	p.taskChan <- task
	return true
}

// TrySubmit queues task only when the queue has room. It reports false, without
// running the task, when the queue is full or the pool is closed.
func (p *WorkerPool) TrySubmit(task func()) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		return false
	}

	p.wg.Add(1)
	select {
	case p.taskChan <- task:
		return true
	default:
		p.wg.Done()
		return false
	}
}

// Wait blocks until every submitted task has finished.
func (p *WorkerPool) Wait() {
	p.wg.Wait()
}

// Close stops accepting work, lets queued tasks finish and stops the workers.
func (p *WorkerPool) Close() {
	p.closeOnce.Do(func() {
		p.mu.Lock()
		p.closed = true
		close(p.taskChan)
		p.mu.Unlock()
	})
	p.workers.Wait()
}
