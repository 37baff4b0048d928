package board

import (
	"context"
	"sync"
)

// Loop is an unbounded FIFO of tasks run one at a time by a single goroutine.
// Every task runs to completion before the next one starts.
type Loop struct {
	mu    sync.Mutex
	queue []func()
	wake  chan struct{}
}

// NewLoop returns an empty loop. Tasks posted before Run are kept.
func NewLoop() *Loop {
	return &Loop{wake: make(chan struct{}, 1)}
}

// Post enqueues task. It never blocks and is safe for concurrent use.
func (l *Loop) Post(task func()) {
	l.mu.Lock()
	l.queue = append(l.queue, task)
	l.mu.Unlock()

	select {
	case l.wake <- struct{}{}:
	default:
	}
}

// Run executes posted tasks in order until ctx is done.
func (l *Loop) Run(ctx context.Context) error {
	for {
		l.drain()

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-l.wake:
		}
	}
}

// drain runs queued tasks, including ones posted while draining, until the
// queue is empty. It returns the number of tasks run.
func (l *Loop) drain() int {
	ran := 0
	for {
		l.mu.Lock()
		batch := l.queue
		l.queue = nil
		l.mu.Unlock()

		if len(batch) == 0 {
			return ran
		}

		for _, task := range batch {
			task()
			ran++
		}
	}
}
