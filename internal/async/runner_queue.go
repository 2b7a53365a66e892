package async

import (
	"context"
	"sync"
	"time"

	"log/slog"
)

// RunnerQueue runs dispatched upload jobs on a fixed pool of workers. Each
// job owns its own row and its own remote artifact, so workers never share
// mutable state.
type RunnerQueue struct {
	logger  *slog.Logger
	workers int
	timeout time.Duration

	ch   chan Task
	wg   sync.WaitGroup
	once sync.Once

	mu     sync.Mutex
	closed bool
}

type Option func(*RunnerQueue)

func WithWorkers(n int) Option {
	return func(q *RunnerQueue) {
		if n > 0 {
			q.workers = n
		}
	}
}
func WithQueueSize(n int) Option {
	return func(q *RunnerQueue) {
		if n > 0 {
			q.ch = make(chan Task, n)
		}
	}
}
func WithRunTimeout(d time.Duration) Option {
	return func(q *RunnerQueue) {
		if d > 0 {
			q.timeout = d
		}
	}
}

func NewRunnerQueue(logger *slog.Logger, opts ...Option) *RunnerQueue {
	if logger == nil {
		logger = slog.Default()
	}
	q := &RunnerQueue{
		logger:  logger,
		workers: 4,
		timeout: 3 * time.Minute,
		ch:      make(chan Task, 256),
	}
	for _, o := range opts {
		o(q)
	}
	q.start()
	return q
}

func (q *RunnerQueue) start() {
	q.once.Do(func() {
		for i := 0; i < q.workers; i++ {
			q.wg.Add(1)
			go func(workerID int) {
				defer q.wg.Done()
				q.logger.Info("worker started", "worker_id", workerID)

				for task := range q.ch {
					ctx, cancel := context.WithTimeout(context.Background(), q.timeout)
					err := task.Runner.Run(ctx)
					cancel()

					// Run already left the job row in a terminal status.
					if err != nil {
						q.logger.Error("upload job failed", "worker_id", workerID, "job_id", task.JobID, "error", err)
					} else {
						q.logger.Info("upload job completed", "worker_id", workerID, "job_id", task.JobID)
					}
				}

				q.logger.Info("worker stopped", "worker_id", workerID)
			}(i + 1)
		}
	})
}

func (q *RunnerQueue) Enqueue(_ context.Context, task Task) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		q.logger.Warn("cannot enqueue: queue is shutting down", "job_id", task.JobID)
		return nil
	}
	select {
	case q.ch <- task:
		q.logger.Info("queued upload job", "job_id", task.JobID)
	default:
		q.logger.Warn("queue full, applying backpressure", "job_id", task.JobID)
		q.ch <- task
	}
	return nil
}

func (q *RunnerQueue) Shutdown(ctx context.Context) {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.closed = true
	close(q.ch)
	q.mu.Unlock()

	done := make(chan struct{})
	go func() { defer close(done); q.wg.Wait() }()

	select {
	case <-ctx.Done():
		q.logger.Warn("shutdown interrupted by context")
	case <-done:
		q.logger.Info("queue drained, shutdown complete")
	}
}
