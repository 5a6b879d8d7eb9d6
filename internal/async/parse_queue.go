package async

import (
	"context"
	"sync"
	"time"

	"log/slog"

	"github.com/rahadianp/pesanin/internal/common"
	"github.com/rahadianp/pesanin/internal/pipeline"
)

type ParseQueue struct {
	proc    *pipeline.Processor
	logger  *slog.Logger
	workers int
	timeout time.Duration

	ch   chan Job
	wg   sync.WaitGroup
	once sync.Once

	mu     sync.Mutex
	closed bool
}

type Option func(*ParseQueue)

func WithWorkers(n int) Option {
	return func(q *ParseQueue) {
		if n > 0 {
			q.workers = n
		}
	}
}

func WithQueueSize(n int) Option {
	return func(q *ParseQueue) {
		if n > 0 {
			q.ch = make(chan Job, n)
		}
	}
}

func WithProcessTimeout(d time.Duration) Option {
	return func(q *ParseQueue) {
		if d > 0 {
			q.timeout = d
		}
	}
}

func NewParseQueue(proc *pipeline.Processor, logger *slog.Logger, opts ...Option) *ParseQueue {
	if logger == nil {
		logger = slog.Default()
	}
	q := &ParseQueue{
		proc:    proc,
		logger:  logger,
		workers: 4,
		timeout: time.Minute,
		ch:      make(chan Job, 256),
	}
	for _, o := range opts {
		o(q)
	}
	q.start()
	return q
}

func (q *ParseQueue) start() {
	q.once.Do(func() {
		for i := 0; i < q.workers; i++ {
			q.wg.Add(1)
			go func(workerID int) {
				defer q.wg.Done()
				q.logger.Info("worker started", "worker_id", workerID)

				for job := range q.ch {
					ctx, cancel := context.WithTimeout(context.Background(), q.timeout)
					if job.TraceID != "" {
						ctx = common.WithRequestID(ctx, job.TraceID)
					}
					orders, err := q.proc.ProcessText(ctx, job.RawText)
					cancel()

					if err != nil {
						q.logger.Error("parse job failed",
							"worker_id", workerID, "source", job.Source, "trace_id", job.TraceID, "error", err)
					} else {
						q.logger.Info("parse job done",
							"worker_id", workerID, "source", job.Source, "trace_id", job.TraceID, "orders", len(orders))
					}
				}

				q.logger.Info("worker stopped", "worker_id", workerID)
			}(i + 1)
		}
	})
}

func (q *ParseQueue) Enqueue(_ context.Context, job Job) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		q.logger.Warn("cannot enqueue: queue is shutting down", "source", job.Source)
		return nil
	}
	select {
	case q.ch <- job:
		q.logger.Info("queued message for parsing", "source", job.Source)
	default:
		q.logger.Warn("queue full, applying backpressure", "source", job.Source)
		q.ch <- job
	}
	return nil
}

func (q *ParseQueue) Shutdown(ctx context.Context) {
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
