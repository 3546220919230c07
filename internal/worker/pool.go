// Package worker implements a bounded worker pool for concurrent table loads.
package worker

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	pb "github.com/mtiwari1/tableloader/proto"
)

// LoadFunc performs one load. It is called from worker goroutines and must be
// safe for concurrent use.
type LoadFunc func(ctx context.Context, tableName, path string) (*pb.LoadDataResponse, error)

// Job represents one file to load.
// Contains a context.Context for cancellation and deadline propagation.
type Job struct {
	Ctx       context.Context
	Index     int
	TableName string
	FilePath  string
}

// Result holds the outcome of processing a single job.
type Result struct {
	Index       int
	FilePath    string
	DataTokenID string
	Latency     time.Duration
	Err         error
}

// Pool manages a fixed set of worker goroutines that process Jobs from a channel
// and emit Results to another channel.
type Pool struct {
	workers int
	load    LoadFunc
	jobs    chan Job
	results chan Result
	wg      sync.WaitGroup
	ctx     context.Context
	cancel  context.CancelFunc
	logger  *slog.Logger
}

// NewPool creates a pool with the given number of workers.
// Call Start() to launch the goroutines.
func NewPool(workers int, load LoadFunc, logger *slog.Logger) *Pool {
	if workers < 1 {
		workers = 1
	}
	if logger == nil {
		logger = slog.Default()
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Pool{
		workers: workers,
		load:    load,
		jobs:    make(chan Job, workers*2), // small buffer for backpressure
		results: make(chan Result, workers*2),
		ctx:     ctx,
		cancel:  cancel,
		logger:  logger,
	}
}

// Start launches worker goroutines. Each reads from the jobs channel until it is
// closed or the pool is cancelled.
func (p *Pool) Start() {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker(i)
	}
}

// Submit enqueues a job. It blocks if the jobs channel buffer is full (backpressure).
// Returns false if the pool has been cancelled.
func (p *Pool) Submit(job Job) bool {
	if p.ctx.Err() != nil {
		return false
	}
	select {
	case p.jobs <- job:
		return true
	case <-p.ctx.Done():
		return false
	}
}

// Results returns the read-only results channel for the consumer.
func (p *Pool) Results() <-chan Result {
	return p.results
}

// Cancel stops workers after their current job. Queued jobs are dropped.
func (p *Pool) Cancel() {
	p.cancel()
}

// Shutdown closes the jobs channel, waits for all workers to finish,
// then closes the results channel. Safe to call once.
func (p *Pool) Shutdown() {
	close(p.jobs)
	p.wg.Wait()
	p.cancel()
	close(p.results)
}

func (p *Pool) worker(id int) {
	defer p.wg.Done()

	for {
		select {
		case job, ok := <-p.jobs:
			if !ok {
				p.logger.Debug("worker exiting", slog.Int("worker_id", id))
				return
			}
			p.results <- p.process(id, job)

		case <-p.ctx.Done():
			p.logger.Debug("worker cancelled", slog.Int("worker_id", id))
			return
		}
	}
}

// process runs a single job and reports its outcome.
func (p *Pool) process(workerID int, job Job) Result {
	ctx := job.Ctx
	if ctx == nil {
		ctx = context.Background()
	}
	res := Result{Index: job.Index, FilePath: job.FilePath}

	if err := ctx.Err(); err != nil {
		res.Err = fmt.Errorf("job cancelled before processing: %w", err)
		return res
	}

	start := time.Now()
	p.logger.Info("load started",
		slog.Int("worker_id", workerID),
		slog.String("table", job.TableName),
		slog.String("file", job.FilePath),
	)

	resp, err := p.load(ctx, job.TableName, job.FilePath)
	res.Latency = time.Since(start)

	if err != nil {
		p.logger.Error("load failed",
			slog.Int("worker_id", workerID),
			slog.String("table", job.TableName),
			slog.String("file", job.FilePath),
			slog.Duration("latency", res.Latency),
			slog.String("error", err.Error()),
		)
		res.Err = err
		return res
	}

	if resp != nil {
		res.DataTokenID = resp.DataTokenId
	}
	p.logger.Info("load completed",
		slog.Int("worker_id", workerID),
		slog.String("table", job.TableName),
		slog.String("file", job.FilePath),
		slog.Duration("latency", res.Latency),
		slog.String("data_token_id", res.DataTokenID),
	)
	return res
}
