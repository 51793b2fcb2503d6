// Package worker implements the buffered worker pool for view events.
// Publishing from request handlers never blocks:
// - Backpressure handling via load shedding
// - Batched writes to the analytics sink
// - Graceful shutdown with flush guarantees

package worker

import (
	"context"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"

	"github.com/bracketlab/bracket-stats/internal/models"
)

// Prometheus metrics
var (
	eventsEnqueued = promauto.NewCounter(prometheus.CounterOpts{
		Name: "bracket_view_events_enqueued_total",
		Help: "Total number of view events accepted into the queue",
	})

	eventsProcessed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "bracket_view_events_processed_total",
		Help: "Total number of view events written by workers",
	})

	eventsFailed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "bracket_view_events_failed_total",
		Help: "Total number of view events that failed to write",
	})

	queueDepth = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "bracket_view_events_queue_depth",
		Help: "Current depth of the view event queue",
	})

	flushDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "bracket_view_events_flush_duration_seconds",
		Help:    "Duration of batch writes to the event sink",
		Buckets: prometheus.DefBuckets,
	})

	eventsLoadShed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "bracket_view_events_load_shed_total",
		Help: "Total number of view events dropped due to load shedding",
	})
)

// Sink persists batches of view events
type Sink interface {
	WriteBatch(ctx context.Context, events []models.ViewEvent) error
}

// Job represents a unit of work for the worker pool
type Job struct {
	Event     models.ViewEvent
	Timestamp time.Time
}

// PoolConfig configures the worker pool
type PoolConfig struct {
	WorkerCount   int
	QueueSize     int
	BatchSize     int
	FlushInterval time.Duration
	Sink          Sink
	Logger        *zap.Logger
}

// Pool manages a pool of workers writing view events in batches
type Pool struct {
	config   PoolConfig
	jobQueue chan Job
	wg       sync.WaitGroup
	ctx      context.Context
	cancel   context.CancelFunc
	mu       sync.RWMutex
	stopped  bool
	logger   *zap.SugaredLogger
}

// NewPool creates a new worker pool
func NewPool(cfg PoolConfig) *Pool {
	if cfg.WorkerCount <= 0 {
		cfg.WorkerCount = 2
	}
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = 1000
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 100
	}
	if cfg.FlushInterval <= 0 {
		cfg.FlushInterval = time.Second
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}

	return &Pool{
		config:   cfg,
		jobQueue: make(chan Job, cfg.QueueSize),
		logger:   cfg.Logger.Sugar(),
	}
}

// Start launches the worker goroutines
func (p *Pool) Start(ctx context.Context) {
	p.ctx, p.cancel = context.WithCancel(ctx)

	for i := 0; i < p.config.WorkerCount; i++ {
		p.wg.Add(1)
		go p.worker(i)
	}

	go p.reportQueueDepth()

	p.logger.Infow("Worker pool started",
		"workers", p.config.WorkerCount,
		"queueSize", p.config.QueueSize,
		"batchSize", p.config.BatchSize,
	)
}

// Stop closes the queue and waits for workers to flush what they hold
func (p *Pool) Stop() {
	p.logger.Info("Stopping worker pool...")

	p.mu.Lock()
	if p.stopped {
		p.mu.Unlock()
		return
	}
	p.stopped = true
	close(p.jobQueue)
	p.mu.Unlock()

	p.wg.Wait()
	if p.cancel != nil {
		p.cancel()
	}
	p.logger.Info("Worker pool stopped")
}

// Enqueue adds an event to the queue. Returns false without blocking when
// the queue is full or the pool is stopped.
func (p *Pool) Enqueue(event models.ViewEvent) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.stopped {
		eventsLoadShed.Inc()
		return false
	}

	select {
	case p.jobQueue <- Job{Event: event, Timestamp: time.Now()}:
		eventsEnqueued.Inc()
		return true
	default:
		p.logger.Warnw("View event queue full, dropping event", "kind", event.Kind, "view", event.ViewID)
		eventsLoadShed.Inc()
		return false
	}
}

// Publish satisfies viewstate.EventPublisher
func (p *Pool) Publish(event models.ViewEvent) bool {
	return p.Enqueue(event)
}

// QueueDepth returns current queue size
func (p *Pool) QueueDepth() int {
	return len(p.jobQueue)
}

// worker processes jobs from the queue in batches
func (p *Pool) worker(id int) {
	defer p.wg.Done()

	batch := make([]Job, 0, p.config.BatchSize)
	ticker := time.NewTicker(p.config.FlushInterval)
	defer ticker.Stop()

	flush := func() {
		if len(batch) == 0 {
			return
		}

		start := time.Now()
		if err := p.processBatch(batch); err != nil {
			p.logger.Errorw("Batch processing failed",
				"worker", id,
				"batchSize", len(batch),
				"error", err,
			)
			eventsFailed.Add(float64(len(batch)))
		} else {
			p.logger.Debugw("Batch processed", "worker", id, "batchSize", len(batch), "duration", time.Since(start))
			eventsProcessed.Add(float64(len(batch)))
		}
		flushDuration.Observe(time.Since(start).Seconds())

		batch = batch[:0]
	}

	for {
		select {
		case job, ok := <-p.jobQueue:
			if !ok {
				flush()
				return
			}

			batch = append(batch, job)
			if len(batch) >= p.config.BatchSize {
				flush()
			}

		case <-ticker.C:
			flush()

		case <-p.ctx.Done():
			flush()
			return
		}
	}
}

// processBatch hands a batch to the sink
func (p *Pool) processBatch(batch []Job) error {
	if len(batch) == 0 || p.config.Sink == nil {
		return nil
	}

	events := make([]models.ViewEvent, len(batch))
	for i, job := range batch {
		events[i] = job.Event
	}

	// The pool context may already be canceled during the final flush
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return p.config.Sink.WriteBatch(ctx, events)
}

func (p *Pool) reportQueueDepth() {
	ticker := time.NewTicker(5 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			queueDepth.Set(float64(len(p.jobQueue)))
		case <-p.ctx.Done():
			return
		}
	}
}
