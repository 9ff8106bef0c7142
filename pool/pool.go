// Package pool provides a fixed-size worker pool driving a single task
// function over an MPMC queue, grounded on this module's own queue
// package the way a pipeline connector composes a bounded worker
// semaphore over a task channel, and on golang.org/x/sync/errgroup for
// joining every worker on shutdown.
package pool

import (
	"context"
	"errors"

	uberatomic "go.uber.org/atomic"
	"golang.org/x/sync/errgroup"

	"github.com/vantacore/corelib/internal/spin"
	"github.com/vantacore/corelib/queue"
)

// ErrInvalidThreadCount is returned by New when worker_count <= 0.
var ErrInvalidThreadCount = errors.New("pool: worker_count must be > 0")

// ErrInvalidQueueCapacity is returned by New when queue_capacity <= 0.
var ErrInvalidQueueCapacity = errors.New("pool: queue_capacity must be > 0")

// Options configures a Pool.
type Options struct {
	WorkerCount   int
	QueueCapacity int
}

// Pool runs worker_count goroutines, each repeatedly dequeuing an Args
// value and invoking Task on it, until Close is called. Task is assumed
// not to error: F's contract places error handling on the caller.
type Pool[Args any] struct {
	task     func(Args)
	q        *queue.MPMC[Args]
	stop     uberatomic.Bool
	inFlight uberatomic.Int64
	group    *errgroup.Group
	onPanic  func(recovered any)
}

// New spawns a Pool with the given options, immediately starting
// opts.WorkerCount worker goroutines.
func New[Args any](task func(Args), opts Options) (*Pool[Args], error) {
	if opts.WorkerCount <= 0 {
		return nil, ErrInvalidThreadCount
	}
	if opts.QueueCapacity <= 0 {
		return nil, ErrInvalidQueueCapacity
	}

	p := &Pool[Args]{
		task:  task,
		q:     queue.NewMPMC[Args](opts.QueueCapacity),
		group: &errgroup.Group{},
	}

	for i := 0; i < opts.WorkerCount; i++ {
		p.group.Go(func() error {
			p.workerLoop()
			return nil
		})
	}

	return p, nil
}

// OnPanic installs a hook invoked (with the recovered value) if a task
// panics. Without a hook, a panicking task crashes the process, matching
// Go's default behavior for an uncaught goroutine panic.
func (p *Pool[Args]) OnPanic(fn func(recovered any)) {
	p.onPanic = fn
}

func (p *Pool[Args]) workerLoop() {
	var sw spin.Wait
	for {
		args, err := p.q.TryDequeue()
		if err == nil {
			p.runTask(args)
			sw.Reset()
			continue
		}
		if p.stop.Load() {
			return
		}
		sw.Once()
	}
}

func (p *Pool[Args]) runTask(args Args) {
	p.inFlight.Inc()
	defer p.inFlight.Dec()
	defer func() {
		if r := recover(); r != nil && p.onPanic != nil {
			p.onPanic(r)
		}
	}()
	p.task(args)
}

// Spawn attempts to enqueue args without blocking. Returns false if the
// queue is full.
func (p *Pool[Args]) Spawn(args Args) bool {
	return p.q.TryEnqueue(&args) == nil
}

// SpawnBlocking enqueues args, blocking until there is room.
func (p *Pool[Args]) SpawnBlocking(args Args) {
	p.q.Enqueue(&args)
}

// SpawnContext enqueues args, blocking until there is room or ctx is
// done, whichever comes first.
func (p *Pool[Args]) SpawnContext(ctx context.Context, args Args) error {
	var sw spin.Wait
	for {
		if p.q.TryEnqueue(&args) == nil {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
			sw.Once()
		}
	}
}

// IsEmpty reports whether the queue is approximately empty.
func (p *Pool[Args]) IsEmpty() bool {
	return p.q.Empty()
}

// Close sets the stop flag and waits for every worker to observe it and
// exit. A worker checks the stop flag only when its dequeue finds the
// queue empty, so tasks still queued when Close is called are run before
// the workers exit.
func (p *Pool[Args]) Close() {
	p.stop.Store(true)
	_ = p.group.Wait()
}
