// Package service serializes block submissions onto a single runtime owner.
package service

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"github.com/danmuck/palletctl/internal/runtime"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var (
	ErrServiceStopped = errors.New("service: stopped")
	ErrInvalidDepth   = errors.New("service: invalid queue depth")
	ErrAlreadyRunning = errors.New("service: already running")
)

const DefaultQueueDepth = 16

// Config configures the submission queue.
type Config struct {
	QueueDepth int
}

func DefaultConfig() Config {
	return Config{QueueDepth: DefaultQueueDepth}
}

// Result is the outcome of one submitted block.
type Result struct {
	Receipt runtime.BlockReceipt
	Err     error
}

const (
	submissionPending int32 = iota
	submissionTaken
	submissionCanceled
)

// submission carries either a block or a function to run on the runtime owner.
// Exactly one of Run (taken) or the submitter (canceled) wins the state.
type submission struct {
	ctx   context.Context
	block runtime.Block
	fn    func(*runtime.Runtime)
	reply chan Result
	state *atomic.Int32
}

func newSubmission(ctx context.Context) submission {
	return submission{ctx: ctx, reply: make(chan Result, 1), state: new(atomic.Int32)}
}

// take claims sub for execution. It fails once the submitter has given up.
func (sub submission) take() bool {
	if sub.ctx.Err() != nil {
		sub.state.CompareAndSwap(submissionPending, submissionCanceled)
		return false
	}
	return sub.state.CompareAndSwap(submissionPending, submissionTaken)
}

// cancel withdraws sub. It fails if Run already took it.
func (sub submission) cancel() bool {
	return sub.state.CompareAndSwap(submissionPending, submissionCanceled) ||
		sub.state.Load() == submissionCanceled
}

// Service owns a runtime. Only the Run goroutine touches it, so blocks are
// applied one at a time in submission order.
type Service struct {
	rt     *runtime.Runtime
	cfg    Config
	queue  chan submission
	done   chan struct{}
	logger zerolog.Logger

	mu      sync.Mutex
	running bool
}

func New(rt *runtime.Runtime) (*Service, error) {
	return NewWithConfig(rt, DefaultConfig())
}

func NewWithConfig(rt *runtime.Runtime, cfg Config) (*Service, error) {
	if cfg.QueueDepth <= 0 {
		return nil, ErrInvalidDepth
	}
	return &Service{
		rt:     rt,
		cfg:    cfg,
		queue:  make(chan submission, cfg.QueueDepth),
		done:   make(chan struct{}),
		logger: log.Logger.With().Str("component", "service").Logger(),
	}, nil
}

// Run applies queued blocks until ctx ends. It may be called once.
func (s *Service) Run(ctx context.Context) error {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return ErrAlreadyRunning
	}
	s.running = true
	s.mu.Unlock()
	defer close(s.done)

	s.logger.Info().Int("queue_depth", s.cfg.QueueDepth).Msg("service_started")
	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("service_stopped")
			return nil
		case sub := <-s.queue:
			if !sub.take() {
				s.logger.Debug().Err(sub.ctx.Err()).Msg("submission_skipped")
				continue
			}
			if sub.fn != nil {
				sub.fn(s.rt)
				sub.reply <- Result{}
				continue
			}
			receipt, err := s.rt.ExecuteBlock(sub.block)
			sub.reply <- Result{Receipt: receipt, Err: err}
		}
	}
}

// Submit queues block and waits for its result. A block whose ctx ends
// while it is still queued is never applied; once taken it runs to completion
// and Submit reports its real outcome.
func (s *Service) Submit(ctx context.Context, block runtime.Block) (runtime.BlockReceipt, error) {
	sub := newSubmission(ctx)
	sub.block = block
	res := s.enqueue(sub)
	return res.Receipt, res.Err
}

// Do runs fn on the runtime owner between blocks, for reads or genesis writes.
func (s *Service) Do(ctx context.Context, fn func(*runtime.Runtime)) error {
	if fn == nil {
		return nil
	}
	sub := newSubmission(ctx)
	sub.fn = fn
	return s.enqueue(sub).Err
}

func (s *Service) enqueue(sub submission) Result {
	select {
	case <-sub.ctx.Done():
		return Result{Err: sub.ctx.Err()}
	case <-s.done:
		return Result{Err: ErrServiceStopped}
	case s.queue <- sub:
	}

	select {
	case res := <-sub.reply:
		return res
	case <-s.done:
		if sub.cancel() {
			return Result{Err: ErrServiceStopped}
		}
		return <-sub.reply
	case <-sub.ctx.Done():
		if sub.cancel() {
			return Result{Err: sub.ctx.Err()}
		}
		return <-sub.reply
	}
}
