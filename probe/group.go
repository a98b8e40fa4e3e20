package probe

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"sync"

	"golang.org/x/sync/errgroup"

	"rivulet"
)

// Finding is one finished measurement, returned by Next in completion order.
type Finding[T any] struct {
	// Label identifies the probe that produced the finding.
	Label string

	// Index is the 1-based position of the detected element, or 0 when the
	// probe did not converge.
	Index int

	// Value is the detected element, or the zero value when the probe did
	// not converge.
	Value T

	// Converged reports whether the predicate broke within the budget.
	Converged bool

	// Err is set when the probe was cancelled or panicked; a spent budget is
	// not an error, only Converged=false.
	Err error
}

var (
	// ErrClosed is returned by Probe when submission happens after Close.
	ErrClosed = errors.New("probe: group is closed")

	// ErrNilSequence is returned by Probe when the sequence is nil.
	ErrNilSequence = errors.New("probe: nil sequence")

	// ErrNilPredicate is returned by Probe when the predicate is nil.
	ErrNilPredicate = errors.New("probe: nil predicate")
)

type nextReply[T any] struct {
	f   Finding[T]
	ok  bool
	err error
}

type probeDoneEvent[T any] struct {
	f Finding[T]
}

type admitCmd struct {
	resp chan error
}

type closeCmd struct {
	resp chan struct{}
}

type nextCmd[T any] struct {
	resp chan nextReply[T]
}

type cancelNextCmd[T any] struct {
	resp chan nextReply[T]
	err  error
}

type firstErrCmd struct {
	resp chan error
}

type managerState[T any] struct {
	closed   bool
	inflight int
	queue    []Finding[T]
	waiters  []chan nextReply[T]
	firstErr error
}

// Group runs probes and exposes finished measurements with Next/Findings.
type Group[T any] struct {
	ctx     context.Context
	baseCtx context.Context
	cancel  context.CancelCauseFunc
	eg      *errgroup.Group
	cfg     config

	cmdCh chan any
	evtCh chan probeDoneEvent[T]

	cancelOnce sync.Once
}

// New creates a new Group.
func New[T any](ctx context.Context, opts ...Option) *Group[T] {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	baseCtx, cancel := context.WithCancelCause(ctx)
	eg, runCtx := errgroup.WithContext(baseCtx)

	if cfg.maxParallel > 0 {
		eg.SetLimit(cfg.maxParallel)
	}

	g := &Group[T]{
		ctx:     runCtx,
		baseCtx: baseCtx,
		cancel:  cancel,
		eg:      eg,
		cfg:     cfg,
		cmdCh:   make(chan any),
		evtCh:   make(chan probeDoneEvent[T]),
	}
	go g.runManager()

	return g
}

// Context returns the group context every probe runs under.
func (g *Group[T]) Context() context.Context {
	return g.ctx
}

// Cancel cancels the group with the given cause. Running probes notice
// between elements and finish with the cause as their finding error.
func (g *Group[T]) Cancel(err error) {
	if err == nil {
		err = context.Canceled
	}
	g.cancelOnce.Do(func() {
		g.cancel(err)
	})
}

// Close seals the group and prevents future Probe calls.
func (g *Group[T]) Close() {
	resp := make(chan struct{}, 1)
	g.cmdCh <- closeCmd{resp: resp}
	<-resp
}

// Probe starts one measurement: it walks seq while the predicate holds and
// records the first element breaking it, inspecting at most limit elements.
// A spent budget yields Converged=false, not an error. limit <= 0 inspects
// nothing.
//
// The sequence runs on its own goroutine but stays a single-threaded pull
// pipeline inside; seq must not share mutable state with other probes.
func (g *Group[T]) Probe(label string, seq iter.Seq[T], while func(T) bool, limit int) error {
	if seq == nil {
		return ErrNilSequence
	}
	if while == nil {
		return ErrNilPredicate
	}

	resp := make(chan error, 1)
	g.cmdCh <- admitCmd{resp: resp}
	if err := <-resp; err != nil {
		return err
	}

	g.eg.Go(func() (retErr error) {
		f := Finding[T]{Label: label}

		defer func() {
			g.evtCh <- probeDoneEvent[T]{f: f}

			if f.Err != nil && g.cfg.failFast {
				g.cancelOnce.Do(func() {
					g.cancel(f.Err)
				})
				retErr = f.Err
			}
		}()

		if g.cfg.panicToError {
			defer func() {
				if r := recover(); r != nil {
					f.Err = fmt.Errorf("probe: panic recovered: %v", r)
				}
			}()
		}

		pt, ok := rivulet.DetectWithin(interruptible(g.ctx, seq), while, limit)
		if cause := context.Cause(g.ctx); cause != nil && !ok {
			f.Err = cause
			return
		}
		f.Index, f.Value, f.Converged = pt.Index, pt.Value, ok
		return
	})

	return nil
}

// Next blocks until one probe finishes, the caller context ends, or the
// group is closed and drained.
func (g *Group[T]) Next(ctx context.Context) (f Finding[T], ok bool, err error) {
	if ctx == nil {
		ctx = context.Background()
	}

	resp := make(chan nextReply[T], 1)
	g.cmdCh <- nextCmd[T]{resp: resp}

	stopCancelWatcher := make(chan struct{})
	if done := ctx.Done(); done != nil {
		go func() {
			select {
			case <-done:
				g.cmdCh <- cancelNextCmd[T]{resp: resp, err: ctx.Err()}
			case <-stopCancelWatcher:
			}
		}()
	}

	reply := <-resp
	close(stopCancelWatcher)
	return reply.f, reply.ok, reply.err
}

// Findings adapts Next(ctx) into a range-friendly channel.
//
// Findings observes probe completion in the same order as Next. The returned
// channel closes when:
//   - Next(ctx) returns ok=false (group closed and drained), or
//   - Next(ctx) returns err!=nil (typically caller context ended).
//
// Findings never calls Close, Cancel, or Wait. Group lifecycle remains
// owner-managed.
func (g *Group[T]) Findings(ctx context.Context) <-chan Finding[T] {
	if ctx == nil {
		ctx = context.Background()
	}

	out := make(chan Finding[T])
	go func() {
		defer close(out)
		for {
			f, ok, err := g.Next(ctx)
			if err != nil || !ok {
				return
			}

			select {
			case out <- f:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out
}

// Wait waits for all started probes and returns the first observed probe
// error, even when fail-fast is off.
func (g *Group[T]) Wait() error {
	waitErr := g.eg.Wait()
	firstErr := g.getFirstErr()

	if firstErr != nil {
		return firstErr
	}
	if waitErr != nil {
		return waitErr
	}
	return context.Cause(g.baseCtx)
}

func (g *Group[T]) getFirstErr() error {
	resp := make(chan error, 1)
	g.cmdCh <- firstErrCmd{resp: resp}
	return <-resp
}

func (g *Group[T]) runManager() {
	state := managerState[T]{
		queue:   make([]Finding[T], 0, g.cfg.findingBuffer),
		waiters: make([]chan nextReply[T], 0),
	}

	for {
		select {
		case raw := <-g.cmdCh:
			switch cmd := raw.(type) {
			case admitCmd:
				if state.closed {
					cmd.resp <- ErrClosed
					continue
				}
				state.inflight++
				cmd.resp <- nil

			case closeCmd:
				state.closed = true
				g.drainIfTerminal(&state)
				cmd.resp <- struct{}{}

			case nextCmd[T]:
				if len(state.queue) > 0 {
					f := state.queue[0]
					state.queue = state.queue[1:]
					cmd.resp <- nextReply[T]{f: f, ok: true}
					continue
				}
				if state.closed && state.inflight == 0 {
					cmd.resp <- nextReply[T]{ok: false}
					continue
				}
				state.waiters = append(state.waiters, cmd.resp)

			case cancelNextCmd[T]:
				idx := indexOfWaiter(state.waiters, cmd.resp)
				if idx == -1 {
					continue
				}
				state.waiters = removeWaiter(state.waiters, idx)
				cmd.resp <- nextReply[T]{ok: false, err: cmd.err}

			case firstErrCmd:
				cmd.resp <- state.firstErr
			}

		case evt := <-g.evtCh:
			if state.firstErr == nil && evt.f.Err != nil {
				state.firstErr = evt.f.Err
			}
			if state.inflight > 0 {
				state.inflight--
			}

			if len(state.waiters) > 0 {
				waiter := state.waiters[0]
				state.waiters = state.waiters[1:]
				waiter <- nextReply[T]{f: evt.f, ok: true}
			} else {
				state.queue = append(state.queue, evt.f)
			}
			g.drainIfTerminal(&state)
		}
	}
}

func (g *Group[T]) drainIfTerminal(state *managerState[T]) {
	if !state.closed || state.inflight != 0 || len(state.queue) != 0 {
		return
	}
	for _, waiter := range state.waiters {
		waiter <- nextReply[T]{ok: false}
	}
	state.waiters = state.waiters[:0]
}

func indexOfWaiter[T any](waiters []chan nextReply[T], target chan nextReply[T]) int {
	for i, waiter := range waiters {
		if waiter == target {
			return i
		}
	}
	return -1
}

func removeWaiter[T any](waiters []chan nextReply[T], idx int) []chan nextReply[T] {
	copy(waiters[idx:], waiters[idx+1:])
	waiters[len(waiters)-1] = nil
	return waiters[:len(waiters)-1]
}

// interruptible ends the sequence early once ctx is cancelled, checking
// between elements so a long search notices cancellation without the
// pipeline itself knowing about contexts.
func interruptible[T any](ctx context.Context, seq iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		done := ctx.Done()
		for v := range seq {
			select {
			case <-done:
				return
			default:
			}
			if !yield(v) {
				return
			}
		}
	}
}
