package decorator

import (
	"context"
	"slices"
	"time"

	"github.com/go-logr/logr"
	"github.com/sasha-s/go-deadlock"
	"go.uber.org/atomic"

	"github.com/ARM-software/golang-underbar/commonerrors"
	"github.com/ARM-software/golang-underbar/logs"
)

const (
	delayPending int32 = iota
	delayFired
	delayCancelled
)

// DelayHandle controls a delayed call.
type DelayHandle struct {
	mu           deadlock.Mutex
	timer        *time.Timer
	stopWatching func() bool
	state        *atomic.Int32
	done         chan struct{}
	logger       logr.Logger
}

// Delay schedules a single call of fn with args after wait has elapsed and returns immediately.
// The call happens on its own goroutine. It does not happen if the handle is cancelled or if ctx is done before wait elapses.
func Delay[A any](ctx context.Context, fn func(args ...A), wait time.Duration, args ...A) *DelayHandle {
	return DelayWithLogger(ctx, logs.NewNoopLogger(), fn, wait, args...)
}

// DelayWithLogger is similar to Delay but reports panics raised by fn to logger.
func DelayWithLogger[A any](ctx context.Context, logger logr.Logger, fn func(args ...A), wait time.Duration, args ...A) *DelayHandle {
	h := &DelayHandle{
		state:  atomic.NewInt32(delayPending),
		done:   make(chan struct{}),
		logger: logger.WithValues(logs.KeyDecorator, "delay", logs.KeyWait, wait),
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if commonerrors.ErrFromContext(ctx) != nil {
		h.Cancel()
		return h
	}
	arguments := slices.Clone(args)
	defer h.mu.Unlock()
	h.mu.Lock()
	h.timer = time.AfterFunc(max(wait, 0), func() {
		h.fire(func() {
			if fn != nil {
				fn(arguments...)
			}
		})
	})
	h.stopWatching = context.AfterFunc(ctx, func() {
		if h.Cancel() {
			h.logger.V(DefaultVerbosity).Info("delayed call cancelled by context")
		}
	})
	return h
}

func (h *DelayHandle) fire(call func()) {
	if !h.state.CompareAndSwap(delayPending, delayFired) {
		return
	}
	h.release(false)
	defer close(h.done)
	defer func() {
		if r := recover(); r != nil {
			h.logger.Error(commonerrors.Newf(commonerrors.ErrUnexpected, "%v", r), "delayed function panicked")
		}
	}()
	call()
}

func (h *DelayHandle) release(stopTimer bool) {
	defer h.mu.Unlock()
	h.mu.Lock()
	if stopTimer && h.timer != nil {
		h.timer.Stop()
	}
	if h.stopWatching != nil {
		h.stopWatching()
	}
}

// Cancel prevents the delayed call from happening and returns whether it did so.
// It is safe to call at any time: cancelling a call which already happened or was already cancelled does nothing.
func (h *DelayHandle) Cancel() bool {
	if !h.state.CompareAndSwap(delayPending, delayCancelled) {
		return false
	}
	h.release(true)
	close(h.done)
	return true
}

// Fired states whether the delayed call happened or is happening.
func (h *DelayHandle) Fired() bool {
	return h.state.Load() == delayFired
}

// Cancelled states whether the delayed call was cancelled.
func (h *DelayHandle) Cancelled() bool {
	return h.state.Load() == delayCancelled
}

// Done returns a channel closed once the delayed call has returned or was cancelled.
func (h *DelayHandle) Done() <-chan struct{} {
	return h.done
}

// Wait blocks until the delayed call has returned or was cancelled, or until ctx is done.
func (h *DelayHandle) Wait(ctx context.Context) error {
	select {
	case <-h.done:
		return nil
	case <-ctx.Done():
		return commonerrors.ErrFromContext(ctx)
	}
}
