package decorator

import (
	"context"
	"slices"
	"time"

	"github.com/sasha-s/go-deadlock"
	"go.uber.org/atomic"

	"github.com/ARM-software/golang-underbar/logs"
)

// Throttled is a function which is invoked at most once per wait window however often it is called.
type Throttled[A any] struct {
	mu          deadlock.Mutex
	fn          func(args ...A)
	wait        time.Duration
	opts        *options
	previous    time.Time
	pending     *DelayHandle
	pendingArgs []A
	generation  uint64
	invocations *atomic.Uint64
}

// Throttle wraps fn so that, when called repeatedly, fn is invoked at most once per wait duration.
// By default, the first call invokes fn straight away (leading edge) and calls made during the wait window result in a single
// call at the end of the window with the latest arguments (trailing edge). Both edges can be disabled using WithLeading and WithTrailing.
func Throttle[A any](fn func(args ...A), wait time.Duration, opts ...Option) *Throttled[A] {
	return &Throttled[A]{
		fn:          fn,
		wait:        max(wait, 0),
		opts:        newOptions(opts...),
		invocations: atomic.NewUint64(0),
	}
}

// ThrottleWithConfiguration is similar to Throttle but takes its wait window and edges from cfg.
func ThrottleWithConfiguration[A any](fn func(args ...A), cfg *Configuration, opts ...Option) *Throttled[A] {
	if cfg == nil {
		cfg = DefaultConfiguration()
	}
	return Throttle(fn, cfg.ThrottleWait, append([]Option{WithConfiguration(cfg)}, opts...)...)
}

// Call invokes fn with args if no invocation happened in the current wait window. Otherwise, the trailing call is scheduled if enabled.
func (t *Throttled[A]) Call(args ...A) {
	t.mu.Lock()
	now := time.Now()
	if t.previous.IsZero() && !t.opts.leading {
		t.previous = now
	}
	remaining := t.wait - now.Sub(t.previous)
	if remaining <= 0 || remaining > t.wait {
		t.dropPending()
		t.previous = now
		t.mu.Unlock()
		t.invoke(args)
		return
	}
	defer t.mu.Unlock()
	if !t.opts.trailing {
		t.opts.debug().Info("call dropped", logs.KeyDecorator, "throttle", logs.KeyWait, remaining)
		return
	}
	t.pendingArgs = slices.Clone(args)
	if t.pending == nil {
		generation := t.generation
		t.pending = DelayWithLogger(context.Background(), t.opts.logger, func(...A) { t.trailingCall(generation) }, remaining)
	}
}

func (t *Throttled[A]) trailingCall(generation uint64) {
	t.mu.Lock()
	if generation != t.generation {
		t.mu.Unlock()
		return
	}
	if t.opts.leading {
		t.previous = time.Now()
	} else {
		t.previous = time.Time{}
	}
	args := t.pendingArgs
	t.pending = nil
	t.pendingArgs = nil
	t.generation++
	t.mu.Unlock()
	t.invoke(args)
}

// dropPending must be called with the lock held.
func (t *Throttled[A]) dropPending() {
	if t.pending != nil {
		t.pending.Cancel()
	}
	t.pending = nil
	t.pendingArgs = nil
	t.generation++
}

func (t *Throttled[A]) invoke(args []A) {
	t.invocations.Inc()
	if t.fn != nil {
		t.fn(args...)
	}
}

// Cancel drops any pending trailing call and resets the wait window.
func (t *Throttled[A]) Cancel() {
	defer t.mu.Unlock()
	t.mu.Lock()
	t.dropPending()
	t.previous = time.Time{}
}

// Func returns the wrapper as a plain function.
func (t *Throttled[A]) Func() func(args ...A) {
	return t.Call
}

// Invocations returns how many times fn was invoked.
func (t *Throttled[A]) Invocations() uint64 {
	return t.invocations.Load()
}
