package decorator

import (
	"github.com/sasha-s/go-deadlock"
	"go.uber.org/atomic"

	"github.com/ARM-software/golang-underbar/logs"
)

// OnceFunction is a function which can only be called once. Subsequent calls return the result of the first call
// without invoking the function again.
type OnceFunction[A, R any] struct {
	mu     deadlock.Mutex
	fn     func(args ...A) R
	called *atomic.Bool
	result R
	opts   *options
}

// Once wraps fn so that it is invoked at most once, even when called concurrently.
// fn is marked as called even if it panics in which case later calls return the zero value.
// fn must not call the wrapper itself.
func Once[A, R any](fn func(args ...A) R, opts ...Option) *OnceFunction[A, R] {
	return &OnceFunction[A, R]{
		fn:     fn,
		called: atomic.NewBool(false),
		opts:   newOptions(opts...),
	}
}

// Call invokes the wrapped function with args on the first call and returns its result on every call.
func (o *OnceFunction[A, R]) Call(args ...A) R {
	defer o.mu.Unlock()
	o.mu.Lock()
	if o.called.Load() {
		o.opts.debug().Info("function already called", logs.KeyDecorator, "once")
		return o.result
	}
	o.called.Store(true)
	if o.fn != nil {
		o.result = o.fn(args...)
	}
	return o.result
}

// Func returns the wrapper as a plain function.
func (o *OnceFunction[A, R]) Func() func(args ...A) R {
	return o.Call
}

// Called states whether the wrapper was already called.
func (o *OnceFunction[A, R]) Called() bool {
	return o.called.Load()
}
