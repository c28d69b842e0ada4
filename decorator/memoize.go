package decorator

import (
	"fmt"
	"math"
	"math/cmplx"
	"reflect"

	"github.com/go-logr/logr"
	"github.com/sasha-s/go-deadlock"
	"golang.org/x/exp/constraints"

	"github.com/ARM-software/golang-underbar/commonerrors"
	"github.com/ARM-software/golang-underbar/logs"
)

// Primitive describes the types of arguments memoized functions can be keyed on.
type Primitive interface {
	constraints.Integer | constraints.Float | constraints.Complex | ~string | ~bool
}

// nanKey stands for NaN, which is never equal to itself, so that all NaN arguments of a same type share a cache entry.
type nanKey struct {
	t reflect.Type
}

type resultCache[R any] struct {
	mu      deadlock.RWMutex
	entries map[any]R
	logger  logr.Logger
}

func newResultCache[R any](logger logr.Logger) *resultCache[R] {
	return &resultCache[R]{
		entries: make(map[any]R),
		logger:  logger,
	}
}

// get returns the cached result for key or computes it using compute. compute is called without holding the lock so that
// recursive memoized functions can call themselves. If results are computed concurrently for the same key, the first one stored wins.
func (c *resultCache[R]) get(key any, compute func() R) R {
	c.mu.RLock()
	result, found := c.entries[key]
	c.mu.RUnlock()
	if found {
		c.logger.Info("cache hit", logs.KeyArgument, key)
		return result
	}
	c.logger.Info("cache miss", logs.KeyArgument, key)
	computed := compute()
	defer c.mu.Unlock()
	c.mu.Lock()
	if result, found = c.entries[key]; found {
		return result
	}
	c.entries[key] = computed
	return computed
}

func (c *resultCache[R]) len() int {
	defer c.mu.RUnlock()
	c.mu.RLock()
	return len(c.entries)
}

func (c *resultCache[R]) forget(key any) {
	defer c.mu.Unlock()
	c.mu.Lock()
	delete(c.entries, key)
}

// cacheKey returns the key under which the result for arg is cached: the argument itself, including its dynamic type,
// so that e.g. int(1) and int64(1) are cached separately.
func cacheKey(arg any) (any, error) {
	if arg == nil {
		return nil, commonerrors.New(commonerrors.ErrUnsupported, "cannot memoize a nil argument")
	}
	v := reflect.ValueOf(arg)
	switch v.Kind() {
	case reflect.Bool, reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return arg, nil
	case reflect.Float32, reflect.Float64:
		if math.IsNaN(v.Float()) {
			return nanKey{t: v.Type()}, nil
		}
		return arg, nil
	case reflect.Complex64, reflect.Complex128:
		if cmplx.IsNaN(v.Complex()) {
			return nanKey{t: v.Type()}, nil
		}
		return arg, nil
	default:
		return nil, commonerrors.Newf(commonerrors.ErrUnsupported, "cannot memoize an argument of type %T", arg)
	}
}

// Memoized is a function caching its results by argument.
type Memoized[A Primitive, R any] struct {
	fn    func(A) R
	cache *resultCache[R]
}

// Memoize wraps fn so that it is only invoked once per distinct argument. Results are cached for the lifetime of the wrapper.
// Arguments are compared by value; NaN arguments share a single entry.
func Memoize[A Primitive, R any](fn func(A) R, opts ...Option) *Memoized[A, R] {
	o := newOptions(opts...)
	return &Memoized[A, R]{
		fn:    fn,
		cache: newResultCache[R](o.debug().WithValues(logs.KeyDecorator, "memoize")),
	}
}

func (m *Memoized[A, R]) key(arg A) any {
	key, err := cacheKey(arg)
	if err != nil {
		// unreachable for primitive types
		panic(fmt.Sprintf("unexpected memoization key error: %v", err))
	}
	return key
}

// Call returns the result of the wrapped function for arg, computing it on the first call for that argument only.
func (m *Memoized[A, R]) Call(arg A) R {
	return m.cache.get(m.key(arg), func() (result R) {
		if m.fn != nil {
			result = m.fn(arg)
		}
		return
	})
}

// Func returns the wrapper as a plain function.
func (m *Memoized[A, R]) Func() func(A) R {
	return m.Call
}

// Len returns the number of cached results.
func (m *Memoized[A, R]) Len() int {
	return m.cache.len()
}

// Forget removes the cached result for arg, if any.
func (m *Memoized[A, R]) Forget(arg A) {
	m.cache.forget(m.key(arg))
}

// MemoizedAny is similar to Memoized but accepts arguments of any primitive type determined at runtime.
type MemoizedAny[R any] struct {
	fn    func(any) R
	cache *resultCache[R]
}

// MemoizeAny wraps fn so that it is only invoked once per distinct argument. Arguments of different types are cached separately
// and arguments which are not of a primitive kind (e.g. slices, maps, structures or nil) are rejected.
func MemoizeAny[R any](fn func(any) R, opts ...Option) *MemoizedAny[R] {
	o := newOptions(opts...)
	return &MemoizedAny[R]{
		fn:    fn,
		cache: newResultCache[R](o.debug().WithValues(logs.KeyDecorator, "memoize")),
	}
}

// Call returns the result of the wrapped function for arg. commonerrors.ErrUnsupported is returned if arg cannot be used as a cache key.
func (m *MemoizedAny[R]) Call(arg any) (result R, err error) {
	key, err := cacheKey(arg)
	if err != nil {
		return
	}
	result = m.cache.get(key, func() (r R) {
		if m.fn != nil {
			r = m.fn(arg)
		}
		return
	})
	return
}

func (m *MemoizedAny[R]) Len() int {
	return m.cache.len()
}

func (m *MemoizedAny[R]) Forget(arg any) {
	key, err := cacheKey(arg)
	if err == nil {
		m.cache.forget(key)
	}
}
