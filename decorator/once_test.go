package decorator

import (
	"sync"
	"testing"

	"github.com/go-faker/faker/v4"
	"github.com/stretchr/testify/assert"
	"go.uber.org/atomic"
	"go.uber.org/goleak"

	"github.com/ARM-software/golang-underbar/logs/logstest"
)

func TestOnce(t *testing.T) {
	calls := 0
	first := faker.Word()
	greet := Once(func(names ...string) string {
		calls++
		return "hello " + names[0]
	})
	assert.False(t, greet.Called())
	assert.Equal(t, "hello "+first, greet.Call(first))
	assert.True(t, greet.Called())
	assert.Equal(t, "hello "+first, greet.Call(faker.Name()))
	assert.Equal(t, "hello "+first, greet.Func()())
	assert.Equal(t, 1, calls)
}

func TestOnce_Concurrent(t *testing.T) {
	defer goleak.VerifyNone(t)
	counter := atomic.NewInt32(0)
	increment := Once(func(_ ...int) int32 {
		return counter.Inc()
	}, WithLogger(logstest.NewTestLogger(t)))
	wg := sync.WaitGroup{}
	results := make([]int32, 50)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = increment.Call(i)
		}(i)
	}
	wg.Wait()
	assert.Equal(t, int32(1), counter.Load())
	for i := range results {
		assert.Equal(t, int32(1), results[i])
	}
}

func TestOnce_Panic(t *testing.T) {
	calls := 0
	explode := Once(func(_ ...int) int {
		calls++
		panic("boom")
	})
	assert.Panics(t, func() { explode.Call() })
	assert.True(t, explode.Called())
	assert.NotPanics(t, func() { assert.Zero(t, explode.Call()) })
	assert.Equal(t, 1, calls)
}

func TestOnce_Nil(t *testing.T) {
	var fn func(...int) string
	o := Once(fn)
	assert.Empty(t, o.Call(1))
	assert.True(t, o.Called())
}
