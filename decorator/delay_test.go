package decorator

import (
	"context"
	"testing"
	"time"

	"github.com/go-faker/faker/v4"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/atomic"
	"go.uber.org/goleak"

	"github.com/ARM-software/golang-underbar/commonerrors"
	"github.com/ARM-software/golang-underbar/commonerrors/errortest"
	"github.com/ARM-software/golang-underbar/logs/logstest"
)

func TestDelay(t *testing.T) {
	defer goleak.VerifyNone(t)
	received := make(chan []string, 1)
	args := []string{faker.Word(), faker.Word()}
	start := time.Now()
	h := Delay(context.Background(), func(a ...string) {
		received <- a
	}, 50*time.Millisecond, args...)
	assert.False(t, h.Fired())
	args[0] = "changed"
	require.NoError(t, h.Wait(context.Background()))
	assert.GreaterOrEqual(t, time.Since(start), 50*time.Millisecond)
	assert.True(t, h.Fired())
	assert.False(t, h.Cancelled())
	result := <-received
	assert.Len(t, result, 2)
	assert.NotEqual(t, "changed", result[0])
	assert.False(t, h.Cancel())
	assert.True(t, h.Fired())
}

func TestDelay_NonBlocking(t *testing.T) {
	defer goleak.VerifyNone(t)
	called := atomic.NewBool(false)
	start := time.Now()
	h := Delay(context.Background(), func(...int) { called.Store(true) }, time.Hour)
	assert.Less(t, time.Since(start), time.Minute)
	assert.False(t, called.Load())
	assert.True(t, h.Cancel())
}

func TestDelay_Cancel(t *testing.T) {
	defer goleak.VerifyNone(t)
	called := atomic.NewBool(false)
	h := Delay(context.Background(), func(...int) { called.Store(true) }, 50*time.Millisecond, 1)
	assert.True(t, h.Cancel())
	assert.False(t, h.Cancel())
	assert.True(t, h.Cancelled())
	select {
	case <-h.Done():
	default:
		assert.Fail(t, "handle should be done")
	}
	time.Sleep(100 * time.Millisecond)
	assert.False(t, called.Load())
	assert.False(t, h.Fired())
}

func TestDelay_ContextCancellation(t *testing.T) {
	defer goleak.VerifyNone(t)
	called := atomic.NewBool(false)
	ctx, cancel := context.WithCancel(context.Background())
	h := Delay(ctx, func(...int) { called.Store(true) }, 200*time.Millisecond)
	cancel()
	<-h.Done()
	assert.True(t, h.Cancelled())
	assert.False(t, h.Cancel())

	h = Delay(ctx, func(...int) { called.Store(true) }, 0)
	assert.True(t, h.Cancelled())
	time.Sleep(50 * time.Millisecond)
	assert.False(t, called.Load())
}

func TestDelay_ZeroWait(t *testing.T) {
	defer goleak.VerifyNone(t)
	counter := atomic.NewInt32(0)
	h := Delay(context.Background(), func(values ...int32) { counter.Add(values[0]) }, -time.Second, 5)
	<-h.Done()
	assert.Equal(t, int32(5), counter.Load())
	h = Delay[int](context.Background(), nil, 0)
	<-h.Done()
	assert.True(t, h.Fired())
}

func TestDelay_Panic(t *testing.T) {
	defer goleak.VerifyNone(t)
	logger, hook := logstest.NewNullTestLogger()
	h := DelayWithLogger(context.Background(), logger, func(...int) { panic("boom") }, time.Millisecond)
	<-h.Done()
	assert.True(t, h.Fired())
	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.ErrorLevel, entry.Level)
	assert.Equal(t, "delayed function panicked", entry.Message)
}

func TestDelay_WaitTimeout(t *testing.T) {
	defer goleak.VerifyNone(t)
	h := Delay(context.Background(), func(...int) {}, time.Hour)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	errortest.AssertError(t, h.Wait(ctx), commonerrors.ErrTimeout)
	assert.True(t, h.Cancel())
	require.NoError(t, h.Wait(context.Background()))
}
