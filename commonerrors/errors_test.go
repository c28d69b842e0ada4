package commonerrors

import (
	"context"
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/go-faker/faker/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAny(t *testing.T) {
	assert.True(t, Any(ErrNotImplemented, ErrInvalid, ErrNotImplemented, ErrUnknown))
	assert.False(t, Any(ErrNotImplemented, ErrInvalid, ErrUnknown))
	assert.True(t, Any(fmt.Errorf("an error %w", ErrNotImplemented), ErrInvalid, ErrNotImplemented, ErrUnknown))
	assert.False(t, Any(fmt.Errorf("an error %w", ErrNotImplemented), ErrInvalid, ErrUnknown))
	assert.True(t, Any(nil, nil))
	assert.False(t, Any(nil, ErrInvalid))
}

func TestNone(t *testing.T) {
	assert.False(t, None(ErrNotImplemented, ErrInvalid, ErrNotImplemented, ErrUnknown))
	assert.True(t, None(ErrNotImplemented, ErrInvalid, ErrUnknown))
	assert.False(t, None(fmt.Errorf("an error %w", ErrNotImplemented), ErrInvalid, ErrNotImplemented, ErrUnknown))
	assert.True(t, None(fmt.Errorf("an error %w", ErrNotImplemented), ErrInvalid, ErrUnknown))
}

func TestNew(t *testing.T) {
	reason := faker.Sentence()
	err := New(ErrNotFound, reason)
	require.Error(t, err)
	assert.True(t, Any(err, ErrNotFound))
	assert.True(t, CorrespondTo(err, reason))
	assert.Equal(t, ErrNotFound, New(ErrNotFound, ""))

	err = Newf(ErrInvalid, "item #%v", 3)
	assert.True(t, Any(err, ErrInvalid))
	assert.Equal(t, "invalid: item #3", err.Error())
}

func TestWrapError(t *testing.T) {
	original := errors.New(faker.Word())
	err := WrapError(ErrUnsupported, original, "")
	assert.True(t, Any(err, ErrUnsupported))
	assert.True(t, errors.Is(err, original))

	err = WrapErrorf(ErrUnsupported, original, "value %v", 1)
	assert.True(t, Any(err, ErrUnsupported))
	assert.True(t, errors.Is(err, original))
	assert.True(t, CorrespondTo(err, "value 1"))

	err = WrapError(ErrInvalid, context.Canceled, "")
	assert.True(t, Any(err, ErrCancelled))
	assert.True(t, Any(WrapError(nil, nil, ""), ErrUnknown))
	assert.Equal(t, ErrInvalid, WrapError(ErrInvalid, ErrInvalid, ""))
}

func TestIgnore(t *testing.T) {
	assert.NoError(t, Ignore(ErrEOF, ErrEOF))
	assert.NoError(t, Ignore(nil, ErrEOF))
	assert.Error(t, Ignore(ErrInvalid, ErrEOF))
}

func TestConvertContextError(t *testing.T) {
	assert.NoError(t, ConvertContextError(nil))
	assert.Equal(t, ErrTimeout, ConvertContextError(context.DeadlineExceeded))
	assert.Equal(t, ErrCancelled, ConvertContextError(context.Canceled))
	assert.Equal(t, ErrEOF, ConvertContextError(io.EOF))
	assert.Equal(t, ErrInvalid, ConvertContextError(ErrInvalid))

	ctx, cancel := context.WithCancel(context.Background())
	assert.NoError(t, ErrFromContext(ctx))
	cancel()
	assert.True(t, Any(ErrFromContext(ctx), ErrCancelled))
}

func TestUndefinedParameter(t *testing.T) {
	err := UndefinedParameterf("item #%v was nil", 2)
	assert.True(t, Any(err, ErrUndefined))
	assert.True(t, CorrespondTo(err, "item #2"))
	assert.NoError(t, Join(nil, nil))
	assert.True(t, Any(Join(nil, ErrInvalid), ErrInvalid))
}
