/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Package commonerrors defines the error taxonomy shared by all the packages of this module.
// Errors returned by the module always wrap one of the sentinel errors below so that callers can
// check them with errors.Is or Any.
package commonerrors

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

var (
	ErrNotImplemented = errors.New("not implemented")
	ErrNoLogger       = errors.New("missing logger")
	ErrUndefined      = errors.New("undefined")
	ErrTimeout        = errors.New("timeout")
	ErrNotFound       = errors.New("not found")
	ErrUnsupported    = errors.New("unsupported")
	ErrUnknown        = errors.New("unknown")
	ErrInvalid        = errors.New("invalid")
	ErrConflict       = errors.New("conflict")
	ErrCancelled      = errors.New("cancelled")
	ErrCondition      = errors.New("failed condition")
	ErrUnexpected     = errors.New("unexpected")
	ErrEOF            = errors.New("end of file")
)

// Any determines whether the target error is of the same type as any of the errors `err`
func Any(target error, err ...error) bool {
	for _, e := range err {
		if errors.Is(e, target) || errors.Is(target, e) {
			return true
		}
	}
	return false
}

// None determines whether the target error is of none of the types of the errors `err`
func None(target error, err ...error) bool {
	for _, e := range err {
		if errors.Is(e, target) || errors.Is(target, e) {
			return false
		}
	}
	return true
}

// CorrespondTo determines whether a `target` error corresponds to a specific error described by `description`
// It will check whether the error contains the string in its description. It is not case-sensitive.
func CorrespondTo(target error, description ...string) bool {
	if target == nil {
		return false
	}
	desc := strings.ToLower(target.Error())
	for _, d := range description {
		if strings.Contains(desc, strings.ToLower(d)) {
			return true
		}
	}
	return false
}

// Ignore will return nil if the target error matches one of the errors to ignore.
func Ignore(target error, ignore ...error) error {
	if Any(target, ignore...) {
		return nil
	}
	return target
}

// New returns an error of type `targetErr` with a reason.
func New(targetErr error, reason string) error {
	return WrapError(targetErr, nil, reason)
}

// Newf is similar to New but allows formatting of the reason.
func Newf(targetErr error, format string, args ...any) error {
	return New(targetErr, fmt.Sprintf(format, args...))
}

// WrapError wraps an error into a particular targetError. However, if the original error has to do with a context cancellation, it will be converted to the relevant common error.
func WrapError(targetError, originalError error, message string) error {
	if targetError == nil {
		targetError = ErrUnknown
	}
	if originalError != nil {
		if contextErr := ConvertContextError(originalError); Any(contextErr, ErrTimeout, ErrCancelled) {
			targetError = contextErr
		}
	}
	switch {
	case originalError == nil && message == "":
		return targetError
	case originalError == nil:
		return fmt.Errorf("%w: %v", targetError, message)
	case message == "":
		if Any(originalError, targetError) {
			return originalError
		}
		return fmt.Errorf("%w: %w", targetError, originalError)
	default:
		return fmt.Errorf("%w: %v: %w", targetError, message, originalError)
	}
}

// WrapErrorf is similar to WrapError but uses a format for the message
func WrapErrorf(targetError, originalError error, msgFormat string, args ...any) error {
	return WrapError(targetError, originalError, fmt.Sprintf(msgFormat, args...))
}

// UndefinedParameter returns an undefined error with a message about the parameter.
func UndefinedParameter(message string) error {
	return New(ErrUndefined, message)
}

// UndefinedParameterf is similar to UndefinedParameter but allows formatting.
func UndefinedParameterf(format string, args ...any) error {
	return UndefinedParameter(fmt.Sprintf(format, args...))
}

// Join is a wrapper around errors.Join which skips nil errors.
func Join(errs ...error) error {
	return errors.Join(errs...)
}

// ConvertContextError converts a context error into common errors.
func ConvertContextError(err error) error {
	switch {
	case err == nil:
		return nil
	case Any(err, context.DeadlineExceeded):
		return ErrTimeout
	case Any(err, context.Canceled):
		return ErrCancelled
	case Any(err, io.EOF):
		return ErrEOF
	default:
		return err
	}
}

// ErrFromContext returns the common error corresponding to the state of the context, if any.
func ErrFromContext(ctx context.Context) error {
	if ctx == nil {
		return nil
	}
	return ConvertContextError(ctx.Err())
}
