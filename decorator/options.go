/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Package decorator provides wrappers adding behaviour to functions: calling them once only, caching their results,
// deferring or throttling their invocation.
package decorator

import (
	"github.com/go-logr/logr"

	"github.com/ARM-software/golang-underbar/logs"
)

type options struct {
	logger    logr.Logger
	verbosity int
	leading   bool
	trailing  bool
}

// Option configures a decorator.
type Option func(*options)

func newOptions(opts ...Option) *options {
	cfg := DefaultConfiguration()
	o := &options{
		logger: logs.NewNoopLogger(),
	}
	WithConfiguration(cfg)(o)
	for i := range opts {
		if opts[i] != nil {
			opts[i](o)
		}
	}
	return o
}

func (o *options) debug() logr.Logger {
	return o.logger.V(o.verbosity)
}

// WithLogger sets the logger used by the decorator. Nothing is logged by default.
func WithLogger(logger logr.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithVerbosity sets the verbosity level of debug messages.
func WithVerbosity(verbosity int) Option {
	return func(o *options) {
		o.verbosity = max(verbosity, 0)
	}
}

// WithLeading states whether a throttled function is invoked on the leading edge of the wait window.
func WithLeading(leading bool) Option {
	return func(o *options) {
		o.leading = leading
	}
}

// WithTrailing states whether a throttled function is invoked on the trailing edge of the wait window.
func WithTrailing(trailing bool) Option {
	return func(o *options) {
		o.trailing = trailing
	}
}

// WithConfiguration applies the settings of a configuration. A nil configuration is ignored.
func WithConfiguration(cfg *Configuration) Option {
	return func(o *options) {
		if cfg == nil {
			return
		}
		o.leading = cfg.Leading
		o.trailing = cfg.Trailing
		o.verbosity = cfg.Verbosity
	}
}
