/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Package logs defines the logr (https://github.com/go-logr/logr) implementations which can be handed to the
// decorators of this module.
package logs

import (
	"fmt"
	"log"
	"os"

	"github.com/bombsimon/logrusr/v4"
	"github.com/evanphx/hclogr"
	"github.com/go-logr/logr"
	"github.com/go-logr/logr/funcr"
	"github.com/go-logr/stdr"
	"github.com/go-logr/zapr"
	"github.com/hashicorp/go-hclog"
	"github.com/rs/zerolog"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
)

const (
	KeyDecorator = "decorator"
	KeyArgument  = "argument"
	KeyWait      = "wait"
)

// NewNoopLogger returns a logger discarding everything.
func NewNoopLogger() logr.Logger {
	return logr.Discard()
}

// NewStdOutLogr returns a logger to standard out.
func NewStdOutLogr() logr.Logger {
	return funcr.New(func(prefix, args string) {
		if prefix != "" {
			fmt.Printf("%s: %s\n", prefix, args)
		} else {
			fmt.Println(args)
		}
	}, funcr.Options{})
}

// NewStdLogger returns a logger based on the standard library logger writing to standard error.
func NewStdLogger(prefix string) logr.Logger {
	return stdr.New(log.New(os.Stderr, prefix, log.LstdFlags))
}

// NewZapLogger returns a logger backed by zap.
func NewZapLogger(logger *zap.Logger) logr.Logger {
	if logger == nil {
		return NewNoopLogger()
	}
	return zapr.NewLogger(logger)
}

// NewLogrusLogger returns a logger backed by logrus.
func NewLogrusLogger(logger logrus.FieldLogger, opts ...logrusr.Option) logr.Logger {
	if logger == nil {
		return NewNoopLogger()
	}
	return logrusr.New(logger, opts...)
}

// NewHclogLogger returns a logger backed by HCLog.
func NewHclogLogger(logger hclog.Logger) logr.Logger {
	if logger == nil {
		return NewNoopLogger()
	}
	return hclogr.Wrap(logger)
}

// NewZerologLogger returns a logger writing JSON messages through zerolog. Verbosity levels up to verbosity are logged.
func NewZerologLogger(logger zerolog.Logger, verbosity int) logr.Logger {
	return funcr.New(func(prefix, args string) {
		event := logger.Info()
		if prefix != "" {
			event = event.Str("logger", prefix)
		}
		event.Msg(args)
	}, funcr.Options{Verbosity: verbosity})
}
