// Package logstest provides loggers to use in tests.
package logstest

import (
	"testing"

	"github.com/bombsimon/logrusr/v4"
	"github.com/go-logr/logr"
	"github.com/go-logr/logr/testr"
	logrusTest "github.com/sirupsen/logrus/hooks/test"
)

// NewNullTestLogger returns a logger to nothing together with the hook recording what was logged.
func NewNullTestLogger() (logr.Logger, *logrusTest.Hook) {
	internalLogger, hook := logrusTest.NewNullLogger()
	return logrusr.New(internalLogger), hook
}

// NewTestLogger returns a logger writing to the test output.
func NewTestLogger(t *testing.T) logr.Logger {
	return testr.NewWithOptions(t, testr.Options{Verbosity: 1})
}
