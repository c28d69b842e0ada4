// Package errortest provides assertions on the kind of errors returned by the module.
package errortest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ARM-software/golang-underbar/commonerrors"
)

// AssertError asserts that err is of the kind of one of the `expectedErrors` (see commonerrors.Any).
func AssertError(t *testing.T, err error, expectedErrors ...error) bool {
	t.Helper()
	return assert.Truef(t, commonerrors.Any(err, expectedErrors...), "unexpected error kind:\n actual: %v\n expected one of: %+v", err, expectedErrors)
}

// AssertErrorDescription asserts that the description of err contains one of `expectedErrorDescriptions`.
func AssertErrorDescription(t *testing.T, err error, expectedErrorDescriptions ...string) bool {
	t.Helper()
	return assert.Truef(t, commonerrors.CorrespondTo(err, expectedErrorDescriptions...), "unexpected error description:\n actual: %v\n expected one of: %+v", err, expectedErrorDescriptions)
}

// RequireError is similar to AssertError but stops the test on failure.
func RequireError(t *testing.T, err error, expectedErrors ...error) {
	t.Helper()
	require.Truef(t, commonerrors.Any(err, expectedErrors...), "unexpected error kind:\n actual: %v\n expected one of: %+v", err, expectedErrors)
}

// RequireErrorDescription is similar to AssertErrorDescription but stops the test on failure.
func RequireErrorDescription(t *testing.T, err error, expectedErrorDescriptions ...string) {
	t.Helper()
	require.Truef(t, commonerrors.CorrespondTo(err, expectedErrorDescriptions...), "unexpected error description:\n actual: %v\n expected one of: %+v", err, expectedErrorDescriptions)
}
