package test

import (
	"testing"

	"github.com/matryer/is"
)

// DemandEquality is the same as ExpectEquality except that the test is
// stopped if the values differ.
func DemandEquality[T comparable](t *testing.T, value T, expectedValue T) {
	t.Helper()
	is := is.New(t)
	is.Helper()
	is.Equal(value, expectedValue)
}

// DemandSuccess is the same as ExpectSuccess except that the test is stopped
// on failure.
func DemandSuccess(t *testing.T, v any) {
	t.Helper()
	if !ExpectSuccess(t, v) {
		t.FailNow()
	}
}
