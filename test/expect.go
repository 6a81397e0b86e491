package test

import (
	"testing"
)

// ExpectEquality compares value against expectedValue and reports an error
// if they differ. Returns true if the values are equal.
func ExpectEquality[T comparable](t *testing.T, value T, expectedValue T) bool {
	t.Helper()
	if value != expectedValue {
		t.Errorf("equality test of type %T failed: %v does not equal %v", value, value, expectedValue)
		return false
	}
	return true
}

// ExpectInequality is the inverse of ExpectEquality.
func ExpectInequality[T comparable](t *testing.T, value T, unexpectedValue T) bool {
	t.Helper()
	if value == unexpectedValue {
		t.Errorf("inequality test of type %T failed: %v equals %v", value, value, unexpectedValue)
		return false
	}
	return true
}

// ExpectSuccess tests for a "successful" value. What constitutes success
// depends on the type:
//
//	bool  -> true
//	error -> nil
//
// A nil value also counts as success. Any other type is a test failure.
func ExpectSuccess(t *testing.T, v any) bool {
	t.Helper()
	switch v := v.(type) {
	case bool:
		if !v {
			t.Errorf("success test of type %T failed: %v", v, v)
			return false
		}
	case error:
		if v != nil {
			t.Errorf("success test of type %T failed: %v", v, v)
			return false
		}
	case nil:
	default:
		t.Fatalf("unsupported type (%T) for success test", v)
		return false
	}
	return true
}

// ExpectFailure is the inverse of ExpectSuccess. A nil value is a failure of
// the test.
func ExpectFailure(t *testing.T, v any) bool {
	t.Helper()
	switch v := v.(type) {
	case bool:
		if v {
			t.Errorf("failure test of type %T failed: %v", v, v)
			return false
		}
	case error:
		if v == nil {
			t.Errorf("failure test of type %T failed: %v", v, v)
			return false
		}
	case nil:
		t.Errorf("failure test of type nil failed")
		return false
	default:
		t.Fatalf("unsupported type (%T) for failure test", v)
		return false
	}
	return true
}
