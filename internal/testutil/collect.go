package testutil

import "testing"

// AssertAll fails unless every element of items satisfies pred.
func AssertAll[T any](t *testing.T, items []T, pred func(T) bool, msgAndArgs ...interface{}) {
	t.Helper()
	for i, item := range items {
		if !pred(item) {
			msg := formatMessage(msgAndArgs...)
			if msg != "" {
				t.Errorf("%s: element %d (%v) fails predicate", msg, i, item)
			} else {
				t.Errorf("element %d (%v) fails predicate", i, item)
			}
			return
		}
	}
}

// AssertAny fails unless at least one element of items satisfies pred.
func AssertAny[T any](t *testing.T, items []T, pred func(T) bool, msgAndArgs ...interface{}) {
	t.Helper()
	for _, item := range items {
		if pred(item) {
			return
		}
	}
	msg := formatMessage(msgAndArgs...)
	if msg != "" {
		t.Errorf("%s: no element of %v satisfies predicate", msg, items)
	} else {
		t.Errorf("no element of %v satisfies predicate", items)
	}
}

// AssertContainsElement fails unless items contains want.
func AssertContainsElement[T comparable](t *testing.T, items []T, want T, msgAndArgs ...interface{}) {
	t.Helper()
	for _, item := range items {
		if item == want {
			return
		}
	}
	msg := formatMessage(msgAndArgs...)
	if msg != "" {
		t.Errorf("%s: %v not found in %v", msg, want, items)
	} else {
		t.Errorf("%v not found in %v", want, items)
	}
}
