package assert

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

// Equal verifies equality of two objects.
func Equal[T any](t *testing.T, a T, b T) {
	t.Helper()
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("%v != %v", a, b)
	}
}

// NotEqual verifies objects are not equal.
func NotEqual[T any](t *testing.T, a T, b T) {
	t.Helper()
	if reflect.DeepEqual(a, b) {
		t.Fatalf("%v == %v", a, b)
	}
}

// True verifies the condition holds.
func True(t *testing.T, condition bool, format string, args ...any) {
	t.Helper()
	if !condition {
		t.Fatalf(format, args...)
	}
}

// False verifies the condition does not hold.
func False(t *testing.T, condition bool, format string, args ...any) {
	t.Helper()
	if condition {
		t.Fatalf(format, args...)
	}
}

// IsNil verifies that the object is nil.
func IsNil(t *testing.T, a any) {
	t.Helper()
	if a == nil {
		return
	}
	value := reflect.ValueOf(a)
	switch value.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map,
		reflect.Pointer, reflect.Slice, reflect.UnsafePointer:
		if value.IsNil() {
			return
		}
	}
	t.Fatalf("%v is not nil", a)
}

// ErrorIs checks whether any error in err's tree matches target.
func ErrorIs(t *testing.T, err error, target error) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Fatalf("Error type mismatch: %v != %v", err, target)
	}
}

// ErrorContains checks whether the error message contains the expected text.
func ErrorContains(t *testing.T, err error, contains string) {
	t.Helper()
	if err == nil {
		t.Fatalf("Error is nil")
	} else if !strings.Contains(err.Error(), contains) {
		t.Fatalf("Error does not contain: %s", contains)
	}
}
