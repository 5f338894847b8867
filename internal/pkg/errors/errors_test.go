package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorMatchesSentinelForCode(t *testing.T) {
	err := ConstraintViolation("registration.insert", "course_id is required", nil)
	if !errors.Is(err, ErrConstraintViolation) {
		t.Fatalf("expected errors.Is constraint violation")
	}
	if errors.Is(err, ErrNotFound) || errors.Is(err, ErrStoreUnavailable) {
		t.Fatalf("must not match unrelated sentinels")
	}

	wrapped := fmt.Errorf("outer: %w", err)
	if !errors.Is(wrapped, ErrConstraintViolation) {
		t.Fatalf("expected match through fmt wrapping")
	}
	if CodeOf(wrapped) != CodeConstraintViolation {
		t.Fatalf("CodeOf: got %s", CodeOf(wrapped))
	}
}

func TestWrapKeepsCause(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	err := Wrap(CodeStoreUnavailable, "registration.count", cause)
	if !errors.Is(err, cause) {
		t.Fatalf("expected cause in chain")
	}
	if !errors.Is(err, ErrStoreUnavailable) {
		t.Fatalf("expected store unavailable")
	}
	if !IsCode(err, CodeStoreUnavailable) {
		t.Fatalf("IsCode mismatch")
	}
	if Wrap(CodeInternal, "noop", nil) != nil {
		t.Fatalf("wrapping nil must return nil")
	}
}

func TestErrorString(t *testing.T) {
	cases := []struct {
		err  *Error
		want string
	}{
		{&Error{Code: CodeNotFound, Op: "find", Message: "no row"}, "find: no row (not_found)"},
		{&Error{Code: CodeNotFound, Op: "find"}, "find (not_found)"},
		{&Error{Code: CodeNotFound, Message: "no row"}, "no row (not_found)"},
		{&Error{Code: CodeInternal}, "internal"},
	}
	for _, tc := range cases {
		if got := tc.err.Error(); got != tc.want {
			t.Fatalf("Error(): want=%q got=%q", tc.want, got)
		}
	}
	if CodeOf(errors.New("plain")) != CodeInternal {
		t.Fatalf("plain errors are internal")
	}
}
