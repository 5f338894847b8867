package errors

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotFound is returned when a lookup by key or id matches no rows.
	ErrNotFound = errors.New("not found")
	// ErrConstraintViolation is returned when a write breaks a key, nullability,
	// uniqueness or foreign-key rule.
	ErrConstraintViolation = errors.New("constraint violation")
	// ErrStoreUnavailable is returned when the database cannot be reached.
	ErrStoreUnavailable = errors.New("store unavailable")
	// ErrInvalidArgument is a generic sentinel for invalid input.
	ErrInvalidArgument = errors.New("invalid argument")
)

// Code classifies a failure for callers that switch on it.
type Code string

const (
	CodeNotFound            Code = "not_found"
	CodeConstraintViolation Code = "constraint_violation"
	CodeStoreUnavailable    Code = "store_unavailable"
	CodeInvalidArgument     Code = "invalid_argument"
	CodeInternal            Code = "internal"
)

// Error carries a code and the operation that failed. errors.Is matches it
// against the sentinel for its code.
type Error struct {
	Code    Code
	Op      string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	op := strings.TrimSpace(e.Op)
	msg := strings.TrimSpace(e.Message)
	switch {
	case op != "" && msg != "":
		return fmt.Sprintf("%s: %s (%s)", op, msg, e.Code)
	case op != "":
		return fmt.Sprintf("%s (%s)", op, e.Code)
	case msg != "":
		return fmt.Sprintf("%s (%s)", msg, e.Code)
	default:
		return string(e.Code)
	}
}

func (e *Error) Unwrap() error { return e.Cause }

func (e *Error) Is(target error) bool {
	if e == nil {
		return false
	}
	sentinel := sentinelFor(e.Code)
	return sentinel != nil && target == sentinel
}

func sentinelFor(code Code) error {
	switch code {
	case CodeNotFound:
		return ErrNotFound
	case CodeConstraintViolation:
		return ErrConstraintViolation
	case CodeStoreUnavailable:
		return ErrStoreUnavailable
	case CodeInvalidArgument:
		return ErrInvalidArgument
	default:
		return nil
	}
}

func New(code Code, op, message string, cause error) error {
	return &Error{
		Code:    code,
		Op:      strings.TrimSpace(op),
		Message: strings.TrimSpace(message),
		Cause:   cause,
	}
}

// Wrap annotates err with code; nil stays nil.
func Wrap(code Code, op string, err error) error {
	if err == nil {
		return nil
	}
	return New(code, op, err.Error(), err)
}

func NotFound(op, message string) error {
	return New(CodeNotFound, op, message, nil)
}

func ConstraintViolation(op, message string, cause error) error {
	return New(CodeConstraintViolation, op, message, cause)
}

func InvalidArgument(op, message string) error {
	return New(CodeInvalidArgument, op, message, nil)
}

func IsCode(err error, code Code) bool {
	var appErr *Error
	if !errors.As(err, &appErr) {
		return false
	}
	return appErr.Code == code
}

// CodeOf returns the outermost code in err's chain, or CodeInternal.
func CodeOf(err error) Code {
	var appErr *Error
	if !errors.As(err, &appErr) {
		return CodeInternal
	}
	return appErr.Code
}
