package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies a domain failure. Callers branch on kinds instead of
// matching error strings.
type Kind string

const (
	KindValidation      Kind = "VALIDATION_ERROR"
	KindNotFound        Kind = "ENTITY_NOT_FOUND"
	KindDuplicateID     Kind = "DUPLICATE_ID"
	KindInvalidState    Kind = "INVALID_STATE"
	KindRangeExhausted  Kind = "RANGE_EXHAUSTED"
	KindCapacityReached Kind = "CAPACITY_REACHED"
	KindInvalidRange    Kind = "INVALID_RANGE"
	KindInternal        Kind = "INTERNAL_ERROR"
)

// Error represents a typed domain error with HTTP awareness.
type Error struct {
	Kind    Kind   `json:"kind"`
	Message string `json:"message"`
	Status  int    `json:"status"`
	Err     error  `json:"-"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped error.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// New creates a new Error instance.
func New(kind Kind, status int, message string) *Error {
	return &Error{Kind: kind, Status: status, Message: message}
}

// Wrap attaches context to an existing error.
func Wrap(err error, kind Kind, status int, message string) *Error {
	return &Error{Kind: kind, Status: status, Message: message, Err: err}
}

// Constructors for the domain failure taxonomy.

// Validation reports a rejected input value.
func Validation(message string) *Error {
	return New(KindValidation, http.StatusBadRequest, message)
}

// Validationf formats a validation message.
func Validationf(format string, args ...any) *Error {
	return Validation(fmt.Sprintf(format, args...))
}

// NotFound reports a lookup miss for the given entity kind and id.
func NotFound(entity string, id int64) *Error {
	return New(KindNotFound, http.StatusNotFound, fmt.Sprintf("%s with id %d not found", entity, id))
}

// DuplicateID reports an insert with an id already present.
func DuplicateID(entity string, id int64) *Error {
	return New(KindDuplicateID, http.StatusConflict, fmt.Sprintf("%s with id %d already exists", entity, id))
}

// InvalidState reports an operation rejected by the current entity state.
func InvalidState(message string) *Error {
	return New(KindInvalidState, http.StatusConflict, message)
}

// InvalidStatef formats an invalid-state message.
func InvalidStatef(format string, args ...any) *Error {
	return InvalidState(fmt.Sprintf(format, args...))
}

// RangeExhausted reports an id range with no identifiers left to issue.
func RangeExhausted(kind string, start, end int64) *Error {
	return New(KindRangeExhausted, http.StatusConflict,
		fmt.Sprintf("id range exhausted for %s: no ids left in [%d, %d]", kind, start, end))
}

// CapacityReached reports an id range whose issued count hit capacity.
func CapacityReached(kind string, capacity int64) *Error {
	return New(KindCapacityReached, http.StatusConflict,
		fmt.Sprintf("capacity reached for %s: %d ids issued", kind, capacity))
}

// InvalidRange reports an id outside its kind's configured range.
func InvalidRange(kind string, id, start, end int64) *Error {
	return New(KindInvalidRange, http.StatusBadRequest,
		fmt.Sprintf("id %d outside %s range [%d, %d]", id, kind, start, end))
}

// Internal wraps an unexpected failure.
func Internal(err error) *Error {
	return Wrap(err, KindInternal, http.StatusInternalServerError, "internal error")
}

// Predefined errors for common scenarios.
var (
	ErrNotFound   = New(KindNotFound, http.StatusNotFound, "resource not found")
	ErrValidation = New(KindValidation, http.StatusBadRequest, "validation failed")
	ErrInternal   = New(KindInternal, http.StatusInternalServerError, "internal server error")
)

// FromError normalises any error into an *Error.
func FromError(err error) *Error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return Wrap(err, ErrInternal.Kind, ErrInternal.Status, ErrInternal.Message)
}

// Clone returns a copy of the error allowing for message overrides.
func Clone(err *Error, message string) *Error {
	if err == nil {
		return nil
	}
	clone := *err
	if message != "" {
		clone.Message = message
	}
	return &clone
}

// IsKind reports whether err is an *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	return e.Kind == kind
}

// Predicates for branching on failure kinds.

func IsValidation(err error) bool      { return IsKind(err, KindValidation) }
func IsNotFound(err error) bool        { return IsKind(err, KindNotFound) }
func IsDuplicateID(err error) bool     { return IsKind(err, KindDuplicateID) }
func IsInvalidState(err error) bool    { return IsKind(err, KindInvalidState) }
func IsRangeExhausted(err error) bool  { return IsKind(err, KindRangeExhausted) }
func IsCapacityReached(err error) bool { return IsKind(err, KindCapacityReached) }
func IsInvalidRange(err error) bool    { return IsKind(err, KindInvalidRange) }
