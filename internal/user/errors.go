package user

import (
	"errors"
	"net/http"
)

// Kind classifies request failures.
type Kind int

const (
	KindMalformedInput Kind = iota + 1
	KindValidationFailure
	KindNotFound
)

func (k Kind) String() string {
	switch k {
	case KindMalformedInput:
		return "malformed input"
	case KindValidationFailure:
		return "validation failure"
	case KindNotFound:
		return "not found"
	default:
		return "unknown"
	}
}

// Error is a request failure with a fixed client-facing message.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

var (
	ErrInvalidUserID = &Error{Kind: KindMalformedInput, Message: "invalid user id"}
	ErrInvalidInput  = &Error{Kind: KindMalformedInput, Message: "invalid input"}
	ErrInvalidEmail  = &Error{Kind: KindValidationFailure, Message: "invalid email input"}
	ErrInvalidDate   = &Error{Kind: KindValidationFailure, Message: "invalid date input"}
	ErrNotFound      = &Error{Kind: KindNotFound, Message: "user not found"}
)

var statusTable = []struct {
	err    *Error
	status int
}{
	{ErrInvalidUserID, http.StatusBadRequest},
	{ErrInvalidInput, http.StatusMethodNotAllowed},
	{ErrInvalidEmail, http.StatusMethodNotAllowed},
	{ErrInvalidDate, http.StatusMethodNotAllowed},
	{ErrNotFound, http.StatusNotFound},
}

// StatusOf returns the HTTP status and client message for err. Errors outside
// the table are reported as 500 without exposing their text.
func StatusOf(err error) (int, string) {
	for _, entry := range statusTable {
		if errors.Is(err, entry.err) {
			return entry.status, entry.err.Message
		}
	}
	return http.StatusInternalServerError, "internal server error"
}
