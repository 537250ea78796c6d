package httperr

import (
	"fmt"
	"net/http"
)

// Error carries a stable HTTP status alongside the user-facing message, so
// services can fail with a kind the handlers map mechanically.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func New(status int, message string) *Error {
	return &Error{Status: status, Message: message}
}

func InvalidArgument(message string) *Error {
	return New(http.StatusBadRequest, message)
}

func NotFound(message string) *Error {
	return New(http.StatusNotFound, message)
}

func Forbidden(message string) *Error {
	return New(http.StatusForbidden, message)
}

func Conflict(message string) *Error {
	return New(http.StatusConflict, message)
}

func Internal(message string) *Error {
	return New(http.StatusInternalServerError, message)
}

// CapacityExceeded is returned when a time slot is fully booked. The message
// always states the numeric limit.
func CapacityExceeded(limit int) *Error {
	return New(http.StatusBadRequest,
		fmt.Sprintf("This time slot is fully booked. Doctor can only take %d appointments per time slot.", limit))
}
