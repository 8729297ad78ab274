package httperror

import (
	"fmt"
	"net/http"
	"time"
)

// Error is an error that carries the HTTP status and a stable code for the client.
type Error struct {
	Status  int
	Code    string
	Message string
	Details any
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

func New(status int, code, message string, details any) *Error {
	return &Error{
		Status:  status,
		Code:    code,
		Message: message,
		Details: details,
	}
}

func BadRequest(code, message string, details any) *Error {
	return New(http.StatusBadRequest, code, message, details)
}

func NotFound(code, message string, details any) *Error {
	return New(http.StatusNotFound, code, message, details)
}

// Conflict is used for uniqueness violations and illegal state transitions.
func Conflict(code, message string, details any) *Error {
	return New(http.StatusConflict, code, message, details)
}

func TooManyRequests(code, message string, details any) *Error {
	return New(http.StatusTooManyRequests, code, message, details)
}

// InternalServerError keeps the cause for logging. It is never sent to the client.
func InternalServerError(code, message string, err error) *Error {
	e := New(http.StatusInternalServerError, code, message, nil)
	e.Err = err
	return e
}

func BadGateway(code, message string, err error) *Error {
	e := New(http.StatusBadGateway, code, message, nil)
	e.Err = err
	return e
}

const TimeLayout = "2006-01-02 15:04:05"

// Response is the JSON error body returned to clients.
type Response struct {
	Time    string `json:"time"`
	Status  int    `json:"status"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

func (e *Error) Response(now time.Time) Response {
	return Response{
		Time:    now.Format(TimeLayout),
		Status:  e.Status,
		Code:    e.Code,
		Message: e.Message,
		Details: e.Details,
	}
}
