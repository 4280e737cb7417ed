package payapi

import (
	"errors"
	"fmt"
)

// Error codes for classified API failures.
const (
	CodeAuth      = "auth"       // bad credentials or terminal 401 after retry
	CodeNotFound  = "not_found"  // 404
	CodeConflict  = "conflict"   // 409, never auto-retried
	CodeRateLimit = "rate_limit" // 429
	CodeServer    = "server"     // 5xx
	CodeTimeout   = "timeout"    // request or token fetch timed out
	CodeNetwork   = "network"    // transport failure
	CodeParse     = "parse"      // malformed JSON body
	CodeAPI       = "api"        // other non-2xx
	CodeUsage     = "usage"      // bad tool arguments
)

// Error is a classified API error. Message and Hint never contain
// credentials or token values.
type Error struct {
	Code       string
	Message    string
	Hint       string
	HTTPStatus int
	RetryAfter int // seconds, from a 429 Retry-After header
	Retryable  bool
	Cause      error
}

func (e *Error) Error() string {
	if e.Hint != "" {
		return fmt.Sprintf("%s: %s", e.Message, e.Hint)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Error constructors for common cases.

func errAuth(msg string) *Error {
	return &Error{Code: CodeAuth, Message: msg, HTTPStatus: 401}
}

func errNotFound(path string) *Error {
	return &Error{
		Code:       CodeNotFound,
		Message:    fmt.Sprintf("resource not found: %s", path),
		HTTPStatus: 404,
	}
}

func errConflict(msg string) *Error {
	return &Error{Code: CodeConflict, Message: msg, HTTPStatus: 409}
}

func errRateLimit(retryAfter int) *Error {
	hint := "try again later"
	if retryAfter > 0 {
		hint = fmt.Sprintf("try again in %d seconds", retryAfter)
	}
	return &Error{
		Code:       CodeRateLimit,
		Message:    "rate limited",
		Hint:       hint,
		HTTPStatus: 429,
		RetryAfter: retryAfter,
		Retryable:  true,
	}
}

func errServer(status int) *Error {
	return &Error{
		Code:       CodeServer,
		Message:    fmt.Sprintf("upstream server error (HTTP %d)", status),
		HTTPStatus: status,
		Retryable:  true,
	}
}

func errTimeout(cause error) *Error {
	return &Error{
		Code:      CodeTimeout,
		Message:   "request timed out",
		Retryable: true,
		Cause:     cause,
	}
}

func errNetwork(cause error) *Error {
	return &Error{
		Code:      CodeNetwork,
		Message:   "network error",
		Retryable: true,
		Cause:     cause,
	}
}

func errParse(cause error) *Error {
	return &Error{
		Code:    CodeParse,
		Message: "malformed JSON in response body",
		Cause:   cause,
	}
}

func errAPI(status int, msg string) *Error {
	return &Error{Code: CodeAPI, Message: msg, HTTPStatus: status}
}

// ErrUsage reports invalid tool arguments.
func ErrUsage(msg string) *Error {
	return &Error{Code: CodeUsage, Message: msg}
}

// AsError attempts to convert an error to an *Error, wrapping unclassified
// errors under CodeAPI.
func AsError(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return &Error{Code: CodeAPI, Message: err.Error(), Cause: err}
}
