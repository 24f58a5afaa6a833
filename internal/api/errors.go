package api

import (
	"context"
	"errors"
	"fmt"
	"net"
)

// ErrorCode classifies why a backend call failed.
type ErrorCode string

const (
	ErrorEncodeFailed    ErrorCode = "encode_failed"
	ErrorTransportFailed ErrorCode = "transport_failed"
	ErrorTimeout         ErrorCode = "timeout"
	ErrorDecodeFailed    ErrorCode = "decode_failed"
	ErrorStatus          ErrorCode = "http_status"
)

// Error is returned by every Client method.
type Error struct {
	Code       ErrorCode
	Operation  string
	StatusCode int
	// Detail is the server-supplied "detail" of a non-2xx body, if any.
	Detail  string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e == nil {
		return "playground api call failed"
	}
	msg := fmt.Sprintf("playground api %s failed (code=%s", e.Operation, e.Code)
	if e.StatusCode != 0 {
		msg += fmt.Sprintf(" status=%d", e.StatusCode)
	}
	msg += ")"
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

// IsStatus reports whether err is a non-2xx response.
func IsStatus(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Code == ErrorStatus
}

// DetailOf returns the server detail carried by err, if any.
func DetailOf(err error) (string, bool) {
	var apiErr *Error
	if errors.As(err, &apiErr) && apiErr.Detail != "" {
		return apiErr.Detail, true
	}
	return "", false
}

func opErr(op string, code ErrorCode, msg string, cause error) *Error {
	return &Error{Code: code, Operation: op, Message: msg, Cause: cause}
}

func classifyTransportError(op string, err error) *Error {
	if errors.Is(err, context.DeadlineExceeded) {
		return opErr(op, ErrorTimeout, "request timed out", err)
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return opErr(op, ErrorTimeout, "request timed out", err)
	}
	return opErr(op, ErrorTransportFailed, "request failed", err)
}
