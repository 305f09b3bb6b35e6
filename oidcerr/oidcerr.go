// SPDX-FileCopyrightText: Copyright 2026 Veridex, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package oidcerr provides error types carrying OAuth 2.0 protocol error
// codes for endpoint-level error handling.
package oidcerr

import (
	"errors"
	"net/http"
)

// OAuth 2.0 / OpenID Connect protocol error codes relevant to claims request
// processing.
const (
	// InvalidRequest is the protocol code for a malformed or non-conformant
	// request, including every constraint extraction or validation failure.
	InvalidRequest = "invalid_request"

	// AccessDenied is the protocol code for a request refused by policy.
	AccessDenied = "access_denied"

	// ServerError is the protocol code for an unexpected condition.
	ServerError = "server_error"
)

// CodedError wraps an error with an OAuth 2.0 protocol error code.
// This allows errors to carry their intended protocol response code through
// the call stack, enabling centralized error handling at the endpoint layer.
type CodedError struct {
	err  error
	code string
}

// Error implements the error interface.
func (e *CodedError) Error() string {
	return e.err.Error()
}

// Unwrap returns the underlying error for errors.Is() and errors.As()
// compatibility.
func (e *CodedError) Unwrap() error {
	return e.err
}

// OAuthCode returns the protocol error code associated with this error.
func (e *CodedError) OAuthCode() string {
	return e.code
}

// HTTPStatus returns the HTTP status an endpoint should respond with for
// this error's protocol code.
func (e *CodedError) HTTPStatus() int {
	return statusFor(e.code)
}

// WithCode wraps an error with an OAuth 2.0 protocol error code.
// The returned error implements Unwrap() for use with errors.Is() and
// errors.As(). If err is nil, WithCode returns nil.
func WithCode(err error, code string) error {
	if err == nil {
		return nil
	}
	return &CodedError{err: err, code: code}
}

// Code extracts the protocol error code from an error.
// It unwraps the error chain looking for a CodedError.
// If no CodedError is found, it returns ServerError.
func Code(err error) string {
	if err == nil {
		return ""
	}

	var coded *CodedError
	if errors.As(err, &coded) {
		return coded.code
	}

	return ServerError
}

// Status extracts the HTTP status for an error's protocol code.
// If err is nil, Status returns 200.
func Status(err error) int {
	if err == nil {
		return http.StatusOK
	}
	return statusFor(Code(err))
}

// New creates a new error with the given message and protocol error code.
// This is a convenience function equivalent to WithCode(errors.New(message), code).
func New(message, code string) error {
	return &CodedError{err: errors.New(message), code: code}
}

func statusFor(code string) int {
	switch code {
	case InvalidRequest:
		return http.StatusBadRequest
	case AccessDenied:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}
