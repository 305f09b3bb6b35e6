// SPDX-FileCopyrightText: Copyright 2026 Veridex, Inc.
// SPDX-License-Identifier: Apache-2.0

package policy

import (
	"errors"
	"fmt"

	"github.com/google/cel-go/cel"
)

// Sentinel errors for policy expression handling.
var (
	// ErrExpressionCheck is returned when a policy expression fails syntax or
	// type checking.
	ErrExpressionCheck = errors.New("policy expression check failed")

	// ErrEvaluation is returned when policy expression evaluation fails.
	ErrEvaluation = errors.New("policy expression evaluation failed")

	// ErrInvalidResult is returned when a policy expression does not evaluate
	// to a boolean.
	ErrInvalidResult = errors.New("policy expression returned invalid result type")
)

// Issue is one occurrence of an error in a policy expression.
type Issue struct {
	Line int    `json:"line,omitempty"`
	Col  int    `json:"col,omitempty"`
	Msg  string `json:"msg,omitempty"`
}

// ParseError is a syntax error in a policy expression, with location
// information.
type ParseError struct {
	Source   string
	Issues   []Issue
	original error
}

// Error implements the error interface.
func (pe *ParseError) Error() string {
	return fmt.Sprintf("parse error in policy expression %q: %s", pe.Source, pe.original)
}

// Unwrap returns the underlying error.
func (pe *ParseError) Unwrap() error {
	return pe.original
}

// CheckError is a type checking error in a policy expression, with location
// information.
type CheckError struct {
	Source   string
	Issues   []Issue
	original error
}

// Error implements the error interface.
func (ce *CheckError) Error() string {
	return fmt.Sprintf("check error in policy expression %q: %s", ce.Source, ce.original)
}

// Unwrap returns the underlying error.
func (ce *CheckError) Unwrap() error {
	return ce.original
}

func issuesFrom(issues *cel.Issues) []Issue {
	out := make([]Issue, 0, len(issues.Errors()))
	for _, err := range issues.Errors() {
		out = append(out, Issue{
			Line: err.Location.Line(),
			Col:  err.Location.Column(),
			Msg:  err.Message,
		})
	}
	return out
}

func newParseError(source string, issues *cel.Issues) error {
	return &ParseError{
		Source:   source,
		Issues:   issuesFrom(issues),
		original: fmt.Errorf("%w: %w", ErrExpressionCheck, issues.Err()),
	}
}

func newCheckError(source string, issues *cel.Issues) error {
	return &CheckError{
		Source:   source,
		Issues:   issuesFrom(issues),
		original: fmt.Errorf("%w: %w", ErrExpressionCheck, issues.Err()),
	}
}
