// SPDX-FileCopyrightText: Copyright 2026 Veridex, Inc.
// SPDX-License-Identifier: Apache-2.0

package constraint

import "fmt"

// Kind classifies a constraint error.
type Kind string

const (
	// KindStructure indicates input that does not match the expected JSON shape
	// for the node being extracted (wrong type for a field, non-string array
	// element, and so on).
	KindStructure Kind = "structure"

	// KindSemantics indicates structurally valid input that violates a
	// semantic rule of OpenID Connect for Identity Assurance (empty claims
	// object, purpose string out of bounds, unrecognized evidence).
	KindSemantics Kind = "semantics"
)

// Error is the single error type produced by extraction and validation.
// The first error encountered aborts the whole operation; there is no
// accumulation and no partial tree.
type Error struct {
	// Kind tells whether the failure was structural or semantic.
	Kind Kind

	// Message is a human-readable description naming the offending key or path.
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// structureErrorf creates a structural *Error with a formatted message.
func structureErrorf(format string, args ...any) *Error {
	return &Error{Kind: KindStructure, Message: fmt.Sprintf(format, args...)}
}

// semanticsErrorf creates a semantic *Error with a formatted message.
func semanticsErrorf(format string, args ...any) *Error {
	return &Error{Kind: KindSemantics, Message: fmt.Sprintf(format, args...)}
}
