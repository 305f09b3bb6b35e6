// SPDX-FileCopyrightText: Copyright 2026 Veridex, Inc.
// SPDX-License-Identifier: Apache-2.0

package constraint

// fieldState is the presence state of a single constraint property.
type fieldState int

const (
	fieldUnset fieldState = iota
	fieldNull
	fieldSet
)

// Field tracks per-key presence for one property of a constraint node,
// distinguishing "key absent", "key present with JSON null", and "key present
// with a value". The distinction matters for round-tripping: an absent key is
// omitted on re-serialization while a null key is emitted as an explicit null.
//
// The zero value is the unset state.
type Field[T any] struct {
	state fieldState
	value T
}

// FieldOf returns a Field holding the given value.
func FieldOf[T any](value T) Field[T] {
	return Field[T]{state: fieldSet, value: value}
}

// NullField returns a Field in the present-but-null state.
func NullField[T any]() Field[T] {
	return Field[T]{state: fieldNull}
}

// Present reports whether the key for this field appeared in the source map,
// regardless of whether its value was null.
func (f Field[T]) Present() bool {
	return f.state != fieldUnset
}

// IsNull reports whether the key appeared with an explicit JSON null.
func (f Field[T]) IsNull() bool {
	return f.state == fieldNull
}

// Get returns the held value, or the zero value of T when the field is unset
// or null.
func (f Field[T]) Get() T {
	return f.value
}

// Set puts the field in the present-with-value state.
func (f *Field[T]) Set(value T) {
	f.state = fieldSet
	f.value = value
}

// SetNull puts the field in the present-but-null state, discarding any value.
func (f *Field[T]) SetNull() {
	var zero T
	f.state = fieldNull
	f.value = zero
}

// Clear returns the field to the unset state.
func (f *Field[T]) Clear() {
	var zero T
	f.state = fieldUnset
	f.value = zero
}
