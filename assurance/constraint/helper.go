// SPDX-FileCopyrightText: Copyright 2026 Veridex, Inc.
// SPDX-License-Identifier: Apache-2.0

package constraint

import "encoding/json"

// beginExtract reads m[key] and sets the base presence flags accordingly.
// It returns the value as a map when the key is present with a non-null
// object, and nil when the key is absent or null. A present value of any
// other JSON type is a structural error.
func beginExtract(base *BaseConstraint, m map[string]any, key string) (map[string]any, error) {
	raw, ok := m[key]
	if !ok {
		return nil, nil
	}

	base.exists = true

	if raw == nil {
		base.null = true
		return nil, nil
	}

	obj, ok := raw.(map[string]any)
	if !ok {
		return nil, structureErrorf("'%s' is not an object.", key)
	}
	if obj == nil {
		// A typed nil map, as produced by ToMap for a null child, carries the
		// same meaning as an explicit JSON null.
		base.null = true
		return nil, nil
	}

	return obj, nil
}

// optionalBool extracts m[key] as a three-state boolean field.
func optionalBool(m map[string]any, key string) (Field[bool], error) {
	raw, ok := m[key]
	if !ok {
		return Field[bool]{}, nil
	}
	if raw == nil {
		return NullField[bool](), nil
	}

	b, ok := raw.(bool)
	if !ok {
		return Field[bool]{}, structureErrorf("'%s' is not a boolean.", key)
	}

	return FieldOf(b), nil
}

// optionalString extracts m[key] as a three-state string field.
func optionalString(m map[string]any, key string) (Field[string], error) {
	raw, ok := m[key]
	if !ok {
		return Field[string]{}, nil
	}
	if raw == nil {
		return NullField[string](), nil
	}

	s, ok := raw.(string)
	if !ok {
		return Field[string]{}, structureErrorf("'%s' is not a string.", key)
	}

	return FieldOf(s), nil
}

// optionalInt64 extracts m[key] as a three-state numeric field. Any JSON
// number representation is accepted and converted to int64; an unset field
// stays distinguishable from an explicit zero.
func optionalInt64(m map[string]any, key string) (Field[int64], error) {
	raw, ok := m[key]
	if !ok {
		return Field[int64]{}, nil
	}
	if raw == nil {
		return NullField[int64](), nil
	}

	switch n := raw.(type) {
	case float64:
		return FieldOf(int64(n)), nil
	case int:
		return FieldOf(int64(n)), nil
	case int64:
		return FieldOf(n), nil
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return Field[int64]{}, structureErrorf("'%s' is not an integer.", key)
		}
		return FieldOf(i), nil
	default:
		return Field[int64]{}, structureErrorf("'%s' is not a number.", key)
	}
}

// optionalStringList extracts m[key] as a three-state list of nullable
// strings. Every element must be a string or null; anything else is reported
// with its position.
func optionalStringList(m map[string]any, key string) (Field[[]*string], error) {
	raw, ok := m[key]
	if !ok {
		return Field[[]*string]{}, nil
	}
	if raw == nil {
		return NullField[[]*string](), nil
	}

	list, ok := raw.([]any)
	if !ok {
		return Field[[]*string]{}, structureErrorf("'%s' is not an array.", key)
	}

	values := make([]*string, len(list))
	for i, element := range list {
		if element == nil {
			continue
		}
		s, ok := element.(string)
		if !ok {
			return Field[[]*string]{}, structureErrorf("'%s[%d]' is not a string.", key, i)
		}
		values[i] = &s
	}

	return FieldOf(values), nil
}

// putField adds key -> value to m when the field is present, emitting an
// explicit nil for a null field and omitting an unset one.
func putField[T any](m map[string]any, key string, f Field[T]) {
	switch {
	case !f.Present():
	case f.IsNull():
		m[key] = nil
	default:
		m[key] = f.Get()
	}
}

// putStringListField is putField for nullable string lists, converting the
// elements to a generic list so null entries serialize as JSON null.
func putStringListField(m map[string]any, key string, f Field[[]*string]) {
	switch {
	case !f.Present():
	case f.IsNull():
		m[key] = nil
	default:
		values := f.Get()
		list := make([]any, len(values))
		for i, v := range values {
			if v != nil {
				list[i] = *v
			}
		}
		m[key] = list
	}
}
