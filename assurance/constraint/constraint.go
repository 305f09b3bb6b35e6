// SPDX-FileCopyrightText: Copyright 2026 Veridex, Inc.
// SPDX-License-Identifier: Apache-2.0

package constraint

import "encoding/json"

// Constraint is the contract every node of a verified_claims request tree
// fulfills: a two-flag presence state plus re-serialization to a generic map.
type Constraint interface {
	// Exists reports whether the key for this node appeared in the source map.
	Exists() bool

	// IsNull reports whether the key appeared with an explicit JSON null.
	// IsNull is meaningful only when Exists is true.
	IsNull() bool

	// ToMap returns the node as a generic JSON-shaped map. It returns nil (the
	// absence marker) when the node is absent or null; a parent deciding to
	// keep the key will then serialize it as an explicit null.
	ToMap() map[string]any
}

// BaseConstraint carries the two presence flags shared by every node.
// Node-specific fields of a subtype are meaningful only when Exists() is true
// and IsNull() is false.
type BaseConstraint struct {
	exists bool
	null   bool
}

// Exists reports whether the key for this node appeared in the source map.
func (c *BaseConstraint) Exists() bool {
	return c.exists
}

// SetExists sets the presence flag. No validation is performed.
func (c *BaseConstraint) SetExists(exists bool) {
	c.exists = exists
}

// IsNull reports whether the key appeared with an explicit JSON null.
func (c *BaseConstraint) IsNull() bool {
	return c.null
}

// SetNull sets the null flag. No validation is performed.
func (c *BaseConstraint) SetNull(null bool) {
	c.null = null
}

// ToMap returns an empty map when the node is present and non-null, and nil
// otherwise. Subtypes call this first and populate their own keys only when
// the result is non-nil.
func (c *BaseConstraint) ToMap() map[string]any {
	if !c.exists || c.null {
		return nil
	}
	return map[string]any{}
}

// addIfAvailable adds name -> child.ToMap() to m when the child node was
// present in the source. A present-but-null child is added as an explicit nil
// so it serializes as JSON null; a nil or absent child adds nothing. The
// pointer-typed parameter keeps the nil check on the concrete type, so nil
// children of a programmatically built tree are skipped rather than wrapped
// in a non-nil interface value.
func addIfAvailable[T any, P interface {
	*T
	Constraint
}](m map[string]any, name string, c P) {
	if c != nil && c.Exists() {
		m[name] = c.ToMap()
	}
}

// ToJSON serializes a constraint node back to JSON via its ToMap form.
// An absent or null node serializes to the string "null".
func ToJSON(c Constraint, pretty bool) (string, error) {
	return marshalJSON(c.ToMap(), pretty)
}

// marshalJSON renders a generic JSON-shaped value. Map entries whose value is
// nil are emitted as explicit nulls, which keeps "claim": null distinguishable
// from an omitted claim.
func marshalJSON(v any, pretty bool) (string, error) {
	var (
		data []byte
		err  error
	)
	if pretty {
		data, err = json.MarshalIndent(v, "", "  ")
	} else {
		data, err = json.Marshal(v)
	}
	if err != nil {
		return "", err
	}
	return string(data), nil
}
