// SPDX-FileCopyrightText: Copyright 2026 Veridex, Inc.
// SPDX-License-Identifier: Apache-2.0

package constraint

// LeafConstraint is the basic individual-claim request shape: whether the
// claim is essential, a specific required value, or an allowed value set.
type LeafConstraint struct {
	BaseConstraint

	// Essential mirrors the "essential" property. Absent defaults to false.
	Essential Field[bool]

	// Value mirrors the "value" property.
	Value Field[string]

	// Values mirrors the "values" property. Elements may be null.
	Values Field[[]*string]
}

// ExtractLeaf builds a LeafConstraint from m[key]. An absent key yields a
// node with Exists() == false; a null value yields Exists() && IsNull().
func ExtractLeaf(m map[string]any, key string) (*LeafConstraint, error) {
	c := &LeafConstraint{}

	obj, err := beginExtract(&c.BaseConstraint, m, key)
	if err != nil {
		return nil, err
	}
	if obj == nil {
		return c, nil
	}

	if err := fillLeaf(c, obj, key); err != nil {
		return nil, err
	}

	return c, nil
}

// fillLeaf populates the common leaf fields from an already-located object.
func fillLeaf(c *LeafConstraint, obj map[string]any, _ string) error {
	var err error

	if c.Essential, err = optionalBool(obj, "essential"); err != nil {
		return err
	}
	if c.Value, err = optionalString(obj, "value"); err != nil {
		return err
	}
	if c.Values, err = optionalStringList(obj, "values"); err != nil {
		return err
	}

	return nil
}

// ToMap implements Constraint.
func (c *LeafConstraint) ToMap() map[string]any {
	m := c.BaseConstraint.ToMap()
	if m == nil {
		return nil
	}
	c.fillMap(m)
	return m
}

func (c *LeafConstraint) fillMap(m map[string]any) {
	putField(m, "essential", c.Essential)
	putField(m, "value", c.Value)
	putStringListField(m, "values", c.Values)
}

// TimeConstraint is a LeafConstraint for time-typed claims, adding "max_age".
type TimeConstraint struct {
	LeafConstraint

	// MaxAge mirrors the "max_age" property in seconds. An unset field is
	// distinguishable from an explicit zero.
	MaxAge Field[int64]
}

// ExtractTime builds a TimeConstraint from m[key].
func ExtractTime(m map[string]any, key string) (*TimeConstraint, error) {
	c := &TimeConstraint{}

	obj, err := beginExtract(&c.BaseConstraint, m, key)
	if err != nil {
		return nil, err
	}
	if obj == nil {
		return c, nil
	}

	if err := fillLeaf(&c.LeafConstraint, obj, key); err != nil {
		return nil, err
	}
	if c.MaxAge, err = optionalInt64(obj, "max_age"); err != nil {
		return nil, err
	}

	return c, nil
}

// ToMap implements Constraint.
func (c *TimeConstraint) ToMap() map[string]any {
	m := c.BaseConstraint.ToMap()
	if m == nil {
		return nil
	}
	c.LeafConstraint.fillMap(m)
	putField(m, "max_age", c.MaxAge)
	return m
}

// VerifiedClaimConstraint is a LeafConstraint for an entry of the "claims"
// member of verified_claims, adding the "purpose" property.
type VerifiedClaimConstraint struct {
	LeafConstraint

	// Purpose mirrors the "purpose" property: a human-readable explanation of
	// why the claim is requested, with mandated length bounds
	// enforced by the Validator.
	Purpose Field[string]
}

// ExtractVerifiedClaim builds a VerifiedClaimConstraint from m[key].
func ExtractVerifiedClaim(m map[string]any, key string) (*VerifiedClaimConstraint, error) {
	c := &VerifiedClaimConstraint{}

	obj, err := beginExtract(&c.BaseConstraint, m, key)
	if err != nil {
		return nil, err
	}
	if obj == nil {
		return c, nil
	}

	if err := fillLeaf(&c.LeafConstraint, obj, key); err != nil {
		return nil, err
	}
	if c.Purpose, err = optionalString(obj, "purpose"); err != nil {
		return nil, err
	}

	return c, nil
}

// ToMap implements Constraint.
func (c *VerifiedClaimConstraint) ToMap() map[string]any {
	m := c.BaseConstraint.ToMap()
	if m == nil {
		return nil
	}
	c.LeafConstraint.fillMap(m)
	putField(m, "purpose", c.Purpose)
	return m
}
