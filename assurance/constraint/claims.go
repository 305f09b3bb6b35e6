// SPDX-FileCopyrightText: Copyright 2026 Veridex, Inc.
// SPDX-License-Identifier: Apache-2.0

package constraint

import "sort"

// ClaimsConstraint represents the "claims" member of verified_claims: a map
// from claim name to the constraint requested for that claim. Name order is
// preserved as inserted; extraction inserts names in sorted order since the
// generic source map carries no document order.
type ClaimsConstraint struct {
	BaseConstraint

	names  []string
	claims map[string]*VerifiedClaimConstraint
}

// ExtractClaims builds a ClaimsConstraint from m[key].
func ExtractClaims(m map[string]any, key string) (*ClaimsConstraint, error) {
	c := &ClaimsConstraint{}

	obj, err := beginExtract(&c.BaseConstraint, m, key)
	if err != nil {
		return nil, err
	}
	if obj == nil {
		return c, nil
	}

	names := make([]string, 0, len(obj))
	for name := range obj {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		claim, err := ExtractVerifiedClaim(obj, name)
		if err != nil {
			return nil, err
		}
		c.Set(name, claim)
	}

	return c, nil
}

// Len returns the number of claim entries.
func (c *ClaimsConstraint) Len() int {
	return len(c.names)
}

// Names returns the claim names in insertion order. The returned slice is
// shared; callers must not modify it.
func (c *ClaimsConstraint) Names() []string {
	return c.names
}

// Get returns the constraint for the named claim, or nil when the name is not
// present.
func (c *ClaimsConstraint) Get(name string) *VerifiedClaimConstraint {
	return c.claims[name]
}

// Set inserts or replaces the constraint for the named claim.
func (c *ClaimsConstraint) Set(name string, claim *VerifiedClaimConstraint) {
	if c.claims == nil {
		c.claims = make(map[string]*VerifiedClaimConstraint)
	}
	if _, ok := c.claims[name]; !ok {
		c.names = append(c.names, name)
	}
	c.claims[name] = claim
}

// ToMap implements Constraint. Every entry is emitted; a present-but-null
// claim serializes as an explicit null.
func (c *ClaimsConstraint) ToMap() map[string]any {
	m := c.BaseConstraint.ToMap()
	if m == nil {
		return nil
	}
	for _, name := range c.names {
		m[name] = c.claims[name].ToMap()
	}
	return m
}
