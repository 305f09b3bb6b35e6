// SPDX-FileCopyrightText: Copyright 2026 Veridex, Inc.
// SPDX-License-Identifier: Apache-2.0

package constraint

import "encoding/json"

// VerifiedClaimsConstraint represents the value of "verified_claims": the
// verification requirements plus the requested claims.
type VerifiedClaimsConstraint struct {
	BaseConstraint

	Verification *VerificationConstraint
	Claims       *ClaimsConstraint
}

// ExtractVerifiedClaims builds a VerifiedClaimsConstraint from m[key].
func ExtractVerifiedClaims(m map[string]any, key string) (*VerifiedClaimsConstraint, error) {
	c := &VerifiedClaimsConstraint{}

	obj, err := beginExtract(&c.BaseConstraint, m, key)
	if err != nil {
		return nil, err
	}
	if obj == nil {
		return c, nil
	}

	if c.Verification, err = ExtractVerification(obj, "verification"); err != nil {
		return nil, err
	}
	if c.Claims, err = ExtractClaims(obj, "claims"); err != nil {
		return nil, err
	}

	return c, nil
}

// AllClaimsRequested reports whether the "claims" member is absent or null,
// which an earlier revision of OpenID Connect for Identity Assurance defined
// as a request for all possible claims. The current revision has removed that
// special rule, so this result is unreliable as a signal of the requester's
// intent; it is kept for callers that still honor the legacy semantics.
//
// Deprecated: OpenID Connect for Identity Assurance no longer attaches
// meaning to an omitted or null "claims" member. The calling layer must
// decide whether to honor the legacy interpretation.
func (c *VerifiedClaimsConstraint) AllClaimsRequested() bool {
	if !c.exists || c.null {
		return false
	}
	return c.Claims == nil || !c.Claims.Exists() || c.Claims.IsNull()
}

// ToMap implements Constraint.
func (c *VerifiedClaimsConstraint) ToMap() map[string]any {
	m := c.BaseConstraint.ToMap()
	if m == nil {
		return nil
	}
	addIfAvailable(m, "verification", c.Verification)
	addIfAvailable(m, "claims", c.Claims)
	return m
}

// VerifiedClaimsContainerConstraint is the top-level wrapper holding the
// "verified_claims" member of a claims request section.
type VerifiedClaimsContainerConstraint struct {
	BaseConstraint

	VerifiedClaims *VerifiedClaimsConstraint
}

// Extract builds the constraint tree for an entire claims request section.
// The container itself always exists; absence can only apply to the nested
// "verified_claims" member.
func Extract(m map[string]any) (*VerifiedClaimsContainerConstraint, error) {
	c := &VerifiedClaimsContainerConstraint{}
	c.exists = true

	verifiedClaims, err := ExtractVerifiedClaims(m, "verified_claims")
	if err != nil {
		return nil, err
	}
	c.VerifiedClaims = verifiedClaims

	return c, nil
}

// FromJSON parses JSON text into a generic map and delegates to Extract.
func FromJSON(data []byte) (*VerifiedClaimsContainerConstraint, error) {
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, structureErrorf("The input is not valid JSON: %v", err)
	}
	return Extract(m)
}

// ToMap implements Constraint.
func (c *VerifiedClaimsContainerConstraint) ToMap() map[string]any {
	m := c.BaseConstraint.ToMap()
	if m == nil {
		return nil
	}
	addIfAvailable(m, "verified_claims", c.VerifiedClaims)
	return m
}

// ToJSON serializes the container back to JSON.
func (c *VerifiedClaimsContainerConstraint) ToJSON(pretty bool) (string, error) {
	return ToJSON(c, pretty)
}
