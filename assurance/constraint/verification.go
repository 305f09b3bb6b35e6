// SPDX-FileCopyrightText: Copyright 2026 Veridex, Inc.
// SPDX-License-Identifier: Apache-2.0

package constraint

// VerificationConstraint represents the "verification" member of
// verified_claims: how the claims were verified.
type VerificationConstraint struct {
	BaseConstraint

	TrustFramework      *LeafConstraint
	Time                *TimeConstraint
	VerificationProcess *LeafConstraint
	Evidence            *EvidenceArrayConstraint
}

// ExtractVerification builds a VerificationConstraint from m[key].
func ExtractVerification(m map[string]any, key string) (*VerificationConstraint, error) {
	c := &VerificationConstraint{}

	obj, err := beginExtract(&c.BaseConstraint, m, key)
	if err != nil {
		return nil, err
	}
	if obj == nil {
		return c, nil
	}

	if c.TrustFramework, err = ExtractLeaf(obj, "trust_framework"); err != nil {
		return nil, err
	}
	if c.Time, err = ExtractTime(obj, "time"); err != nil {
		return nil, err
	}
	if c.VerificationProcess, err = ExtractLeaf(obj, "verification_process"); err != nil {
		return nil, err
	}
	if c.Evidence, err = ExtractEvidenceArray(obj, "evidence"); err != nil {
		return nil, err
	}

	return c, nil
}

// ToMap implements Constraint.
func (c *VerificationConstraint) ToMap() map[string]any {
	m := c.BaseConstraint.ToMap()
	if m == nil {
		return nil
	}
	addIfAvailable(m, "trust_framework", c.TrustFramework)
	addIfAvailable(m, "time", c.Time)
	addIfAvailable(m, "verification_process", c.VerificationProcess)
	if c.Evidence != nil && c.Evidence.Exists() {
		// The evidence member is a list, not a map, so addIfAvailable does
		// not apply; a null array still serializes as an explicit null.
		if list := c.Evidence.ToList(); list != nil {
			m["evidence"] = list
		} else {
			m["evidence"] = nil
		}
	}
	return m
}
