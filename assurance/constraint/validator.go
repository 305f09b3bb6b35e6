// SPDX-FileCopyrightText: Copyright 2026 Veridex, Inc.
// SPDX-License-Identifier: Apache-2.0

package constraint

import "unicode/utf8"

const (
	// MinPurposeLength is the minimum length of a purpose string in characters.
	MinPurposeLength = 3

	// MaxPurposeLength is the maximum length of a purpose string in characters.
	MaxPurposeLength = 300
)

// Validator walks an extracted constraint tree top-down and enforces the
// semantic rules of OpenID Connect for Identity Assurance. Every check is a
// no-op on an absent or null node, so partial trees validate cleanly; the
// first violation aborts the walk.
//
// A Validator is stateless and safe for concurrent use.
type Validator struct{}

// NewValidator creates a Validator.
func NewValidator() *Validator {
	return &Validator{}
}

// Validate is a convenience for NewValidator().Validate(c).
func Validate(c *VerifiedClaimsContainerConstraint) error {
	return NewValidator().Validate(c)
}

// Validate checks a whole container tree.
func (v *Validator) Validate(c *VerifiedClaimsContainerConstraint) error {
	if c == nil || !c.Exists() {
		return nil
	}
	return v.ValidateVerifiedClaims(c.VerifiedClaims)
}

// ValidateVerifiedClaims checks a verified_claims node. No rule is currently
// applied to the verification member.
func (v *Validator) ValidateVerifiedClaims(c *VerifiedClaimsConstraint) error {
	if c == nil || !c.Exists() || c.IsNull() {
		return nil
	}
	return v.ValidateClaims(c.Claims)
}

// ValidateClaims checks a claims node. A present, non-null claims object with
// zero entries is a hard failure; OpenID Connect for Identity Assurance
// treats an empty claims object as semantically invalid.
func (v *Validator) ValidateClaims(c *ClaimsConstraint) error {
	if c == nil || !c.Exists() || c.IsNull() {
		return nil
	}

	if c.Len() == 0 {
		return semanticsErrorf("'claims' is empty.")
	}

	for _, name := range c.Names() {
		if err := v.ValidateClaim(name, c.Get(name)); err != nil {
			return err
		}
	}

	return nil
}

// ValidateClaim checks one claim entry. The key is the claim name, used in
// error messages.
func (v *Validator) ValidateClaim(key string, c *VerifiedClaimConstraint) error {
	if c == nil || !c.Exists() || c.IsNull() {
		return nil
	}

	if !c.Purpose.Present() || c.Purpose.IsNull() {
		return nil
	}

	return v.ValidatePurpose(key, c.Purpose.Get())
}

// ValidatePurpose checks that a purpose string is within the mandated
// length bounds, inclusive.
func (v *Validator) ValidatePurpose(key, purpose string) error {
	length := utf8.RuneCountInString(purpose)

	if length < MinPurposeLength {
		return semanticsErrorf(
			"The length of the 'purpose' for '%s' must be at least %d characters.", key, MinPurposeLength)
	}
	if length > MaxPurposeLength {
		return semanticsErrorf(
			"The length of the 'purpose' for '%s' must be at most %d characters.", key, MaxPurposeLength)
	}

	return nil
}
