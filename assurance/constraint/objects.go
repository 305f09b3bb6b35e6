// SPDX-FileCopyrightText: Copyright 2026 Veridex, Inc.
// SPDX-License-Identifier: Apache-2.0

package constraint

// IssuerConstraint represents the "issuer" member of a document: the
// authority that issued the identity document.
type IssuerConstraint struct {
	BaseConstraint

	Name    *LeafConstraint
	Country *LeafConstraint
}

// ExtractIssuer builds an IssuerConstraint from m[key].
func ExtractIssuer(m map[string]any, key string) (*IssuerConstraint, error) {
	c := &IssuerConstraint{}

	obj, err := beginExtract(&c.BaseConstraint, m, key)
	if err != nil {
		return nil, err
	}
	if obj == nil {
		return c, nil
	}

	if c.Name, err = ExtractLeaf(obj, "name"); err != nil {
		return nil, err
	}
	if c.Country, err = ExtractLeaf(obj, "country"); err != nil {
		return nil, err
	}

	return c, nil
}

// ToMap implements Constraint.
func (c *IssuerConstraint) ToMap() map[string]any {
	m := c.BaseConstraint.ToMap()
	if m == nil {
		return nil
	}
	addIfAvailable(m, "name", c.Name)
	addIfAvailable(m, "country", c.Country)
	return m
}

// VerifierConstraint represents the "verifier" member of an evidence entry:
// the organization that performed the verification and its transaction id.
type VerifierConstraint struct {
	BaseConstraint

	Organization *LeafConstraint
	Txn          *LeafConstraint
}

// ExtractVerifier builds a VerifierConstraint from m[key].
func ExtractVerifier(m map[string]any, key string) (*VerifierConstraint, error) {
	c := &VerifierConstraint{}

	obj, err := beginExtract(&c.BaseConstraint, m, key)
	if err != nil {
		return nil, err
	}
	if obj == nil {
		return c, nil
	}

	if c.Organization, err = ExtractLeaf(obj, "organization"); err != nil {
		return nil, err
	}
	if c.Txn, err = ExtractLeaf(obj, "txn"); err != nil {
		return nil, err
	}

	return c, nil
}

// ToMap implements Constraint.
func (c *VerifierConstraint) ToMap() map[string]any {
	m := c.BaseConstraint.ToMap()
	if m == nil {
		return nil
	}
	addIfAvailable(m, "organization", c.Organization)
	addIfAvailable(m, "txn", c.Txn)
	return m
}

// DocumentConstraint represents the "document" member of an id_document
// evidence entry.
type DocumentConstraint struct {
	BaseConstraint

	Type           *LeafConstraint
	Number         *LeafConstraint
	Issuer         *IssuerConstraint
	DateOfIssuance *LeafConstraint
	DateOfExpiry   *LeafConstraint
}

// ExtractDocument builds a DocumentConstraint from m[key].
func ExtractDocument(m map[string]any, key string) (*DocumentConstraint, error) {
	c := &DocumentConstraint{}

	obj, err := beginExtract(&c.BaseConstraint, m, key)
	if err != nil {
		return nil, err
	}
	if obj == nil {
		return c, nil
	}

	if c.Type, err = ExtractLeaf(obj, "type"); err != nil {
		return nil, err
	}
	if c.Number, err = ExtractLeaf(obj, "number"); err != nil {
		return nil, err
	}
	if c.Issuer, err = ExtractIssuer(obj, "issuer"); err != nil {
		return nil, err
	}
	if c.DateOfIssuance, err = ExtractLeaf(obj, "date_of_issuance"); err != nil {
		return nil, err
	}
	if c.DateOfExpiry, err = ExtractLeaf(obj, "date_of_expiry"); err != nil {
		return nil, err
	}

	return c, nil
}

// ToMap implements Constraint.
func (c *DocumentConstraint) ToMap() map[string]any {
	m := c.BaseConstraint.ToMap()
	if m == nil {
		return nil
	}
	addIfAvailable(m, "type", c.Type)
	addIfAvailable(m, "number", c.Number)
	addIfAvailable(m, "issuer", c.Issuer)
	addIfAvailable(m, "date_of_issuance", c.DateOfIssuance)
	addIfAvailable(m, "date_of_expiry", c.DateOfExpiry)
	return m
}

// ProviderConstraint represents the "provider" member of a utility_bill
// evidence entry: the utility provider's name and address.
type ProviderConstraint struct {
	BaseConstraint

	Name          *LeafConstraint
	Formatted     *LeafConstraint
	StreetAddress *LeafConstraint
	Locality      *LeafConstraint
	Region        *LeafConstraint
	PostalCode    *LeafConstraint
	Country       *LeafConstraint
}

// ExtractProvider builds a ProviderConstraint from m[key].
func ExtractProvider(m map[string]any, key string) (*ProviderConstraint, error) {
	c := &ProviderConstraint{}

	obj, err := beginExtract(&c.BaseConstraint, m, key)
	if err != nil {
		return nil, err
	}
	if obj == nil {
		return c, nil
	}

	if c.Name, err = ExtractLeaf(obj, "name"); err != nil {
		return nil, err
	}
	if c.Formatted, err = ExtractLeaf(obj, "formatted"); err != nil {
		return nil, err
	}
	if c.StreetAddress, err = ExtractLeaf(obj, "street_address"); err != nil {
		return nil, err
	}
	if c.Locality, err = ExtractLeaf(obj, "locality"); err != nil {
		return nil, err
	}
	if c.Region, err = ExtractLeaf(obj, "region"); err != nil {
		return nil, err
	}
	if c.PostalCode, err = ExtractLeaf(obj, "postal_code"); err != nil {
		return nil, err
	}
	if c.Country, err = ExtractLeaf(obj, "country"); err != nil {
		return nil, err
	}

	return c, nil
}

// ToMap implements Constraint.
func (c *ProviderConstraint) ToMap() map[string]any {
	m := c.BaseConstraint.ToMap()
	if m == nil {
		return nil
	}
	addIfAvailable(m, "name", c.Name)
	addIfAvailable(m, "formatted", c.Formatted)
	addIfAvailable(m, "street_address", c.StreetAddress)
	addIfAvailable(m, "locality", c.Locality)
	addIfAvailable(m, "region", c.Region)
	addIfAvailable(m, "postal_code", c.PostalCode)
	addIfAvailable(m, "country", c.Country)
	return m
}
