// SPDX-FileCopyrightText: Copyright 2026 Veridex, Inc.
// SPDX-License-Identifier: Apache-2.0

package constraint

// EvidenceType identifies the concrete variant of an evidence entry.
type EvidenceType string

const (
	// EvidenceIDDocument is verification by checking an identity document.
	EvidenceIDDocument EvidenceType = "id_document"

	// EvidenceQES is verification by a qualified electronic signature.
	EvidenceQES EvidenceType = "qes"

	// EvidenceUtilityBill is verification by a utility bill.
	EvidenceUtilityBill EvidenceType = "utility_bill"
)

// Property-name sets used for structural discrimination when an evidence
// entry carries no usable "type" member. The probing order and the exact sets
// are a compatibility contract; downstream consumers may depend on the
// current tie-break order.
var (
	idDocumentProperties  = []string{"method", "verifier", "time", "document"}
	qesProperties         = []string{"issuer", "serial_number", "created_at"}
	utilityBillProperties = []string{"provider", "date"}
)

// EvidenceConstraint is the closed set of evidence variants. An evidence node
// is always embedded in an evidence array, so it is never independently
// absent; extraction sets Exists() unconditionally.
type EvidenceConstraint interface {
	Constraint

	// Variant returns the discriminator tag of the concrete variant.
	Variant() EvidenceType

	// Type returns the entry's raw "type" member. It may be unset or null;
	// the Variant is then the result of structural sniffing.
	Type() Field[string]

	// sealed keeps the variant set closed to this package.
	sealed()
}

// evidenceBase carries the state common to every evidence variant.
type evidenceBase struct {
	BaseConstraint

	typ Field[string]
}

func (b *evidenceBase) sealed() {}

// Type returns the entry's raw "type" member.
func (b *evidenceBase) Type() Field[string] {
	return b.typ
}

// SetType sets the entry's "type" member.
func (b *evidenceBase) SetType(f Field[string]) {
	b.typ = f
}

// fill populates the common evidence state from an entry object. An embedded
// evidence node always exists.
func (b *evidenceBase) fill(obj map[string]any) error {
	b.exists = true

	typ, err := optionalString(obj, "type")
	if err != nil {
		return err
	}
	b.typ = typ

	return nil
}

func (b *evidenceBase) baseMap() map[string]any {
	m := b.BaseConstraint.ToMap()
	if m == nil {
		return nil
	}
	putField(m, "type", b.typ)
	return m
}

// IDDocumentConstraint is evidence of verification against an identity
// document.
type IDDocumentConstraint struct {
	evidenceBase

	Method   *LeafConstraint
	Verifier *VerifierConstraint
	Time     *TimeConstraint
	Document *DocumentConstraint
}

// Variant implements EvidenceConstraint.
func (*IDDocumentConstraint) Variant() EvidenceType {
	return EvidenceIDDocument
}

func extractIDDocument(obj map[string]any) (*IDDocumentConstraint, error) {
	c := &IDDocumentConstraint{}

	if err := c.fill(obj); err != nil {
		return nil, err
	}

	var err error
	if c.Method, err = ExtractLeaf(obj, "method"); err != nil {
		return nil, err
	}
	if c.Verifier, err = ExtractVerifier(obj, "verifier"); err != nil {
		return nil, err
	}
	if c.Time, err = ExtractTime(obj, "time"); err != nil {
		return nil, err
	}
	if c.Document, err = ExtractDocument(obj, "document"); err != nil {
		return nil, err
	}

	return c, nil
}

// ToMap implements Constraint.
func (c *IDDocumentConstraint) ToMap() map[string]any {
	m := c.baseMap()
	if m == nil {
		return nil
	}
	addIfAvailable(m, "method", c.Method)
	addIfAvailable(m, "verifier", c.Verifier)
	addIfAvailable(m, "time", c.Time)
	addIfAvailable(m, "document", c.Document)
	return m
}

// QESConstraint is evidence of verification by a qualified electronic
// signature.
type QESConstraint struct {
	evidenceBase

	Issuer       *LeafConstraint
	SerialNumber *LeafConstraint
	CreatedAt    *TimeConstraint
}

// Variant implements EvidenceConstraint.
func (*QESConstraint) Variant() EvidenceType {
	return EvidenceQES
}

func extractQES(obj map[string]any) (*QESConstraint, error) {
	c := &QESConstraint{}

	if err := c.fill(obj); err != nil {
		return nil, err
	}

	var err error
	if c.Issuer, err = ExtractLeaf(obj, "issuer"); err != nil {
		return nil, err
	}
	if c.SerialNumber, err = ExtractLeaf(obj, "serial_number"); err != nil {
		return nil, err
	}
	if c.CreatedAt, err = ExtractTime(obj, "created_at"); err != nil {
		return nil, err
	}

	return c, nil
}

// ToMap implements Constraint.
func (c *QESConstraint) ToMap() map[string]any {
	m := c.baseMap()
	if m == nil {
		return nil
	}
	addIfAvailable(m, "issuer", c.Issuer)
	addIfAvailable(m, "serial_number", c.SerialNumber)
	addIfAvailable(m, "created_at", c.CreatedAt)
	return m
}

// UtilityBillConstraint is evidence of verification by a utility bill.
type UtilityBillConstraint struct {
	evidenceBase

	Provider *ProviderConstraint
	Date     *TimeConstraint
}

// Variant implements EvidenceConstraint.
func (*UtilityBillConstraint) Variant() EvidenceType {
	return EvidenceUtilityBill
}

func extractUtilityBill(obj map[string]any) (*UtilityBillConstraint, error) {
	c := &UtilityBillConstraint{}

	if err := c.fill(obj); err != nil {
		return nil, err
	}

	var err error
	if c.Provider, err = ExtractProvider(obj, "provider"); err != nil {
		return nil, err
	}
	if c.Date, err = ExtractTime(obj, "date"); err != nil {
		return nil, err
	}

	return c, nil
}

// ToMap implements Constraint.
func (c *UtilityBillConstraint) ToMap() map[string]any {
	m := c.baseMap()
	if m == nil {
		return nil
	}
	addIfAvailable(m, "provider", c.Provider)
	addIfAvailable(m, "date", c.Date)
	return m
}

// ExtractEvidence builds the concrete evidence variant for list[index].
// The entry must be a non-null object; the variant is chosen by the explicit
// "type" member when usable, otherwise by structural sniffing. The key names
// the evidence array in error messages.
func ExtractEvidence(list []any, index int, key string) (EvidenceConstraint, error) {
	raw := list[index]
	if raw == nil {
		return nil, structureErrorf("'%s[%d]' is null.", key, index)
	}

	obj, ok := raw.(map[string]any)
	if !ok {
		return nil, structureErrorf("'%s[%d]' is not an object.", key, index)
	}

	variant, err := guessEvidenceType(obj, key, index)
	if err != nil {
		return nil, err
	}

	switch variant {
	case EvidenceIDDocument:
		return extractIDDocument(obj)
	case EvidenceQES:
		return extractQES(obj)
	default:
		return extractUtilityBill(obj)
	}
}

// guessEvidenceType picks the variant for an evidence entry.
//
// An explicit non-null "type" value is authoritative: it is mapped through
// the fixed string table and an unrecognized value is a hard error. A missing
// or null "type" falls through to structural sniffing over the fixed
// property-name sets, probing in the order id_document, qes, utility_bill;
// the first set with any member present wins. No signal and no match is a
// hard error, never a silent default.
func guessEvidenceType(obj map[string]any, key string, index int) (EvidenceType, error) {
	if raw, ok := obj["type"]; ok && raw != nil {
		s, ok := raw.(string)
		if ok {
			switch EvidenceType(s) {
			case EvidenceIDDocument, EvidenceQES, EvidenceUtilityBill:
				return EvidenceType(s), nil
			}
		}
		return "", semanticsErrorf("The type of '%s[%d]' is unknown.", key, index)
	}

	for _, probe := range []struct {
		variant    EvidenceType
		properties []string
	}{
		{EvidenceIDDocument, idDocumentProperties},
		{EvidenceQES, qesProperties},
		{EvidenceUtilityBill, utilityBillProperties},
	} {
		for _, name := range probe.properties {
			if _, ok := obj[name]; ok {
				return probe.variant, nil
			}
		}
	}

	return "", semanticsErrorf("'%s[%d]' is not a known evidence.", key, index)
}

// EvidenceArrayConstraint is an ordered collection of heterogeneous evidence
// nodes, representing the "evidence" member of a verification object.
type EvidenceArrayConstraint struct {
	BaseConstraint

	Evidence []EvidenceConstraint
}

// ExtractEvidenceArray builds an EvidenceArrayConstraint from m[key].
func ExtractEvidenceArray(m map[string]any, key string) (*EvidenceArrayConstraint, error) {
	c := &EvidenceArrayConstraint{}

	raw, ok := m[key]
	if !ok {
		return c, nil
	}

	c.exists = true

	if raw == nil {
		c.null = true
		return c, nil
	}

	list, ok := raw.([]any)
	if !ok {
		return nil, structureErrorf("'%s' is not an array.", key)
	}

	c.Evidence = make([]EvidenceConstraint, 0, len(list))
	for i := range list {
		evidence, err := ExtractEvidence(list, i, key)
		if err != nil {
			return nil, err
		}
		c.Evidence = append(c.Evidence, evidence)
	}

	return c, nil
}

// ToList returns the array as a generic JSON-shaped list, or nil (the absence
// marker) when the node is absent or null.
func (c *EvidenceArrayConstraint) ToList() []any {
	if !c.exists || c.null {
		return nil
	}

	list := make([]any, len(c.Evidence))
	for i, evidence := range c.Evidence {
		list[i] = evidence.ToMap()
	}
	return list
}
