// SPDX-FileCopyrightText: Copyright 2026 Veridex, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package constraint models the verified_claims structure of OpenID Connect for
Identity Assurance (eKYC-IDA) as requested by a relying party: a constraint
tree over claims and the evidence of how they were verified.

The package consumes and produces plain nested key-value structures (maps,
lists, scalars), typically the decoded "claims" parameter of an authorization
request. Extraction builds a typed tree bottom-up, validation walks it
top-down, and serialization walks it bottom-up again:

	container, err := constraint.FromJSON(data)
	if err != nil {
	    // structural error: the input does not match the expected shape
	}

	if err := constraint.Validate(container); err != nil {
	    // semantic error: the request violates an identity-assurance rule
	}

	out, err := container.ToJSON(false)

# Presence semantics

Every node distinguishes three states: key absent, key present with an
explicit JSON null, and key present with a value. Node-specific fields are
meaningful only in the last state. Individual properties such as "essential"
or "purpose" carry the same three-state distinction through [Field], so a
present-but-null property round-trips as an explicit null while an absent one
stays omitted.

# Evidence discrimination

Evidence entries are a closed variant set (id_document, qes, utility_bill).
An explicit "type" member picks the variant; without one, the entry's
top-level property names are probed against fixed per-variant sets in a fixed
order. The probing order and sets are a compatibility contract. An entry that
matches nothing is rejected.

Each extraction produces an independent tree with no shared state; trees may
be built and used concurrently as long as each goroutine works with its own
instance.
*/
package constraint
