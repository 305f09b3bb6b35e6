// SPDX-FileCopyrightText: Copyright 2026 Veridex, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package policy evaluates deployment-defined admission rules against parsed
verified_claims requests.

The constraint package enforces the rules of OpenID Connect for Identity
Assurance itself; this package covers the rules a deployment adds on top:
which claims a relying party may ask for, how many, under which trust
frameworks. Rules are CEL expressions over two pre-declared variables:

	verified_claims  the verified_claims member in generic map form, or null
	claim_names      the list of requested claim names (list of string)

Policies are typically loaded from a YAML file:

	policies:
	  - name: claim-limit
	    description: cap the number of requested claims
	    expression: claim_names.size() <= 10
	  - name: no-ssn
	    expression: "!('ssn' in claim_names)"

	set, err := policy.LoadSet(path)
	if err != nil {
	    // compile error naming the offending policy
	}

	if err := set.Evaluate(container); err != nil {
	    // access_denied protocol error naming the rejecting policy
	}

Expression length and evaluation cost are bounded to guard against
denial-of-service via hostile policy files.
*/
package policy
