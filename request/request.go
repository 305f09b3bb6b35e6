// SPDX-FileCopyrightText: Copyright 2026 Veridex, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package request parses the OpenID Connect "claims" authorization request
// parameter and hands its verified_claims members to the constraint engine.
package request

import (
	"encoding/json"
	"fmt"

	"github.com/veridex/assurance-core/assurance/constraint"
	"github.com/veridex/assurance-core/oidcerr"
)

// Parameter represents the decoded "claims" request parameter of an OpenID
// Connect authorization request. Only the two standard top-level sections are
// modeled; each may carry a verified_claims member alongside ordinary claim
// requests.
type Parameter struct {
	// Userinfo holds the claims requested to be returned from the UserInfo
	// endpoint.
	Userinfo map[string]any `json:"userinfo,omitempty"`

	// IDToken holds the claims requested to be embedded in the ID token.
	IDToken map[string]any `json:"id_token,omitempty"`
}

// Parse decodes a raw "claims" parameter value. A malformed document is
// reported as an invalid_request protocol error.
func Parse(data []byte) (*Parameter, error) {
	var p Parameter
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, oidcerr.WithCode(fmt.Errorf("malformed claims parameter: %w", err), oidcerr.InvalidRequest)
	}
	return &p, nil
}

// UserinfoConstraint extracts the verified_claims constraint tree from the
// userinfo section. The returned container's VerifiedClaims node reports
// Exists() == false when the section carries no verified_claims member.
func (p *Parameter) UserinfoConstraint() (*constraint.VerifiedClaimsContainerConstraint, error) {
	return extractSection(p.Userinfo)
}

// IDTokenConstraint extracts the verified_claims constraint tree from the
// id_token section.
func (p *Parameter) IDTokenConstraint() (*constraint.VerifiedClaimsContainerConstraint, error) {
	return extractSection(p.IDToken)
}

// Validate extracts and validates the verified_claims members of both
// sections. Any extraction or validation failure is reported as an
// invalid_request protocol error, ready for an endpoint layer to translate
// into its error response.
func (p *Parameter) Validate() error {
	for _, section := range []map[string]any{p.Userinfo, p.IDToken} {
		c, err := extractSection(section)
		if err != nil {
			return err
		}
		if err := constraint.Validate(c); err != nil {
			return oidcerr.WithCode(err, oidcerr.InvalidRequest)
		}
	}
	return nil
}

func extractSection(section map[string]any) (*constraint.VerifiedClaimsContainerConstraint, error) {
	c, err := constraint.Extract(section)
	if err != nil {
		return nil, oidcerr.WithCode(err, oidcerr.InvalidRequest)
	}
	return c, nil
}
