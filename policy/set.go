// SPDX-FileCopyrightText: Copyright 2026 Veridex, Inc.
// SPDX-License-Identifier: Apache-2.0

package policy

import (
	"fmt"
	"os"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"

	"github.com/veridex/assurance-core/assurance/constraint"
	"github.com/veridex/assurance-core/logger"
	"github.com/veridex/assurance-core/oidcerr"
)

// Policy is one deployment-defined admission rule for claims requests. The
// expression must evaluate to true for the request to be accepted.
type Policy struct {
	// Name identifies the policy in error messages.
	Name string `yaml:"name" json:"name"`

	// Description is an optional human-readable explanation of the rule.
	Description string `yaml:"description,omitempty" json:"description,omitempty"`

	// Expression is a CEL expression over the claims request variables.
	Expression string `yaml:"expression" json:"expression"`
}

// Config is the on-disk shape of a policy file.
type Config struct {
	Policies []Policy `yaml:"policies" json:"policies"`
}

// Set is a compiled, ordered collection of policies evaluated against every
// claims request. A Set is safe for concurrent use.
type Set struct {
	policies []compiledSetPolicy
}

type compiledSetPolicy struct {
	name     string
	compiled *CompiledPolicy
}

// DefaultConfigPath returns the XDG-resolved location of the policy file.
func DefaultConfigPath() (string, error) {
	return xdg.ConfigFile("assurance/policies.yaml")
}

// LoadSet reads a YAML policy file and compiles every policy in it.
func LoadSet(path string) (*Set, error) {
	// #nosec G304 - the policy file location is deployment configuration
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read policy file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse policy file: %w", err)
	}

	set, err := NewSet(cfg.Policies)
	if err != nil {
		return nil, err
	}

	logger.Debugf("compiled %d claims request policies from %s", set.Len(), path)
	return set, nil
}

// NewSet compiles the given policies into a Set. A compilation failure names
// the offending policy.
func NewSet(policies []Policy) (*Set, error) {
	engine := NewEngine()

	set := &Set{policies: make([]compiledSetPolicy, 0, len(policies))}
	for _, p := range policies {
		compiled, err := engine.Compile(p.Expression)
		if err != nil {
			return nil, fmt.Errorf("policy %q: %w", p.Name, err)
		}
		set.policies = append(set.policies, compiledSetPolicy{name: p.Name, compiled: compiled})
	}

	return set, nil
}

// Len returns the number of policies in the set.
func (s *Set) Len() int {
	return len(s.policies)
}

// Evaluate runs every policy against an extracted claims request tree in
// order. The first rejecting policy aborts evaluation with an access_denied
// protocol error, mirroring the validator's fail-fast posture.
func (s *Set) Evaluate(c *constraint.VerifiedClaimsContainerConstraint) error {
	ctx := requestContext(c)

	for _, p := range s.policies {
		ok, err := p.compiled.EvaluateBool(ctx)
		if err != nil {
			return fmt.Errorf("policy %q: %w", p.name, err)
		}
		if !ok {
			logger.Debugw("claims request rejected by policy", "policy", p.name)
			return oidcerr.WithCode(fmt.Errorf("policy %q rejected the claims request", p.name), oidcerr.AccessDenied)
		}
	}

	return nil
}

// requestContext builds the CEL variable bindings for one request tree.
func requestContext(c *constraint.VerifiedClaimsContainerConstraint) map[string]any {
	var verifiedClaims any
	claimNames := []string{}

	if c != nil {
		if m := c.ToMap(); m != nil {
			verifiedClaims = m[VarVerifiedClaims]
		}
		if vc := c.VerifiedClaims; vc != nil && vc.Exists() && !vc.IsNull() {
			if claims := vc.Claims; claims != nil && claims.Exists() && !claims.IsNull() {
				claimNames = claims.Names()
			}
		}
	}

	return map[string]any{
		VarVerifiedClaims: verifiedClaims,
		VarClaimNames:     claimNames,
	}
}
