// SPDX-FileCopyrightText: Copyright 2026 Veridex, Inc.
// SPDX-License-Identifier: Apache-2.0

package constraint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromJSONNullClaimRoundTrip(t *testing.T) {
	t.Parallel()

	input := `{"verified_claims":{"claims":{"given_name":null}}}`

	c, err := FromJSON([]byte(input))
	require.NoError(t, err)

	claims := c.VerifiedClaims.Claims
	require.NotNil(t, claims)
	require.True(t, claims.Exists())

	givenName := claims.Get("given_name")
	require.NotNil(t, givenName)
	assert.True(t, givenName.Exists())
	assert.True(t, givenName.IsNull())

	require.NoError(t, Validate(c))

	out, err := c.ToJSON(false)
	require.NoError(t, err)
	assert.Equal(t, input, out)
}

func TestExtractEmptyClaims(t *testing.T) {
	t.Parallel()

	// Structurally fine; the Validator rejects it.
	c, err := FromJSON([]byte(`{"verified_claims":{"claims":{}}}`))
	require.NoError(t, err)
	require.True(t, c.VerifiedClaims.Claims.Exists())
	assert.Zero(t, c.VerifiedClaims.Claims.Len())

	err = Validate(c)
	require.Error(t, err)
	assert.Equal(t, "'claims' is empty.", err.Error())
}

func TestExtractVerifiedClaimsPresence(t *testing.T) {
	t.Parallel()

	t.Run("verified_claims absent", func(t *testing.T) {
		t.Parallel()

		c, err := Extract(map[string]any{})
		require.NoError(t, err)
		assert.True(t, c.Exists())
		require.NotNil(t, c.VerifiedClaims)
		assert.False(t, c.VerifiedClaims.Exists())

		// Re-serialization never adds an absent key.
		assert.Equal(t, map[string]any{}, c.ToMap())
	})

	t.Run("verified_claims null", func(t *testing.T) {
		t.Parallel()

		c, err := Extract(map[string]any{"verified_claims": nil})
		require.NoError(t, err)
		assert.True(t, c.VerifiedClaims.Exists())
		assert.True(t, c.VerifiedClaims.IsNull())

		// A present-but-null node keeps its key as an explicit null.
		out, err := c.ToJSON(false)
		require.NoError(t, err)
		assert.Equal(t, `{"verified_claims":null}`, out)
	})

	t.Run("verified_claims not an object", func(t *testing.T) {
		t.Parallel()

		_, err := Extract(map[string]any{"verified_claims": []any{}})
		require.Error(t, err)
		assert.Equal(t, "'verified_claims' is not an object.", err.Error())
	})
}

func TestExtractClaimsStructure(t *testing.T) {
	t.Parallel()

	t.Run("claims not an object", func(t *testing.T) {
		t.Parallel()

		_, err := FromJSON([]byte(`{"verified_claims":{"claims":"all"}}`))
		require.Error(t, err)
		assert.Equal(t, "'claims' is not an object.", err.Error())
	})

	t.Run("names are ordered", func(t *testing.T) {
		t.Parallel()

		c, err := FromJSON([]byte(`{"verified_claims":{"claims":{"family_name":null,"address":null,"given_name":null}}}`))
		require.NoError(t, err)
		assert.Equal(t, []string{"address", "family_name", "given_name"}, c.VerifiedClaims.Claims.Names())
	})
}

func TestAllClaimsRequested(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		json string
		want bool
	}{
		{"claims absent", `{"verified_claims":{}}`, true},
		{"claims null", `{"verified_claims":{"claims":null}}`, true},
		{"claims present", `{"verified_claims":{"claims":{"given_name":null}}}`, false},
		{"verified_claims null", `{"verified_claims":null}`, false},
		{"verified_claims absent", `{}`, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c, err := FromJSON([]byte(tt.json))
			require.NoError(t, err)
			assert.Equal(t, tt.want, c.VerifiedClaims.AllClaimsRequested()) //nolint:staticcheck // legacy semantics under test
		})
	}
}

func TestFromJSONInvalidInput(t *testing.T) {
	t.Parallel()

	_, err := FromJSON([]byte(`{`))
	require.Error(t, err)

	var cerr *Error
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, KindStructure, cerr.Kind)
}

func TestFullDocumentRoundTrip(t *testing.T) {
	t.Parallel()

	input := map[string]any{
		"verified_claims": map[string]any{
			"verification": map[string]any{
				"trust_framework":      map[string]any{"value": "de_aml"},
				"time":                 map[string]any{"max_age": 86400.0},
				"verification_process": nil,
				"evidence": []any{
					map[string]any{
						"type":   "id_document",
						"method": map[string]any{"value": "pipp"},
						"document": map[string]any{
							"type":             map[string]any{"values": []any{"idcard", "passport"}},
							"number":           map[string]any{"essential": false},
							"issuer":           map[string]any{"name": nil, "country": map[string]any{"value": "de"}},
							"date_of_issuance": map[string]any{},
							"date_of_expiry":   nil,
						},
					},
					map[string]any{
						"provider": map[string]any{
							"name":    map[string]any{"essential": true},
							"country": map[string]any{"value": "de"},
						},
						"date": map[string]any{"max_age": 7776000.0},
					},
				},
			},
			"claims": map[string]any{
				"given_name":  map[string]any{"essential": true, "purpose": "opening an account"},
				"family_name": nil,
				"birthdate":   map[string]any{"purpose": "age verification"},
			},
		},
	}

	c, err := Extract(input)
	require.NoError(t, err)
	require.NoError(t, Validate(c))

	first := c.ToMap()
	again, err := Extract(first)
	require.NoError(t, err)
	assert.Equal(t, first, again.ToMap())
}

func TestProgrammaticTreeNilChildren(t *testing.T) {
	t.Parallel()

	// A tree built via the setters leaves unset children as nil pointers.
	// Serialization must skip them, the same as children absent from a
	// parsed document.
	vc := &VerifiedClaimsConstraint{}
	vc.SetExists(true)
	assert.Equal(t, map[string]any{}, vc.ToMap())

	verification := &VerificationConstraint{}
	verification.SetExists(true)
	assert.Equal(t, map[string]any{}, verification.ToMap())

	doc := &IDDocumentConstraint{}
	doc.SetExists(true)
	assert.Equal(t, map[string]any{}, doc.ToMap())

	container := &VerifiedClaimsContainerConstraint{VerifiedClaims: vc}
	container.SetExists(true)

	out, err := container.ToJSON(false)
	require.NoError(t, err)
	assert.JSONEq(t, `{"verified_claims":{}}`, out)
}

func TestProgrammaticTree(t *testing.T) {
	t.Parallel()

	claim := &VerifiedClaimConstraint{}
	claim.SetExists(true)
	claim.Essential.Set(true)
	claim.Purpose.Set("proof of residence")

	claims := &ClaimsConstraint{}
	claims.SetExists(true)
	claims.Set("address", claim)

	verifiedClaims := &VerifiedClaimsConstraint{Claims: claims}
	verifiedClaims.SetExists(true)

	container := &VerifiedClaimsContainerConstraint{VerifiedClaims: verifiedClaims}
	container.SetExists(true)

	require.NoError(t, Validate(container))

	out, err := container.ToJSON(false)
	require.NoError(t, err)
	assert.JSONEq(t, `{"verified_claims":{"claims":{"address":{"essential":true,"purpose":"proof of residence"}}}}`, out)

	roundTripped, err := FromJSON([]byte(out))
	require.NoError(t, err)
	assert.Equal(t, container.ToMap(), roundTripped.ToMap())
}
