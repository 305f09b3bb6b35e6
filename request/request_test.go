// SPDX-FileCopyrightText: Copyright 2026 Veridex, Inc.
// SPDX-License-Identifier: Apache-2.0

package request

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veridex/assurance-core/assurance/constraint"
	"github.com/veridex/assurance-core/oidcerr"
)

func TestParse(t *testing.T) {
	t.Parallel()

	t.Run("both sections", func(t *testing.T) {
		t.Parallel()

		p, err := Parse([]byte(`{
			"userinfo": {"verified_claims": {"claims": {"given_name": null}}},
			"id_token": {"email": null}
		}`))
		require.NoError(t, err)
		assert.Contains(t, p.Userinfo, "verified_claims")
		assert.Contains(t, p.IDToken, "email")
	})

	t.Run("malformed document", func(t *testing.T) {
		t.Parallel()

		_, err := Parse([]byte(`{"userinfo":`))
		require.Error(t, err)
		assert.Equal(t, oidcerr.InvalidRequest, oidcerr.Code(err))
	})
}

func TestUserinfoConstraint(t *testing.T) {
	t.Parallel()

	t.Run("verified_claims present", func(t *testing.T) {
		t.Parallel()

		p, err := Parse([]byte(`{"userinfo": {"verified_claims": {"claims": {"given_name": {"essential": true}}}}}`))
		require.NoError(t, err)

		c, err := p.UserinfoConstraint()
		require.NoError(t, err)
		require.True(t, c.VerifiedClaims.Exists())
		assert.True(t, c.VerifiedClaims.Claims.Get("given_name").Essential.Get())
	})

	t.Run("section absent", func(t *testing.T) {
		t.Parallel()

		p, err := Parse([]byte(`{}`))
		require.NoError(t, err)

		c, err := p.UserinfoConstraint()
		require.NoError(t, err)
		assert.False(t, c.VerifiedClaims.Exists())
	})

	t.Run("structural error is invalid_request", func(t *testing.T) {
		t.Parallel()

		p, err := Parse([]byte(`{"userinfo": {"verified_claims": "all"}}`))
		require.NoError(t, err)

		_, err = p.UserinfoConstraint()
		require.Error(t, err)
		assert.Equal(t, oidcerr.InvalidRequest, oidcerr.Code(err))

		var cerr *constraint.Error
		require.ErrorAs(t, err, &cerr)
		assert.Equal(t, constraint.KindStructure, cerr.Kind)
	})
}

func TestParameterValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		json      string
		expectErr bool
	}{
		{
			name: "valid request",
			json: `{"userinfo": {"verified_claims": {"claims": {"given_name": null}}}}`,
		},
		{
			name: "no verified_claims anywhere",
			json: `{"userinfo": {"email": null}, "id_token": {}}`,
		},
		{
			name:      "empty claims in id_token section",
			json:      `{"id_token": {"verified_claims": {"claims": {}}}}`,
			expectErr: true,
		},
		{
			name:      "short purpose in userinfo section",
			json:      `{"userinfo": {"verified_claims": {"claims": {"given_name": {"purpose": "ab"}}}}}`,
			expectErr: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p, err := Parse([]byte(tt.json))
			require.NoError(t, err)

			err = p.Validate()
			if tt.expectErr {
				require.Error(t, err)
				assert.Equal(t, oidcerr.InvalidRequest, oidcerr.Code(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
