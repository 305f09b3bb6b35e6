// SPDX-FileCopyrightText: Copyright 2026 Veridex, Inc.
// SPDX-License-Identifier: Apache-2.0

package policy

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngineCompileAndEvaluate(t *testing.T) {
	t.Parallel()

	engine := NewEngine()

	compiled, err := engine.Compile(`claim_names.size() <= 2`)
	require.NoError(t, err)
	assert.Equal(t, `claim_names.size() <= 2`, compiled.Source())

	tests := []struct {
		name   string
		names  []string
		expect bool
	}{
		{"empty", []string{}, true},
		{"at limit", []string{"given_name", "family_name"}, true},
		{"over limit", []string{"given_name", "family_name", "birthdate"}, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result, err := compiled.EvaluateBool(map[string]any{
				VarVerifiedClaims: nil,
				VarClaimNames:     tt.names,
			})
			require.NoError(t, err)
			assert.Equal(t, tt.expect, result)
		})
	}
}

func TestEngineCompileParseError(t *testing.T) {
	t.Parallel()

	_, err := NewEngine().Compile(`claim_names.size() <=`)
	require.Error(t, err)
	require.ErrorIs(t, err, ErrExpressionCheck)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.NotEmpty(t, parseErr.Issues)
}

func TestEngineCompileCheckError(t *testing.T) {
	t.Parallel()

	// References a variable the environment does not declare.
	_, err := NewEngine().Compile(`unknown_variable == 1`)
	require.Error(t, err)

	var checkErr *CheckError
	require.ErrorAs(t, err, &checkErr)
	assert.Equal(t, `unknown_variable == 1`, checkErr.Source)
}

func TestEngineExpressionLengthLimit(t *testing.T) {
	t.Parallel()

	engine := NewEngine().WithMaxExpressionLength(10)

	_, err := engine.Compile(`claim_names.size() <= 100`)
	require.ErrorIs(t, err, ErrExpressionCheck)

	err = engine.Check(`claim_names.size() <= 100`)
	require.ErrorIs(t, err, ErrExpressionCheck)
}

func TestEngineCheck(t *testing.T) {
	t.Parallel()

	engine := NewEngine()
	assert.NoError(t, engine.Check(`"ssn" in claim_names`))
	assert.Error(t, engine.Check(`"ssn" in`))
}

func TestEvaluateBoolRejectsNonBoolean(t *testing.T) {
	t.Parallel()

	compiled, err := NewEngine().Compile(`claim_names.size()`)
	require.NoError(t, err)

	_, err = compiled.EvaluateBool(map[string]any{
		VarVerifiedClaims: nil,
		VarClaimNames:     []string{},
	})
	require.ErrorIs(t, err, ErrInvalidResult)
}

func TestEvaluateAgainstVerifiedClaimsMap(t *testing.T) {
	t.Parallel()

	compiled, err := NewEngine().Compile(
		`verified_claims == null || !(claim_names.size() > 0 && "ssn" in claim_names)`)
	require.NoError(t, err)

	result, err := compiled.EvaluateBool(map[string]any{
		VarVerifiedClaims: map[string]any{"claims": map[string]any{"ssn": nil}},
		VarClaimNames:     []string{"ssn"},
	})
	require.NoError(t, err)
	assert.False(t, result)
}

func TestEngineLongExpression(t *testing.T) {
	t.Parallel()

	expr := `claim_names.size() <= ` + strings.Repeat("1", 15)
	_, err := NewEngine().Compile(expr)
	// Huge literal, but under the length limit: must parse.
	require.NoError(t, err)
}
