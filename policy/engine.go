// SPDX-FileCopyrightText: Copyright 2026 Veridex, Inc.
// SPDX-License-Identifier: Apache-2.0

package policy

import (
	"fmt"
	"sync"

	"github.com/google/cel-go/cel"
)

const (
	// DefaultMaxExpressionLength is the maximum allowed length for a policy
	// expression. This limit prevents DoS via excessively long expressions.
	DefaultMaxExpressionLength = 10000

	// DefaultCostLimit is the default runtime cost limit for expression
	// evaluation, preventing DoS via expensive operations.
	DefaultCostLimit = 1000000
)

// Variables every policy expression can reference.
const (
	// VarVerifiedClaims is the verified_claims member of the claims request
	// section in its generic map form, or null when absent.
	VarVerifiedClaims = "verified_claims"

	// VarClaimNames is the list of requested claim names, empty when the
	// request carries no claims object.
	VarClaimNames = "claim_names"
)

// Engine compiles and evaluates claims request policies. The CEL environment
// pre-declares the request variables, so expressions are type checked against
// them at compile time. An Engine is safe for concurrent use.
type Engine struct {
	envCache            *envCache
	factory             envFactory
	maxExpressionLength int
	costLimit           uint64
}

type envFactory func() (*cel.Env, error)

// envCache holds a lazily-initialized CEL environment.
type envCache struct {
	once sync.Once
	env  *cel.Env
	err  error
}

// CompiledPolicy is a pre-compiled policy expression ready for evaluation.
type CompiledPolicy struct {
	source  string
	program cel.Program
}

// Source returns the original expression source string.
func (cp *CompiledPolicy) Source() string {
	return cp.source
}

// NewEngine creates an engine with the claims request variables declared and
// the default expression length and evaluation cost limits.
func NewEngine() *Engine {
	return &Engine{
		envCache:            &envCache{},
		maxExpressionLength: DefaultMaxExpressionLength,
		costLimit:           DefaultCostLimit,
		factory: func() (*cel.Env, error) {
			return cel.NewEnv(
				cel.Variable(VarVerifiedClaims, cel.DynType),
				cel.Variable(VarClaimNames, cel.ListType(cel.StringType)),
			)
		},
	}
}

// WithMaxExpressionLength sets the maximum allowed expression length.
func (e *Engine) WithMaxExpressionLength(maxLen int) *Engine {
	e.maxExpressionLength = maxLen
	return e
}

// WithCostLimit sets the runtime cost limit for policy evaluation.
func (e *Engine) WithCostLimit(limit uint64) *Engine {
	e.costLimit = limit
	return e
}

func (e *Engine) getEnv() (*cel.Env, error) {
	e.envCache.once.Do(func() {
		e.envCache.env, e.envCache.err = e.factory()
	})
	return e.envCache.env, e.envCache.err
}

// Compile parses and type checks a policy expression, returning a
// CompiledPolicy that can be evaluated against many requests.
//
// Returns an error if the expression exceeds the maximum length, a
// *ParseError for syntax errors, or a *CheckError for type checking errors.
func (e *Engine) Compile(expr string) (*CompiledPolicy, error) {
	if len(expr) > e.maxExpressionLength {
		return nil, fmt.Errorf("%w: expression length %d exceeds maximum of %d",
			ErrExpressionCheck, len(expr), e.maxExpressionLength)
	}

	env, err := e.getEnv()
	if err != nil {
		return nil, fmt.Errorf("failed to get policy environment: %w", err)
	}

	parsedAst, issues := env.Parse(expr)
	if issues.Err() != nil {
		return nil, newParseError(expr, issues)
	}

	checkedAst, issues := env.Check(parsedAst)
	if issues.Err() != nil {
		return nil, newCheckError(expr, issues)
	}

	program, err := env.Program(checkedAst, cel.CostLimit(e.costLimit))
	if err != nil {
		return nil, fmt.Errorf("failed to create program for %q: %w", expr, err)
	}

	return &CompiledPolicy{source: expr, program: program}, nil
}

// Check verifies that a policy expression is valid without creating a
// compiled program. Useful for configuration validation.
func (e *Engine) Check(expr string) error {
	if len(expr) > e.maxExpressionLength {
		return fmt.Errorf("%w: expression length %d exceeds maximum of %d",
			ErrExpressionCheck, len(expr), e.maxExpressionLength)
	}

	env, err := e.getEnv()
	if err != nil {
		return fmt.Errorf("failed to get policy environment: %w", err)
	}

	parsedAst, issues := env.Parse(expr)
	if issues.Err() != nil {
		return newParseError(expr, issues)
	}

	_, issues = env.Check(parsedAst)
	if issues.Err() != nil {
		return newCheckError(expr, issues)
	}

	return nil
}

// Evaluate executes the compiled policy against the provided context and
// returns the raw result.
func (cp *CompiledPolicy) Evaluate(ctx map[string]any) (any, error) {
	out, _, err := cp.program.Eval(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrEvaluation, err)
	}
	return out.Value(), nil
}

// EvaluateBool executes the compiled policy and returns the result as a bool.
// Returns an error if the expression does not evaluate to a boolean.
func (cp *CompiledPolicy) EvaluateBool(ctx map[string]any) (bool, error) {
	result, err := cp.Evaluate(ctx)
	if err != nil {
		return false, err
	}

	boolResult, ok := result.(bool)
	if !ok {
		return false, fmt.Errorf("%w: expected bool, got %T", ErrInvalidResult, result)
	}

	return boolResult, nil
}
