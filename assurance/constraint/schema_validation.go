// SPDX-FileCopyrightText: Copyright 2026 Veridex, Inc.
// SPDX-License-Identifier: Apache-2.0

package constraint

import (
	"embed"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed data/verified-claims-request.schema.json
var embeddedSchemaFS embed.FS

const requestSchemaFile = "data/verified-claims-request.schema.json"

// ValidateSchema validates raw verified_claims request JSON against the
// embedded structural schema. This is a coarse pre-check for callers that
// want a schema-level report before extraction; Extract and the Validator
// remain authoritative for presence semantics and the identity-assurance
// rules the schema cannot express.
func ValidateSchema(data []byte) error {
	schemaData, err := embeddedSchemaFS.ReadFile(requestSchemaFile)
	if err != nil {
		return fmt.Errorf("failed to read embedded schema %s: %w", requestSchemaFile, err)
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(schemaData),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil {
		return fmt.Errorf("verified_claims schema validation failed: %w", err)
	}

	if result.Valid() {
		return nil
	}

	msgs := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		msgs = append(msgs, desc.String())
	}
	return formatNumberedErrors("verified_claims schema validation failed", msgs)
}

// formatNumberedErrors formats a list of messages as a single error with a
// numbered list.
func formatNumberedErrors(prefix string, msgs []string) error {
	if len(msgs) == 1 {
		return fmt.Errorf("%s: %s", prefix, msgs[0])
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s with %d errors:\n", prefix, len(msgs))
	for i, msg := range msgs {
		fmt.Fprintf(&b, "  %d. %s\n", i+1, msg)
	}
	return fmt.Errorf("%s", strings.TrimSuffix(b.String(), "\n"))
}
