// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides input validation for the personas service.
//
// A Validator checks a value against its domain rules and can optionally be
// restricted to a subset of named fields, so that the same implementation
// serves creation (all fields) and targeted checks (e.g. only the RUT).
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
