// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks inbound request payloads against the
// application's business rules before they reach the service layer.
//
// The single [Validator] interface accepts arbitrary values; passing field
// names narrows the check to those fields, which lets partial-update paths
// reuse the same validator as full creates.
package validators

import "context"

// Validator validates an arbitrary input value. Implementations may perform
// structural validation, semantic checks, cross-field rules.
type Validator interface {

	// Validate validates the provided input and optionally restricts
	// validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
