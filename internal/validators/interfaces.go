// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks vault requests before they reach the engine.
//
// A Validator accepts any supported request value and an optional list of
// field names restricting which rules run. Handlers and service wrappers
// share the same Validator so transport and engine agree on what is valid.
package validators

import "context"

// Validator validates the provided input, optionally restricted to the
// named fields.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
