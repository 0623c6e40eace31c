// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks request payloads before they reach the core
// services.
//
// Each validator knows one family of types (account requests, projects) and
// can be scoped to a subset of fields, so create and update paths can share a
// validator while requiring different fields.
package validators

import "context"

// Validator checks value. When fields are given only those fields are
// checked; otherwise the validator's default field set applies. An
// unsupported value type yields ErrUnsupportedType.
type Validator interface {
	Validate(ctx context.Context, value any, fields ...string) error
}
