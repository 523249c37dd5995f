// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks request input before it reaches the store.
//
// The only implementation is the credentials validator, shared by the
// register and login paths of the HTTP layer and the auth service.
package validators

import "context"

// Validator validates v. When fields are given only those fields are
// checked; an unknown field name is an error.
type Validator interface {
	Validate(ctx context.Context, v any, fields ...string) error
}
