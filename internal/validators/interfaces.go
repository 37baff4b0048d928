// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks request values before the services act on them.
//
// A Validator inspects a value of a known type and may be restricted to a
// subset of its fields by passing field names. Services wrap the returned
// errors into their own sentinels, so the validation rules stay out of the
// transport and storage layers.
package validators

import "context"

// Validator validates a value, optionally only the named fields of it.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
