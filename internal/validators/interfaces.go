// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitry Matveev

// Package validators provides client-side validation of credential
// forms.
//
// The checks mirror the server's registration rules so most mistakes are
// caught before a request is made, but they never replace server-side
// validation: the server remains authoritative and its error messages
// are shown verbatim when a request is rejected anyway.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
// Implementations may perform structural validation, semantic checks,
// cross-field rules.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
