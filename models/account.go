// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Account is the server-side record of a registered user.
// PasswordHash must never leave the server.
type Account struct {
	// UID is the public account identifier (UUIDv7).
	UID string `json:"uid"`

	// Email is the unique sign-in name of the account.
	Email string `json:"email"`

	// PasswordHash is the bcrypt hash of the account password.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`
}

// Identity returns the descriptor the authentication API reports for a.
func (a Account) Identity() Identity {
	return Identity{Provider: ProviderPassword, UID: a.UID, Email: a.Email}
}
