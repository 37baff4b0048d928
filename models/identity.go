package models

// ProviderPassword tags identities established with email and password.
const ProviderPassword = "password"

// Identity describes an authenticated account as reported by the
// authentication service on every auth-state transition.
type Identity struct {
	// Provider names the sign-in method that established the identity.
	Provider string `json:"provider"`

	// UID is the account identifier.
	UID string `json:"uid"`

	// Email is the account email.
	Email string `json:"email"`
}
