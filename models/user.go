package models

// User is the identity of the person currently signed in on a board session.
// A session either holds a *User or nil; a User is never mutated after it has
// been published to the session model, a new value replaces it instead.
type User struct {
	// UID is the opaque identifier assigned by the identity service.
	UID string `json:"uid"`

	// DisplayName is shown as the author of posted notes.
	// It is the account email for password accounts.
	DisplayName string `json:"displayName"`
}
