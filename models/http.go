package models

// Credentials is the request body of the signup and login endpoints.
type Credentials struct {
	// Email is the account email used as login.
	Email string `json:"email"`

	// Password is the plain password; it is only sent over the wire to be
	// hashed or compared on the server.
	Password string `json:"password"`
}

// NewNoteRequest is the request body of the append-note endpoint.
// The author fields are filled from the authenticated account on the server.
type NewNoteRequest struct {
	Text string `json:"text"`
}

// VersionResponse is returned by the version endpoint.
type VersionResponse struct {
	Version string `json:"version"`
	Date    string `json:"date"`
	Commit  string `json:"commit"`
}
