package models

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Token wraps a JWT bearer token issued on login.
//
// It embeds [jwt.RegisteredClaims] so it can be used directly as the claims
// destination while parsing; the subject claim carries the account UID.
type Token struct {
	// Token is the underlying JWT. Excluded from JSON serialization because
	// only the compact string form is meaningful outside the server process.
	*jwt.Token `json:"-"`

	jwt.RegisteredClaims

	// SignedString is the compact JWS form sent in the Authorization header.
	SignedString string `json:"-"`

	// UID is the account identifier extracted from the subject claim.
	UID string `json:"-"`
}

// GetUID returns the account identifier stored in the subject claim.
func (t *Token) GetUID() (string, error) {
	uid, err := t.GetSubject()
	if err != nil {
		return "", fmt.Errorf("error extracting UID from token: %w", err)
	}
	if uid == "" {
		return "", fmt.Errorf("error extracting UID from token: empty subject")
	}

	return uid, nil
}

// String returns the compact JWS serialization of the token.
func (t *Token) String() string {
	return t.SignedString
}
