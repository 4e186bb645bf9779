package models

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Token wraps a signed admin JWT.
//
// It embeds [jwt.Token] for low-level token operations and
// [jwt.RegisteredClaims] for standard claim access.
type Token struct {
	*jwt.Token `json:"-"`

	jwt.RegisteredClaims

	// SignedString is the compact serialized form (header.payload.signature).
	SignedString string `json:"-"`

	// Subject is a cached copy of the "sub" claim.
	Subject string `json:"-"`
}

// GetAdminSubject returns the "sub" claim, failing when it is empty.
func (t *Token) GetAdminSubject() (string, error) {
	sub, err := t.GetSubject()
	if err != nil {
		return "", fmt.Errorf("error extracting subject from token: %w", err)
	}
	if sub == "" {
		return "", fmt.Errorf("empty subject in token")
	}
	return sub, nil
}

// String returns the compact JWS serialization of the token.
func (t *Token) String() string {
	return t.SignedString
}
