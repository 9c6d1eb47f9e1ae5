package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the JWT payload carried in the session cookie.
//
// The custom fields are enough to render pages for the user without
// touching the store. Subject mirrors ID.
type Claims struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`

	jwt.RegisteredClaims
}

// Token is a signed session token together with its decoded claims.
type Token struct {
	// SignedString is the compact JWS representation
	// (base64url-encoded header.payload.signature).
	SignedString string `json:"-"`

	Claims Claims `json:"-"`

	// ExpiresAt duplicates the exp claim so cookie writers
	// don't need to dig into the registered claims.
	ExpiresAt time.Time `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t Token) String() string {
	return t.SignedString
}
