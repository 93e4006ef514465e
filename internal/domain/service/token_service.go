package service

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"

	"accountd/internal/domain/entity"
)

// Token verification failures. The middleware maps each of these to an
// unauthorized response; they stay distinct so logs can tell them apart.
var (
	// ErrTokenMissing indicates no token was supplied with the request.
	ErrTokenMissing = errors.New("access token missing")
	// ErrTokenMalformed indicates the token could not be parsed at all.
	ErrTokenMalformed = errors.New("access token malformed")
	// ErrTokenSignatureInvalid indicates the signature does not match the claims.
	ErrTokenSignatureInvalid = errors.New("access token signature invalid")
	// ErrTokenExpired indicates the token's expiry time has passed.
	ErrTokenExpired = errors.New("access token expired")
)

// Claims is the verified claim set carried by an access token. After the
// authentication middleware succeeds it is attached to the request context
// and downstream logic reads the subject from it instead of re-parsing
// the raw token.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Email returns the account email the token was issued for.
func (c *Claims) Email() string {
	return c.Subject
}

// AccountRole returns the role claim as a domain Role.
func (c *Claims) AccountRole() entity.Role {
	return entity.RoleFromString(c.Role)
}

// TokenService defines the interface for issuing and verifying access tokens.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// Issue creates a signed, time-bounded access token for the given account.
	Issue(email string, role entity.Role) (string, error)

	// Verify checks the signature and expiry of a token string and returns
	// its claim set. Failures are one of the sentinel errors above.
	Verify(tokenString string) (*Claims, error)
}
