// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Account is the core entity in the system, representing a single registered
// identity in the directory. The email is the login identifier and is unique
// across the whole directory.
type Account struct {
	ID           uuid.UUID // The unique identifier for the account.
	Username     string    // The display name chosen at registration.
	Email        string    // The unique login identifier.
	PasswordHash string    // The bcrypt hash of the password. Never the plaintext.
	Role         Role      // The account's role, decides access to directory-wide operations.
	JoinedAt     time.Time // Timestamp of when the account was created. Immutable.
	UpdatedAt    time.Time // Timestamp of the last modification to this account.
}

// IsAdmin reports whether the account holds the administrative role.
func (a *Account) IsAdmin() bool {
	return a.Role == RoleAdmin
}
