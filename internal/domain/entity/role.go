// Package entity contains the core business objects of the project.
package entity

// Role represents the type of role an account can have in the system.
type Role string

const (
	// RoleStandard indicates a regular account with access to its own record only.
	RoleStandard Role = "standard"
	// RoleAdmin indicates the privileged account allowed to run directory-wide operations.
	RoleAdmin Role = "admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleStandard, RoleAdmin:
		return true
	default:
		return false
	}
}

// RoleFromString converts a raw claim value to a Role, falling back to
// RoleStandard for anything unrecognized.
func RoleFromString(s string) Role {
	role := Role(s)
	if role.IsValid() {
		return role
	}

	return RoleStandard
}
