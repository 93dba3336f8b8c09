// Package entity contains the core business objects of the project.
package entity

import "strings"

// Role represents the access level a logged-in account holds.
type Role string

const (
	// RoleUser indicates an ordinary shopper account.
	RoleUser Role = "ROLE_USER"
	// RoleAdmin indicates an administrator account with back-office access.
	RoleAdmin Role = "ROLE_ADMIN"
	// RoleUnknown is returned when no role can be derived, e.g. a missing or
	// malformed persisted user record.
	RoleUnknown Role = ""
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleAdmin:
		return true
	default:
		return false
	}
}

// IsAdmin reports whether the role grants administrator access.
func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}

// ParseRole normalizes the backend's role spellings ("ADMIN", "ROLE_ADMIN",
// "admin") into a Role. Unrecognized input yields RoleUnknown rather than an
// error; callers treat unknown as "no role".
func ParseRole(s string) Role {
	normalized := strings.ToUpper(strings.TrimSpace(s))
	normalized = strings.TrimPrefix(normalized, "ROLE_")

	switch normalized {
	case "USER":
		return RoleUser
	case "ADMIN":
		return RoleAdmin
	default:
		return RoleUnknown
	}
}
