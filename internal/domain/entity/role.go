// Package entity contains the core business objects of the project.
package entity

import "slices"

// Role represents the type of role a user can have in the system.
type Role string

const (
	// RoleAdmin indicates an administrator.
	RoleAdmin Role = "admin"
	// RoleUser indicates a regular logged-in user.
	RoleUser Role = "user"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// AllRoles lists every role a user can be assigned.
var AllRoles = Roles{RoleAdmin, RoleUser}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	return AllRoles.Contains(r)
}

// Roles is a slice of Role for convenience.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

// ToStrings converts Roles to []string for JWT compatibility.
func (rs Roles) ToStrings() []string {
	result := make([]string, len(rs))
	for i, r := range rs {
		result[i] = r.String()
	}

	return result
}
