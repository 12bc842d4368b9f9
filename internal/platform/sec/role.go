// Copyright (c) 2026 Userhub. All rights reserved.

package sec

// # User Roles

// UserRole represents the authorization level carried inside a token.
type UserRole string

const (
	// Full access to mutating endpoints
	RoleAdmin UserRole = "admin"

	// Default role with read-only access
	RoleMember UserRole = "member"
)

// String returns the role as its wire representation.
func (r UserRole) String() string {
	return string(r)
}
