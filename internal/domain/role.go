package domain

import "slices"

// Role represents a user role in the system
type Role string

const (
	// RoleSuperAdmin can manage every tenant and system settings
	RoleSuperAdmin Role = "super_admin"

	// RoleLabelAdmin manages a single label: its artists, works and reports
	RoleLabelAdmin Role = "label_admin"

	// RoleArtist has read access to their own catalog and analytics
	RoleArtist Role = "artist"
)

// ValidRoles contains all valid roles in the system
var ValidRoles = []Role{RoleSuperAdmin, RoleLabelAdmin, RoleArtist}

// IsValidRole checks if a given role is valid
func IsValidRole(role string) bool {
	return slices.Contains(ValidRoles, Role(role))
}

// HasRole checks if a slice of roles contains a specific role
func HasRole(roles []string, role Role) bool {
	return slices.Contains(roles, string(role))
}

// HasAnyRole checks if a slice of roles contains any of the specified roles
func HasAnyRole(roles []string, requiredRoles ...Role) bool {
	for _, required := range requiredRoles {
		if HasRole(roles, required) {
			return true
		}
	}
	return false
}
