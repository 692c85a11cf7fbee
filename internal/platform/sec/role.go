// Copyright (c) 2026 F3 Nation. All rights reserved.

package sec

// # Region Roles

// Role represents the authorization level a caller holds within a region.
type Role string

const (
	// Unrestricted access to region configuration
	RoleAdmin Role = "admin"

	// Handles region finances and roster changes
	RoleWeaselshaker Role = "weaselshaker"

	// Runs an AO: can manage its locations, series, and events
	RoleSiteQ Role = "siteq"

	// Default role for a regular participant
	RolePax Role = "pax"
)

// # Role Hierarchy

// AtLeast checks if the role meets or exceeds the required target role.
func (r Role) AtLeast(target Role) bool {
	return r.level() >= target.level()
}

// level maps a role to a numeric hierarchy level for comparison logic.
func (r Role) level() int {

	// Linear scale (10-40) allows for future intermediate roles
	switch r {
	case RoleAdmin:
		return 40
	case RoleWeaselshaker:
		return 30
	case RoleSiteQ:
		return 20
	case RolePax:
		return 10
	default:
		return 0
	}
}
