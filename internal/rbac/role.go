// Doclab - Broken Access Control Training Lab
// Copyright 2026 Secdojo Labs
// SPDX-License-Identifier: Apache-2.0
// https://github.com/secdojo/doclab

// Package rbac defines the role model and the per-request identity context.
//
// Roles form a total order of privilege (admin > user > guest). A record's
// minimum-role attribute is satisfied by any held role of equal or higher
// rank, so admin satisfies every requirement and guest only satisfies a
// guest-tier or unrestricted requirement.
//
// All functions in this package are pure: they take explicit inputs and
// never consult ambient state, which keeps the access decision logic
// testable without standing up authentication infrastructure.
package rbac

// Role is one of the closed set of privilege tiers.
type Role string

// Role constants define the closed role set. These names match the values
// carried in the JWT "groups" claim and in Person.MinRole.
const (
	// RoleAdmin has full access and satisfies any minimum-role requirement.
	RoleAdmin Role = "admin"

	// RoleUser can read person data and documents not restricted to admin.
	RoleUser Role = "user"

	// RoleGuest is the lowest privilege tier.
	RoleGuest Role = "guest"

	// RoleNone marks a record as unrestricted. It is valid as a
	// minimum-role attribute, never as a held role.
	RoleNone Role = ""
)

// ValidRoles contains all role names a caller may hold.
var ValidRoles = []Role{RoleAdmin, RoleUser, RoleGuest}

// roleRanks maps roles to privilege ranks. Higher rank satisfies lower.
var roleRanks = map[Role]int{
	RoleGuest: 1,
	RoleUser:  2,
	RoleAdmin: 3,
}

// Rank returns the privilege rank of the role, 0 for RoleNone or unknown.
func (r Role) Rank() int {
	return roleRanks[r]
}

// IsValid reports whether the role is a member of the closed role set.
// RoleNone is not a holdable role; use IsValidMinRole for record attributes.
func (r Role) IsValid() bool {
	_, ok := roleRanks[r]
	return ok
}

// IsValidMinRole reports whether the value is usable as a record's
// minimum-role attribute: a member of the closed set or unrestricted.
func IsValidMinRole(r Role) bool {
	return r == RoleNone || r.IsValid()
}

// String returns the role name.
func (r Role) String() string {
	return string(r)
}

// ParseRole converts a string to a Role. Unknown names return RoleNone
// and false; construction-time validation is the caller's responsibility.
func ParseRole(s string) (Role, bool) {
	r := Role(s)
	if r.IsValid() {
		return r, true
	}
	return RoleNone, false
}
