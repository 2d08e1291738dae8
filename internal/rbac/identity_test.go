// Doclab - Broken Access Control Training Lab
// Copyright 2026 Secdojo Labs
// SPDX-License-Identifier: Apache-2.0
// https://github.com/secdojo/doclab

package rbac

import (
	"testing"
)

func TestParseRole(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   Role
		wantOK bool
	}{
		{"admin", "admin", RoleAdmin, true},
		{"user", "user", RoleUser, true},
		{"guest", "guest", RoleGuest, true},
		{"empty", "", RoleNone, false},
		{"unknown", "superuser", RoleNone, false},
		{"case sensitive", "Admin", RoleNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseRole(tt.input)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("ParseRole(%q) = (%q, %v), want (%q, %v)", tt.input, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestRoleRankOrdering(t *testing.T) {
	if !(RoleAdmin.Rank() > RoleUser.Rank() && RoleUser.Rank() > RoleGuest.Rank()) {
		t.Errorf("rank order broken: admin=%d user=%d guest=%d",
			RoleAdmin.Rank(), RoleUser.Rank(), RoleGuest.Rank())
	}
	if RoleNone.Rank() != 0 {
		t.Errorf("RoleNone.Rank() = %d, want 0", RoleNone.Rank())
	}
}

func TestIsValidMinRole(t *testing.T) {
	for _, r := range ValidRoles {
		if !IsValidMinRole(r) {
			t.Errorf("IsValidMinRole(%q) = false, want true", r)
		}
	}
	if !IsValidMinRole(RoleNone) {
		t.Error("IsValidMinRole(RoleNone) = false, want true")
	}
	if IsValidMinRole(Role("root")) {
		t.Error("IsValidMinRole(root) = true, want false")
	}
}

func TestNewIdentityDropsUnknownRoles(t *testing.T) {
	id := NewIdentity("USER1", []string{"user", "wizard", "guest"})

	if !id.Has(RoleUser) || !id.Has(RoleGuest) {
		t.Errorf("expected user and guest roles held, got %v", id.RoleNames())
	}
	if len(id.Roles()) != 2 {
		t.Errorf("expected 2 roles, got %v", id.RoleNames())
	}
}

func TestIdentityRolesSortedByRank(t *testing.T) {
	id := NewIdentity("USER2", []string{"guest", "admin", "user"})
	got := id.RoleNames()
	want := []string{"admin", "user", "guest"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("RoleNames() = %v, want %v", got, want)
		}
	}
}

func TestAnonymous(t *testing.T) {
	if !Anonymous.IsAnonymous() {
		t.Error("Anonymous.IsAnonymous() = false")
	}
	if Anonymous.HasAny(RoleAdmin, RoleUser, RoleGuest) {
		t.Error("anonymous identity passed an endpoint gate")
	}
	if !Anonymous.Satisfies(RoleNone) {
		t.Error("anonymous identity must satisfy an unrestricted requirement")
	}
	if Anonymous.Satisfies(RoleGuest) {
		t.Error("anonymous identity satisfied a guest requirement")
	}
}

func TestSatisfies(t *testing.T) {
	tests := []struct {
		name     string
		held     []string
		required Role
		want     bool
	}{
		{"admin satisfies admin", []string{"admin"}, RoleAdmin, true},
		{"admin satisfies guest", []string{"admin"}, RoleGuest, true},
		{"admin satisfies none", []string{"admin"}, RoleNone, true},
		{"user fails admin", []string{"user", "guest"}, RoleAdmin, false},
		{"user satisfies user", []string{"user"}, RoleUser, true},
		{"user satisfies guest", []string{"user"}, RoleGuest, true},
		{"guest fails user", []string{"guest"}, RoleUser, false},
		{"guest satisfies guest", []string{"guest"}, RoleGuest, true},
		{"guest satisfies none", []string{"guest"}, RoleNone, true},
		{"empty fails guest", nil, RoleGuest, false},
		{"empty satisfies none", nil, RoleNone, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id := NewIdentity("x", tt.held)
			if got := id.Satisfies(tt.required); got != tt.want {
				t.Errorf("Satisfies(%q) with held %v = %v, want %v", tt.required, tt.held, got, tt.want)
			}
		})
	}
}

// TestSatisfiesMonotone checks that adding roles never revokes access.
func TestSatisfiesMonotone(t *testing.T) {
	requirements := []Role{RoleNone, RoleGuest, RoleUser, RoleAdmin}
	base := []string{"guest"}
	supersets := [][]string{
		{"guest", "user"},
		{"guest", "admin"},
		{"guest", "user", "admin"},
	}

	small := NewIdentity("x", base)
	for _, extra := range supersets {
		big := NewIdentity("x", extra)
		for _, req := range requirements {
			if small.Satisfies(req) && !big.Satisfies(req) {
				t.Errorf("monotonicity violated: held %v satisfies %q but superset %v does not",
					base, req, extra)
			}
		}
	}
}

func TestHasAny(t *testing.T) {
	id := NewIdentity("USER1", []string{"user", "guest"})

	if !id.HasAny(RoleAdmin, RoleUser) {
		t.Error("HasAny(admin, user) = false for holder of user")
	}
	if id.HasAny(RoleAdmin) {
		t.Error("HasAny(admin) = true for non-admin")
	}
	if id.HasAny() {
		t.Error("HasAny() with empty allowed set must be false")
	}
}
