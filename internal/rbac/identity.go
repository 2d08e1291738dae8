// Doclab - Broken Access Control Training Lab
// Copyright 2026 Secdojo Labs
// SPDX-License-Identifier: Apache-2.0
// https://github.com/secdojo/doclab

package rbac

import "sort"

// Identity is the authenticated caller's role set, bound to one request.
//
// An empty Identity represents "no verified credential" and fails every
// gate that requires a role. It is distinct from a verified credential
// that happens to carry no roles only at the authentication layer; once
// inside the decision engine both behave identically.
//
// Identity is immutable after construction: NewIdentity copies its input
// and accessors return copies.
type Identity struct {
	username string
	roles    map[Role]struct{}
}

// Anonymous is the identity of an unauthenticated caller.
var Anonymous = Identity{}

// NewIdentity builds an identity from a username and the verified role
// names. Unknown role names are dropped rather than rejected: a verified
// token with an unrecognized group grants nothing, it does not fail the
// request.
func NewIdentity(username string, roles []string) Identity {
	id := Identity{username: username}
	for _, name := range roles {
		r, ok := ParseRole(name)
		if !ok {
			continue
		}
		if id.roles == nil {
			id.roles = make(map[Role]struct{}, len(roles))
		}
		id.roles[r] = struct{}{}
	}
	return id
}

// Username returns the authenticated principal name, empty for Anonymous.
func (id Identity) Username() string {
	return id.username
}

// IsAnonymous reports whether the caller presented no verified credential.
func (id Identity) IsAnonymous() bool {
	return id.username == "" && len(id.roles) == 0
}

// Roles returns the held roles sorted by descending rank.
func (id Identity) Roles() []Role {
	out := make([]Role, 0, len(id.roles))
	for r := range id.roles {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Rank() > out[j].Rank() })
	return out
}

// RoleNames returns the held role names sorted by descending rank.
func (id Identity) RoleNames() []string {
	roles := id.Roles()
	out := make([]string, len(roles))
	for i, r := range roles {
		out[i] = r.String()
	}
	return out
}

// Has reports whether the caller holds the exact role.
func (id Identity) Has(role Role) bool {
	_, ok := id.roles[role]
	return ok
}

// HasAny reports whether the caller holds at least one of the allowed
// roles. This is the coarse endpoint-level gate: an empty held set never
// passes, and an empty allowed set admits nobody.
func (id Identity) HasAny(allowed ...Role) bool {
	for _, role := range allowed {
		if id.Has(role) {
			return true
		}
	}
	return false
}

// maxRank returns the caller's effective privilege: the maximum rank over
// the held roles, 0 when no roles are held.
func (id Identity) maxRank() int {
	max := 0
	for r := range id.roles {
		if rank := r.Rank(); rank > max {
			max = rank
		}
	}
	return max
}

// Satisfies reports whether the caller meets a record's minimum-role
// requirement. An unrestricted requirement (RoleNone) is always satisfied,
// including for anonymous callers; otherwise the caller's effective
// privilege must be at least the required rank.
//
// Satisfies is monotone in the held role set: adding roles never turns a
// true result false.
func (id Identity) Satisfies(required Role) bool {
	if required == RoleNone {
		return true
	}
	return id.maxRank() >= required.Rank()
}
