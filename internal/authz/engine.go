// Doclab - Broken Access Control Training Lab
// Copyright 2026 Secdojo Labs
// SPDX-License-Identifier: Apache-2.0
// https://github.com/secdojo/doclab

package authz

import (
	"errors"

	"github.com/secdojo/doclab/internal/logging"
	"github.com/secdojo/doclab/internal/metrics"
	"github.com/secdojo/doclab/internal/models"
	"github.com/secdojo/doclab/internal/rbac"
	"github.com/secdojo/doclab/internal/store"
)

// Verdict is the outcome of a record-level access decision. A record
// that does not exist and a record the caller may not see produce the
// same verdict, so responses cannot be used to probe the ID space.
type Verdict int

const (
	// VerdictDenied covers both insufficient role and absent record.
	VerdictDenied Verdict = iota
	// VerdictAllowed grants access to the record.
	VerdictAllowed
)

// String returns the verdict name for logs and metrics.
func (v Verdict) String() string {
	if v == VerdictAllowed {
		return "allowed"
	}
	return "denied"
}

// Engine combines the endpoint gates with per-record minimum-role
// checks over the person store.
type Engine struct {
	enforcer *Enforcer
	store    *store.PersonStore
}

// NewEngine creates an Engine over the given store.
func NewEngine(enforcer *Enforcer, st *store.PersonStore) *Engine {
	return &Engine{enforcer: enforcer, store: st}
}

// CanInvoke reports whether the caller passes the endpoint gate for
// the given path and method. Anonymous callers never pass.
func (e *Engine) CanInvoke(caller rbac.Identity, path, method string) (bool, error) {
	if caller.IsAnonymous() {
		return false, nil
	}
	return e.enforcer.EnforceRoles(caller.RoleNames(), path, method)
}

// FindPerson resolves a single record for the caller. The verdict is
// VerdictDenied when the record is absent, when its restriction is not
// met, or on any store failure; callers surface all three identically.
func (e *Engine) FindPerson(caller rbac.Identity, id string) (models.Person, Verdict) {
	p, err := e.store.Get(id)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			logging.Err(err).Str("id", id).Msg("person lookup failed")
		}
		metrics.RecordAccessDecision("find", false)
		return models.Person{}, VerdictDenied
	}

	if !caller.Satisfies(p.MinRole) {
		logging.Debug().
			Str("user", caller.Username()).
			Str("id", id).
			Msg("record access denied")
		metrics.RecordAccessDecision("find", false)
		return models.Person{}, VerdictDenied
	}

	metrics.RecordAccessDecision("find", true)
	return p, VerdictAllowed
}

// VisiblePeople returns the records whose restriction the caller
// satisfies, in store order. Records the caller may not see are
// omitted without any placeholder.
func (e *Engine) VisiblePeople(caller rbac.Identity) []models.Person {
	all := e.store.List()
	visible := make([]models.Person, 0, len(all))
	for _, p := range all {
		if caller.Satisfies(p.MinRole) {
			visible = append(visible, p)
		}
	}
	metrics.RecordAccessDecision("list", true)
	return visible
}

// AddPerson inserts a validated record. Endpoint gating happens before
// this call; there is no record-level check on insert.
func (e *Engine) AddPerson(req models.AddPersonRequest) (models.Person, error) {
	minRole := rbac.RoleNone
	if req.MinRole != "" {
		r, ok := rbac.ParseRole(req.MinRole)
		if !ok {
			return models.Person{}, errors.New("invalid minimum role")
		}
		minRole = r
	}

	p, err := e.store.Insert(req.FirstName, req.LastName, req.Title, minRole)
	if err != nil {
		return models.Person{}, err
	}

	logging.Info().
		Str("id", p.ID).
		Str("lastName", p.LastName).
		Str("minRole", string(p.MinRole)).
		Msg("person added")
	metrics.RecordAccessDecision("add", true)
	return p, nil
}

// DeletePerson removes the record under id. Deleting an absent record
// returns VerdictDenied so a failed probe looks identical to a
// forbidden one; the store is unchanged either way.
func (e *Engine) DeletePerson(caller rbac.Identity, id string) Verdict {
	if err := e.store.Delete(id); err != nil {
		metrics.RecordAccessDecision("delete", false)
		return VerdictDenied
	}

	logging.Info().
		Str("user", caller.Username()).
		Str("id", id).
		Msg("person deleted")
	metrics.RecordAccessDecision("delete", true)
	return VerdictAllowed
}
