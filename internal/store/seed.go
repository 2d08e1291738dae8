// Doclab - Broken Access Control Training Lab
// Copyright 2026 Secdojo Labs
// SPDX-License-Identifier: Apache-2.0
// https://github.com/secdojo/doclab

package store

import (
	"github.com/secdojo/doclab/internal/logging"
	"github.com/secdojo/doclab/internal/rbac"
)

// seedPerson is one bootstrap record.
type seedPerson struct {
	firstName string
	lastName  string
	title     string
	minRole   rbac.Role
}

// seedPeople is the lab's bootstrap data set. Each record carries a
// different access restriction so every role sees a different listing.
var seedPeople = []seedPerson{
	{"Margherita", "Hack", "Astrophysicist", rbac.RoleNone},
	{"Rita", "Levi-Montalcini", "Neurologist", rbac.RoleGuest},
	{"Alan", "Turing", "Mathematician", rbac.RoleUser},
	{"Richard", "Feynman", "Physicist", rbac.RoleAdmin},
}

// Seed inserts the bootstrap records into an empty store.
func (s *PersonStore) Seed() error {
	for _, sp := range seedPeople {
		p, err := s.Insert(sp.firstName, sp.lastName, sp.title, sp.minRole)
		if err != nil {
			return err
		}
		logging.Debug().
			Str("id", p.ID).
			Str("lastName", p.LastName).
			Str("minRole", string(p.MinRole)).
			Msg("seeded person")
	}
	logging.Info().Int("count", len(seedPeople)).Msg("person store seeded")
	return nil
}
