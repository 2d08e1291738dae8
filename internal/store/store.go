// Doclab - Broken Access Control Training Lab
// Copyright 2026 Secdojo Labs
// SPDX-License-Identifier: Apache-2.0
// https://github.com/secdojo/doclab

// Package store implements the in-memory person repository.
//
// Records are keyed by random UUIDs so that identifiers carry no
// positional information an attacker could enumerate. Listings are
// returned ordered by last name, then first name, then insertion
// sequence, so output is deterministic regardless of map iteration.
package store

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/secdojo/doclab/internal/models"
	"github.com/secdojo/doclab/internal/rbac"
)

// ErrNotFound is returned when no record exists under the given ID.
// Callers must not leak this distinction to API clients; the access
// decision engine collapses it into a generic denial.
var ErrNotFound = fmt.Errorf("person not found")

// PersonStore is a concurrency-safe in-memory person repository.
type PersonStore struct {
	mu      sync.RWMutex
	people  map[string]models.Person
	nextSeq uint64
}

// New creates an empty PersonStore.
func New() *PersonStore {
	return &PersonStore{
		people: make(map[string]models.Person),
	}
}

// Insert stores a new person and returns the stored record with its
// assigned ID, creation timestamp and sequence number.
func (s *PersonStore) Insert(firstName, lastName, title string, minRole rbac.Role) (models.Person, error) {
	if !rbac.IsValidMinRole(minRole) {
		return models.Person{}, fmt.Errorf("invalid minimum role %q", minRole)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextSeq++
	p := models.Person{
		ID:           uuid.NewString(),
		FirstName:    firstName,
		LastName:     lastName,
		Title:        title,
		CreationDate: time.Now().UTC(),
		MinRole:      minRole,
		Seq:          s.nextSeq,
	}
	s.people[p.ID] = p
	return p, nil
}

// Get returns the record under id, or ErrNotFound.
func (s *PersonStore) Get(id string) (models.Person, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.people[id]
	if !ok {
		return models.Person{}, ErrNotFound
	}
	return p, nil
}

// Delete removes the record under id. Returns ErrNotFound when no such
// record exists; deletion of an absent record leaves the store unchanged.
func (s *PersonStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.people[id]; !ok {
		return ErrNotFound
	}
	delete(s.people, id)
	return nil
}

// List returns all records ordered by last name, first name, then
// insertion sequence. The returned slice is a copy.
func (s *PersonStore) List() []models.Person {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Person, 0, len(s.people))
	for _, p := range s.people {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		return lessPerson(out[i], out[j])
	})
	return out
}

// Len returns the number of stored records.
func (s *PersonStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.people)
}

func lessPerson(a, b models.Person) bool {
	if a.LastName != b.LastName {
		return a.LastName < b.LastName
	}
	if a.FirstName != b.FirstName {
		return a.FirstName < b.FirstName
	}
	return a.Seq < b.Seq
}
