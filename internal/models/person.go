// Doclab - Broken Access Control Training Lab
// Copyright 2026 Secdojo Labs
// SPDX-License-Identifier: Apache-2.0
// https://github.com/secdojo/doclab

// Package models defines the wire-level data types shared by the API
// handlers, the person store and the access decision engine.
package models

import (
	"time"

	"github.com/secdojo/doclab/internal/rbac"
)

// Person is a stored person record. The ID is a random UUID assigned by
// the store on insert; it carries no ordering or positional information.
type Person struct {
	ID           string    `json:"id"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	Title        string    `json:"title"`
	CreationDate time.Time `json:"creationDate"`

	// MinRole is the weakest role allowed to read this record.
	// Empty means unrestricted.
	MinRole rbac.Role `json:"minRole,omitempty"`

	// Seq is the insertion sequence number, used only as an ordering
	// tiebreaker inside the store.
	Seq uint64 `json:"-"`
}

// AddPersonRequest is the create payload accepted by the person add
// endpoint. Name fields allow Unicode letters, spaces and hyphens only.
type AddPersonRequest struct {
	FirstName string `json:"firstName" validate:"required,max=512,personname" example:"Margherita"`
	LastName  string `json:"lastName" validate:"required,max=512,personname" example:"Hack"`
	Title     string `json:"title" validate:"required,max=512,personname" example:"Astrophysicist"`
	MinRole   string `json:"minRole,omitempty" validate:"omitempty,max=32,oneof=admin user guest" example:"guest"`
}

// AddPersonResponse is returned after a successful insert.
type AddPersonResponse struct {
	ID           string    `json:"id"`
	CreationDate time.Time `json:"creationDate"`
}

// PersonResponse is the read projection of a person record. It omits
// the record's access restriction so listings do not leak policy.
type PersonResponse struct {
	ID           string    `json:"id"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	Title        string    `json:"title"`
	CreationDate time.Time `json:"creationDate"`
}

// ToResponse converts a stored record into its read projection.
func (p Person) ToResponse() PersonResponse {
	return PersonResponse{
		ID:           p.ID,
		FirstName:    p.FirstName,
		LastName:     p.LastName,
		Title:        p.Title,
		CreationDate: p.CreationDate,
	}
}
