// Doclab - Broken Access Control Training Lab
// Copyright 2026 Secdojo Labs
// SPDX-License-Identifier: Apache-2.0
// https://github.com/secdojo/doclab

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	json "github.com/goccy/go-json"

	"github.com/secdojo/doclab/internal/auth"
	"github.com/secdojo/doclab/internal/authz"
	"github.com/secdojo/doclab/internal/models"
)

// PersonList godoc
//
//	@Summary		List the persons currently stored (roles: admin, user)
//	@Description	The result is filtered down to the records whose minimum role the caller satisfies.
//	@Tags			person
//	@Produce		json
//	@Success		200	{object}	models.APIResponse{data=[]models.PersonResponse}
//	@Failure		401	{object}	models.APIResponse
//	@Failure		403	{object}	models.APIResponse
//	@Security		BearerAuth
//	@Router			/doc/person/list [get]
func (h *Handler) PersonList(w http.ResponseWriter, r *http.Request) {
	caller := auth.IdentityFromContext(r.Context())

	people := h.engine.VisiblePeople(caller)
	out := make([]models.PersonResponse, 0, len(people))
	for _, p := range people {
		out = append(out, p.ToResponse())
	}

	respondSuccess(w, r, http.StatusOK, out)
}

// PersonFind godoc
//
//	@Summary		Look up a person by ID (roles: admin, user)
//	@Description	Returns 403 both when the record does not exist and when its minimum role is not met.
//	@Tags			person
//	@Produce		json
//	@Param			id	path		string	true	"Person ID"
//	@Success		200	{object}	models.APIResponse{data=models.PersonResponse}
//	@Failure		401	{object}	models.APIResponse
//	@Failure		403	{object}	models.APIResponse
//	@Security		BearerAuth
//	@Router			/doc/person/find/{id} [get]
func (h *Handler) PersonFind(w http.ResponseWriter, r *http.Request) {
	caller := auth.IdentityFromContext(r.Context())
	id := chi.URLParam(r, "id")

	p, verdict := h.engine.FindPerson(caller, id)
	if verdict != authz.VerdictAllowed {
		authz.WriteForbidden(w)
		return
	}

	respondSuccess(w, r, http.StatusOK, p.ToResponse())
}

// PersonAdd godoc
//
//	@Summary		Add a person (roles: admin)
//	@Description	Requires first name, last name, title and optionally a minimum role.
//	@Tags			person
//	@Accept			json
//	@Produce		json
//	@Param			person	body		models.AddPersonRequest	true	"Person to add"
//	@Success		201		{object}	models.APIResponse{data=models.AddPersonResponse}
//	@Failure		400		{object}	models.APIResponse
//	@Failure		401		{object}	models.APIResponse
//	@Failure		403		{object}	models.APIResponse
//	@Failure		500		{object}	models.APIResponse
//	@Security		BearerAuth
//	@Router			/doc/person/add [post]
func (h *Handler) PersonAdd(w http.ResponseWriter, r *http.Request) {
	var req models.AddPersonRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, r, http.StatusBadRequest,
			"VALIDATION_ERROR", "request body is not valid JSON", nil, nil)
		return
	}

	if apiErr := validateRequest(&req); apiErr != nil {
		respondError(w, r, http.StatusBadRequest,
			apiErr.Code, apiErr.Message, apiErr.Details, nil)
		return
	}

	p, err := h.engine.AddPerson(req)
	if err != nil {
		respondError(w, r, http.StatusInternalServerError,
			"STORE_ERROR", "failed to store person", nil, err)
		return
	}

	respondSuccess(w, r, http.StatusCreated, models.AddPersonResponse{
		ID:           p.ID,
		CreationDate: p.CreationDate,
	})
}

// PersonDelete godoc
//
//	@Summary		Delete a person by ID (roles: admin)
//	@Description	Returns 403 when the record does not exist; a repeated delete leaves the store unchanged.
//	@Tags			person
//	@Produce		json
//	@Param			id	path		string	true	"Person ID"
//	@Success		200	{object}	models.APIResponse
//	@Failure		401	{object}	models.APIResponse
//	@Failure		403	{object}	models.APIResponse
//	@Security		BearerAuth
//	@Router			/doc/person/delete/{id} [delete]
func (h *Handler) PersonDelete(w http.ResponseWriter, r *http.Request) {
	caller := auth.IdentityFromContext(r.Context())
	id := chi.URLParam(r, "id")

	if h.engine.DeletePerson(caller, id) != authz.VerdictAllowed {
		authz.WriteForbidden(w)
		return
	}

	respondSuccess(w, r, http.StatusOK, nil)
}
