// Doclab - Broken Access Control Training Lab
// Copyright 2026 Secdojo Labs
// SPDX-License-Identifier: Apache-2.0
// https://github.com/secdojo/doclab

package authz

import (
	"net/http"
	"time"

	json "github.com/goccy/go-json"

	"github.com/secdojo/doclab/internal/auth"
	"github.com/secdojo/doclab/internal/logging"
	"github.com/secdojo/doclab/internal/models"
)

// RequireGate enforces the endpoint gates on every request that passes
// through it. Callers that fail the gate receive the same 403 body a
// record-level denial produces, keeping the two indistinguishable.
func (e *Engine) RequireGate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		caller := auth.IdentityFromContext(r.Context())

		allowed, err := e.CanInvoke(caller, r.URL.Path, r.Method)
		if err != nil {
			logging.Err(err).
				Str("path", r.URL.Path).
				Str("method", r.Method).
				Msg("gate evaluation failed")
			allowed = false
		}
		if !allowed {
			logging.Debug().
				Str("user", caller.Username()).
				Str("path", r.URL.Path).
				Str("method", r.Method).
				Msg("endpoint gate denied")
			WriteForbidden(w)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// WriteForbidden writes the canonical 403 envelope. Every denial in the
// service goes through this one body so responses carry no signal about
// whether the target exists.
func WriteForbidden(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusForbidden)
	//nolint:errcheck // nothing to do if the client went away
	json.NewEncoder(w).Encode(models.APIResponse{
		Status:   "error",
		Metadata: models.Metadata{Timestamp: time.Now().UTC()},
		Error: &models.APIError{
			Code:    "FORBIDDEN",
			Message: "access denied",
		},
	})
}
