// Doclab - Broken Access Control Training Lab
// Copyright 2026 Secdojo Labs
// SPDX-License-Identifier: Apache-2.0
// https://github.com/secdojo/doclab

package api

import (
	"net/http"
	"time"
)

// HealthStatus is the health endpoint payload.
type HealthStatus struct {
	Status  string    `json:"status"`
	Version string    `json:"version"`
	Time    time.Time `json:"time"`
}

// Health godoc
//
//	@Summary	Service liveness probe
//	@Tags		operations
//	@Produce	json
//	@Success	200	{object}	models.APIResponse{data=api.HealthStatus}
//	@Router		/api/v1/health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	respondSuccess(w, r, http.StatusOK, HealthStatus{
		Status:  "ok",
		Version: h.version,
		Time:    time.Now().UTC(),
	})
}
