// Doclab - Broken Access Control Training Lab
// Copyright 2026 Secdojo Labs
// SPDX-License-Identifier: Apache-2.0
// https://github.com/secdojo/doclab

package api

import (
	"net"
	"net/http"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5"
	"golang.org/x/time/rate"

	"github.com/secdojo/doclab/internal/logging"
	"github.com/secdojo/doclab/internal/metrics"
)

// demoLimiter rate limits token minting per client IP. The demo
// endpoint is unauthenticated, so it gets a tighter budget than the
// rest of the API.
type demoLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	rps      rate.Limit
	burst    int
}

func newDemoLimiter(rps float64, burst int) *demoLimiter {
	return &demoLimiter{
		limiters: make(map[string]*rate.Limiter),
		rps:      rate.Limit(rps),
		burst:    burst,
	}
}

func (d *demoLimiter) allow(ip string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	l, ok := d.limiters[ip]
	if !ok {
		l = rate.NewLimiter(d.rps, d.burst)
		d.limiters[ip] = l
	}
	return l.Allow()
}

// DemoToken godoc
//
//	@Summary		Mint a demonstration bearer token, roles passed as a comma-separated path segment (e.g. 'admin,user,guest')
//	@Description	For lab use only. The token expires after the configured TTL (default one hour).
//	@Tags			jwt authorization demo
//	@Produce		plain
//	@Param			roles	path		string	true	"Comma-separated role list"
//	@Success		200		{string}	string	"The signed token"
//	@Failure		404		{object}	models.APIResponse
//	@Failure		429		{object}	models.APIResponse
//	@Router			/demo/{roles}.txt [get]
func (h *Handler) DemoToken(w http.ResponseWriter, r *http.Request) {
	if !h.demoCfg.Enabled {
		respondError(w, r, http.StatusNotFound,
			"NOT_FOUND", "demo token generation is disabled", nil, nil)
		return
	}

	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		ip = r.RemoteAddr
	}
	if !h.limiter.allow(ip) {
		respondError(w, r, http.StatusTooManyRequests,
			"RATE_LIMIT_EXCEEDED", "too many token requests", nil, nil)
		return
	}

	rolesParam := strings.TrimSuffix(chi.URLParam(r, "roles"), ".txt")
	roles := splitRoles(rolesParam)

	token, _, err := h.jwt.GenerateToken(h.demoCfg.DefaultSubject, roles)
	if err != nil {
		respondError(w, r, http.StatusInternalServerError,
			"TOKEN_ERROR", "failed to mint token", nil, err)
		return
	}

	metrics.DemoTokensIssued.Inc()
	logging.Info().
		Str("roles", sanitizeLogValue(rolesParam)).
		Str("ip", ip).
		Msg("demo token issued")

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	//nolint:errcheck // nothing to do if the client went away
	w.Write([]byte(token))
}

// splitRoles splits a comma-separated role list, dropping empty parts.
// Unknown role names are kept in the token; validation drops them when
// the token is presented.
func splitRoles(s string) []string {
	parts := strings.Split(s, ",")
	roles := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			roles = append(roles, p)
		}
	}
	return roles
}
