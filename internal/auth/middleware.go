// Doclab - Broken Access Control Training Lab
// Copyright 2026 Secdojo Labs
// SPDX-License-Identifier: Apache-2.0
// https://github.com/secdojo/doclab

package auth

import (
	"context"
	"net/http"
	"strings"
	"time"

	json "github.com/goccy/go-json"

	"github.com/secdojo/doclab/internal/logging"
	"github.com/secdojo/doclab/internal/metrics"
	"github.com/secdojo/doclab/internal/models"
	"github.com/secdojo/doclab/internal/rbac"
)

type contextKey string

const identityContextKey contextKey = "identity"

// IdentityFromContext returns the caller identity attached by the
// Authenticate middleware. Handlers behind the middleware always get a
// non-anonymous identity; everywhere else this returns Anonymous.
func IdentityFromContext(ctx context.Context) rbac.Identity {
	if id, ok := ctx.Value(identityContextKey).(rbac.Identity); ok {
		return id
	}
	return rbac.Anonymous
}

// ContextWithIdentity attaches an identity to the context. Exposed for
// handler tests.
func ContextWithIdentity(ctx context.Context, id rbac.Identity) context.Context {
	return context.WithValue(ctx, identityContextKey, id)
}

// Middleware enforces bearer token authentication.
type Middleware struct {
	jwtManager *JWTManager
}

// NewMiddleware creates the authentication middleware.
func NewMiddleware(jwtManager *JWTManager) *Middleware {
	return &Middleware{jwtManager: jwtManager}
}

// Authenticate rejects requests without a valid bearer token and
// attaches the caller identity to the request context. Unknown role
// names in the token are dropped; a token with only unknown roles
// still authenticates but passes no gate.
func (m *Middleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			metrics.RecordAuthAttempt("missing")
			writeAuthError(w, "authentication required")
			return
		}

		tokenString, ok := strings.CutPrefix(authHeader, "Bearer ")
		if !ok {
			metrics.RecordAuthAttempt("invalid")
			writeAuthError(w, "authorization header must use the Bearer scheme")
			return
		}

		claims, err := m.jwtManager.ValidateToken(tokenString)
		if err != nil {
			outcome := "invalid"
			if strings.Contains(err.Error(), "expired") {
				outcome = "expired"
			}
			metrics.RecordAuthAttempt(outcome)
			logging.Debug().Err(err).Msg("token validation failed")
			writeAuthError(w, "invalid or expired token")
			return
		}

		metrics.RecordAuthAttempt("ok")
		identity := rbac.NewIdentity(claims.UPN, claims.Groups)
		next.ServeHTTP(w, r.WithContext(ContextWithIdentity(r.Context(), identity)))
	})
}

// writeAuthError writes the 401 envelope. The middleware cannot use the
// api package helpers without an import cycle, so it carries its own.
func writeAuthError(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	//nolint:errcheck // nothing to do if the client went away
	json.NewEncoder(w).Encode(models.APIResponse{
		Status:   "error",
		Metadata: models.Metadata{Timestamp: time.Now().UTC()},
		Error: &models.APIError{
			Code:    "AUTH_REQUIRED",
			Message: message,
		},
	})
}
