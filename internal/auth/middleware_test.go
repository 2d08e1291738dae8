// Doclab - Broken Access Control Training Lab
// Copyright 2026 Secdojo Labs
// SPDX-License-Identifier: Apache-2.0
// https://github.com/secdojo/doclab

package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	json "github.com/goccy/go-json"

	"github.com/secdojo/doclab/internal/models"
	"github.com/secdojo/doclab/internal/rbac"
)

func newTestMiddleware(t *testing.T) *Middleware {
	t.Helper()
	return NewMiddleware(newTestManager(t, time.Hour))
}

// echoIdentity records the identity the middleware attached.
func echoIdentity(captured *rbac.Identity) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*captured = IdentityFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthenticateMissingHeader(t *testing.T) {
	mw := newTestMiddleware(t)

	var id rbac.Identity
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/doc/example.md", nil)
	mw.Authenticate(echoIdentity(&id)).ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}

	var resp models.APIResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if resp.Error == nil || resp.Error.Code != "AUTH_REQUIRED" {
		t.Errorf("error = %+v, want AUTH_REQUIRED", resp.Error)
	}
}

func TestAuthenticateBadScheme(t *testing.T) {
	mw := newTestMiddleware(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/doc/example.md", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	mw.Authenticate(http.NotFoundHandler()).ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestAuthenticateInvalidToken(t *testing.T) {
	mw := newTestMiddleware(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/doc/example.md", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	mw.Authenticate(http.NotFoundHandler()).ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestAuthenticateExpiredToken(t *testing.T) {
	expired := newTestManager(t, -time.Minute)
	token, _, err := expired.GenerateToken("USER1", []string{"admin"})
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	mw := newTestMiddleware(t)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/doc/example.md", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	mw.Authenticate(http.NotFoundHandler()).ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestAuthenticateAttachesIdentity(t *testing.T) {
	mw := newTestMiddleware(t)
	token, _, err := mw.jwtManager.GenerateToken("USER1", []string{"user", "guest"})
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	var id rbac.Identity
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/doc/example.md", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	mw.Authenticate(echoIdentity(&id)).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if id.Username() != "USER1" {
		t.Errorf("username = %q", id.Username())
	}
	if !id.Has(rbac.RoleUser) || !id.Has(rbac.RoleGuest) || id.Has(rbac.RoleAdmin) {
		t.Errorf("roles = %v", id.RoleNames())
	}
}

func TestAuthenticateDropsUnknownRoles(t *testing.T) {
	mw := newTestMiddleware(t)
	token, _, err := mw.jwtManager.GenerateToken("USER1", []string{"wizard"})
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	var id rbac.Identity
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/doc/example.md", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	mw.Authenticate(echoIdentity(&id)).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatal("token with unknown roles must still authenticate")
	}
	if len(id.Roles()) != 0 {
		t.Errorf("roles = %v, want none", id.RoleNames())
	}
}

func TestIdentityFromContextDefaultsAnonymous(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if id := IdentityFromContext(req.Context()); !id.IsAnonymous() {
		t.Error("identity without middleware should be anonymous")
	}
}
