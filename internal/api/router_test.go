// Doclab - Broken Access Control Training Lab
// Copyright 2026 Secdojo Labs
// SPDX-License-Identifier: Apache-2.0
// https://github.com/secdojo/doclab

package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	json "github.com/goccy/go-json"

	"github.com/secdojo/doclab/internal/auth"
	"github.com/secdojo/doclab/internal/authz"
	"github.com/secdojo/doclab/internal/config"
	"github.com/secdojo/doclab/internal/models"
	"github.com/secdojo/doclab/internal/render"
	"github.com/secdojo/doclab/internal/store"
)

const testSecret = "0123456789abcdef0123456789abcdef"

// testServer bundles the wired handler tree with the pieces tests need
// to mint tokens and inspect the store.
type testServer struct {
	handler http.Handler
	jwt     *auth.JWTManager
	store   *store.PersonStore
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	cfg := &config.Config{
		Server: config.ServerConfig{Port: 8080},
		Security: config.SecurityConfig{
			JWTSecret:       testSecret,
			TokenTTL:        time.Hour,
			RateLimitReqs:   10000,
			RateLimitWindow: time.Minute,
			CORSOrigins:     []string{"*"},
		},
		Demo: config.DemoConfig{
			Enabled:        true,
			TokensPerSec:   1000,
			TokensBurst:    1000,
			DefaultSubject: "DEMOUSER",
		},
	}

	st := store.New()
	if err := st.Seed(); err != nil {
		t.Fatalf("Seed: %v", err)
	}

	enforcer, err := authz.NewEnforcer()
	if err != nil {
		t.Fatalf("NewEnforcer: %v", err)
	}
	engine := authz.NewEngine(enforcer, st)

	renderer, err := render.NewEngine()
	if err != nil {
		t.Fatalf("render.NewEngine: %v", err)
	}

	jwtManager, err := auth.NewJWTManager(&cfg.Security)
	if err != nil {
		t.Fatalf("NewJWTManager: %v", err)
	}

	handler := NewHandler(engine, renderer, jwtManager, cfg.Demo, "test")
	router := NewRouter(handler, auth.NewMiddleware(jwtManager), engine, cfg)

	return &testServer{handler: router.Setup(), jwt: jwtManager, store: st}
}

func (ts *testServer) token(t *testing.T, roles ...string) string {
	t.Helper()
	token, _, err := ts.jwt.GenerateToken("USER1", roles)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	return token
}

// do performs a request; roles nil means no Authorization header.
func (ts *testServer) do(t *testing.T, method, path string, roles []string, body string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if roles != nil {
		req.Header.Set("Authorization", "Bearer "+ts.token(t, roles...))
	}

	rec := httptest.NewRecorder()
	ts.handler.ServeHTTP(rec, req)
	return rec
}

func (ts *testServer) idByLastName(t *testing.T, lastName string) string {
	t.Helper()
	for _, p := range ts.store.List() {
		if p.LastName == lastName {
			return p.ID
		}
	}
	t.Fatalf("no seeded person %q", lastName)
	return ""
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) models.APIResponse {
	t.Helper()
	var resp models.APIResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding envelope: %v\nbody: %s", err, rec.Body.String())
	}
	return resp
}

func TestDocumentEndpointMatrix(t *testing.T) {
	ts := newTestServer(t)

	tests := []struct {
		name   string
		path   string
		roles  []string
		status int
	}{
		{"html admin", "/doc/example.html", []string{"admin"}, http.StatusOK},
		{"html user", "/doc/example.html", []string{"user", "guest"}, http.StatusOK},
		{"html guest", "/doc/example.html", []string{"guest"}, http.StatusForbidden},
		{"html anonymous", "/doc/example.html", nil, http.StatusUnauthorized},

		{"markdown admin", "/doc/example.md", []string{"admin"}, http.StatusOK},
		{"markdown user", "/doc/example.md", []string{"user"}, http.StatusOK},
		{"markdown guest", "/doc/example.md", []string{"guest"}, http.StatusOK},
		{"markdown anonymous", "/doc/example.md", nil, http.StatusUnauthorized},

		{"asciidoc admin", "/doc/example.adoc", []string{"admin"}, http.StatusOK},
		{"asciidoc user", "/doc/example.adoc", []string{"user"}, http.StatusForbidden},
		{"asciidoc guest", "/doc/example.adoc", []string{"guest"}, http.StatusForbidden},

		{"pdf admin", "/doc/example.pdf", []string{"admin"}, http.StatusOK},
		{"pdf user", "/doc/example.pdf", []string{"user"}, http.StatusForbidden},

		{"json admin", "/doc/example.json", []string{"admin"}, http.StatusOK},
		{"json user", "/doc/example.json", []string{"user"}, http.StatusOK},
		{"json guest", "/doc/example.json", []string{"guest"}, http.StatusForbidden},

		{"unknown roles only", "/doc/example.md", []string{"wizard"}, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := ts.do(t, http.MethodGet, tt.path, tt.roles, "")
			if rec.Code != tt.status {
				t.Errorf("GET %s roles=%v: status = %d, want %d\nbody: %s",
					tt.path, tt.roles, rec.Code, tt.status, rec.Body.String())
			}
		})
	}
}

func TestDocumentContentPerRole(t *testing.T) {
	ts := newTestServer(t)

	adminDoc := ts.do(t, http.MethodGet, "/doc/example.md", []string{"admin"}, "").Body.String()
	guestDoc := ts.do(t, http.MethodGet, "/doc/example.md", []string{"guest"}, "").Body.String()

	if !strings.Contains(adminDoc, "Feynman") {
		t.Error("admin document missing admin-only record")
	}
	if strings.Contains(guestDoc, "Feynman") || strings.Contains(guestDoc, "Turing") {
		t.Error("guest document leaks restricted records")
	}
	if !strings.Contains(guestDoc, "Hack") {
		t.Error("guest document missing unrestricted record")
	}
}

func TestPersonListFiltering(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodGet, "/doc/person/list", []string{"user", "guest"}, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d\nbody: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Data []models.PersonResponse `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding: %v", err)
	}
	if len(resp.Data) != 3 {
		t.Errorf("user sees %d records, want 3", len(resp.Data))
	}
	for _, p := range resp.Data {
		if p.LastName == "Feynman" {
			t.Error("user listing leaks admin-only record")
		}
	}
}

func TestPersonListGates(t *testing.T) {
	ts := newTestServer(t)

	if rec := ts.do(t, http.MethodGet, "/doc/person/list", []string{"guest"}, ""); rec.Code != http.StatusForbidden {
		t.Errorf("guest list status = %d, want 403", rec.Code)
	}
	if rec := ts.do(t, http.MethodGet, "/doc/person/list", nil, ""); rec.Code != http.StatusUnauthorized {
		t.Errorf("anonymous list status = %d, want 401", rec.Code)
	}
}

func TestPersonFindCollapsesAbsenceAndDenial(t *testing.T) {
	ts := newTestServer(t)

	restrictedID := ts.idByLastName(t, "Feynman")
	forbidden := ts.do(t, http.MethodGet, "/doc/person/find/"+restrictedID, []string{"user"}, "")
	absent := ts.do(t, http.MethodGet, "/doc/person/find/00000000-0000-4000-8000-000000000000", []string{"user"}, "")

	if forbidden.Code != http.StatusForbidden || absent.Code != http.StatusForbidden {
		t.Fatalf("forbidden=%d absent=%d, both must be 403", forbidden.Code, absent.Code)
	}

	fe := decodeEnvelope(t, forbidden)
	ae := decodeEnvelope(t, absent)
	if fe.Error == nil || ae.Error == nil {
		t.Fatal("missing error envelope")
	}
	if fe.Error.Code != ae.Error.Code || fe.Error.Message != ae.Error.Message {
		t.Errorf("denial bodies differ: %+v vs %+v", fe.Error, ae.Error)
	}
	if fe.Error.Code != "FORBIDDEN" {
		t.Errorf("error code = %q, want FORBIDDEN", fe.Error.Code)
	}
}

func TestPersonFindAllowed(t *testing.T) {
	ts := newTestServer(t)

	id := ts.idByLastName(t, "Turing")
	rec := ts.do(t, http.MethodGet, "/doc/person/find/"+id, []string{"user"}, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d\nbody: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Data models.PersonResponse `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding: %v", err)
	}
	if resp.Data.LastName != "Turing" {
		t.Errorf("record = %+v", resp.Data)
	}
}

func TestPersonAddGates(t *testing.T) {
	ts := newTestServer(t)
	body := `{"firstName":"Ada","lastName":"Lovelace","title":"Mathematician","minRole":"user"}`

	for _, method := range []string{http.MethodPost, http.MethodPut} {
		if rec := ts.do(t, method, "/doc/person/add", []string{"user"}, body); rec.Code != http.StatusForbidden {
			t.Errorf("%s as user: status = %d, want 403", method, rec.Code)
		}
		if rec := ts.do(t, method, "/doc/person/add", nil, body); rec.Code != http.StatusUnauthorized {
			t.Errorf("%s anonymous: status = %d, want 401", method, rec.Code)
		}
		if rec := ts.do(t, method, "/doc/person/add", []string{"admin"}, body); rec.Code != http.StatusCreated {
			t.Errorf("%s as admin: status = %d, want 201\nbody: %s", method, rec.Code, rec.Body.String())
		}
	}
}

func TestPersonAddReturnsIDAndDate(t *testing.T) {
	ts := newTestServer(t)
	body := `{"firstName":"Ada","lastName":"Lovelace","title":"Mathematician"}`

	rec := ts.do(t, http.MethodPost, "/doc/person/add", []string{"admin"}, body)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d\nbody: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Data models.AddPersonResponse `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding: %v", err)
	}
	if resp.Data.ID == "" || resp.Data.CreationDate.IsZero() {
		t.Errorf("response = %+v", resp.Data)
	}

	found := ts.do(t, http.MethodGet, "/doc/person/find/"+resp.Data.ID, []string{"admin"}, "")
	if found.Code != http.StatusOK {
		t.Errorf("find of added person: status = %d", found.Code)
	}
}

func TestPersonAddValidation(t *testing.T) {
	ts := newTestServer(t)

	tests := []struct {
		name string
		body string
	}{
		{"missing fields", `{}`},
		{"numeric name", `{"firstName":"R2D2","lastName":"Droid","title":"Robot"}`},
		{"bad minRole", `{"firstName":"Ada","lastName":"Lovelace","title":"Mathematician","minRole":"root"}`},
		{"oversize field", `{"firstName":"` + strings.Repeat("a", 513) + `","lastName":"Lovelace","title":"Mathematician"}`},
		{"not json", `not json at all`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := ts.do(t, http.MethodPost, "/doc/person/add", []string{"admin"}, tt.body)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400\nbody: %s", rec.Code, rec.Body.String())
			}
			resp := decodeEnvelope(t, rec)
			if resp.Error == nil || resp.Error.Code != "VALIDATION_ERROR" {
				t.Errorf("error = %+v, want VALIDATION_ERROR", resp.Error)
			}
		})
	}
}

func TestPersonDelete(t *testing.T) {
	ts := newTestServer(t)
	id := ts.idByLastName(t, "Turing")

	if rec := ts.do(t, http.MethodDelete, "/doc/person/delete/"+id, []string{"user"}, ""); rec.Code != http.StatusForbidden {
		t.Errorf("delete as user: status = %d, want 403", rec.Code)
	}
	if rec := ts.do(t, http.MethodDelete, "/doc/person/delete/"+id, nil, ""); rec.Code != http.StatusUnauthorized {
		t.Errorf("delete anonymous: status = %d, want 401", rec.Code)
	}

	if rec := ts.do(t, http.MethodDelete, "/doc/person/delete/"+id, []string{"admin"}, ""); rec.Code != http.StatusOK {
		t.Errorf("delete as admin: status = %d, want 200", rec.Code)
	}

	// Repeated delete is indistinguishable from a forbidden one.
	if rec := ts.do(t, http.MethodDelete, "/doc/person/delete/"+id, []string{"admin"}, ""); rec.Code != http.StatusForbidden {
		t.Errorf("second delete: status = %d, want 403", rec.Code)
	}
}

func TestDemoTokenMintAndUse(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodGet, "/demo/user,guest.txt", nil, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("demo mint: status = %d\nbody: %s", rec.Code, rec.Body.String())
	}
	token := strings.TrimSpace(rec.Body.String())
	if token == "" {
		t.Fatal("empty token")
	}

	req := httptest.NewRequest(http.MethodGet, "/doc/example.html", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	res := httptest.NewRecorder()
	ts.handler.ServeHTTP(res, req)
	if res.Code != http.StatusOK {
		t.Errorf("minted token rejected: status = %d", res.Code)
	}
}

func TestDemoTokenDisabled(t *testing.T) {
	dts := newDisabledDemoServer(t)
	rec := httptest.NewRecorder()
	dts.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/demo/admin.txt", nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("disabled demo: status = %d, want 404", rec.Code)
	}
}

func newDisabledDemoServer(t *testing.T) http.Handler {
	t.Helper()

	cfg := &config.Config{
		Security: config.SecurityConfig{
			JWTSecret:       testSecret,
			TokenTTL:        time.Hour,
			RateLimitReqs:   10000,
			RateLimitWindow: time.Minute,
			CORSOrigins:     []string{"*"},
		},
		Demo: config.DemoConfig{Enabled: false, TokensPerSec: 1, TokensBurst: 1},
	}

	st := store.New()
	enforcer, err := authz.NewEnforcer()
	if err != nil {
		t.Fatalf("NewEnforcer: %v", err)
	}
	renderer, err := render.NewEngine()
	if err != nil {
		t.Fatalf("render.NewEngine: %v", err)
	}
	jwtManager, err := auth.NewJWTManager(&cfg.Security)
	if err != nil {
		t.Fatalf("NewJWTManager: %v", err)
	}
	engine := authz.NewEngine(enforcer, st)
	handler := NewHandler(engine, renderer, jwtManager, cfg.Demo, "test")
	return NewRouter(handler, auth.NewMiddleware(jwtManager), engine, cfg).Setup()
}

func TestBadCredentialsRejected(t *testing.T) {
	ts := newTestServer(t)

	expiredManager, err := auth.NewJWTManager(&config.SecurityConfig{
		JWTSecret: testSecret,
		TokenTTL:  -time.Minute,
	})
	if err != nil {
		t.Fatalf("NewJWTManager: %v", err)
	}
	expired, _, err := expiredManager.GenerateToken("USER1", []string{"admin"})
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	foreignManager, err := auth.NewJWTManager(&config.SecurityConfig{
		JWTSecret: "ffffffffffffffffffffffffffffffff",
		TokenTTL:  time.Hour,
	})
	if err != nil {
		t.Fatalf("NewJWTManager: %v", err)
	}
	foreign, _, err := foreignManager.GenerateToken("USER1", []string{"admin"})
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	tests := []struct {
		name  string
		token string
	}{
		{"expired token", expired},
		{"wrong signature", foreign},
		{"garbage token", "not.a.jwt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/doc/example.pdf", nil)
			req.Header.Set("Authorization", "Bearer "+tt.token)
			rec := httptest.NewRecorder()
			ts.handler.ServeHTTP(rec, req)
			if rec.Code != http.StatusUnauthorized {
				t.Errorf("status = %d, want 401", rec.Code)
			}
		})
	}
}

func TestSecurityHeadersPresent(t *testing.T) {
	ts := newTestServer(t)
	rec := ts.do(t, http.MethodGet, "/api/v1/health", nil, "")
	if got := rec.Header().Get("X-Content-Type-Options"); got != "nosniff" {
		t.Errorf("X-Content-Type-Options = %q, want nosniff", got)
	}
}

func TestHealthPublic(t *testing.T) {
	ts := newTestServer(t)
	rec := ts.do(t, http.MethodGet, "/api/v1/health", nil, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("health: status = %d", rec.Code)
	}
	resp := decodeEnvelope(t, rec)
	if resp.Status != "success" {
		t.Errorf("status = %q", resp.Status)
	}
}

func TestMetricsPublic(t *testing.T) {
	ts := newTestServer(t)
	rec := ts.do(t, http.MethodGet, "/metrics", nil, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("metrics: status = %d", rec.Code)
	}
}

func TestResponsesCarryRequestID(t *testing.T) {
	ts := newTestServer(t)
	rec := ts.do(t, http.MethodGet, "/api/v1/health", nil, "")
	if rec.Header().Get("X-Request-ID") == "" {
		t.Error("missing X-Request-ID header")
	}
}
